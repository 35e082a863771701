package maskgen

// RGB stores color components; each should be in [0,1].
type RGB struct {
	R Real `json:"r" yaml:"r"`
	G Real `json:"g" yaml:"g"`
	B Real `json:"b" yaml:"b"`
}

// clamp01 clamps each channel to [0,1].
func (c RGB) clamp01() RGB {
	return RGB{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

func clamp01(x Real) Real {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// isBlack reports a color that would leave no trace in the mask.
func (c RGB) isBlack() bool { return c.R <= 0 && c.G <= 0 && c.B <= 0 }
