package maskgen

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/lukaszgryglicki/symellipsoid/spatial"
	"gopkg.in/yaml.v3"
)

type SceneCfg struct {
	Center Point4 `json:"center" yaml:"center"`
	Width  Real   `json:"width" yaml:"width"`
	Height Real   `json:"height" yaml:"height"`
	Depth  Real   `json:"depth" yaml:"depth"`
}

type Config struct {
	ResX       int            `json:"resX" yaml:"resX"`
	ResY       int            `json:"resY" yaml:"resY"`
	ResZ       int            `json:"resZ" yaml:"resZ"`
	ProbeRays  int            `json:"probeRays" yaml:"probeRays"`
	GIFOut     string         `json:"gifOut" yaml:"gifOut"`
	GIFDelay   int            `json:"gifDelay,omitempty" yaml:"gifDelay,omitempty"`
	GIFScale   int            `json:"gifScale,omitempty" yaml:"gifScale,omitempty"`
	Gamma      Real           `json:"gamma,omitempty" yaml:"gamma,omitempty"`
	Scene      SceneCfg       `json:"scene" yaml:"scene"`
	Ellipsoids []EllipsoidCfg `json:"ellipsoids,omitempty" yaml:"ellipsoids,omitempty"`
	Spheres    []SphereCfg    `json:"spheres,omitempty" yaml:"spheres,omitempty"`
	Probes     [][]Real       `json:"probes,omitempty" yaml:"probes,omitempty"`
}

// Rotation in degrees for config files (friendlier than radians).
type Rot4Deg struct {
	XY Real `json:"xy" yaml:"xy"`
	XZ Real `json:"xz" yaml:"xz"`
	XW Real `json:"xw" yaml:"xw"`
	YZ Real `json:"yz" yaml:"yz"`
	YW Real `json:"yw" yaml:"yw"`
	ZW Real `json:"zw" yaml:"zw"`
}

func (r Rot4Deg) Radians() Rot4 {
	const k = math.Pi / 180
	return Rot4{
		XY: r.XY * k, XZ: r.XZ * k, XW: r.XW * k,
		YZ: r.YZ * k, YW: r.YW * k, ZW: r.ZW * k,
	}
}

// EllipsoidCfg describes a symmetric ellipsoid. The dimension is len(Center).
// Exactly one of Direction (a unit vector, used verbatim) or RotDeg (rotation
// of the last basis axis) sets the unique axis.
type EllipsoidCfg struct {
	Name          string   `json:"name" yaml:"name"`
	Center        []Real   `json:"center" yaml:"center"`
	Direction     []Real   `json:"direction,omitempty" yaml:"direction,omitempty"`
	RotDeg        *Rot4Deg `json:"rotDeg,omitempty" yaml:"rotDeg,omitempty"`
	UniqueAxis    Real     `json:"uniqueAxis" yaml:"uniqueAxis"`
	SymmetricAxes Real     `json:"symmetricAxes" yaml:"symmetricAxes"`
	Color         RGB      `json:"color" yaml:"color"`
}

type SphereCfg struct {
	Name   string `json:"name" yaml:"name"`
	Center []Real `json:"center" yaml:"center"`
	Radius Real   `json:"radius" yaml:"radius"`
	Color  RGB    `json:"color" yaml:"color"`
}

// Build validates and constructs the ellipsoid shape (no defaults).
func (ec EllipsoidCfg) Build() (*Shape, error) {
	dim := len(ec.Center)
	var orientation spatial.Vector[Real]
	switch {
	case ec.Direction != nil && ec.RotDeg != nil:
		return nil, fmt.Errorf("ellipsoid %q: set either direction or rotDeg, not both", ec.Name)
	case ec.Direction != nil:
		orientation = spatial.Vector[Real](ec.Direction)
	case ec.RotDeg != nil:
		o, err := axisFromRotation(dim, ec.RotDeg.Radians())
		if err != nil {
			return nil, fmt.Errorf("ellipsoid %q: %w", ec.Name, err)
		}
		orientation = o
	default:
		return nil, fmt.Errorf("ellipsoid %q: direction or rotDeg is required", ec.Name)
	}

	e := spatial.NewSymmetricEllipsoid[Real](imax(dim, 1))
	if err := e.SetCenter(ec.Center); err != nil {
		return nil, fmt.Errorf("ellipsoid %q: %w", ec.Name, err)
	}
	if err := e.SetOrientation(orientation, ec.UniqueAxis, ec.SymmetricAxes); err != nil {
		return nil, fmt.Errorf("ellipsoid %q: %w", ec.Name, err)
	}
	return NewShape(ec.Name, dim, ec.Color, e)
}

func (sc SphereCfg) Build() (*Shape, error) {
	s, err := spatial.NewSphere[Real](sc.Center, sc.Radius)
	if err != nil {
		return nil, fmt.Errorf("sphere %q: %w", sc.Name, err)
	}
	return NewShape(sc.Name, len(sc.Center), sc.Color, s)
}

// Shapes builds every configured shape, ellipsoids first. All build errors
// are reported together.
func (cfg *Config) Shapes() ([]*Shape, error) {
	shapes := make([]*Shape, 0, len(cfg.Ellipsoids)+len(cfg.Spheres))
	var errs []error
	for i, ec := range cfg.Ellipsoids {
		if ec.Name == "" {
			ec.Name = fmt.Sprintf("ellipsoid#%d", i)
		}
		sh, err := ec.Build()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		shapes = append(shapes, sh)
	}
	for i, sc := range cfg.Spheres {
		if sc.Name == "" {
			sc.Name = fmt.Sprintf("sphere#%d", i)
		}
		sh, err := sc.Build()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		shapes = append(shapes, sh)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return shapes, nil
}

// isYAML picks the decoder from the file extension; anything else is JSON.
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func parseConfig(data []byte, yamlInput bool) (*Config, error) {
	var (
		doc interface{}
		cfg Config
	)
	if yamlInput {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	} else if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}
	if yamlInput {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	} else if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	cfg.applyDefaults()
	if n := int64(cfg.ResX) * int64(cfg.ResY) * int64(cfg.ResZ); n > MaxVoxels {
		return nil, fmt.Errorf("resolution %dx%dx%d is %d voxels, limit is %d", cfg.ResX, cfg.ResY, cfg.ResZ, n, MaxVoxels)
	}
	if len(cfg.Ellipsoids)+len(cfg.Spheres) == 0 {
		return nil, fmt.Errorf("config has no shapes")
	}
	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.ResX <= 0 {
		cfg.ResX = VolumeResX
	}
	if cfg.ResY <= 0 {
		cfg.ResY = VolumeResY
	}
	if cfg.ResZ <= 0 {
		cfg.ResZ = VolumeResZ
	}
	if cfg.ProbeRays <= 0 {
		cfg.ProbeRays = ProbeRays
	}
	if cfg.GIFOut == "" {
		cfg.GIFOut = GIFOut
	}
	if cfg.GIFDelay <= 0 {
		cfg.GIFDelay = GIFDelay
	}
	if cfg.GIFScale <= 0 {
		cfg.GIFScale = GIFScale
	}
	if cfg.Gamma <= 0 {
		cfg.Gamma = Gamma
	}
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := parseConfig(data, isYAML(path))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	DebugLog("Loaded config from %s: size=(%d, %d, %d), shapes=%d, probes=%d, gamma=%f", path, cfg.ResX, cfg.ResY, cfg.ResZ, len(cfg.Ellipsoids)+len(cfg.Spheres), len(cfg.Probes), cfg.Gamma)
	return cfg, nil
}
