package maskgen

// Real is the coordinate type shapes are evaluated with.
type Real = float64

// Channel indices for readability.
const (
	ChR        = 0
	ChG        = 1
	ChB        = 2
	VolumeResX = 64
	VolumeResY = 64
	VolumeResZ = 64
	MaxVoxels  = 1 << 26 // resX*resY*resZ cap, 1.5 GiB of float64 RGB
	ProbeRays  = 100_000 // Monte-Carlo samples for the volume self check
	GIFOut     = "gifs/mask.gif"
	GIFDelay   = 5 // 100ths of a second per frame
	GIFScale   = 1 // pixels per voxel edge in GIF frames
	Gamma      = 1.0
	// relative error tolerated between estimated and analytic volume before a debug warning
	VolumeTolerance = 0.05
)
