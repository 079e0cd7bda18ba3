package sim

// Tuning holds the simulation constants. Defaults reproduce the
// classic chaotic three-body toy; presets in the config package vary
// them.
type Tuning struct {
	NumBodies int     `yaml:"num_bodies"`
	TrailCap  int     `yaml:"trail_cap"`
	G         float64 `yaml:"g"`
	// MinDist floors the pairwise separation used in the force law so
	// coincident bodies never divide by zero.
	MinDist float64 `yaml:"min_dist"`
	// ForceCap bounds the raw force magnitude before damping.
	ForceCap float64 `yaml:"force_cap"`
	Damping  float64 `yaml:"damping"`
	// DivergenceFactor scales min(viewport w,h) into the bounding-box
	// size past which a run is considered diverged.
	DivergenceFactor float64 `yaml:"divergence_factor"`
	// CameraEase is the per-frame smoothing factor, tuned for 60 fps.
	CameraEase float64 `yaml:"camera_ease"`
	CameraZoom float64 `yaml:"camera_zoom"`
	MassMin    float64 `yaml:"mass_min"`
	MassMax    float64 `yaml:"mass_max"`
	SpeedMin   float64 `yaml:"speed_min"`
	SpeedMax   float64 `yaml:"speed_max"`
}

func DefaultTuning() Tuning {
	return Tuning{
		NumBodies:        3,
		TrailCap:         60,
		G:                0.4,
		MinDist:          10,
		ForceCap:         10000,
		Damping:          0.25,
		DivergenceFactor: 1.6,
		CameraEase:       0.995,
		CameraZoom:       0.875,
		MassMin:          20,
		MassMax:          60,
		SpeedMin:         0.1 * 0.25,
		SpeedMax:         1.1 * 0.25,
	}
}
