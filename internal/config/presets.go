package config

// Presets are ready-made phase definitions.
var Presets = map[string]*Config{
	// Final-value constraints from the supersonic minimum-time-to-climb
	// problem: reach 20 km at Mach 1 with level flight path.
	"min_time_climb": {
		Phase: "climb",
		Constraints: []ConstraintConfig{
			{Name: "h", Loc: "final", Shape: []int{1}, Units: "m", Equals: Bound{20000}, Scaler: f(1.0e-3)},
			{Name: "aero.mach", Loc: "final", Shape: []int{1}, Equals: Bound{1.0}},
			{Name: "gam", Loc: "final", Shape: []int{1}, Units: "rad", Equals: Bound{0.0}},
		},
	},
	"brachistochrone": {
		Phase: "brach",
		Constraints: []ConstraintConfig{
			{Name: "x", Loc: "final", Shape: []int{1}, Units: "m", Equals: Bound{10.0}},
			{Name: "y", Loc: "final", Shape: []int{1}, Units: "m", Equals: Bound{5.0}},
			{Name: "v", Loc: "initial", Shape: []int{1}, Units: "m/s", Equals: Bound{0.0}},
		},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
