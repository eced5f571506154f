package config

// Presets are named timesteps, from the finest to the coarsest allowed.
var Presets = map[string]int{
	"fine":     100,
	"detailed": 500,
	"default":  DefaultTimestep,
	"fast":     2500,
	"coarse":   5000,
}

// GetPreset returns the timestep for name and whether it exists.
func GetPreset(name string) (int, bool) {
	step, ok := Presets[name]
	return step, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
