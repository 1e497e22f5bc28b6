package config

import "sort"

// Profiles are named parameter bundles trading speed against fidelity.
var Profiles = map[string]*Config{
	"draft": {
		Samples: 128, Bandwidth: 24, Bounds: []int{1, 4, 12}, Mode: "order",
		AnimateBound: 24, CurveSamples: 400, Period: 6.0, Tail: 600, FPS: 20,
	},
	"default": {
		Samples: DefaultSamples, Bandwidth: DefaultBandwidth, Bounds: []int{1, 3, 10, 50}, Mode: "order",
		AnimateBound: DefaultAnimateBound, CurveSamples: DefaultCurveSamples, Period: DefaultPeriod, Tail: DefaultTail, FPS: DefaultFPS,
	},
	"fine": {
		Samples: 2048, Bandwidth: 400, Bounds: []int{5, 25, 100, 400}, Mode: "order",
		AnimateBound: 300, CurveSamples: 4000, Period: 12.0, Tail: 5000, FPS: 30,
	},
	"sparse": {
		Samples: 1024, Bandwidth: 200, Bounds: []int{3, 8, 20, 60}, Mode: "mag",
		AnimateBound: 60, CurveSamples: DefaultCurveSamples, Period: DefaultPeriod, Tail: DefaultTail, FPS: DefaultFPS,
	},
}

// GetProfile returns a copy of the named profile with the shape and
// presentation fields filled from the defaults.
func GetProfile(name string) *Config {
	p, ok := Profiles[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Bounds = append([]int(nil), p.Bounds...)
	def := DefaultConfig()
	cfg.Shape = def.Shape
	cfg.Theme = def.Theme
	cfg.Width = def.Width
	cfg.Height = def.Height
	return &cfg
}

func ListProfiles() []string {
	names := make([]string, 0, len(Profiles))
	for name := range Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
