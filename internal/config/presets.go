package config

import "sort"

// Preset is a named root-finding problem over a registry function.
type Preset struct {
	Function    string
	Guess       string
	Iterations  int
	Description string
}

var Presets = map[string]*Preset{
	"sqrt2": {Function: "x^2-2", Guess: "1", Iterations: 8, Description: "square root of 2"},
	"sqrt4": {Function: "x^2-4", Guess: "3", Iterations: 10, Description: "square root of 4"},
	"cubic": {Function: "cubic", Guess: "2", Iterations: 10, Description: "real root of x^3 - 2x - 5"},
	"ln2":   {Function: "exp-minus-2", Guess: "1", Iterations: 10, Description: "natural log of 2"},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
