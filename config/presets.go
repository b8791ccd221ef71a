// SPDX-License-Identifier: MIT

package config

import (
	"maps"
	"slices"
)

// Presets are small built-in systems, one per classification case.
var Presets = map[string]*Config{
	"unique": {
		Name: "unique", Backend: BackendExact,
		Coefficients: [][]string{{"1", "-2"}, {"2", "-1"}},
		RHS:          []string{"3", "0"},
	},
	"infinite": {
		Name: "infinite", Backend: BackendExact,
		Coefficients: [][]string{{"1", "3", "1", "1"}, {"2", "-2", "1", "2"}, {"3", "1", "2", "-1"}},
		RHS:          []string{"3", "8", "-1"},
	},
	"inconsistent": {
		Name: "inconsistent", Backend: BackendExact,
		Coefficients: [][]string{{"1", "1"}, {"1", "1"}},
		RHS:          []string{"1", "2"},
	},
	"homogeneous": {
		Name: "homogeneous", Backend: BackendExact,
		Coefficients: [][]string{{"0", "0"}, {"0", "0"}},
		RHS:          []string{"0", "0"},
	},
	"elimination": {
		Name: "elimination", Backend: BackendFloat,
		Coefficients: [][]string{{"10", "20"}, {"50", "30"}, {"30", "30"}},
		RHS:          []string{"5060", "14310", "10470"},
	},
}

// GetPreset returns a copy of the named preset with defaults filled in,
// or nil when there is none.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := Default()
	cfg.Name, cfg.Backend = p.Name, p.Backend
	cfg.Coefficients = make([][]string, len(p.Coefficients))
	for i, row := range p.Coefficients {
		cfg.Coefficients[i] = slices.Clone(row)
	}
	cfg.RHS = slices.Clone(p.RHS)

	return cfg
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	return slices.Sorted(maps.Keys(Presets))
}
