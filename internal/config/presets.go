package config

import "sort"

// Fluid is a named reference density in kg/m3.
type Fluid struct {
	Name        string
	RhoRef      float64
	Description string
}

var Fluids = map[string]Fluid{
	"air": {
		Name: "air", RhoRef: 1.225,
		Description: "standard atmosphere at sea level, 15 C",
	},
	"dry-air": {
		Name: "dry-air", RhoRef: 101325 / (287.058 * 298.15),
		Description: "ideal gas dry air at 101325 Pa, 25 C",
	},
	"water": {
		Name: "water", RhoRef: 997.0479,
		Description: "liquid water at 25 C",
	},
	"seawater": {
		Name: "seawater", RhoRef: 1025,
		Description: "typical surface seawater",
	},
}

func GetFluid(name string) (Fluid, bool) {
	f, ok := Fluids[name]
	return f, ok
}

func ListFluids() []string {
	names := make([]string, 0, len(Fluids))
	for name := range Fluids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
