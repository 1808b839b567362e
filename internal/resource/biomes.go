package resource

import "strings"

const namespace = "minecraft:"

func rgb(v uint32) *Color {
	return &Color{uint8(v >> 16), uint8(v >> 8), uint8(v)}
}

// Vanilla climate parameters and color overrides.
var biomes = map[string]Biome{
	"badlands":                {Temp: 2.0, Downfall: 0.0, GrassOverride: rgb(0x90814d), FoliageOverride: rgb(0x9e814d)},
	"beach":                   {Temp: 0.8, Downfall: 0.4},
	"birch_forest":            {Temp: 0.6, Downfall: 0.6},
	"cherry_grove":            {Temp: 0.5, Downfall: 0.8, GrassOverride: rgb(0xb6db61), FoliageOverride: rgb(0xb6db61), WaterOverride: rgb(0x5db7ef)},
	"cold_ocean":              {Temp: 0.5, Downfall: 0.5, WaterOverride: rgb(0x3d57d6)},
	"dark_forest":             {Temp: 0.7, Downfall: 0.8, GrassColorModifier: DarkForest},
	"desert":                  {Temp: 2.0, Downfall: 0.0},
	"eroded_badlands":         {Temp: 2.0, Downfall: 0.0, GrassOverride: rgb(0x90814d), FoliageOverride: rgb(0x9e814d)},
	"forest":                  {Temp: 0.7, Downfall: 0.8},
	"frozen_ocean":            {Temp: 0.0, Downfall: 0.5, WaterOverride: rgb(0x3938c9)},
	"frozen_river":            {Temp: 0.0, Downfall: 0.5, WaterOverride: rgb(0x3938c9)},
	"jungle":                  {Temp: 0.95, Downfall: 0.9},
	"lukewarm_ocean":          {Temp: 0.5, Downfall: 0.5, WaterOverride: rgb(0x45adf2)},
	"mangrove_swamp":          {Temp: 0.8, Downfall: 0.9, FoliageOverride: rgb(0x8db127), WaterOverride: rgb(0x3a7a6a), GrassColorModifier: Swamp},
	"meadow":                  {Temp: 0.5, Downfall: 0.8, WaterOverride: rgb(0x0e4ecf)},
	"ocean":                   {Temp: 0.5, Downfall: 0.5},
	"old_growth_birch_forest": {Temp: 0.6, Downfall: 0.6},
	"old_growth_pine_taiga":   {Temp: 0.3, Downfall: 0.8},
	"plains":                  {Temp: 0.8, Downfall: 0.4},
	"river":                   {Temp: 0.5, Downfall: 0.5},
	"savanna":                 {Temp: 2.0, Downfall: 0.0},
	"snowy_plains":            {Temp: 0.0, Downfall: 0.5},
	"snowy_taiga":             {Temp: -0.5, Downfall: 0.4, WaterOverride: rgb(0x3d57d6)},
	"sunflower_plains":        {Temp: 0.8, Downfall: 0.4},
	"swamp":                   {Temp: 0.8, Downfall: 0.9, FoliageOverride: rgb(0x6a7039), WaterOverride: rgb(0x617b64), GrassColorModifier: Swamp},
	"taiga":                   {Temp: 0.25, Downfall: 0.8},
	"warm_ocean":              {Temp: 0.5, Downfall: 0.5, WaterOverride: rgb(0x43d5ee)},
	"wooded_badlands":         {Temp: 2.0, Downfall: 0.0, GrassOverride: rgb(0x90814d), FoliageOverride: rgb(0x9e814d)},
}

// LookupBiome returns the biome registered under name. The "minecraft:"
// namespace prefix is optional. The returned Biome shares override colors
// with the table and must not be modified.
func LookupBiome(name string) (*Biome, bool) {
	b, ok := biomes[strings.TrimPrefix(name, namespace)]
	if !ok {
		return nil, false
	}
	return &b, true
}
