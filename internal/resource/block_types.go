package resource

import "strings"

var blockTypes = map[string]BlockType{
	"acacia_leaves":   {Flags: Foliage, Color: Color{149, 148, 148}},
	"birch_leaves":    {Flags: Foliage | Birch, Color: Color{130, 129, 130}},
	"dark_oak_leaves": {Flags: Foliage, Color: Color{150, 150, 150}},
	"dirt":            {Color: Color{134, 96, 67}},
	"fern":            {Flags: Grass, Color: Color{124, 124, 124}},
	"grass_block":     {Flags: Grass, Color: Color{147, 147, 147}},
	"gravel":          {Color: Color{131, 127, 126}},
	"ice":             {Color: Color{145, 183, 253}},
	"jungle_leaves":   {Flags: Foliage, Color: Color{156, 154, 143}},
	"lily_pad":        {Flags: Grass, Color: Color{133, 133, 133}},
	"oak_leaves":      {Flags: Foliage, Color: Color{144, 144, 144}},
	"sand":            {Color: Color{219, 207, 163}},
	"short_grass":     {Flags: Grass, Color: Color{100, 100, 100}},
	"snow":            {Color: Color{249, 254, 254}},
	"snow_block":      {Color: Color{249, 254, 254}},
	"spruce_leaves":   {Flags: Foliage | Spruce, Color: Color{126, 126, 126}},
	"stone":           {Color: Color{125, 125, 125}},
	"sugar_cane":      {Flags: Grass, Color: Color{148, 192, 101}},
	"tall_grass":      {Flags: Grass, Color: Color{100, 100, 100}},
	"vine":            {Flags: Foliage, Color: Color{116, 116, 116}},
	"water":           {Flags: Water, Color: Color{177, 177, 177}},
}

// LookupBlockType returns the block type registered under name. The
// "minecraft:" namespace prefix is optional.
func LookupBlockType(name string) (BlockType, bool) {
	b, ok := blockTypes[strings.TrimPrefix(name, namespace)]
	return b, ok
}
