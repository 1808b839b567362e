// Package resource holds the static block and biome data used to colorize
// map tiles, and the color computations built on top of it.
package resource

// Color is an 8-bit RGB color.
type Color [3]uint8

// BlockFlag is a tint capability of a block type.
type BlockFlag uint8

const (
	// Grass blocks are tinted with the biome grass color.
	Grass BlockFlag = 1 << iota
	// Foliage blocks are tinted with the biome foliage color.
	Foliage
	// Birch blocks are tinted with the fixed birch leaf color.
	Birch
	// Spruce blocks are tinted with the fixed evergreen leaf color.
	Spruce
	// Water blocks are tinted with the biome water color.
	Water
)

// BlockType describes how a block is drawn on the map.
type BlockType struct {
	Flags BlockFlag
	Color Color
}

// Is reports whether the block type carries flag.
func (b BlockType) Is(flag BlockFlag) bool {
	return b.Flags&flag != 0
}

// GrassColorModifier adjusts the computed grass color of a biome.
type GrassColorModifier uint8

const (
	NoModifier GrassColorModifier = iota
	DarkForest
	Swamp
)

// Biome holds the climate parameters and color overrides of a biome.
type Biome struct {
	Temp     float32
	Downfall float32

	// Explicit colors replace the values derived from Temp and Downfall.
	GrassOverride   *Color
	FoliageOverride *Color
	WaterOverride   *Color

	GrassColorModifier GrassColorModifier
}
