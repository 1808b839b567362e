package resource

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Color matrix extracted from the grass color texture.
var grassColors = [3]mgl32.Vec3{
	{0.502, 0.706, 0.592},   // lower right
	{0.247, 0.012, -0.259},  // lower left - lower right
	{-0.471, 0.086, -0.133}, // upper left - lower left
}

// Color matrix extracted from the foliage color texture.
var foliageColors = [3]mgl32.Vec3{
	{0.376, 0.631, 0.482},
	{0.306, 0.012, -0.317},
	{-0.580, 0.106, -0.165},
}

var (
	darkForestGrassColor = mgl32.Vec3{0.157, 0.204, 0.039} // (40, 52, 10)
	swampGrassColor      = mgl32.Vec3{0.416, 0.439, 0.224} // (106, 112, 57)
	defaultWaterColor    = mgl32.Vec3{0.247, 0.463, 0.894} // (63, 118, 228)

	birchColor     = mgl32.Vec3{0.502, 0.655, 0.333} // (128, 167, 85)
	evergreenColor = mgl32.Vec3{0.380, 0.600, 0.380} // (97, 153, 97)
)

func colorVecUnscaled(c Color) mgl32.Vec3 {
	return mgl32.Vec3{float32(c[0]), float32(c[1]), float32(c[2])}
}

// colorVec scales c to the 0..1 range.
func colorVec(c Color) mgl32.Vec3 {
	return colorVecUnscaled(c).Mul(1.0 / 255.0)
}

func mulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}

// colorFromParams approximates a lookup in a grass or foliage color ramp
// texture. Temperature drops by 1/600 per block above y=64.
func colorFromParams(colors *[3]mgl32.Vec3, b *Biome, depth float32) mgl32.Vec3 {
	temp := clamp01(b.Temp - max((depth-64)/600, 0))
	downfall := clamp01(b.Downfall) * temp

	return colors[0].Add(colors[1].Mul(temp)).Add(colors[2].Mul(downfall))
}

// GrassColor returns the grass color of the biome at the given depth.
func (b *Biome) GrassColor(depth float32) mgl32.Vec3 {
	regular := func() mgl32.Vec3 {
		if b.GrassOverride != nil {
			return colorVec(*b.GrassOverride)
		}
		return colorFromParams(&grassColors, b, depth)
	}

	switch b.GrassColorModifier {
	case DarkForest:
		return regular().Add(darkForestGrassColor).Mul(0.5)
	case Swamp:
		return swampGrassColor
	default:
		return regular()
	}
}

// FoliageColor returns the foliage color of the biome at the given depth.
func (b *Biome) FoliageColor(depth float32) mgl32.Vec3 {
	if b.FoliageOverride != nil {
		return colorVec(*b.FoliageOverride)
	}
	return colorFromParams(&foliageColors, b, depth)
}

// WaterColor returns the water color of the biome.
func (b *Biome) WaterColor() mgl32.Vec3 {
	if b.WaterOverride != nil {
		return colorVec(*b.WaterOverride)
	}
	return defaultWaterColor
}

// NeedsBiome reports whether BlockColor needs a biome to color block.
func NeedsBiome(block BlockType) bool {
	return block.Is(Grass) || block.Is(Foliage) || block.Is(Water)
}

// BlockColor computes the display color of a block at the given depth.
//
// Components are in the 0..255 range before shading and are not clamped;
// high blocks may come out brighter than 255. Callers must check NeedsBiome
// first: BlockColor panics if a biome is required and biome is nil.
func BlockColor(block BlockType, biome *Biome, depth float32) mgl32.Vec3 {
	getBiome := func() *Biome {
		if biome == nil {
			panic("resource: needs biome to determine block color")
		}
		return biome
	}

	color := colorVecUnscaled(block.Color)

	if block.Is(Grass) {
		color = mulElem(color, getBiome().GrassColor(depth))
	}
	if block.Is(Foliage) {
		color = mulElem(color, getBiome().FoliageColor(depth))
	}
	if block.Is(Birch) {
		color = mulElem(color, birchColor)
	}
	if block.Is(Spruce) {
		color = mulElem(color, evergreenColor)
	}
	if block.Is(Water) {
		color = mulElem(color, getBiome().WaterColor())
	}

	return color.Mul(0.5 + 0.005*depth)
}
