package resource

import "testing"

func TestLookupBiome(t *testing.T) {
	for _, name := range []string{"plains", "minecraft:plains"} {
		b, ok := LookupBiome(name)
		if !ok {
			t.Fatalf("LookupBiome(%q) not found", name)
		}
		if b.Temp != 0.8 || b.Downfall != 0.4 {
			t.Errorf("LookupBiome(%q) = %+v", name, b)
		}
	}

	swamp, ok := LookupBiome("minecraft:swamp")
	if !ok {
		t.Fatal("swamp not found")
	}
	if swamp.GrassColorModifier != Swamp || swamp.FoliageOverride == nil || swamp.WaterOverride == nil {
		t.Errorf("swamp = %+v", swamp)
	}

	if _, ok := LookupBiome("minecraft:the_moon"); ok {
		t.Error("LookupBiome found an unknown biome")
	}
}

func TestLookupBiomeReturnsCopy(t *testing.T) {
	a, _ := LookupBiome("forest")
	a.Temp = 5

	b, _ := LookupBiome("forest")
	if b.Temp != 0.7 {
		t.Errorf("table entry modified through returned biome: Temp = %v", b.Temp)
	}
}

func TestLookupBlockType(t *testing.T) {
	tests := []struct {
		name       string
		needsBiome bool
	}{
		{"minecraft:stone", false},
		{"minecraft:grass_block", true},
		{"oak_leaves", true},
		{"minecraft:birch_leaves", true},
		{"minecraft:spruce_leaves", true},
		{"minecraft:water", true},
		{"sand", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, ok := LookupBlockType(tt.name)
			if !ok {
				t.Fatalf("LookupBlockType(%q) not found", tt.name)
			}
			if got := NeedsBiome(block); got != tt.needsBiome {
				t.Errorf("NeedsBiome(%q) = %v, want %v", tt.name, got, tt.needsBiome)
			}
		})
	}

	birch, _ := LookupBlockType("birch_leaves")
	if !birch.Is(Foliage) || !birch.Is(Birch) || birch.Is(Spruce) {
		t.Errorf("birch_leaves flags = %b", birch.Flags)
	}

	if _, ok := LookupBlockType("minecraft:unobtainium"); ok {
		t.Error("LookupBlockType found an unknown block")
	}
}
