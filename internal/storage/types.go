package storage

import (
	"cmp"
	"slices"
)

// RegionIndex lists the regions found in a world save.
type RegionIndex struct {
	Bounds  *Bounds       `json:"bounds,omitempty"`
	Regions []RegionEntry `json:"regions"`
}

// Bounds holds the minimum and maximum region coordinates of an index.
type Bounds struct {
	MinX int `json:"min_x"`
	MaxX int `json:"max_x"`
	MinZ int `json:"min_z"`
	MaxZ int `json:"max_z"`
}

// RegionEntry describes the decode result of one region file.
type RegionEntry struct {
	X      int    `json:"x"`
	Z      int    `json:"z"`
	Chunks int    `json:"chunks"`
	Error  string `json:"error,omitempty"`
}

// NewRegionIndex sorts entries by (z, x) and computes their bounds over
// the regions that decoded successfully.
func NewRegionIndex(entries []RegionEntry) *RegionIndex {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b RegionEntry) int {
		return cmp.Or(cmp.Compare(a.Z, b.Z), cmp.Compare(a.X, b.X))
	})

	idx := &RegionIndex{Regions: sorted}
	for _, e := range sorted {
		if e.Error != "" {
			continue
		}
		if idx.Bounds == nil {
			idx.Bounds = &Bounds{MinX: e.X, MaxX: e.X, MinZ: e.Z, MaxZ: e.Z}
			continue
		}
		idx.Bounds.MinX = min(idx.Bounds.MinX, e.X)
		idx.Bounds.MaxX = max(idx.Bounds.MaxX, e.X)
		idx.Bounds.MinZ = min(idx.Bounds.MinZ, e.Z)
		idx.Bounds.MaxZ = max(idx.Bounds.MaxZ, e.Z)
	}
	return idx
}
