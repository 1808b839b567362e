// Package de defines the parts of the on-disk chunk record that the map
// pipeline reads. Fields not listed here are skipped by the decoder.
package de

// Chunk is the top-level compound of a chunk record.
type Chunk struct {
	DataVersion int32  `nbt:"DataVersion"`
	XPos        int32  `nbt:"xPos"`
	ZPos        int32  `nbt:"zPos"`
	Status      string `nbt:"Status"`

	// Level wraps the chunk data in records written before 1.18.
	Level Level `nbt:"Level"`
}

// levelRemovedVersion is the first data version without the Level compound.
const levelRemovedVersion = 2844

// Level is the pre-1.18 chunk data compound.
type Level struct {
	XPos   int32  `nbt:"xPos"`
	ZPos   int32  `nbt:"zPos"`
	Status string `nbt:"Status"`
}

// Position returns the absolute chunk coordinates stored in the record.
func (c *Chunk) Position() (x, z int32) {
	if c.legacy() {
		return c.Level.XPos, c.Level.ZPos
	}
	return c.XPos, c.ZPos
}

// Generated reports whether world generation finished for the chunk.
func (c *Chunk) Generated() bool {
	status := c.Status
	if c.legacy() {
		status = c.Level.Status
	}
	switch status {
	case "full", "minecraft:full", "postprocessed", "fullchunk":
		return true
	}
	return false
}

func (c *Chunk) legacy() bool {
	return c.DataVersion < levelRemovedVersion
}
