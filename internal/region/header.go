package region

const (
	sectorSize = 4096
	// ChunksPerRegion is the width and depth of a region in chunks.
	ChunksPerRegion = 32
	// headerSectors covers the location table and the timestamp table.
	headerSectors   = 2
	compressionZlib = 2
)

// chunkDesc is a location table entry resolved to its chunk position.
type chunkDesc struct {
	x, z    int
	sectors uint8
}

// parseHeader decodes the location table into a map keyed by absolute
// sector offset. Absent chunks (offset 0) are dropped. When two slots share
// an offset, the later slot in table order wins.
func parseHeader(header *[sectorSize]byte) map[uint32]chunkDesc {
	table := make(map[uint32]chunkDesc)

	for z := 0; z < ChunksPerRegion; z++ {
		for x := 0; x < ChunksPerRegion; x++ {
			entry := header[4*(z*ChunksPerRegion+x):]

			offset := uint32(entry[0])<<16 | uint32(entry[1])<<8 | uint32(entry[2])
			if offset == 0 {
				continue
			}

			table[offset] = chunkDesc{x: x, z: z, sectors: entry[3]}
		}
	}

	return table
}
