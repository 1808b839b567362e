package region

import (
	"fmt"
	"io"
	"os"
)

// Region reads the chunks of a single region file. A Region consumes its
// source in one forward pass and cannot be replayed.
type Region struct {
	r   io.ReadSeeker
	dec Decoder
}

// FromReader creates a Region reading from r, which must be positioned at
// the start of the region file. Chunk records are decoded as NBT.
func FromReader(r io.ReadSeeker) *Region {
	return &Region{r: r, dec: NBTDecoder}
}

// WithDecoder replaces the structured decoder used for chunk records.
func (reg *Region) WithDecoder(dec Decoder) *Region {
	reg.dec = dec
	return reg
}

// File is a Region backed by an open file.
type File struct {
	*Region
	f *os.File
}

// Open opens the region file at path. The caller must Close it.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open region file: %w", err)
	}
	return &File{Region: FromReader(f), f: f}, nil
}

// Close closes the underlying file.
func (f *File) Close() error {
	return f.f.Close()
}

// ForEachChunk decodes every chunk present in the region and calls fn with
// its position inside the region and the decoded record.
//
// Chunks are visited in file order. Location table entries are matched to
// sectors as the walk reaches them, so chunk blocks may appear in any order
// and with any gaps between them. Any error aborts the walk; fn is never
// called for a chunk after a failure has been detected.
func ForEachChunk[T any](reg *Region, fn func(x, z int, chunk *T)) error {
	var header [sectorSize]byte
	if _, err := io.ReadFull(reg.r, header[:]); err != nil {
		return fmt.Errorf("read region header: %w: %w", ErrTruncated, err)
	}

	return walk(reg, parseHeader(&header), fn)
}

// walk matches the remaining table entries against sector indices in
// ascending file order, starting right after the location table.
func walk[T any](reg *Region, table map[uint32]chunkDesc, fn func(x, z int, chunk *T)) error {
	var last uint32
	for offset := range table {
		last = max(last, offset)
	}

	var seen [ChunksPerRegion][ChunksPerRegion]bool
	index := uint32(1)

	for len(table) > 0 {
		if index > last {
			return fmt.Errorf("%d chunks start inside earlier chunk data: %w", len(table), ErrOverlappingChunk)
		}

		desc, ok := table[index]
		if !ok {
			if _, err := reg.r.Seek(sectorSize, io.SeekCurrent); err != nil {
				return fmt.Errorf("seek chunk data: %w", err)
			}
			index++
			continue
		}

		if seen[desc.x][desc.z] {
			return &ChunkError{X: desc.x, Z: desc.z, Err: ErrDuplicateChunk}
		}
		seen[desc.x][desc.z] = true
		delete(table, index)

		chunk := new(T)
		if err := readChunk(reg.r, desc.sectors, reg.dec, chunk); err != nil {
			return &ChunkError{X: desc.x, Z: desc.z, Err: err}
		}
		fn(desc.x, desc.z, chunk)

		index += uint32(desc.sectors)
	}

	return nil
}
