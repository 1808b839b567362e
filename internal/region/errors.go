package region

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated is returned when the region file ends before a fixed-size
	// read (header, chunk block, length prefix or payload) is satisfied.
	ErrTruncated = errors.New("truncated region data")
	// ErrUnknownFormat is returned for a chunk whose format tag is not zlib.
	ErrUnknownFormat = errors.New("unknown chunk format")
	// ErrDecompress is returned when the compressed chunk stream is corrupt.
	ErrDecompress = errors.New("decompress chunk data")
	// ErrDecode is returned when the structured decoder rejects the chunk.
	ErrDecode = errors.New("decode chunk record")
	// ErrDuplicateChunk is returned when two table entries claim the same position.
	ErrDuplicateChunk = errors.New("duplicate chunk")
	// ErrOverlappingChunk is returned when table entries point inside the
	// sector block of an earlier chunk and can never be reached.
	ErrOverlappingChunk = errors.New("overlapping chunk")
)

// ChunkError ties a decode failure to the chunk position it happened at.
type ChunkError struct {
	X, Z int
	Err  error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("chunk (%d,%d): %v", e.X, e.Z, e.Err)
}

func (e *ChunkError) Unwrap() error {
	return e.Err
}
