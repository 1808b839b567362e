package region

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/klauspost/compress/zlib"
)

// Pos is a chunk position inside a region, both coordinates in [0, 32).
type Pos struct {
	X, Z int
}

func (p Pos) index() int {
	return (p.X & 31) + (p.Z&31)*ChunksPerRegion
}

// Write encodes chunks as a region file to w. chunks maps positions to
// uncompressed chunk records. Chunk blocks are laid out in table order
// starting right after the header sectors.
func Write(w io.Writer, chunks map[Pos][]byte) error {
	type chunkEntry struct {
		index      int
		compressed []byte
	}
	entries := make([]chunkEntry, 0, len(chunks))

	for pos, record := range chunks {
		var cbuf bytes.Buffer
		zw, err := zlib.NewWriterLevel(&cbuf, zlib.DefaultCompression)
		if err != nil {
			return fmt.Errorf("create zlib writer: %w", err)
		}
		if _, err := zw.Write(record); err != nil {
			return fmt.Errorf("compress chunk (%d,%d): %w", pos.X, pos.Z, err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("close zlib writer: %w", err)
		}
		entries = append(entries, chunkEntry{index: pos.index(), compressed: cbuf.Bytes()})
	}
	slices.SortFunc(entries, func(a, b chunkEntry) int { return a.index - b.index })

	locations := make([]byte, sectorSize)
	timestamps := make([]byte, sectorSize)
	now := uint32(time.Now().Unix())

	var data bytes.Buffer
	currentSector := uint32(headerSectors)

	for _, e := range entries {
		// Length prefix covers the format tag and the compressed bytes.
		payloadLen := uint32(len(e.compressed)) + 1
		totalLen := 4 + payloadLen
		sectorCount := (totalLen + sectorSize - 1) / sectorSize
		if sectorCount > 0xFF {
			return fmt.Errorf("chunk at index %d needs %d sectors", e.index, sectorCount)
		}

		off := e.index * 4
		binary.BigEndian.PutUint32(locations[off:off+4], currentSector<<8|sectorCount)
		binary.BigEndian.PutUint32(timestamps[off:off+4], now)

		var header [5]byte
		binary.BigEndian.PutUint32(header[0:4], payloadLen)
		header[4] = compressionZlib
		data.Write(header[:])
		data.Write(e.compressed)

		if pad := int(sectorCount)*sectorSize - int(totalLen); pad > 0 {
			data.Write(make([]byte, pad))
		}

		currentSector += sectorCount
	}

	for _, part := range [][]byte{locations, timestamps, data.Bytes()} {
		if _, err := w.Write(part); err != nil {
			return fmt.Errorf("write region data: %w", err)
		}
	}
	return nil
}

// Save writes chunks to dir/r.<rx>.<rz>.mca, replacing any existing file
// atomically.
func Save(dir string, rx, rz int, chunks map[Pos][]byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create region dir: %w", err)
	}

	path := filepath.Join(dir, Filename(rx, rz))
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp region file: %w", err)
	}
	defer func() {
		f.Close()
		os.Remove(tmp)
	}()

	if err := Write(f, chunks); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close region file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename region file: %w", err)
	}
	return nil
}
