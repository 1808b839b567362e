package region

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/Tnze/go-mc/nbt"
	"github.com/klauspost/compress/zlib"
)

// Decoder turns a decompressed chunk record into a typed value.
type Decoder interface {
	Decode(data []byte, v any) error
}

// DecoderFunc adapts a plain function to the Decoder interface.
type DecoderFunc func(data []byte, v any) error

// Decode calls f(data, v).
func (f DecoderFunc) Decode(data []byte, v any) error {
	return f(data, v)
}

// NBTDecoder decodes chunk records stored as binary NBT.
var NBTDecoder Decoder = DecoderFunc(func(data []byte, v any) error {
	_, err := nbt.NewDecoder(bytes.NewReader(data)).Decode(v)
	return err
})

// readChunk consumes the whole sector block reserved for a chunk and decodes
// the record it contains into v.
func readChunk(r io.Reader, sectors uint8, dec Decoder, v any) error {
	buf := make([]byte, int(sectors)*sectorSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return fmt.Errorf("read chunk data: %w: %w", ErrTruncated, err)
	}
	return decodeChunk(buf, dec, v)
}

// decodeChunk validates the length prefix and format tag of a chunk block,
// inflates the payload and hands it to dec. Bytes past the declared length
// are padding.
func decodeChunk(block []byte, dec Decoder, v any) error {
	if len(block) < 4 {
		return fmt.Errorf("read chunk length: %w", ErrTruncated)
	}
	length := binary.BigEndian.Uint32(block[:4])
	block = block[4:]

	if length == 0 {
		return fmt.Errorf("read chunk format: %w", ErrTruncated)
	}
	if uint64(length) > uint64(len(block)) {
		return fmt.Errorf("chunk length %d exceeds %d reserved bytes: %w", length, len(block), ErrTruncated)
	}
	block = block[:length]

	if format := block[0]; format != compressionZlib {
		return fmt.Errorf("%w %d", ErrUnknownFormat, format)
	}

	zr, err := zlib.NewReader(bytes.NewReader(block[1:]))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecompress, err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecompress, err)
	}

	if err := dec.Decode(data, v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}
