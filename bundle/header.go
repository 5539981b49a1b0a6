package bundle

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
	"github.com/pangya-tools/panglib/endian"
	"github.com/pangya-tools/panglib/errs"
	"github.com/pangya-tools/panglib/format"
)

// Header is the fixed-size section at the start of a bundle.
type Header struct {
	// Flags holds the payload compression type in its low byte and
	// FlagNameCollision in its high byte.
	Flags uint16 // 2 bytes, offset 4-5

	Reserved uint16 // 2 bytes, offset 6-7

	// EntryCount is the number of index entries.
	EntryCount uint32 // 4 bytes, offset 8-11
	// NamesOffset is the byte offset of the names table. It always equals
	// HeaderSize + EntryCount*IndexEntrySize.
	NamesOffset uint32 // 4 bytes, offset 12-15
	// PayloadOffset is the byte offset of the first payload.
	PayloadOffset uint32 // 4 bytes, offset 16-19

	// ID identifies the bundle. Writers stamp a random UUID by default.
	ID uuid.UUID // 16 bytes, offset 20-35

	Reserved2 uint32 // 4 bytes, offset 36-39
}

// Compression returns the payload compression type.
func (h Header) Compression() format.CompressionType {
	return format.CompressionType(h.Flags & compressionMask)
}

// SetCompression stores the payload compression type in the flags.
func (h *Header) SetCompression(c format.CompressionType) {
	h.Flags = h.Flags&^compressionMask | uint16(c)
}

// HasNameCollision reports whether two entries share a NameID.
func (h Header) HasNameCollision() bool {
	return h.Flags&FlagNameCollision != 0
}

// Parse parses the header from the first HeaderSize bytes of data.
//
// Returns:
//   - error: errs.ErrInvalidHeaderSize if data is too short,
//     errs.ErrInvalidMagicNumber if the magic does not match
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}
	if !bytes.Equal(data[0:4], Magic[:]) {
		return fmt.Errorf("%w: % x", errs.ErrInvalidMagicNumber, data[0:4])
	}

	engine := endian.GetLittleEndianEngine()
	h.Flags = engine.Uint16(data[4:6])
	h.Reserved = engine.Uint16(data[6:8])
	h.EntryCount = engine.Uint32(data[8:12])
	h.NamesOffset = engine.Uint32(data[12:16])
	h.PayloadOffset = engine.Uint32(data[16:20])
	copy(h.ID[:], data[20:36])
	h.Reserved2 = engine.Uint32(data[36:40])

	return nil
}

// Bytes serializes the header.
func (h Header) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()

	b := make([]byte, 0, HeaderSize)
	b = append(b, Magic[:]...)
	b = engine.AppendUint16(b, h.Flags)
	b = engine.AppendUint16(b, h.Reserved)
	b = engine.AppendUint32(b, h.EntryCount)
	b = engine.AppendUint32(b, h.NamesOffset)
	b = engine.AppendUint32(b, h.PayloadOffset)
	b = append(b, h.ID[:]...)
	b = engine.AppendUint32(b, h.Reserved2)

	return b
}
