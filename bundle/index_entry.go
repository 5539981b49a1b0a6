package bundle

import (
	"fmt"

	"github.com/pangya-tools/panglib/endian"
	"github.com/pangya-tools/panglib/errs"
)

// IndexEntry describes one asset in the bundle index. Offsets are absolute
// within the payload section, so entries can be read in any order:
//
//	payload := data[h.PayloadOffset+e.Offset : h.PayloadOffset+e.Offset+e.Length]
type IndexEntry struct {
	// NameID is the xxHash64 of the entry name.
	NameID uint64 // 8 bytes, offset 0-7
	// Offset is the start of the entry within the payload section.
	Offset uint32 // 4 bytes, offset 8-11
	// Length is the stored (compressed) size of the entry.
	Length uint32 // 4 bytes, offset 12-15
	// RawLength is the size of the entry after decompression.
	RawLength uint32 // 4 bytes, offset 16-19
	// Checksum is the low 32 bits of the xxHash64 of the raw payload.
	Checksum uint32 // 4 bytes, offset 20-23
}

// WriteToSlice writes the entry to the first IndexEntrySize bytes of b.
func (e *IndexEntry) WriteToSlice(b []byte) error {
	if len(b) < IndexEntrySize {
		return errs.ErrInvalidEntrySize
	}

	engine := endian.GetLittleEndianEngine()
	engine.PutUint64(b[0:8], e.NameID)
	engine.PutUint32(b[8:12], e.Offset)
	engine.PutUint32(b[12:16], e.Length)
	engine.PutUint32(b[16:20], e.RawLength)
	engine.PutUint32(b[20:24], e.Checksum)

	return nil
}

// ParseIndexEntry parses an index entry from the first IndexEntrySize bytes of data.
func ParseIndexEntry(data []byte) (IndexEntry, error) {
	if len(data) < IndexEntrySize {
		return IndexEntry{}, fmt.Errorf("%w: %d bytes", errs.ErrInvalidEntrySize, len(data))
	}

	engine := endian.GetLittleEndianEngine()

	return IndexEntry{
		NameID:    engine.Uint64(data[0:8]),
		Offset:    engine.Uint32(data[8:12]),
		Length:    engine.Uint32(data[12:16]),
		RawLength: engine.Uint32(data[16:20]),
		Checksum:  engine.Uint32(data[20:24]),
	}, nil
}

// end returns the end offset of the entry within the payload section.
func (e *IndexEntry) end() uint64 {
	return uint64(e.Offset) + uint64(e.Length)
}
