package iff

import (
	"fmt"

	"github.com/pangya-tools/panglib/endian"
	"github.com/pangya-tools/panglib/errs"
)

// HeaderSize is the size of the IFF file header in bytes.
const HeaderSize = 8

// Header is the fixed header at the start of every IFF file.
type Header struct {
	EntryCount uint16 // byte offset 0-1
	BindingID  uint16 // byte offset 2-3
	Version    uint32 // byte offset 4-7
}

// Parse parses the header from the first HeaderSize bytes of data.
//
// Returns:
//   - error: errs.ErrInvalidHeaderSize if data is shorter than HeaderSize
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	engine := endian.GetLittleEndianEngine()
	h.EntryCount = engine.Uint16(data[0:2])
	h.BindingID = engine.Uint16(data[2:4])
	h.Version = engine.Uint32(data[4:8])

	return nil
}

// Bytes serializes the header.
func (h Header) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()

	b := make([]byte, 0, HeaderSize)
	b = engine.AppendUint16(b, h.EntryCount)
	b = engine.AppendUint16(b, h.BindingID)
	b = engine.AppendUint32(b, h.Version)

	return b
}

// ParseHeader parses a Header from data.
func ParseHeader(data []byte) (Header, error) {
	var h Header
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}
