package record

import (
	"bytes"
	"fmt"
	"math"

	"github.com/pangya-tools/panglib/endian"
	"github.com/pangya-tools/panglib/errs"
	"github.com/pangya-tools/panglib/locale"
)

// Codec encodes and decodes records, using a text codec for string fields.
// It holds no mutable state and is safe for concurrent use.
type Codec struct {
	text *locale.Codec
}

// NewCodec creates a record codec. text may be nil for schemas without
// string fields; encoding or decoding a string field then fails with
// errs.ErrNoEncoding.
func NewCodec(text *locale.Codec) *Codec {
	return &Codec{text: text}
}

// TextCodec returns the codec used for string fields.
func (c *Codec) TextCodec() *locale.Codec {
	return c.text
}

// Decode parses data as one record of schema s.
//
// Parameters:
//   - s: Record layout
//   - data: Exactly s.Size() bytes
//
// Returns:
//   - *Record: Decoded record
//   - error: errs.ErrSizeMismatch if len(data) != s.Size(), errs.ErrDecode for
//     string bytes invalid in the code page
func (c *Codec) Decode(s *Schema, data []byte) (*Record, error) {
	if len(data) != s.size {
		return nil, fmt.Errorf("%s: got %d bytes, want %d: %w", s.name, len(data), s.size, errs.ErrSizeMismatch)
	}

	return c.decode(s, data, s.engine)
}

func (c *Codec) decode(s *Schema, data []byte, engine endian.EndianEngine) (*Record, error) {
	r := &Record{
		schema: s,
		values: make([]any, len(s.fields)),
	}

	for i, f := range s.fields {
		b := data[s.offsets[i] : s.offsets[i]+f.size()]

		switch f.Kind {
		case KindUint8:
			r.values[i] = b[0]
		case KindUint16:
			r.values[i] = engine.Uint16(b)
		case KindUint32:
			r.values[i] = engine.Uint32(b)
		case KindInt16:
			r.values[i] = int16(engine.Uint16(b)) //nolint:gosec
		case KindInt32:
			r.values[i] = int32(engine.Uint32(b)) //nolint:gosec
		case KindFloat32:
			r.values[i] = math.Float32frombits(engine.Uint32(b))
		case KindString:
			text, err := c.decodeString(b)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", s.name, f.Name, err)
			}
			r.values[i] = text
		case KindBytes:
			r.values[i] = bytes.Clone(b)
		case KindStruct:
			nested, err := c.decode(f.Schema, b, engine)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", s.name, err)
			}
			r.values[i] = nested
		}
	}

	return r, nil
}

// decodeString decodes the bytes before the first NUL of a fixed-width field.
func (c *Codec) decodeString(b []byte) (string, error) {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	if len(b) == 0 {
		return "", nil
	}
	if c.text == nil {
		return "", errs.ErrNoEncoding
	}

	return c.text.Decode(b)
}

// Encode serializes r into a new buffer of exactly r.Schema().Size() bytes.
//
// Returns:
//   - []byte: Encoded record, padding bytes zeroed
//   - error: errs.ErrStringOverflow if a string does not fit its field,
//     errs.ErrEncode if it cannot be represented in the code page
func (c *Codec) Encode(r *Record) ([]byte, error) {
	buf := make([]byte, r.schema.size)
	if err := c.encode(buf, r, r.schema.engine); err != nil {
		return nil, err
	}

	return buf, nil
}

// EncodeTo serializes r into dst, which must be exactly r.Schema().Size()
// bytes long. Padding bytes in dst are zeroed.
func (c *Codec) EncodeTo(dst []byte, r *Record) error {
	if len(dst) != r.schema.size {
		return fmt.Errorf("%s: got %d bytes, want %d: %w", r.schema.name, len(dst), r.schema.size, errs.ErrSizeMismatch)
	}
	clear(dst)

	return c.encode(dst, r, r.schema.engine)
}

func (c *Codec) encode(dst []byte, r *Record, engine endian.EndianEngine) error {
	s := r.schema
	for i, f := range s.fields {
		b := dst[s.offsets[i] : s.offsets[i]+f.size()]
		v := r.values[i]

		switch f.Kind {
		case KindUint8:
			b[0] = v.(uint8)
		case KindUint16:
			engine.PutUint16(b, v.(uint16))
		case KindUint32:
			engine.PutUint32(b, v.(uint32))
		case KindInt16:
			engine.PutUint16(b, uint16(v.(int16))) //nolint:gosec
		case KindInt32:
			engine.PutUint32(b, uint32(v.(int32))) //nolint:gosec
		case KindFloat32:
			engine.PutUint32(b, math.Float32bits(v.(float32)))
		case KindString:
			if err := c.encodeString(b, v.(string)); err != nil {
				return fmt.Errorf("%s.%s: %w", s.name, f.Name, err)
			}
		case KindBytes:
			copy(b, v.([]byte))
		case KindStruct:
			if err := c.encode(b, v.(*Record), engine); err != nil {
				return fmt.Errorf("%s: %w", s.name, err)
			}
		}
	}

	return nil
}

// encodeString writes text into the fixed-width field b. b is zeroed by the
// caller, so the remainder is already NUL padding.
func (c *Codec) encodeString(b []byte, text string) error {
	if text == "" {
		return nil
	}
	if c.text == nil {
		return errs.ErrNoEncoding
	}

	encoded, err := c.text.Encode(text)
	if err != nil {
		return err
	}
	if len(encoded) > len(b) {
		return fmt.Errorf("%w: %d bytes, width %d", errs.ErrStringOverflow, len(encoded), len(b))
	}
	if bytes.IndexByte(encoded, 0) >= 0 {
		return errs.ErrEmbeddedNUL
	}
	copy(b, encoded)

	return nil
}
