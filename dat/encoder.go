package dat

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pangya-tools/panglib/errs"
	"github.com/pangya-tools/panglib/internal/pool"
	"github.com/pangya-tools/panglib/locale"
)

// Encoder writes entries to a byte stream through a pooled buffer.
// Close must be called to flush buffered bytes and release the buffer.
type Encoder struct {
	w     io.Writer
	codec *locale.Codec
	buf   *pool.ByteBuffer
	count int
	n     int64
}

// NewEncoder creates an encoder that writes to w using codec.
func NewEncoder(w io.Writer, codec *locale.Codec) (*Encoder, error) {
	if codec == nil {
		return nil, fmt.Errorf("dat encoder: %w", errs.ErrNoEncoding)
	}

	return &Encoder{
		w:     w,
		codec: codec,
		buf:   pool.GetTableBuffer(),
	}, nil
}

// Write encodes one entry followed by its terminator.
//
// Returns:
//   - error: errs.ErrEncode if the entry is not representable in the code
//     page, errs.ErrEmbeddedNUL if it encodes to a NUL byte, errs.ErrIO if a
//     flush to the underlying writer fails
func (e *Encoder) Write(entry string) error {
	start := e.buf.Len()

	out, err := e.codec.AppendEncode(e.buf.B, entry)
	if err != nil {
		return fmt.Errorf("entry %d: %w", e.count, err)
	}
	if bytes.IndexByte(out[start:], Terminator) >= 0 {
		e.buf.B = out[:start]
		return fmt.Errorf("entry %d: %w", e.count, errs.ErrEmbeddedNUL)
	}

	e.buf.B = append(out, Terminator)
	e.count++

	if e.buf.Len() >= pool.TableBufferDefaultSize {
		return e.Flush()
	}

	return nil
}

// WriteSlice encodes entries in order.
func (e *Encoder) WriteSlice(entries []string) error {
	for _, entry := range entries {
		if err := e.Write(entry); err != nil {
			return err
		}
	}

	return nil
}

// Flush writes buffered bytes to the underlying writer.
func (e *Encoder) Flush() error {
	if e.buf.Len() == 0 {
		return nil
	}

	n, err := e.buf.WriteTo(e.w)
	e.n += n
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrIO, err)
	}
	e.buf.Reset()

	return nil
}

// Close flushes and releases the internal buffer. The encoder must not be
// used afterwards.
func (e *Encoder) Close() error {
	if e.buf == nil {
		return nil
	}

	err := e.Flush()
	pool.PutTableBuffer(e.buf)
	e.buf = nil

	return err
}

// Len returns the number of entries written.
func (e *Encoder) Len() int {
	return e.count
}

// Written returns the number of bytes flushed to the underlying writer.
func (e *Encoder) Written() int64 {
	return e.n
}
