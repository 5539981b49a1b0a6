package dat

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/pangya-tools/panglib/errs"
	"github.com/pangya-tools/panglib/internal/options"
	"github.com/pangya-tools/panglib/locale"
)

// Terminator separates entries on disk.
const Terminator = 0x00

type readConfig struct {
	strict bool
}

// ReadOption configures how a string table is decoded.
type ReadOption = options.Option[*readConfig]

// WithStrictTerminator makes a trailing entry without a NUL terminator an
// error instead of silently dropping it. This deviates from the legacy
// reader and is off by default.
func WithStrictTerminator() ReadOption {
	return options.NoError(func(c *readConfig) {
		c.strict = true
	})
}

// Decoder reads entries one at a time from a byte stream.
//
// It alternates between accumulating the bytes of the current entry and
// flushing it once the terminator is seen; the stream ending while
// accumulating ends decoding.
type Decoder struct {
	r      *bufio.Reader
	codec  *locale.Codec
	strict bool
	n      int64
}

// NewDecoder creates a decoder that reads from r using codec.
func NewDecoder(r io.Reader, codec *locale.Codec, opts ...ReadOption) (*Decoder, error) {
	if codec == nil {
		return nil, fmt.Errorf("dat decoder: %w", errs.ErrNoEncoding)
	}

	cfg := &readConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Decoder{
		r:      bufio.NewReader(r),
		codec:  codec,
		strict: cfg.strict,
	}, nil
}

// Next returns the next entry, or io.EOF once the stream is exhausted.
//
// Returns:
//   - string: The decoded entry
//   - error: io.EOF at the end of the stream, errs.ErrDecode for bytes that are
//     invalid in the code page, errs.ErrIO if the underlying reader fails
func (d *Decoder) Next() (string, error) {
	raw, err := d.r.ReadBytes(Terminator)
	d.n += int64(len(raw))

	if errors.Is(err, io.EOF) {
		if len(raw) > 0 && d.strict {
			return "", fmt.Errorf("%w: %d trailing bytes without terminator", errs.ErrDecode, len(raw))
		}

		return "", io.EOF
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrIO, err)
	}

	entry, err := d.codec.Decode(raw[:len(raw)-1])
	if err != nil {
		return "", fmt.Errorf("entry at byte %d: %w", d.n-int64(len(raw)), err)
	}

	return entry, nil
}

// All decodes every remaining entry.
func (d *Decoder) All() ([]string, error) {
	var entries []string
	for {
		entry, err := d.Next()
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
}

// InputOffset returns the number of bytes consumed so far.
func (d *Decoder) InputOffset() int64 {
	return d.n
}
