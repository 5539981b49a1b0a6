package dat

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pangya-tools/panglib/errs"
	"github.com/pangya-tools/panglib/locale"
)

// File is an in-memory string table bound to one text codec.
type File struct {
	// Entries holds the table in file order. It may be edited freely.
	Entries []string

	codec    *locale.Codec
	readOpts []ReadOption
}

// New creates an empty table bound to codec.
func New(codec *locale.Codec) *File {
	return &File{codec: codec}
}

// Load reads the table at path, deriving its encoding from the file name.
//
// Parameters:
//   - path: File path; its base name selects the code page
//   - opts: Read options
//
// Returns:
//   - *File: Decoded table
//   - error: errs.ErrNoEncoding for an empty path, errs.ErrIO if the file
//     cannot be opened or read, errs.ErrDecode for invalid bytes
func Load(path string, opts ...ReadOption) (*File, error) {
	codec, err := locale.Resolve(path)
	if err != nil {
		return nil, err
	}

	return LoadWithCodec(path, codec, opts...)
}

// LoadWithCodec reads the table at path using an explicit codec.
func LoadWithCodec(path string, codec *locale.Codec, opts ...ReadOption) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrIO, err)
	}
	defer fh.Close()

	f := New(codec)
	if err := f.read(fh, opts...); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return f, nil
}

// Parse decodes a table held in memory.
func Parse(data []byte, codec *locale.Codec, opts ...ReadOption) (*File, error) {
	f := New(codec)
	if err := f.read(bytes.NewReader(data), opts...); err != nil {
		return nil, err
	}

	return f, nil
}

func (f *File) read(r io.Reader, opts ...ReadOption) error {
	f.SetReadOptions(opts...)
	_, err := f.ReadFrom(r)

	return err
}

// SetReadOptions sets the options ReadFrom decodes with. Load, LoadWithCodec
// and Parse keep the options they were given, so later reads follow the
// same terminator policy.
func (f *File) SetReadOptions(opts ...ReadOption) {
	f.readOpts = opts
}

// ReadFrom replaces the entries with those decoded from r using the options
// set by SetReadOptions. On error the existing entries are left untouched.
func (f *File) ReadFrom(r io.Reader) (int64, error) {
	dec, err := NewDecoder(r, f.codec, f.readOpts...)
	if err != nil {
		return 0, err
	}

	entries, err := dec.All()
	if err != nil {
		return dec.InputOffset(), err
	}
	f.Entries = entries

	return dec.InputOffset(), nil
}

// WriteTo encodes every entry to w.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	enc, err := NewEncoder(w, f.codec)
	if err != nil {
		return 0, err
	}

	if err := enc.WriteSlice(f.Entries); err != nil {
		// Release the buffer without flushing a partial table.
		enc.buf.Reset()
		_ = enc.Close()

		return enc.Written(), err
	}
	err = enc.Close()

	return enc.Written(), err
}

// Bytes returns the encoded table.
func (f *File) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Save writes the table to path, creating or truncating the file. A failed
// save may leave a truncated file behind; write to a temporary path and
// rename when atomicity matters.
func (f *File) Save(path string) (err error) {
	if f.codec == nil {
		return fmt.Errorf("save %s: %w", path, errs.ErrNoEncoding)
	}

	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrIO, err)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("%w: %w", errs.ErrIO, cerr))
		}
	}()

	if _, err := f.WriteTo(fh); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}

// SetEncoding binds codec to the table, overriding the one chosen at load time.
func (f *File) SetEncoding(codec *locale.Codec) {
	f.codec = codec
}

// Encoding returns the bound codec, or nil if none is bound.
func (f *File) Encoding() *locale.Codec {
	return f.codec
}

// Len returns the number of entries.
func (f *File) Len() int {
	return len(f.Entries)
}

// Entry returns entry i, or false if i is out of range.
func (f *File) Entry(i int) (string, bool) {
	if i < 0 || i >= len(f.Entries) {
		return "", false
	}

	return f.Entries[i], true
}

// Append adds entries to the end of the table.
func (f *File) Append(entries ...string) {
	f.Entries = append(f.Entries, entries...)
}
