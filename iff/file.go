package iff

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/pangya-tools/panglib/errs"
	"github.com/pangya-tools/panglib/locale"
	"github.com/pangya-tools/panglib/record"
)

// File is a decoded IFF file: its header and the records that follow it.
type File struct {
	Header  Header
	Records []*record.Record

	schema *record.Schema
	codec  *record.Codec
}

// New creates an empty file of schema records. Strings are encoded with text.
func New(schema *record.Schema, text *locale.Codec, bindingID uint16, version uint32) *File {
	return &File{
		Header: Header{
			BindingID: bindingID,
			Version:   version,
		},
		schema: schema,
		codec:  record.NewCodec(text),
	}
}

// Decode parses an IFF file held in memory.
//
// Parameters:
//   - data: The whole file
//   - schema: Layout of the records in this file
//   - text: Codec for string fields
//
// Returns:
//   - *File: Header and decoded records
//   - error: errs.ErrInvalidHeaderSize for a truncated header,
//     errs.ErrSizeMismatch if the payload is not exactly entry count records
func Decode(data []byte, schema *record.Schema, text *locale.Codec) (*File, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	size := schema.Size()
	want := HeaderSize + int(h.EntryCount)*size
	if len(data) != want {
		return nil, fmt.Errorf("%s: %d entries need %d bytes, got %d: %w",
			schema.Name(), h.EntryCount, want, len(data), errs.ErrSizeMismatch)
	}

	f := &File{
		Header:  h,
		Records: make([]*record.Record, 0, h.EntryCount),
		schema:  schema,
		codec:   record.NewCodec(text),
	}

	for i := range int(h.EntryCount) {
		start := HeaderSize + i*size
		r, err := f.codec.Decode(schema, data[start:start+size])
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		f.Records = append(f.Records, r)
	}

	return f, nil
}

// Load reads and decodes the IFF file at path.
func Load(path string, schema *record.Schema, text *locale.Codec) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrIO, err)
	}

	f, err := Decode(data, schema, text)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return f, nil
}

// Schema returns the record layout of the file.
func (f *File) Schema() *record.Schema {
	return f.schema
}

// Append adds records, which must use the file's schema.
func (f *File) Append(records ...*record.Record) error {
	for _, r := range records {
		if r.Schema() != f.schema {
			return fmt.Errorf("%s record in %s file: %w", r.Schema().Name(), f.schema.Name(), errs.ErrSchemaMismatch)
		}
	}
	f.Records = append(f.Records, records...)

	return nil
}

// Bytes encodes the header and every record. The header's entry count is
// set from the number of records.
func (f *File) Bytes() ([]byte, error) {
	if len(f.Records) > math.MaxUint16 {
		return nil, fmt.Errorf("%d records exceed the uint16 entry count", len(f.Records))
	}
	f.Header.EntryCount = uint16(len(f.Records)) //nolint:gosec

	size := f.schema.Size()
	buf := make([]byte, HeaderSize+len(f.Records)*size)
	copy(buf, f.Header.Bytes())

	for i, r := range f.Records {
		if r.Schema() != f.schema {
			return nil, fmt.Errorf("entry %d: %w", i, errs.ErrSchemaMismatch)
		}
		start := HeaderSize + i*size
		if err := f.codec.EncodeTo(buf[start:start+size], r); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	return buf, nil
}

// Save encodes the file and writes it to path.
func (f *File) Save(path string) (err error) {
	data, err := f.Bytes()
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
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

	if _, err := fh.Write(data); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrIO, err)
	}

	return nil
}
