package iff

import "github.com/pangya-tools/panglib/record"

// fieldReader reads typed values from a record, keeping the first error so
// conversions can be written as straight-line code. Readers for nested
// records share the error of their parent.
type fieldReader struct {
	r   *record.Record
	err *error
}

func (fr *fieldReader) errPtr() *error {
	if fr.err == nil {
		fr.err = new(error)
	}

	return fr.err
}

func (fr *fieldReader) keep(err error) {
	if p := fr.errPtr(); *p == nil && err != nil {
		*p = err
	}
}

func (fr *fieldReader) firstErr() error {
	return *fr.errPtr()
}

func (fr *fieldReader) u8(name string) uint8 {
	v, err := fr.r.Uint8(name)
	fr.keep(err)
	return v
}

func (fr *fieldReader) u16(name string) uint16 {
	v, err := fr.r.Uint16(name)
	fr.keep(err)
	return v
}

func (fr *fieldReader) u32(name string) uint32 {
	v, err := fr.r.Uint32(name)
	fr.keep(err)
	return v
}

func (fr *fieldReader) str(name string) string {
	v, err := fr.r.String(name)
	fr.keep(err)
	return v
}

func (fr *fieldReader) raw(name string) []byte {
	v, err := fr.r.Bytes(name)
	fr.keep(err)
	return v
}

// nested returns a reader for a Struct field. If the field cannot be read
// the returned reader yields zeros.
func (fr *fieldReader) nested(name string) *fieldReader {
	v, err := fr.r.Struct(name)
	fr.keep(err)
	if v == nil {
		v = placeholder.New()
	}

	return &fieldReader{r: v, err: fr.errPtr()}
}

// placeholder backs readers and writers of unreadable nested fields. Its
// lookups fail, but the first error is already recorded by then.
var placeholder = record.MustSchema("placeholder", []record.Field{record.Uint8("_")})

// fieldWriter is the write counterpart of fieldReader.
type fieldWriter struct {
	r   *record.Record
	err *error
}

func (fw *fieldWriter) errPtr() *error {
	if fw.err == nil {
		fw.err = new(error)
	}

	return fw.err
}

func (fw *fieldWriter) set(name string, v any) {
	if err := fw.r.Set(name, v); err != nil {
		if p := fw.errPtr(); *p == nil {
			*p = err
		}
	}
}

func (fw *fieldWriter) nested(name string) *fieldWriter {
	v, err := fw.r.Struct(name)
	if err != nil {
		if p := fw.errPtr(); *p == nil {
			*p = err
		}
		v = placeholder.New()
	}

	return &fieldWriter{r: v, err: fw.errPtr()}
}

func (fw *fieldWriter) firstErr() error {
	return *fw.errPtr()
}
