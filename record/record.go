package record

import (
	"bytes"
	"fmt"
	"iter"
	"math"

	"github.com/pangya-tools/panglib/errs"
)

// Record holds the values of one fixed record. Its shape is fixed by its
// schema; values are mutable through Set and the typed setters.
//
// Values are held as uint8, uint16, uint32, int16, int32, float32, string,
// []byte and *Record according to the field kind.
type Record struct {
	schema *Schema
	values []any
}

// New returns a record of this schema with every field zeroed.
func (s *Schema) New() *Record {
	r := &Record{
		schema: s,
		values: make([]any, len(s.fields)),
	}
	for i, f := range s.fields {
		r.values[i] = zero(f)
	}

	return r
}

func zero(f Field) any {
	switch f.Kind {
	case KindUint8:
		return uint8(0)
	case KindUint16:
		return uint16(0)
	case KindUint32:
		return uint32(0)
	case KindInt16:
		return int16(0)
	case KindInt32:
		return int32(0)
	case KindFloat32:
		return float32(0)
	case KindString:
		return ""
	case KindBytes:
		return make([]byte, f.Width)
	case KindStruct:
		return f.Schema.New()
	default:
		return nil
	}
}

// Schema returns the record's schema.
func (r *Record) Schema() *Schema {
	return r.schema
}

// Get returns the value of the named field.
func (r *Record) Get(name string) (any, error) {
	i, ok := r.schema.index[name]
	if !ok {
		return nil, fmt.Errorf("%s.%s: %w", r.schema.name, name, errs.ErrUnknownField)
	}

	return r.values[i], nil
}

// Set assigns v to the named field. v must have the Go type of the field
// kind; Bytes values must have the declared width and Struct values must
// share the nested schema.
func (r *Record) Set(name string, v any) error {
	i, ok := r.schema.index[name]
	if !ok {
		return fmt.Errorf("%s.%s: %w", r.schema.name, name, errs.ErrUnknownField)
	}

	f := r.schema.fields[i]
	if err := check(f, v); err != nil {
		return fmt.Errorf("%s.%s: %w", r.schema.name, name, err)
	}
	if b, ok := v.([]byte); ok {
		v = bytes.Clone(b)
	}
	r.values[i] = v

	return nil
}

func check(f Field, v any) error {
	var ok bool
	switch f.Kind {
	case KindUint8:
		_, ok = v.(uint8)
	case KindUint16:
		_, ok = v.(uint16)
	case KindUint32:
		_, ok = v.(uint32)
	case KindInt16:
		_, ok = v.(int16)
	case KindInt32:
		_, ok = v.(int32)
	case KindFloat32:
		_, ok = v.(float32)
	case KindString:
		_, ok = v.(string)
	case KindBytes:
		b, isBytes := v.([]byte)
		if isBytes && len(b) != f.Width {
			return fmt.Errorf("%w: %d bytes, want %d", errs.ErrSizeMismatch, len(b), f.Width)
		}
		ok = isBytes
	case KindStruct:
		nested, isRecord := v.(*Record)
		if isRecord && (nested == nil || nested.schema != f.Schema) {
			return errs.ErrSchemaMismatch
		}
		ok = isRecord
	}

	if !ok {
		return fmt.Errorf("%w: %T for %s field", errs.ErrFieldType, v, f.Kind)
	}

	return nil
}

func get[T any](r *Record, name string) (T, error) {
	var zero T
	v, err := r.Get(name)
	if err != nil {
		return zero, err
	}

	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%s.%s: %w: field holds %T, not %T", r.schema.name, name, errs.ErrFieldType, v, zero)
	}

	return t, nil
}

func (r *Record) Uint8(name string) (uint8, error)     { return get[uint8](r, name) }
func (r *Record) Uint16(name string) (uint16, error)   { return get[uint16](r, name) }
func (r *Record) Uint32(name string) (uint32, error)   { return get[uint32](r, name) }
func (r *Record) Int16(name string) (int16, error)     { return get[int16](r, name) }
func (r *Record) Int32(name string) (int32, error)     { return get[int32](r, name) }
func (r *Record) Float32(name string) (float32, error) { return get[float32](r, name) }
func (r *Record) String(name string) (string, error)   { return get[string](r, name) }
func (r *Record) Bytes(name string) ([]byte, error)    { return get[[]byte](r, name) }
func (r *Record) Struct(name string) (*Record, error)  { return get[*Record](r, name) }

func (r *Record) SetUint8(name string, v uint8) error     { return r.Set(name, v) }
func (r *Record) SetUint16(name string, v uint16) error   { return r.Set(name, v) }
func (r *Record) SetUint32(name string, v uint32) error   { return r.Set(name, v) }
func (r *Record) SetInt16(name string, v int16) error     { return r.Set(name, v) }
func (r *Record) SetInt32(name string, v int32) error     { return r.Set(name, v) }
func (r *Record) SetFloat32(name string, v float32) error { return r.Set(name, v) }
func (r *Record) SetString(name string, v string) error   { return r.Set(name, v) }
func (r *Record) SetBytes(name string, v []byte) error    { return r.Set(name, v) }
func (r *Record) SetStruct(name string, v *Record) error  { return r.Set(name, v) }

// All iterates over field names and values in declaration order.
func (r *Record) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for i, f := range r.schema.fields {
			if !yield(f.Name, r.values[i]) {
				return
			}
		}
	}
}

// Equal reports whether both records share a schema and hold equal values.
// Floats compare by bit pattern so NaN payloads survive a round trip.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.schema != other.schema {
		return false
	}

	for i, f := range r.schema.fields {
		a, b := r.values[i], other.values[i]
		switch f.Kind {
		case KindFloat32:
			if math.Float32bits(a.(float32)) != math.Float32bits(b.(float32)) {
				return false
			}
		case KindBytes:
			if !bytes.Equal(a.([]byte), b.([]byte)) {
				return false
			}
		case KindStruct:
			if !a.(*Record).Equal(b.(*Record)) {
				return false
			}
		default:
			if a != b {
				return false
			}
		}
	}

	return true
}
