package record

import (
	"fmt"

	"github.com/pangya-tools/panglib/endian"
	"github.com/pangya-tools/panglib/errs"
	"github.com/pangya-tools/panglib/internal/options"
)

// DefaultPack is the packing granularity of the legacy record format.
const DefaultPack = 4

// Alignment selects how field offsets are derived from the pack size.
type Alignment uint8

const (
	// AlignUniform starts every field on a pack boundary.
	AlignUniform Alignment = iota
	// AlignNatural starts every field on min(natural alignment, pack), which
	// is the sequential layout produced by the game's own struct marshaller.
	// Use it for schemas holding 1- or 2-byte members.
	AlignNatural
)

func (a Alignment) String() string {
	if a == AlignNatural {
		return "natural"
	}

	return "uniform"
}

// SchemaOption configures a Schema at construction time.
type SchemaOption = options.Option[*Schema]

// WithNaturalAlignment lays fields out with natural alignment capped at the pack size.
func WithNaturalAlignment() SchemaOption {
	return options.NoError(func(s *Schema) {
		s.policy = AlignNatural
	})
}

// WithPack sets the pack size. Valid values are 1, 2, 4 and 8.
func WithPack(pack int) SchemaOption {
	return options.New(func(s *Schema) error {
		switch pack {
		case 1, 2, 4, 8:
			s.pack = pack
			return nil
		default:
			return fmt.Errorf("%w: invalid pack size %d", errs.ErrSchema, pack)
		}
	})
}

// WithByteOrder sets the byte order of integer and float fields.
// Nested schemas are always encoded in the byte order of the outermost schema.
func WithByteOrder(engine endian.EndianEngine) SchemaOption {
	return options.NoError(func(s *Schema) {
		s.engine = engine
	})
}

// Schema is an immutable, ordered field layout with a fixed byte size.
type Schema struct {
	name    string
	fields  []Field
	offsets []int
	index   map[string]int
	size    int
	align   int
	pack    int
	policy  Alignment
	engine  endian.EndianEngine
}

// NewSchema validates fields and computes their offsets.
//
// Parameters:
//   - name: Schema name, used in error messages
//   - fields: Fields in on-disk order
//   - opts: Layout options (alignment policy, pack size, byte order)
//
// Returns:
//   - *Schema: The computed layout
//   - error: errs.ErrSchema if a field is malformed or a name repeats
func NewSchema(name string, fields []Field, opts ...SchemaOption) (*Schema, error) {
	s := &Schema{
		name:   name,
		pack:   DefaultPack,
		policy: AlignUniform,
		engine: endian.GetLittleEndianEngine(),
	}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %s has no fields", errs.ErrSchema, name)
	}

	s.fields = make([]Field, len(fields))
	copy(s.fields, fields)
	s.offsets = make([]int, len(fields))
	s.index = make(map[string]int, len(fields))

	for i, f := range s.fields {
		if err := s.validate(f); err != nil {
			return nil, err
		}
		s.index[f.Name] = i
	}

	s.layout()

	return s, nil
}

// MustSchema is like NewSchema but panics on error. It is intended for
// package-level schema declarations.
func MustSchema(name string, fields []Field, opts ...SchemaOption) *Schema {
	s, err := NewSchema(name, fields, opts...)
	if err != nil {
		panic(err)
	}

	return s
}

func (s *Schema) validate(f Field) error {
	if f.Name == "" {
		return fmt.Errorf("%w: %s has a field with no name", errs.ErrSchema, s.name)
	}
	if _, dup := s.index[f.Name]; dup {
		return fmt.Errorf("%w: %s.%s declared twice", errs.ErrSchema, s.name, f.Name)
	}

	switch f.Kind {
	case KindUint8, KindUint16, KindUint32, KindInt16, KindInt32, KindFloat32:
		return nil
	case KindString, KindBytes:
		if f.Width <= 0 {
			return fmt.Errorf("%w: %s.%s has width %d", errs.ErrSchema, s.name, f.Name, f.Width)
		}
		return nil
	case KindStruct:
		if f.Schema == nil {
			return fmt.Errorf("%w: %s.%s has no nested schema", errs.ErrSchema, s.name, f.Name)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s.%s has unknown kind %s", errs.ErrSchema, s.name, f.Name, f.Kind)
	}
}

func (s *Schema) fieldAlign(f Field) int {
	if s.policy == AlignUniform {
		return s.pack
	}

	return min(f.naturalAlign(), s.pack)
}

func (s *Schema) layout() {
	cursor := 0
	s.align = 1
	for i, f := range s.fields {
		a := s.fieldAlign(f)
		cursor = alignUp(cursor, a)
		s.offsets[i] = cursor
		cursor += f.size()
		s.align = max(s.align, a)
	}

	s.size = alignUp(cursor, s.align)
}

func alignUp(n, a int) int {
	return (n + a - 1) / a * a
}

// Name returns the schema name.
func (s *Schema) Name() string { return s.name }

// Size returns the encoded byte size of every record of this schema.
func (s *Schema) Size() int { return s.size }

// Align returns the alignment of the schema when nested in another schema.
func (s *Schema) Align() int { return s.align }

// Pack returns the pack size.
func (s *Schema) Pack() int { return s.pack }

// Alignment returns the alignment policy.
func (s *Schema) Alignment() Alignment { return s.policy }

// ByteOrder returns the engine used for numeric fields.
func (s *Schema) ByteOrder() endian.EndianEngine { return s.engine }

// NumFields returns the number of top-level fields.
func (s *Schema) NumFields() int { return len(s.fields) }

// Fields returns a copy of the field list in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)

	return out
}

// Field returns the named field.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}

	return s.fields[i], true
}

// Offset returns the byte offset of the named field from the start of the record.
func (s *Schema) Offset(name string) (int, bool) {
	i, ok := s.index[name]
	if !ok {
		return 0, false
	}

	return s.offsets[i], true
}

func (s *Schema) String() string {
	return fmt.Sprintf("%s{%d fields, %d bytes, %s/%d}", s.name, len(s.fields), s.size, s.policy, s.pack)
}
