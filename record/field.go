package record

import "strconv"

// Kind is the on-disk type of a record field.
type Kind uint8

const (
	KindUint8   Kind = iota + 1 // KindUint8 is a 1-byte unsigned integer.
	KindUint16                  // KindUint16 is a 2-byte unsigned integer.
	KindUint32                  // KindUint32 is a 4-byte unsigned integer.
	KindInt16                   // KindInt16 is a 2-byte signed integer.
	KindInt32                   // KindInt32 is a 4-byte signed integer.
	KindFloat32                 // KindFloat32 is a 4-byte IEEE 754 float.
	KindString                  // KindString is a fixed-width, NUL-padded encoded string.
	KindBytes                   // KindBytes is a fixed-width opaque byte array.
	KindStruct                  // KindStruct is a nested record laid out inline.
)

func (k Kind) String() string {
	switch k {
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindFloat32:
		return "float32"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindStruct:
		return "struct"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Field describes one member of a Schema.
type Field struct {
	Name string
	Kind Kind
	// Width is the on-disk byte width of String and Bytes fields.
	Width int
	// Schema is the layout of a Struct field.
	Schema *Schema
}

func Uint8(name string) Field   { return Field{Name: name, Kind: KindUint8} }
func Uint16(name string) Field  { return Field{Name: name, Kind: KindUint16} }
func Uint32(name string) Field  { return Field{Name: name, Kind: KindUint32} }
func Int16(name string) Field   { return Field{Name: name, Kind: KindInt16} }
func Int32(name string) Field   { return Field{Name: name, Kind: KindInt32} }
func Float32(name string) Field { return Field{Name: name, Kind: KindFloat32} }

// String declares a string stored in exactly width bytes, NUL-padded.
func String(name string, width int) Field {
	return Field{Name: name, Kind: KindString, Width: width}
}

// Bytes declares an opaque byte array of exactly width bytes.
func Bytes(name string, width int) Field {
	return Field{Name: name, Kind: KindBytes, Width: width}
}

// Struct declares a nested record embedded inline.
func Struct(name string, schema *Schema) Field {
	return Field{Name: name, Kind: KindStruct, Schema: schema}
}

// size is the number of bytes the field occupies, excluding padding.
func (f Field) size() int {
	switch f.Kind {
	case KindUint8:
		return 1
	case KindUint16, KindInt16:
		return 2
	case KindUint32, KindInt32, KindFloat32:
		return 4
	case KindString, KindBytes:
		return f.Width
	case KindStruct:
		return f.Schema.size
	default:
		return 0
	}
}

// naturalAlign is the field's alignment before the pack limit is applied.
func (f Field) naturalAlign() int {
	switch f.Kind {
	case KindUint16, KindInt16:
		return 2
	case KindUint32, KindInt32, KindFloat32:
		return 4
	case KindStruct:
		return f.Schema.align
	default:
		return 1
	}
}
