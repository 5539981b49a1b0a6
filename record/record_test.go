package record

import (
	"math"
	"testing"

	"github.com/pangya-tools/panglib/errs"
	"github.com/stretchr/testify/require"
)

func TestSchema_New_ZeroValues(t *testing.T) {
	inner := MustSchema("Inner", []Field{Uint8("A")})
	s := MustSchema("Zero", []Field{
		Uint16("U16"),
		String("S", 4),
		Bytes("B", 2),
		Struct("N", inner),
	})

	r := s.New()
	require.Same(t, s, r.Schema())

	v, err := r.Get("U16")
	require.NoError(t, err)
	require.Equal(t, uint16(0), v)

	str, err := r.String("S")
	require.NoError(t, err)
	require.Empty(t, str)

	b, err := r.Bytes("B")
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0}, b)

	n, err := r.Struct("N")
	require.NoError(t, err)
	require.Same(t, inner, n.Schema())
}

func TestRecord_SetTypeChecks(t *testing.T) {
	inner := MustSchema("Inner", []Field{Uint8("A")})
	other := MustSchema("Other", []Field{Uint8("A")})
	s := MustSchema("Typed", []Field{
		Uint32("U32"),
		Bytes("B", 2),
		Struct("N", inner),
	})
	r := s.New()

	require.ErrorIs(t, r.Set("U32", 1), errs.ErrFieldType)
	require.ErrorIs(t, r.Set("U32", uint16(1)), errs.ErrFieldType)
	require.NoError(t, r.Set("U32", uint32(1)))

	require.ErrorIs(t, r.SetBytes("B", []byte{1}), errs.ErrSizeMismatch)
	require.ErrorIs(t, r.Set("B", "xx"), errs.ErrFieldType)
	require.NoError(t, r.SetBytes("B", []byte{1, 2}))

	require.ErrorIs(t, r.SetStruct("N", other.New()), errs.ErrSchemaMismatch)
	require.ErrorIs(t, r.SetStruct("N", nil), errs.ErrSchemaMismatch)
	require.NoError(t, r.SetStruct("N", inner.New()))

	require.ErrorIs(t, r.Set("Missing", uint32(1)), errs.ErrUnknownField)
}

func TestRecord_SetBytesCopies(t *testing.T) {
	s := MustSchema("Raw", []Field{Bytes("B", 3)})
	r := s.New()

	src := []byte{1, 2, 3}
	require.NoError(t, r.SetBytes("B", src))
	src[0] = 0xFF

	got, err := r.Bytes("B")
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, got)

	require.NoError(t, r.Set("B", src))
	src[1] = 0xEE
	got, err = r.Bytes("B")
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF, 2, 3}, got)
}

func TestRecord_TypedGetterMismatch(t *testing.T) {
	r := sampleSchema.New()

	_, err := r.Uint16("count")
	require.ErrorIs(t, err, errs.ErrFieldType)

	_, err = r.Uint32("missing")
	require.ErrorIs(t, err, errs.ErrUnknownField)
}

func TestRecord_All(t *testing.T) {
	r := sampleSchema.New()
	require.NoError(t, r.SetUint32("count", 3))
	require.NoError(t, r.SetString("name", "x"))

	var names []string
	var values []any
	for name, v := range r.All() {
		names = append(names, name)
		values = append(values, v)
	}
	require.Equal(t, []string{"count", "name"}, names)
	require.Equal(t, []any{uint32(3), "x"}, values)

	count := 0
	for range r.All() {
		count++
		break
	}
	require.Equal(t, 1, count)
}

func TestRecord_Equal(t *testing.T) {
	s := MustSchema("Eq", []Field{Float32("F"), Bytes("B", 1)})

	a, b := s.New(), s.New()
	require.True(t, a.Equal(b))

	nan := math.Float32frombits(0x7FC00001)
	require.NoError(t, a.SetFloat32("F", nan))
	require.False(t, a.Equal(b))
	require.NoError(t, b.SetFloat32("F", nan))
	require.True(t, a.Equal(b))

	require.NoError(t, b.SetBytes("B", []byte{1}))
	require.False(t, a.Equal(b))

	require.False(t, a.Equal(sampleSchema.New()))
	require.False(t, a.Equal(nil))

	var nilRecord *Record
	require.True(t, nilRecord.Equal(nil))
}
