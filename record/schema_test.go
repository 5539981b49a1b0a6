package record

import (
	"testing"

	"github.com/pangya-tools/panglib/endian"
	"github.com/pangya-tools/panglib/errs"
	"github.com/stretchr/testify/require"
)

func TestNewSchema_UniformLayout(t *testing.T) {
	s, err := NewSchema("Sample", []Field{
		Uint32("Count"),
		String("Name", 8),
	})
	require.NoError(t, err)
	require.Equal(t, 12, s.Size())
	require.Equal(t, 4, s.Align())
	require.Equal(t, AlignUniform, s.Alignment())

	off, ok := s.Offset("Name")
	require.True(t, ok)
	require.Equal(t, 4, off)
}

func TestNewSchema_UniformPadsEveryField(t *testing.T) {
	s := MustSchema("Padded", []Field{
		Uint16("A"),
		Uint8("B"),
		String("C", 5),
		Uint16("D"),
	})

	offsets := []int{0, 4, 8, 16}
	for i, f := range s.Fields() {
		off, ok := s.Offset(f.Name)
		require.True(t, ok)
		require.Equal(t, offsets[i], off, f.Name)
	}
	require.Equal(t, 20, s.Size())
}

func TestNewSchema_NaturalLayout(t *testing.T) {
	s := MustSchema("Natural", []Field{
		Uint8("A"),
		Uint16("B"),
		Uint8("C"),
		Uint32("D"),
		String("E", 3),
		Uint16("F"),
	}, WithNaturalAlignment())

	// A@0 B@2 C@4 D@8 E@12 F@16, size 18 rounded to 20.
	expected := map[string]int{"A": 0, "B": 2, "C": 4, "D": 8, "E": 12, "F": 16}
	for name, want := range expected {
		off, ok := s.Offset(name)
		require.True(t, ok)
		require.Equal(t, want, off, name)
	}
	require.Equal(t, 20, s.Size())
	require.Equal(t, 4, s.Align())
}

func TestNewSchema_NaturalLayoutSmallAlign(t *testing.T) {
	s := MustSchema("Bytes", []Field{
		Uint8("A"),
		String("B", 4),
	}, WithNaturalAlignment())

	require.Equal(t, 5, s.Size())
	require.Equal(t, 1, s.Align())
}

func TestNewSchema_Nested(t *testing.T) {
	inner := MustSchema("Inner", []Field{
		Uint16("X"),
		Uint16("Y"),
	}, WithNaturalAlignment())
	require.Equal(t, 4, inner.Size())
	require.Equal(t, 2, inner.Align())

	outer := MustSchema("Outer", []Field{
		Uint8("Flag"),
		Struct("Pos", inner),
		Uint8("Tail"),
	}, WithNaturalAlignment())

	off, _ := outer.Offset("Pos")
	require.Equal(t, 2, off)
	off, _ = outer.Offset("Tail")
	require.Equal(t, 6, off)
	require.Equal(t, 8, outer.Size())
}

func TestNewSchema_Pack(t *testing.T) {
	s := MustSchema("Packed", []Field{
		Uint8("A"),
		Uint32("B"),
	}, WithNaturalAlignment(), WithPack(1))
	require.Equal(t, 5, s.Size())
	require.Equal(t, 1, s.Pack())

	_, err := NewSchema("Bad", []Field{Uint8("A")}, WithPack(3))
	require.ErrorIs(t, err, errs.ErrSchema)
}

func TestNewSchema_ByteOrder(t *testing.T) {
	s := MustSchema("BE", []Field{Uint32("A")}, WithByteOrder(endian.GetBigEndianEngine()))
	require.Equal(t, endian.GetBigEndianEngine(), s.ByteOrder())
}

func TestNewSchema_Invalid(t *testing.T) {
	testCases := []struct {
		name   string
		fields []Field
	}{
		{"no fields", nil},
		{"empty name", []Field{Uint8("")}},
		{"duplicate", []Field{Uint8("A"), Uint16("A")}},
		{"zero width string", []Field{String("S", 0)}},
		{"negative width bytes", []Field{Bytes("B", -1)}},
		{"nil nested", []Field{Struct("N", nil)}},
		{"unknown kind", []Field{{Name: "X", Kind: Kind(99)}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSchema("Invalid", tc.fields)
			require.ErrorIs(t, err, errs.ErrSchema)
		})
	}

	require.Panics(t, func() { MustSchema("Invalid", nil) })
}

func TestSchema_Accessors(t *testing.T) {
	s := MustSchema("Sample", []Field{Uint32("Count"), String("Name", 8)})

	require.Equal(t, "Sample", s.Name())
	require.Equal(t, 2, s.NumFields())
	require.Equal(t, DefaultPack, s.Pack())

	f, ok := s.Field("Name")
	require.True(t, ok)
	require.Equal(t, KindString, f.Kind)
	require.Equal(t, 8, f.Width)

	_, ok = s.Field("Missing")
	require.False(t, ok)
	_, ok = s.Offset("Missing")
	require.False(t, ok)

	fields := s.Fields()
	fields[0].Name = "Changed"
	_, ok = s.Field("Count")
	require.True(t, ok)

	require.Equal(t, "Sample{2 fields, 12 bytes, uniform/4}", s.String())
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "uint32", KindUint32.String())
	require.Equal(t, "struct", KindStruct.String())
	require.Equal(t, "kind(42)", Kind(42).String())
}
