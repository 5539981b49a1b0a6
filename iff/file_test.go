package iff

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pangya-tools/panglib/errs"
	"github.com/pangya-tools/panglib/locale"
	"github.com/pangya-tools/panglib/record"
	"github.com/stretchr/testify/require"
)

var pairSchema = record.MustSchema("Pair", []record.Field{
	record.Uint16("id"),
	record.String("label", 6),
})

func TestDecode_Records(t *testing.T) {
	data := []byte{
		0x02, 0x00, 0x01, 0x00, 0x05, 0x00, 0x00, 0x00, // header
		0x07, 0x00, 0x00, 0x00, 'a', 'b', 0, 0, 0, 0, 0, 0, // id 7 "ab"
		0x08, 0x00, 0x00, 0x00, 'x', 0, 0, 0, 0, 0, 0, 0, // id 8 "x"
	}
	require.Equal(t, 12, pairSchema.Size())

	f, err := Decode(data, pairSchema, locale.ASCII())
	require.NoError(t, err)
	require.Equal(t, Header{EntryCount: 2, BindingID: 1, Version: 5}, f.Header)
	require.Len(t, f.Records, 2)
	require.Same(t, pairSchema, f.Schema())

	id, err := f.Records[1].Uint16("id")
	require.NoError(t, err)
	require.Equal(t, uint16(8), id)

	label, err := f.Records[0].String("label")
	require.NoError(t, err)
	require.Equal(t, "ab", label)

	out, err := f.Bytes()
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestDecode_SizeMismatch(t *testing.T) {
	header := Header{EntryCount: 2}.Bytes()

	tests := []struct {
		name string
		data []byte
	}{
		{"missing records", header},
		{"one record short", append(header, make([]byte, 12)...)},
		{"trailing bytes", append(header, make([]byte, 25)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data, pairSchema, locale.ASCII())
			require.ErrorIs(t, err, errs.ErrSizeMismatch)
		})
	}
}

func TestDecode_InvalidText(t *testing.T) {
	data := Header{EntryCount: 1}.Bytes()
	data = append(data, 0x01, 0x00, 0x00, 0x00, 0xFF, 0, 0, 0, 0, 0, 0, 0)

	_, err := Decode(data, pairSchema, locale.ASCII())
	require.ErrorIs(t, err, errs.ErrDecode)
	require.ErrorContains(t, err, "entry 0")
}

func TestFile_AppendSchemaMismatch(t *testing.T) {
	f := New(pairSchema, locale.UTF8(), 0, 1)

	err := f.Append(DateSchema.New())
	require.ErrorIs(t, err, errs.ErrSchemaMismatch)
	require.Empty(t, f.Records)

	f.Records = append(f.Records, StatsSchema.New())
	_, err = f.Bytes()
	require.ErrorIs(t, err, errs.ErrSchemaMismatch)
}

func TestFile_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Pair.iff")

	f := New(pairSchema, locale.UTF8(), 2, 9)
	for i, label := range []string{"one", "two", "three"} {
		r := pairSchema.New()
		require.NoError(t, r.SetUint16("id", uint16(i+1)))
		require.NoError(t, r.SetString("label", label))
		require.NoError(t, f.Append(r))
	}
	require.NoError(t, f.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(HeaderSize+3*pairSchema.Size()), info.Size())

	loaded, err := Load(path, pairSchema, locale.UTF8())
	require.NoError(t, err)
	require.Equal(t, Header{EntryCount: 3, BindingID: 2, Version: 9}, loaded.Header)
	require.Len(t, loaded.Records, 3)
	for i := range f.Records {
		require.True(t, f.Records[i].Equal(loaded.Records[i]), "record %d", i)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.iff"), pairSchema, locale.UTF8())
	require.ErrorIs(t, err, errs.ErrIO)
	require.ErrorIs(t, err, os.ErrNotExist)
}
