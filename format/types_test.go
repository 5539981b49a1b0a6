package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		c    CompressionType
		want string
	}{
		{CompressionNone, "None"},
		{CompressionZstd, "Zstd"},
		{CompressionS2, "S2"},
		{CompressionLZ4, "LZ4"},
		{CompressionType(0), "Unknown"},
		{CompressionType(0xFF), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.c.String())
		})
	}
}

func TestParseCompressionType(t *testing.T) {
	for in, want := range map[string]CompressionType{
		"":     CompressionNone,
		"none": CompressionNone,
		"ZSTD": CompressionZstd,
		" s2 ": CompressionS2,
		"Lz4":  CompressionLZ4,
	} {
		got, err := ParseCompressionType(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseCompressionType("gzip")
	require.Error(t, err)
}

func TestCompressionType_Text(t *testing.T) {
	text, err := CompressionLZ4.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "lz4", string(text))

	var c CompressionType
	require.NoError(t, c.UnmarshalText(text))
	require.Equal(t, CompressionLZ4, c)

	_, err = CompressionType(9).MarshalText()
	require.Error(t, err)
	require.Error(t, c.UnmarshalText([]byte("bogus")))
}
