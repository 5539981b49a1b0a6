package iff

import (
	"testing"

	"github.com/pangya-tools/panglib/errs"
	"github.com/stretchr/testify/require"
)

func TestHeader_ParseBytes(t *testing.T) {
	h := Header{EntryCount: 3, BindingID: 0x0B, Version: 13}

	data := h.Bytes()
	require.Equal(t, []byte{0x03, 0x00, 0x0B, 0x00, 0x0D, 0x00, 0x00, 0x00}, data)

	parsed, err := ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, h, parsed)
}

func TestHeader_ParseShort(t *testing.T) {
	for _, n := range []int{0, 1, 7} {
		_, err := ParseHeader(make([]byte, n))
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize, "len %d", n)
	}
}
