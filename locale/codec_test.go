package locale

import (
	"testing"

	"github.com/pangya-tools/panglib/errs"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTrip(t *testing.T) {
	testCases := []struct {
		name  string
		page  CodePage
		text  string
		bytes []byte
	}{
		{"ascii", CodePageASCII, "Hello", []byte("Hello")},
		{"utf8", CodePageUTF8, "héllo", []byte("héllo")},
		{"windows-1252", CodePageWindows1252, "café", []byte{'c', 'a', 'f', 0xE9}},
		{"windows-874", CodePageWindows874, "ก", []byte{0xA1}},
		{"shift-jis", CodePageShiftJIS, "日本", []byte{0x93, 0xFA, 0x96, 0x7B}},
		{"euc-kr", CodePageEUCKR, "안녕", []byte{0xBE, 0xC8, 0xB3, 0xE7}},
		{"empty", CodePageEUCKR, "", []byte{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			codec := MustForCodePage(tc.page)

			encoded, err := codec.Encode(tc.text)
			require.NoError(t, err)
			require.Equal(t, tc.bytes, append([]byte{}, encoded...))

			decoded, err := codec.Decode(tc.bytes)
			require.NoError(t, err)
			require.Equal(t, tc.text, decoded)
		})
	}
}

func TestCodec_DecodeInvalid(t *testing.T) {
	testCases := []struct {
		name string
		page CodePage
		data []byte
	}{
		{"ascii high byte", CodePageASCII, []byte{'a', 0x80}},
		{"utf8 invalid", CodePageUTF8, []byte{0xFF, 0xFE}},
		{"shift-jis truncated lead byte", CodePageShiftJIS, []byte{0x82}},
		{"euc-kr truncated lead byte", CodePageEUCKR, []byte{0xB0}},
		{"euc-kr uhc lead byte", CodePageEUCKR, []byte{0x81, 0x41}},
		{"euc-kr uhc trail byte", CodePageEUCKR, []byte{0xB0, 0x41}},
		{"euc-kr lone high byte", CodePageEUCKR, []byte{'a', 0x80, 'b'}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := MustForCodePage(tc.page).Decode(tc.data)
			require.ErrorIs(t, err, errs.ErrDecode)
		})
	}
}

func TestCodec_EncodeUnrepresentable(t *testing.T) {
	testCases := []struct {
		name string
		page CodePage
		text string
	}{
		{"ascii accent", CodePageASCII, "café"},
		{"1252 kanji", CodePageWindows1252, "日本"},
		{"shift-jis hangul", CodePageShiftJIS, "안녕"},
		{"euc-kr uhc-only hangul", CodePageEUCKR, "똠"},
		{"euc-kr uhc-only syllable", CodePageEUCKR, "갂"},
		{"utf8 invalid string", CodePageUTF8, string([]byte{0xFF})},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := MustForCodePage(tc.page).Encode(tc.text)
			require.ErrorIs(t, err, errs.ErrEncode)
		})
	}
}

func TestCodec_AppendEncode(t *testing.T) {
	codec := ASCII()
	out, err := codec.AppendEncode([]byte("ab"), "cd")
	require.NoError(t, err)
	require.Equal(t, "abcd", string(out))
	require.Equal(t, "us-ascii", codec.String())
	require.NotNil(t, codec.Encoding())
}
