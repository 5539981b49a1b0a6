package locale

import (
	"sync"
	"testing"

	"github.com/pangya-tools/panglib/errs"
	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	testCases := []struct {
		path string
		want string
	}{
		{"korea.dat", "korea"},
		{"KOREA.DAT", "korea"},
		{"data/Japan.dat", "japan"},
		{`C:\PangYa\data\Thailand.dat`, "thailand"},
		{"english", "english"},
		{"archive.tar.dat", "archive.tar"},
		{".dat", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			require.Equal(t, tc.want, Token(tc.path))
		})
	}
}

func TestResolve(t *testing.T) {
	testCases := []struct {
		name string
		want CodePage
	}{
		{"korea.dat", CodePageEUCKR},
		{"japan.dat", CodePageShiftJIS},
		{"english.dat", CodePageASCII},
		{"thailand.dat", CodePageWindows874},
		{"indonesia.dat", CodePageUTF8},
		{"brasil.dat", CodePageWindows1252},
		{"spanish.dat", CodePageWindows1252},
		{"german.dat", CodePageWindows1252},
		{"french.dat", CodePageWindows1252},
		{"mystery.dat", CodePageUTF8},
		{"Korea", CodePageEUCKR},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			codec, err := Resolve(tc.name)
			require.NoError(t, err)
			require.Equal(t, tc.want, codec.CodePage())
		})
	}
}

func TestResolve_NoHint(t *testing.T) {
	_, err := Resolve("")
	require.ErrorIs(t, err, errs.ErrNoEncoding)

	_, err = Resolve("   ")
	require.ErrorIs(t, err, errs.ErrNoEncoding)
}

func TestResolve_SharedCodec(t *testing.T) {
	a, err := Resolve("korea.dat")
	require.NoError(t, err)
	b, err := ForCodePage(CodePageEUCKR)
	require.NoError(t, err)
	require.Same(t, a, b)
}

func TestResolve_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			codec, err := Resolve("japan.dat")
			require.NoError(t, err)
			require.Equal(t, CodePageShiftJIS, codec.CodePage())
		}()
	}
	wg.Wait()
}

func TestForCodePage_Unknown(t *testing.T) {
	_, err := ForCodePage(CodePage(1))
	require.ErrorIs(t, err, errs.ErrUnknownCodePage)
	require.Panics(t, func() { MustForCodePage(CodePage(1)) })
}

func TestParseCodePage(t *testing.T) {
	testCases := []struct {
		in   string
		want CodePage
	}{
		{"932", CodePageShiftJIS},
		{"cp1252", CodePageWindows1252},
		{"UTF-8", CodePageUTF8},
		{"euc-kr", CodePageEUCKR},
		{"ascii", CodePageASCII},
		{" windows-874 ", CodePageWindows874},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			cp, err := ParseCodePage(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, cp)
		})
	}

	_, err := ParseCodePage("klingon")
	require.Error(t, err)
}

func TestCodePage_String(t *testing.T) {
	require.Equal(t, "euc-kr", CodePageEUCKR.String())
	require.Equal(t, "cp437", CodePage(437).String())
}
