package locale

import (
	"bytes"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/pangya-tools/panglib/errs"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Codec converts between Go strings and the byte form of one code page.
type Codec struct {
	page CodePage
	enc  encoding.Encoding
}

// CodePage returns the code page this codec implements.
func (c *Codec) CodePage() CodePage {
	return c.page
}

// Encoding returns the underlying x/text encoding.
func (c *Codec) Encoding() encoding.Encoding {
	return c.enc
}

func (c *Codec) String() string {
	return c.page.String()
}

// Decode converts data from the code page to a Go string.
//
// Returns:
//   - string: Decoded text
//   - error: errs.ErrDecode if data is not valid in the code page
func (c *Codec) Decode(data []byte) (string, error) {
	if c.page == CodePageUTF8 {
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%s: %w", c.page, errs.ErrDecode)
		}

		return string(data), nil
	}

	out, _, err := transform.Bytes(c.enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %v", c.page, errs.ErrDecode, err)
	}

	// The multi-byte decoders substitute U+FFFD for malformed input instead
	// of failing. None of the legacy code pages can encode U+FFFD itself, so
	// its presence always means the source bytes were invalid.
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", fmt.Errorf("%s: %w", c.page, errs.ErrDecode)
	}

	return string(out), nil
}

// Encode converts s to the byte form of the code page.
//
// Returns:
//   - []byte: Encoded bytes (a new slice)
//   - error: errs.ErrEncode if s holds a rune the code page cannot represent
func (c *Codec) Encode(s string) ([]byte, error) {
	return c.AppendEncode(nil, s)
}

// AppendEncode appends the encoded form of s to dst and returns the extended slice.
func (c *Codec) AppendEncode(dst []byte, s string) ([]byte, error) {
	if c.page == CodePageUTF8 {
		if !utf8.ValidString(s) {
			return dst, fmt.Errorf("%s: %w", c.page, errs.ErrEncode)
		}

		return append(dst, s...), nil
	}

	out, _, err := transform.String(c.enc.NewEncoder(), s)
	if err != nil {
		return dst, fmt.Errorf("%s: %w: %v", c.page, errs.ErrEncode, err)
	}

	return append(dst, out...), nil
}

var registry = sync.OnceValue(func() map[CodePage]*Codec {
	return map[CodePage]*Codec{
		CodePageWindows874:  {page: CodePageWindows874, enc: charmap.Windows874},
		CodePageShiftJIS:    {page: CodePageShiftJIS, enc: japanese.ShiftJIS},
		CodePageWindows1252: {page: CodePageWindows1252, enc: charmap.Windows1252},
		CodePageASCII:       {page: CodePageASCII, enc: asciiEncoding{}},
		CodePageEUCKR:       {page: CodePageEUCKR, enc: eucKREncoding{}},
		CodePageUTF8:        {page: CodePageUTF8, enc: unicode.UTF8},
	}
})

// ForCodePage returns the shared codec for cp.
//
// Returns:
//   - *Codec: Codec for the code page
//   - error: errs.ErrUnknownCodePage if cp has no codec
func ForCodePage(cp CodePage) (*Codec, error) {
	c, ok := registry()[cp]
	if !ok {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownCodePage, cp)
	}

	return c, nil
}

// MustForCodePage is like ForCodePage but panics on an unknown code page.
// It is intended for package-level variables and tests.
func MustForCodePage(cp CodePage) *Codec {
	c, err := ForCodePage(cp)
	if err != nil {
		panic(err)
	}

	return c
}

// UTF8 returns the UTF-8 codec.
func UTF8() *Codec {
	return MustForCodePage(CodePageUTF8)
}

// ASCII returns the strict US-ASCII codec.
func ASCII() *Codec {
	return MustForCodePage(CodePageASCII)
}
