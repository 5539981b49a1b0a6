package locale

import (
	"fmt"
	"strings"

	"github.com/pangya-tools/panglib/errs"
)

var regionCodePages = map[string]CodePage{
	"korea":     CodePageEUCKR,
	"japan":     CodePageShiftJIS,
	"english":   CodePageASCII,
	"thailand":  CodePageWindows874,
	"indonesia": CodePageUTF8,
	"brasil":    CodePageWindows1252,
	"spanish":   CodePageWindows1252,
	"german":    CodePageWindows1252,
	"french":    CodePageWindows1252,
}

// Token reduces a file path to its region token: the base name, without
// extension, lower-cased. Both '/' and '\' are treated as separators since
// asset lists often carry Windows paths.
func Token(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		path = path[i+1:]
	}
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		path = path[:i]
	}

	return strings.ToLower(path)
}

// Lookup returns the code page for a region token, or DefaultCodePage if the
// token is not a known region.
func Lookup(token string) CodePage {
	if cp, ok := regionCodePages[token]; ok {
		return cp
	}

	return DefaultCodePage
}

// Resolve returns the codec for the file named by nameHint.
//
// Parameters:
//   - nameHint: File path or name; only the base name is consulted
//
// Returns:
//   - *Codec: Codec for the region, UTF-8 when the region is unknown
//   - error: errs.ErrNoEncoding if nameHint is empty
func Resolve(nameHint string) (*Codec, error) {
	if strings.TrimSpace(nameHint) == "" {
		return nil, fmt.Errorf("resolve encoding: %w", errs.ErrNoEncoding)
	}

	return ForCodePage(Lookup(Token(nameHint)))
}
