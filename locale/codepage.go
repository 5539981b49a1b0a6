package locale

import (
	"fmt"
	"strconv"
	"strings"
)

// CodePage identifies a text encoding by its Windows code page number.
type CodePage uint16

const (
	CodePageWindows874  CodePage = 874   // Thai, Windows-874.
	CodePageShiftJIS    CodePage = 932   // Japanese, Shift-JIS.
	CodePageWindows1252 CodePage = 1252  // Western European, Windows Latin-1.
	CodePageASCII       CodePage = 20127 // US-ASCII, 7-bit.
	CodePageEUCKR       CodePage = 51949 // Korean, EUC-KR.
	CodePageUTF8        CodePage = 65001 // UTF-8.
)

// DefaultCodePage is used for any file name that is not a known region.
const DefaultCodePage = CodePageUTF8

func (c CodePage) String() string {
	switch c {
	case CodePageWindows874:
		return "windows-874"
	case CodePageShiftJIS:
		return "shift_jis"
	case CodePageWindows1252:
		return "windows-1252"
	case CodePageASCII:
		return "us-ascii"
	case CodePageEUCKR:
		return "euc-kr"
	case CodePageUTF8:
		return "utf-8"
	default:
		return "cp" + strconv.Itoa(int(c))
	}
}

var codePageNames = map[string]CodePage{
	"windows-874":  CodePageWindows874,
	"tis-620":      CodePageWindows874,
	"shift_jis":    CodePageShiftJIS,
	"shift-jis":    CodePageShiftJIS,
	"sjis":         CodePageShiftJIS,
	"windows-1252": CodePageWindows1252,
	"latin1":       CodePageWindows1252,
	"us-ascii":     CodePageASCII,
	"ascii":        CodePageASCII,
	"euc-kr":       CodePageEUCKR,
	"utf-8":        CodePageUTF8,
	"utf8":         CodePageUTF8,
}

// ParseCodePage parses either a numeric code page ("932") or one of the
// encoding names returned by CodePage.String, case-insensitively.
func ParseCodePage(s string) (CodePage, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if cp, ok := codePageNames[s]; ok {
		return cp, nil
	}

	n, err := strconv.ParseUint(strings.TrimPrefix(s, "cp"), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid code page %q", s)
	}

	return CodePage(n), nil
}
