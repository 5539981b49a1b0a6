// Package panglib reads and writes the localized asset files of the PangYa
// client.
//
// Two legacy file families are supported, byte for byte:
//
//   - DAT string tables: NUL-terminated strings in a code page chosen by
//     the file name (korea.dat is EUC-KR, japan.dat is Shift-JIS, ...)
//   - IFF item tables: an 8-byte header followed by fixed-layout records
//     with embedded fixed-width strings and nested structures
//
// Assets can also be shipped together in a bundle, a compressed container
// with per-entry checksums.
//
// # Basic Usage
//
// Reading and editing a string table:
//
//	import "github.com/pangya-tools/panglib"
//
//	table, err := panglib.LoadDAT("data/korea.dat")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	table.Entries[3] = "새 문자열"
//	err = table.Save("out/korea.dat")
//
// Decoding the Ball item table:
//
//	balls, err := panglib.LoadBalls("data/Ball.iff", locale.MustForCodePage(locale.CodePageEUCKR))
//	for _, b := range balls {
//	    fmt.Println(b.Header.ID, b.Header.Name)
//	}
//
// Decoding a single record of a custom layout:
//
//	schema := record.MustSchema("Sample", []record.Field{
//	    record.Uint32("count"),
//	    record.String("name", 8),
//	})
//	rec, err := panglib.DecodeRecord(schema, data, locale.ASCII())
//
// # Package Structure
//
// This package provides convenient top-level wrappers. The sub-packages
// give full control:
//
//   - locale: code pages and file name resolution
//   - dat: string table codec
//   - record: schema-driven fixed record codec
//   - iff: IFF container and the shipped item schemas
//   - bundle: asset bundle container
//   - errs: sentinel errors for errors.Is
package panglib

import (
	"github.com/pangya-tools/panglib/dat"
	"github.com/pangya-tools/panglib/iff"
	"github.com/pangya-tools/panglib/internal/hash"
	"github.com/pangya-tools/panglib/locale"
	"github.com/pangya-tools/panglib/record"
)

// ResolveEncoding returns the text codec for a file name.
//
// The base name is stripped of its extension and lower-cased; known region
// names select their legacy code page and anything else selects UTF-8.
//
// Example:
//
//	codec, _ := panglib.ResolveEncoding("data/japan.dat")
//	fmt.Println(codec.CodePage()) // 932
func ResolveEncoding(nameHint string) (*locale.Codec, error) {
	return locale.Resolve(nameHint)
}

// LoadDAT reads a string table, choosing its encoding from the file name.
//
// Parameters:
//   - path: Path of the table; its base name selects the code page
//   - opts: dat.ReadOption values such as dat.WithStrictTerminator()
//
// Returns:
//   - *dat.File: Table bound to the resolved codec
//   - error: errs.ErrNoEncoding, errs.ErrIO or errs.ErrDecode
func LoadDAT(path string, opts ...dat.ReadOption) (*dat.File, error) {
	return dat.Load(path, opts...)
}

// NewDAT creates an empty string table whose encoding follows nameHint.
func NewDAT(nameHint string) (*dat.File, error) {
	codec, err := locale.Resolve(nameHint)
	if err != nil {
		return nil, err
	}

	return dat.New(codec), nil
}

// DecodeRecord decodes one fixed record. Strings are decoded with text.
func DecodeRecord(schema *record.Schema, data []byte, text *locale.Codec) (*record.Record, error) {
	return record.NewCodec(text).Decode(schema, data)
}

// EncodeRecord encodes one fixed record. Strings are encoded with text.
func EncodeRecord(r *record.Record, text *locale.Codec) ([]byte, error) {
	return record.NewCodec(text).Encode(r)
}

// LoadBalls reads a Ball item table and converts every record.
func LoadBalls(path string, text *locale.Codec) ([]iff.Ball, error) {
	f, err := iff.Load(path, iff.BallSchema, text)
	if err != nil {
		return nil, err
	}

	return f.Balls()
}

// EntryID returns the identifier bundles use for an entry name.
//
// Bundle indexes store this 64-bit xxHash64 instead of the name, so it can
// be used to match index entries without decoding the names table.
func EntryID(name string) uint64 {
	return hash.ID(name)
}
