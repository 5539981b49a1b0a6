// Package errs declares the sentinel errors returned by panglib packages.
//
// Call sites wrap these with additional context using fmt.Errorf and %w,
// so callers should match them with errors.Is rather than by string:
//
//	f, err := dat.Load("korea.dat")
//	if errors.Is(err, errs.ErrIO) {
//	    // file could not be opened or read
//	}
package errs

import "errors"

// Configuration errors.
var (
	// ErrNoEncoding is returned when a text codec is required but none was
	// bound and none could be derived from a file name.
	ErrNoEncoding = errors.New("no encoding bound: supply a file name or set the encoding explicitly")
	// ErrUnknownCodePage is returned for a code page with no registered codec.
	ErrUnknownCodePage = errors.New("unknown code page")
)

// I/O errors.
var (
	// ErrIO wraps failures opening, reading or writing an asset file.
	ErrIO = errors.New("asset file i/o failed")
)

// Text codec errors.
var (
	// ErrDecode is returned when a byte sequence is invalid for the active code page.
	ErrDecode = errors.New("invalid byte sequence for code page")
	// ErrEncode is returned when a string holds runes the active code page cannot represent.
	ErrEncode = errors.New("string not representable in code page")
	// ErrEmbeddedNUL is returned when a string table entry encodes to bytes containing NUL.
	ErrEmbeddedNUL = errors.New("entry contains a NUL byte")
)

// Fixed record errors.
var (
	ErrSizeMismatch   = errors.New("buffer size does not match record size")
	ErrStringOverflow = errors.New("encoded string exceeds field width")
	ErrSchema         = errors.New("invalid record schema")
	ErrUnknownField   = errors.New("unknown record field")
	ErrFieldType      = errors.New("record field type mismatch")
	ErrSchemaMismatch = errors.New("record schema mismatch")
)

// Container errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid header size")
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	ErrInvalidIndexOffset = errors.New("invalid index offsets")
	ErrChecksumMismatch   = errors.New("payload checksum mismatch")
	ErrEntryNotFound      = errors.New("entry not found")
	ErrDuplicateEntry     = errors.New("duplicate entry name")
	ErrInvalidEntryName   = errors.New("invalid entry name")
	ErrInvalidEntrySize   = errors.New("invalid index entry size")
)
