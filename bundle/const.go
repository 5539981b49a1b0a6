package bundle

import (
	"math"

	"github.com/pangya-tools/panglib/compress"
	"github.com/pangya-tools/panglib/format"
)

// Magic identifies version 1 bundles.
var Magic = [4]byte{'P', 'L', 'B', '1'}

const (
	HeaderSize     = 40 // fixed header size in bytes
	IndexEntrySize = 24 // fixed index entry size in bytes

	MaxEntries     = math.MaxUint16 // maximum number of entries in a bundle
	MaxPayloadSize = math.MaxUint32 // maximum total payload size in bytes

	// MaxEntrySize is the largest raw asset a bundle may hold.
	MaxEntrySize = compress.MaxDecompressedSize

	compressionMask = 0x00FF // low byte of the header flags

	// FlagNameCollision is set when two entry names share a NameID. Lookups
	// by name are unaffected; lookups by ID must then consult the names.
	FlagNameCollision = 0x0100
)

const defaultCompression = format.CompressionZstd
