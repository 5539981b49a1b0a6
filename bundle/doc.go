// Package bundle packs several asset files into a single container.
//
// A bundle is laid out as a fixed header, a fixed-size index, a names table
// and the entry payloads:
//
//	┌────────────────────────────────────────────┐
//	│ Header (40 bytes)                          │
//	│  - Magic "PLB1"                            │
//	│  - Flags (compression in the low byte)     │
//	│  - EntryCount, NamesOffset, PayloadOffset  │
//	│  - Bundle ID (UUID)                        │
//	├────────────────────────────────────────────┤
//	│ Index (EntryCount × 24 bytes)              │
//	│  - NameID: xxHash64 of the entry name      │
//	│  - Offset/Length within the payload        │
//	│  - RawLength, Checksum of the raw payload  │
//	├────────────────────────────────────────────┤
//	│ Names (NUL-terminated UTF-8, index order)  │
//	├────────────────────────────────────────────┤
//	│ Payload (entries compressed one by one)    │
//	└────────────────────────────────────────────┘
//
// All integers are little-endian. The names table uses the same encoding as
// a DAT string table.
//
// Writing:
//
//	w, err := bundle.NewWriter(bundle.WithCompression(format.CompressionZstd))
//	if err != nil {
//		return err
//	}
//	_ = w.Add("korea.dat", koreaData)
//	_ = w.Add("Ball.iff", ballData)
//	data, err := w.Finish()
//
// Reading:
//
//	r, err := bundle.Open(data)
//	if err != nil {
//		return err
//	}
//	ball, err := r.Get("Ball.iff")
//
// Get verifies every payload against the checksum recorded at write time.
package bundle
