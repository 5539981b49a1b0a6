package bundle

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/pangya-tools/panglib/compress"
	"github.com/pangya-tools/panglib/dat"
	"github.com/pangya-tools/panglib/errs"
	"github.com/pangya-tools/panglib/format"
	"github.com/pangya-tools/panglib/internal/hash"
	"github.com/pangya-tools/panglib/locale"
)

// Reader provides random access to the entries of an encoded bundle.
//
// A Reader holds a reference to the bundle bytes and is safe for concurrent
// use.
type Reader struct {
	header  Header
	entries []IndexEntry
	names   []string
	byName  map[string]int
	payload []byte
	codec   compress.Codec
}

// Open validates the header, index and names table of a bundle. Payloads
// are only decompressed and verified by Get.
//
// Returns:
//   - *Reader: Reader over data
//   - error: errs.ErrInvalidHeaderSize, errs.ErrInvalidMagicNumber, or
//     errs.ErrInvalidIndexOffset for inconsistent offsets, names and
//     raw lengths above MaxEntrySize
func Open(data []byte) (*Reader, error) {
	var h Header
	if err := h.Parse(data); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(h.Compression())
	if err != nil {
		return nil, fmt.Errorf("bundle header: %w", err)
	}

	count := uint64(h.EntryCount)
	if count > MaxEntries {
		return nil, fmt.Errorf("%w: %d entries", errs.ErrInvalidIndexOffset, count)
	}
	if uint64(h.NamesOffset) != HeaderSize+count*IndexEntrySize {
		return nil, fmt.Errorf("%w: names offset %d for %d entries", errs.ErrInvalidIndexOffset, h.NamesOffset, count)
	}
	if h.PayloadOffset < h.NamesOffset || uint64(h.PayloadOffset) > uint64(len(data)) {
		return nil, fmt.Errorf("%w: payload offset %d", errs.ErrInvalidIndexOffset, h.PayloadOffset)
	}

	r := &Reader{
		header:  h,
		entries: make([]IndexEntry, count),
		byName:  make(map[string]int, count),
		payload: data[h.PayloadOffset:],
		codec:   codec,
	}

	for i := range r.entries {
		start := HeaderSize + i*IndexEntrySize
		e, err := ParseIndexEntry(data[start : start+IndexEntrySize])
		if err != nil {
			return nil, err
		}
		if e.RawLength > MaxEntrySize {
			return nil, fmt.Errorf("%w: entry %d raw length %d exceeds %d",
				errs.ErrInvalidIndexOffset, i, e.RawLength, MaxEntrySize)
		}
		if e.end() > uint64(len(r.payload)) {
			return nil, fmt.Errorf("%w: entry %d ends at %d, payload is %d bytes",
				errs.ErrInvalidIndexOffset, i, e.end(), len(r.payload))
		}
		r.entries[i] = e
	}

	names, err := dat.Parse(data[h.NamesOffset:h.PayloadOffset], locale.UTF8(), dat.WithStrictTerminator())
	if err != nil {
		return nil, fmt.Errorf("bundle names: %w", err)
	}
	if names.Len() != len(r.entries) {
		return nil, fmt.Errorf("%w: %d names for %d entries", errs.ErrInvalidIndexOffset, names.Len(), len(r.entries))
	}
	r.names = names.Entries

	for i, name := range r.names {
		if hash.ID(name) != r.entries[i].NameID {
			return nil, fmt.Errorf("%w: entry %d name %q does not match its id", errs.ErrInvalidIndexOffset, i, name)
		}
		if _, dup := r.byName[name]; dup {
			return nil, fmt.Errorf("bundle entry %q: %w", name, errs.ErrDuplicateEntry)
		}
		r.byName[name] = i
	}

	return r, nil
}

// ID returns the bundle ID.
func (r *Reader) ID() uuid.UUID {
	return r.header.ID
}

// Header returns the parsed bundle header.
func (r *Reader) Header() Header {
	return r.header
}

// Compression returns the payload compression type.
func (r *Reader) Compression() format.CompressionType {
	return r.header.Compression()
}

// Len returns the number of entries.
func (r *Reader) Len() int {
	return len(r.entries)
}

// Names returns the entry names in index order.
func (r *Reader) Names() []string {
	return slices.Clone(r.names)
}

// Entry returns the index entry of the named asset.
func (r *Reader) Entry(name string) (IndexEntry, bool) {
	i, ok := r.byName[name]
	if !ok {
		return IndexEntry{}, false
	}

	return r.entries[i], true
}

// Get decompresses and verifies the named asset.
//
// Returns:
//   - []byte: Raw asset bytes
//   - error: errs.ErrEntryNotFound for unknown names, errs.ErrChecksumMismatch
//     if the payload is corrupt
func (r *Reader) Get(name string) ([]byte, error) {
	i, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("bundle entry %q: %w", name, errs.ErrEntryNotFound)
	}

	return r.get(i)
}

func (r *Reader) get(i int) ([]byte, error) {
	e := r.entries[i]
	stored := r.payload[e.Offset:e.end()]

	raw, err := compress.DecompressSized(r.codec, stored, int(e.RawLength))
	if err != nil {
		return nil, fmt.Errorf("bundle entry %q: %w: %w", r.names[i], errs.ErrChecksumMismatch, err)
	}
	if hash.Checksum(raw) != e.Checksum {
		return nil, fmt.Errorf("bundle entry %q: %w", r.names[i], errs.ErrChecksumMismatch)
	}

	return slices.Clone(raw), nil
}

// Verify checks every entry payload against its checksum.
func (r *Reader) Verify() error {
	for i := range r.entries {
		if _, err := r.get(i); err != nil {
			return err
		}
	}

	return nil
}
