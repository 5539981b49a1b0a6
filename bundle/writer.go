package bundle

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/pangya-tools/panglib/compress"
	"github.com/pangya-tools/panglib/dat"
	"github.com/pangya-tools/panglib/errs"
	"github.com/pangya-tools/panglib/internal/collision"
	"github.com/pangya-tools/panglib/internal/hash"
	"github.com/pangya-tools/panglib/internal/options"
	"github.com/pangya-tools/panglib/internal/pool"
	"github.com/pangya-tools/panglib/locale"
)

// Writer collects assets and encodes them into a bundle.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	cfg     writerConfig
	codec   compress.Codec
	names   *collision.Tracker
	payload [][]byte
	stats   compress.CompressionStats
}

// NewWriter creates a bundle writer.
//
// Returns:
//   - *Writer: Empty writer
//   - error: Invalid option
func NewWriter(opts ...WriterOption) (*Writer, error) {
	w := &Writer{
		cfg: writerConfig{
			compression: defaultCompression,
		},
		names: collision.NewTracker(),
	}
	if err := options.Apply(&w.cfg, opts...); err != nil {
		return nil, err
	}
	if w.cfg.id == uuid.Nil {
		w.cfg.id = uuid.New()
	}

	codec, err := compress.CreateCodec(w.cfg.compression, "bundle")
	if err != nil {
		return nil, err
	}
	w.codec = codec
	w.stats.Algorithm = w.cfg.compression

	return w, nil
}

// Add queues an asset. data is not copied and must not be modified until
// Finish returns.
//
// Returns:
//   - error: errs.ErrInvalidEntryName for an empty name,
//     errs.ErrEmbeddedNUL for names holding NUL bytes,
//     errs.ErrDuplicateEntry if the name is already present, or an error
//     if data is larger than MaxEntrySize
func (w *Writer) Add(name string, data []byte) error {
	if w.names.Count() >= MaxEntries {
		return fmt.Errorf("bundle entry %q: more than %d entries", name, MaxEntries)
	}
	if len(data) > MaxEntrySize {
		return fmt.Errorf("bundle entry %q: %d bytes exceeds %d", name, len(data), MaxEntrySize)
	}

	// The names table must round-trip through the DAT codec.
	if _, err := locale.UTF8().Encode(name); err != nil {
		return fmt.Errorf("bundle entry %q: %w", name, err)
	}
	if strings.IndexByte(name, dat.Terminator) >= 0 {
		return fmt.Errorf("bundle entry %q: %w", name, errs.ErrEmbeddedNUL)
	}

	if err := w.names.Track(name, hash.ID(name)); err != nil {
		return fmt.Errorf("bundle entry: %w", err)
	}
	w.payload = append(w.payload, data)

	return nil
}

// Len returns the number of queued entries.
func (w *Writer) Len() int {
	return w.names.Count()
}

// Names returns the queued entry names in insertion order.
func (w *Writer) Names() []string {
	return slices.Clone(w.names.Names())
}

// ID returns the bundle ID that Finish stamps into the header.
func (w *Writer) ID() uuid.UUID {
	return w.cfg.id
}

// Stats returns compression statistics of the last Finish call.
func (w *Writer) Stats() compress.CompressionStats {
	return w.stats
}

// Finish encodes every queued entry and returns the bundle bytes. The writer
// keeps its entries, so Finish may be called again.
func (w *Writer) Finish() ([]byte, error) {
	names := w.names.Names()
	count := len(names)
	namesOffset := HeaderSize + count*IndexEntrySize

	buf := pool.GetBundleBuffer()
	defer pool.PutBundleBuffer(buf)

	// Header and index are patched in once offsets are known.
	buf.Grow(namesOffset)
	buf.B = buf.B[:namesOffset]
	clear(buf.B)

	enc, err := dat.NewEncoder(buf, locale.UTF8())
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		if err := enc.Write(name); err != nil {
			_ = enc.Close()
			return nil, fmt.Errorf("bundle names: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("bundle names: %w", err)
	}

	payloadOffset := buf.Len()
	stats := compress.CompressionStats{Algorithm: w.cfg.compression}
	index := make([]IndexEntry, count)

	for i, name := range names {
		data := w.payload[i]
		packed, err := w.codec.Compress(data)
		if err != nil {
			return nil, fmt.Errorf("bundle entry %q: %w", name, err)
		}

		offset := buf.Len() - payloadOffset
		if uint64(offset)+uint64(len(packed)) > MaxPayloadSize || uint64(len(data)) > MaxPayloadSize {
			return nil, fmt.Errorf("bundle entry %q: payload exceeds %d bytes", name, uint64(MaxPayloadSize))
		}

		index[i] = IndexEntry{
			NameID:    hash.ID(name),
			Offset:    uint32(offset),      //nolint:gosec
			Length:    uint32(len(packed)), //nolint:gosec
			RawLength: uint32(len(data)),   //nolint:gosec
			Checksum:  hash.Checksum(data),
		}
		buf.MustWrite(packed)
		stats.Add(len(data), len(packed))
	}

	h := Header{
		EntryCount:    uint32(count),         //nolint:gosec
		NamesOffset:   uint32(namesOffset),   //nolint:gosec
		PayloadOffset: uint32(payloadOffset), //nolint:gosec
		ID:            w.cfg.id,
	}
	h.SetCompression(w.cfg.compression)
	if w.names.HasCollision() {
		h.Flags |= FlagNameCollision
	}
	copy(buf.B[0:HeaderSize], h.Bytes())

	for i := range index {
		start := HeaderSize + i*IndexEntrySize
		if err := index[i].WriteToSlice(buf.B[start : start+IndexEntrySize]); err != nil {
			return nil, err
		}
	}
	w.stats = stats

	return slices.Clone(buf.B), nil
}
