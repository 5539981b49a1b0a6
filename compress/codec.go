package compress

import (
	"fmt"

	"github.com/pangya-tools/panglib/format"
)

// Compressor compresses a single bundle entry payload.
type Compressor interface {
	// Compress returns the compressed form of data. The input slice is not
	// modified; the result may share memory with it only for CompressionNone.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor.
type Decompressor interface {
	// Decompress returns the original payload. Corrupted input or data from a
	// different algorithm yields an error.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// SizedDecompressor is implemented by codecs that can decode straight into a
// buffer of known size.
type SizedDecompressor interface {
	DecompressSized(data []byte, size int) ([]byte, error)
}

// CompressionStats summarizes the effect of compressing a set of payloads.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64
}

// Add accounts for one payload.
func (s *CompressionStats) Add(original, compressed int) {
	s.OriginalSize += int64(original)
	s.CompressedSize += int64(compressed)
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Compressor instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// MaxDecompressedSize caps the output of a single decompression. Sizes read
// from untrusted headers are checked against it before any buffer is
// allocated.
const MaxDecompressedSize = 128 * 1024 * 1024

// DecompressSized decompresses data whose original length is known.
//
// Codecs implementing SizedDecompressor decode into an exact buffer; the
// others decode normally and the result length is checked.
//
// Returns:
//   - []byte: Decompressed payload of exactly size bytes
//   - error: Decompression error, a length mismatch, or a size outside
//     [0, MaxDecompressedSize]
func DecompressSized(codec Codec, data []byte, size int) ([]byte, error) {
	if size < 0 || size > MaxDecompressedSize {
		return nil, fmt.Errorf("decompressed size %d outside [0, %d]", size, MaxDecompressedSize)
	}

	if sd, ok := codec.(SizedDecompressor); ok {
		return sd.DecompressSized(data, size)
	}

	out, err := codec.Decompress(data)
	if err != nil {
		return nil, err
	}
	if len(out) != size {
		return nil, fmt.Errorf("decompressed %d bytes, want %d", len(out), size)
	}

	return out, nil
}
