// Package compress provides the payload codecs of bundle containers.
//
// Every codec implements Codec. Bundles record the algorithm in their header
// as a format.CompressionType, and GetCodec maps it back to a shared codec:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//		return err
//	}
//	packed, err := codec.Compress(payload)
//
// Entries also record their uncompressed length, so readers call
// DecompressSized to size the output exactly and reject payloads whose
// decoded length disagrees with the index.
//
// Supported algorithms:
//   - None: payloads are stored unmodified
//   - Zstd: best ratio, pooled klauspost/compress encoders
//   - S2: fast Snappy-compatible blocks
//   - LZ4: fast blocks from pierrec/lz4
//
// All codecs are safe for concurrent use.
package compress
