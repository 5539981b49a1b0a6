package bundle

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pangya-tools/panglib/format"
	"github.com/pangya-tools/panglib/internal/options"
)

type writerConfig struct {
	compression format.CompressionType
	id          uuid.UUID
}

// WriterOption configures a Writer.
type WriterOption = options.Option[*writerConfig]

// WithCompression selects the payload compression. The default is
// format.CompressionZstd.
func WithCompression(c format.CompressionType) WriterOption {
	return options.New(func(cfg *writerConfig) error {
		if c.String() == "Unknown" {
			return fmt.Errorf("invalid bundle compression: 0x%02x", uint8(c))
		}
		cfg.compression = c

		return nil
	})
}

// WithID stamps id into the header instead of a random UUID.
func WithID(id uuid.UUID) WriterOption {
	return options.NoError(func(cfg *writerConfig) {
		cfg.id = id
	})
}
