package locale

import (
	"errors"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

var errNonASCII = errors.New("byte outside 7-bit range")

// asciiEncoding is a strict US-ASCII encoding. x/text has no 7-bit charmap,
// and the legacy English table must reject anything above 0x7F rather than
// map it through Latin-1.
type asciiEncoding struct{}

func (asciiEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: asciiTransformer{}}
}

func (asciiEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: asciiTransformer{}}
}

// asciiTransformer copies 7-bit bytes and fails on anything else. ASCII and
// its UTF-8 form are byte-identical, so one transformer serves both
// directions.
type asciiTransformer struct{ transform.NopResetter }

func (asciiTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		b := src[nSrc]
		if b >= 0x80 {
			return nDst, nSrc, errNonASCII
		}
		dst[nDst] = b
		nDst++
		nSrc++
	}

	return nDst, nSrc, nil
}
