package locale

import (
	"errors"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

var errNotKSX1001 = errors.New("byte sequence outside the KS X 1001 range")

// eucKREncoding is code page 51949. korean.EUCKR implements the Windows
// superset (CP949/UHC), so its output and input are filtered through a
// transformer that only admits ASCII and two-byte KS X 1001 sequences.
type eucKREncoding struct{}

func (eucKREncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: transform.Chain(eucKRFilter{}, korean.EUCKR.NewDecoder())}
}

func (eucKREncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: transform.Chain(korean.EUCKR.NewEncoder(), eucKRFilter{})}
}

func isKSX1001Byte(b byte) bool {
	return b >= 0xA1 && b <= 0xFE
}

// eucKRFilter copies ASCII bytes and lead/trail pairs in 0xA1-0xFE and fails
// on anything else, including a lead byte left dangling at EOF.
type eucKRFilter struct{ transform.NopResetter }

func (eucKRFilter) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		b := src[nSrc]
		if b < 0x80 {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = b
			nDst++
			nSrc++

			continue
		}

		if !isKSX1001Byte(b) {
			return nDst, nSrc, errNotKSX1001
		}
		if nSrc+1 >= len(src) {
			if atEOF {
				return nDst, nSrc, errNotKSX1001
			}

			return nDst, nSrc, transform.ErrShortSrc
		}
		if !isKSX1001Byte(src[nSrc+1]) {
			return nDst, nSrc, errNotKSX1001
		}
		if nDst+1 >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst], dst[nDst+1] = b, src[nSrc+1]
		nDst += 2
		nSrc += 2
	}

	return nDst, nSrc, nil
}
