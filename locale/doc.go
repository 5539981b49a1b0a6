// Package locale maps asset file names to the legacy code pages their text is
// stored in, and provides strict text codecs for those code pages.
//
// The game client ships one string table per region and the region is only
// recorded in the file name, so the mapping below is a compatibility contract
// with the existing asset set:
//
//	korea                            51949 (EUC-KR)
//	japan                            932   (Shift-JIS)
//	english                          20127 (US-ASCII)
//	thailand                         874   (Windows-874)
//	indonesia                        65001 (UTF-8)
//	brasil, spanish, german, french  1252  (Windows-1252)
//	anything else                    65001 (UTF-8)
//
// The lookup key is the lower-cased base name with its extension stripped, so
// "data/Korea.dat" and "KOREA" resolve identically.
//
// # Strictness
//
// Codec.Decode and Codec.Encode never substitute replacement characters.
// Input that is not valid for the code page fails with errs.ErrDecode, and a
// string holding runes the code page cannot represent fails with
// errs.ErrEncode.
//
// # Thread Safety
//
// Codecs are immutable and safe for concurrent use. The code page registry is
// built once, lazily, on first use.
package locale
