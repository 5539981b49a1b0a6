// Package iff reads and writes the game's IFF data files: an 8-byte header
// followed by a run of fixed-size records of one type.
//
//	offset  size  field
//	0       2     entry count (uint16, little-endian)
//	2       2     binding ID  (uint16)
//	4       4     version     (uint32)
//	8       n*S   n records of S bytes each
//
// Record layouts are not stored in the file; the caller supplies the
// record.Schema for the category being read. This package ships the schemas
// for the US Season 8 Ball category and the sub-records it embeds (Common,
// Date, Stats), together with typed Go structs and conversions.
package iff
