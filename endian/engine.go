// Package endian provides the byte order abstraction used by the record and
// bundle codecs.
//
// EndianEngine combines encoding/binary's ByteOrder and AppendByteOrder, so a
// codec can both patch fixed offsets (PutUint32) and grow buffers
// (AppendUint32) through one value:
//
//	engine := endian.GetLittleEndianEngine()
//	engine.PutUint32(buf[4:8], count)
//	buf = engine.AppendUint16(buf, id)
//
// Every legacy asset was produced on x86, so little-endian is the default
// everywhere in panglib. Big-endian and the host order are available for
// tooling that reads dumps produced elsewhere.
//
// All engines are immutable and safe for concurrent use.
package endian

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetNativeEngine returns the engine matching the host byte order.
func GetNativeEngine() EndianEngine {
	// 0x0100: a little-endian host stores the 0x00 byte first.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsLittleEndian reports whether engine writes the least significant byte first.
func IsLittleEndian(engine EndianEngine) bool {
	var b [2]byte
	engine.PutUint16(b[:], 0x0001)

	return b[0] == 0x01
}

// Parse returns the engine named by s: "little", "big" or "native"
// (case-insensitive, "le"/"be" accepted).
func Parse(s string) (EndianEngine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "little", "le", "little-endian":
		return GetLittleEndianEngine(), nil
	case "big", "be", "big-endian":
		return GetBigEndianEngine(), nil
	case "native":
		return GetNativeEngine(), nil
	default:
		return nil, fmt.Errorf("unknown byte order %q", s)
	}
}

// Name returns "little" or "big" for engine.
func Name(engine EndianEngine) string {
	if IsLittleEndian(engine) {
		return "little"
	}

	return "big"
}
