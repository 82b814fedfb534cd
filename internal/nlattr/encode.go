package nlattr

import "encoding/binary"

// Encode builds one attribute header+value, padded to a 4-byte boundary,
// the inverse of what Iterate decodes.
func Encode(typ uint16, value []byte) []byte {
	length := hdrLen + len(value)
	buf := make([]byte, align4(length))
	binary.LittleEndian.PutUint16(buf[0:2], uint16(length))
	binary.LittleEndian.PutUint16(buf[2:4], typ)
	copy(buf[hdrLen:], value)
	return buf
}

// EncodeNested builds a nested attribute, setting NLA_F_NESTED on the type.
func EncodeNested(typ uint16, children []byte) []byte {
	return Encode(typ|nestedFlag, children)
}

// EncodeU8 builds a single-byte attribute.
func EncodeU8(typ uint16, v uint8) []byte { return Encode(typ, []byte{v}) }

// EncodeU16 builds a native-endian uint16 attribute.
func EncodeU16(typ uint16, v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return Encode(typ, b)
}

// EncodeU16BE builds a big-endian uint16 attribute.
func EncodeU16BE(typ uint16, v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return Encode(typ, b)
}

// EncodeU32 builds a native-endian uint32 attribute.
func EncodeU32(typ uint16, v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return Encode(typ, b)
}

// EncodeU64 builds a native-endian uint64 attribute.
func EncodeU64(typ uint16, v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return Encode(typ, b)
}

// EncodeString builds a NUL-terminated string attribute.
func EncodeString(typ uint16, s string) []byte {
	return Encode(typ, append([]byte(s), 0))
}

// EncodeIP builds a raw IPv4/IPv6 address attribute from already-sized bytes.
func EncodeIP(typ uint16, ip []byte) []byte { return Encode(typ, ip) }

// LE32 reads a little-endian uint32 out of a fixed-layout message header
// field (e.g. ifinfomsg.ifi_index), where the caller already knows the
// slice is long enough. Unlike the primitive decoders in primitives.go this
// never returns an error — it is only used on fields whose length the
// message framing already guarantees.
func LE32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}
