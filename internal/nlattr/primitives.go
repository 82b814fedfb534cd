package nlattr

import (
	"encoding/binary"
	"fmt"
	"net"
)

// ErrShort is wrapped into every primitive-parse failure caused by a value
// slice shorter than the type being decoded demands. Callers that need the
// taxonomy's InvalidArgument/Bug distinction wrap this further; the codec
// itself only knows "too short".
type ErrShort struct {
	Want int
	Got  int
}

func (e *ErrShort) Error() string {
	return fmt.Sprintf("nlattr: value too short: want %d bytes, got %d", e.Want, e.Got)
}

func need(b []byte, n int) error {
	if len(b) < n {
		return &ErrShort{Want: n, Got: len(b)}
	}
	return nil
}

// U8 decodes a single byte.
func U8(b []byte) (uint8, error) {
	if err := need(b, 1); err != nil {
		return 0, err
	}
	return b[0], nil
}

// U16 decodes a native-endian (little-endian on all supported kernels) uint16.
func U16(b []byte) (uint16, error) {
	if err := need(b, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// U16BE decodes a big-endian uint16, used for the handful of fields (e.g.
// VXLAN port range) the kernel always emits in network byte order regardless
// of host endianness.
func U16BE(b []byte) (uint16, error) {
	if err := need(b, 2); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// I32 decodes a native-endian int32.
func I32(b []byte) (int32, error) {
	if err := need(b, 4); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

// U32 decodes a native-endian uint32.
func U32(b []byte) (uint32, error) {
	if err := need(b, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// U32BE decodes a big-endian uint32.
func U32BE(b []byte) (uint32, error) {
	if err := need(b, 4); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// U64 decodes a native-endian uint64.
func U64(b []byte) (uint64, error) {
	if err := need(b, 8); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// CString decodes a NUL-terminated string, stopping at the first NUL byte
// (or end of slice if none is present).
func CString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// IPv4 decodes a 4-byte IPv4 address.
func IPv4(b []byte) (net.IP, error) {
	if err := need(b, net.IPv4len); err != nil {
		return nil, err
	}
	ip := make(net.IP, net.IPv4len)
	copy(ip, b[:net.IPv4len])
	return ip, nil
}

// IPv6 decodes a 16-byte IPv6 address.
func IPv6(b []byte) (net.IP, error) {
	if err := need(b, net.IPv6len); err != nil {
		return nil, err
	}
	ip := make(net.IP, net.IPv6len)
	copy(ip, b[:net.IPv6len])
	return ip, nil
}

// MAC decodes a hardware address of arbitrary (but non-zero) length and
// renders it as lowercase colon-separated hex, e.g. "02:de:ad:be:ef:01".
func MAC(b []byte) (string, error) {
	if len(b) == 0 {
		return "", &ErrShort{Want: 1, Got: 0}
	}
	return net.HardwareAddr(b).String(), nil
}
