package ifaces

import (
	"fmt"

	"github.com/kuuji/netmirror/internal/nlattr"
)

// lftSeconds renders a netlink lifetime field (IFA_CACHEINFO valid/preferred,
// both uint32 seconds) the way every kind-specific consumer needs it
// stringified: the kernel's "permanent" sentinel 0xFFFFFFFF becomes "forever".
func lftSeconds(sec uint32) string {
	if sec == 0xFFFFFFFF {
		return "forever"
	}
	return fmt.Sprintf("%dsec", sec)
}

// boolU8 reads a one-byte boolean attribute, defaulting to false when absent.
func boolU8(m map[uint16]nlattr.Attr, typ uint16) bool {
	a, ok := m[typ]
	if !ok {
		return false
	}
	v, err := nlattr.U8(a.Value)
	return err == nil && v != 0
}

// u8 reads a one-byte attribute, returning ok=false when absent or short.
func u8(m map[uint16]nlattr.Attr, typ uint16) (uint8, bool) {
	a, ok := m[typ]
	if !ok {
		return 0, false
	}
	v, err := nlattr.U8(a.Value)
	return v, err == nil
}

func u16(m map[uint16]nlattr.Attr, typ uint16) (uint16, bool) {
	a, ok := m[typ]
	if !ok {
		return 0, false
	}
	v, err := nlattr.U16(a.Value)
	return v, err == nil
}

func u16be(m map[uint16]nlattr.Attr, typ uint16) (uint16, bool) {
	a, ok := m[typ]
	if !ok {
		return 0, false
	}
	v, err := nlattr.U16BE(a.Value)
	return v, err == nil
}

func u32(m map[uint16]nlattr.Attr, typ uint16) (uint32, bool) {
	a, ok := m[typ]
	if !ok {
		return 0, false
	}
	v, err := nlattr.U32(a.Value)
	return v, err == nil
}

func u64(m map[uint16]nlattr.Attr, typ uint16) (uint64, bool) {
	a, ok := m[typ]
	if !ok {
		return 0, false
	}
	v, err := nlattr.U64(a.Value)
	return v, err == nil
}

func cstring(m map[uint16]nlattr.Attr, typ uint16) (string, bool) {
	a, ok := m[typ]
	if !ok {
		return "", false
	}
	return nlattr.CString(a.Value), true
}

func mac(m map[uint16]nlattr.Attr, typ uint16) (string, bool) {
	a, ok := m[typ]
	if !ok {
		return "", false
	}
	v, err := nlattr.MAC(a.Value)
	return v, err == nil
}

func ipv4(m map[uint16]nlattr.Attr, typ uint16) (string, bool) {
	a, ok := m[typ]
	if !ok {
		return "", false
	}
	ip, err := nlattr.IPv4(a.Value)
	if err != nil {
		return "", false
	}
	return ip.String(), true
}

func ipv6(m map[uint16]nlattr.Attr, typ uint16) (string, bool) {
	a, ok := m[typ]
	if !ok {
		return "", false
	}
	ip, err := nlattr.IPv6(a.Value)
	if err != nil {
		return "", false
	}
	return ip.String(), true
}

// resolveIndex turns a kernel ifindex embedded in a kind's attribute vector
// into an interface name, falling back to the stringified index when the
// index isn't present in the snapshot being built (e.g. a link in another
// namespace) — see the tidy-up pass in internal/query for the final rewrite.
func resolveIndex(byIndex map[int]string, idx int32) string {
	if name, ok := byIndex[int(idx)]; ok {
		return name
	}
	return fmt.Sprintf("%d", idx)
}
