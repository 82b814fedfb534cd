package query

import (
	"encoding/binary"
	"net"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/kuuji/netmirror/internal/nlattr"
	"github.com/kuuji/netmirror/internal/rtnl"
)

func TestConvertRouteDecodesIPv4Fields(t *testing.T) {
	t.Parallel()

	var attrs []nlattr.Attr
	attrs = append(attrs, nlattr.Attr{Type: rtaDst, Value: net.ParseIP("10.0.0.0").To4()})
	attrs = append(attrs, nlattr.Attr{Type: rtaGateway, Value: net.ParseIP("10.0.0.1").To4()})
	attrs = append(attrs, nlattr.Attr{Type: rtaOif, Value: leU32(2)})
	attrs = append(attrs, nlattr.Attr{Type: rtaPriority, Value: leU32(100)})

	raw := rtnl.RawRoute{
		Family:   unix.AF_INET,
		DstLen:   24,
		Table:    254,
		Protocol: 4, // static
		Scope:    0, // universe
		Type:     1, // unicast
		Attrs:    attrs,
	}
	byIndex := map[int]string{2: "eth0"}

	r := convertRoute(raw, byIndex)

	if r.Dst != "10.0.0.0" {
		t.Errorf("Dst = %q, want 10.0.0.0", r.Dst)
	}
	if r.Gateway != "10.0.0.1" {
		t.Errorf("Gateway = %q, want 10.0.0.1", r.Gateway)
	}
	if r.Oif != "eth0" {
		t.Errorf("Oif = %q, want eth0", r.Oif)
	}
	if r.Protocol != "static" {
		t.Errorf("Protocol = %q, want static", r.Protocol)
	}
	if r.Scope != "universe" {
		t.Errorf("Scope = %q, want universe", r.Scope)
	}
	if r.RouteType != "unicast" {
		t.Errorf("RouteType = %q, want unicast", r.RouteType)
	}
	if r.Metric == nil || *r.Metric != 100 {
		t.Errorf("Metric = %v, want 100", r.Metric)
	}
	if r.Table != 254 {
		t.Errorf("Table = %d, want 254 (from header, no RTA_TABLE override)", r.Table)
	}
}

func TestConvertRouteUnknownProtocolAndTypeFallBackToOther(t *testing.T) {
	t.Parallel()

	raw := rtnl.RawRoute{Family: unix.AF_INET, Protocol: 0xaa, Type: 0xbb}
	r := convertRoute(raw, map[int]string{})
	if r.Protocol != "other" {
		t.Errorf("Protocol = %q, want other", r.Protocol)
	}
	if r.RouteType != "other" {
		t.Errorf("RouteType = %q, want other", r.RouteType)
	}
}

func TestConvertRouteRtaTableOverridesHeaderTable(t *testing.T) {
	t.Parallel()

	attrs := []nlattr.Attr{{Type: rtaTable, Value: leU32(1000)}}
	raw := rtnl.RawRoute{Family: unix.AF_INET, Table: 254, Attrs: attrs}
	r := convertRoute(raw, map[int]string{})
	if r.Table != 1000 {
		t.Errorf("Table = %d, want 1000 (RTA_TABLE extends the 8-bit header field)", r.Table)
	}
}

func TestConvertRouteIPv6Addresses(t *testing.T) {
	t.Parallel()

	dst := net.ParseIP("2001:db8::1").To16()
	attrs := []nlattr.Attr{{Type: rtaDst, Value: dst}}
	raw := rtnl.RawRoute{Family: unix.AF_INET6, Attrs: attrs}
	r := convertRoute(raw, map[int]string{})
	if r.Dst != "2001:db8::1" {
		t.Errorf("Dst = %q, want 2001:db8::1", r.Dst)
	}
}

func leU32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}
