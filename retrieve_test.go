package netmirror

import (
	"reflect"
	"testing"

	"github.com/kuuji/netmirror/internal/mptcp"
	"github.com/kuuji/netmirror/internal/query"
)

func TestAddrFamilyString(t *testing.T) {
	t.Parallel()

	if got := addrFamilyString(2); got != "ipv4" {
		t.Errorf("addrFamilyString(2) = %q, want ipv4", got)
	}
	if got := addrFamilyString(10); got != "ipv6" {
		t.Errorf("addrFamilyString(10) = %q, want ipv6", got)
	}
}

func TestFromQueryRouteCopiesFieldsAndDereferencesMetric(t *testing.T) {
	t.Parallel()

	metric := uint32(100)
	qr := query.Route{
		AddressFamily: 10,
		Table:         254,
		Protocol:      "static",
		Scope:         "universe",
		RouteType:     "unicast",
		Dst:           "2001:db8::/32",
		Oif:           "eth0",
		Metric:        &metric,
	}
	r := fromQueryRoute(qr)
	if r.AddressFamily != "ipv6" {
		t.Errorf("AddressFamily = %q, want ipv6", r.AddressFamily)
	}
	if r.Protocol != ProtoStatic {
		t.Errorf("Protocol = %q, want static", r.Protocol)
	}
	if r.Metric != 100 {
		t.Errorf("Metric = %d, want 100", r.Metric)
	}
	if r.Oif != "eth0" {
		t.Errorf("Oif = %q, want eth0", r.Oif)
	}
}

func TestFromQueryRouteZeroMetricWhenAbsent(t *testing.T) {
	t.Parallel()

	r := fromQueryRoute(query.Route{AddressFamily: 2})
	if r.Metric != 0 {
		t.Errorf("Metric = %d, want 0 when query.Route.Metric is nil", r.Metric)
	}
}

func TestFromQueryRuleConvertsSuppressPrefixLenAndPriority(t *testing.T) {
	t.Parallel()

	spl := 24
	prio := uint32(1000)
	qr := query.Rule{
		AddressFamily:     2,
		Action:            "table",
		SuppressPrefixLen: &spl,
		Priority:          &prio,
	}
	r := fromQueryRule(qr)
	if r.SuppressPrefixLen == nil || *r.SuppressPrefixLen != 24 {
		t.Errorf("SuppressPrefixLen = %v, want 24", r.SuppressPrefixLen)
	}
	if r.Priority != 1000 {
		t.Errorf("Priority = %d, want 1000", r.Priority)
	}
	if r.AddressFamily != "ipv4" {
		t.Errorf("AddressFamily = %q, want ipv4", r.AddressFamily)
	}
}

func TestFromMptcpAddressDecodesFlagBits(t *testing.T) {
	t.Parallel()

	a := mptcp.Address{ID: 3, Address: "10.0.0.1", Port: 4000, Flags: (1 << 0) | (1 << 2)}
	ma := fromMptcpAddress(a)

	if ma.ID == nil || *ma.ID != 3 {
		t.Errorf("ID = %v, want 3", ma.ID)
	}
	if ma.Port == nil || *ma.Port != 4000 {
		t.Errorf("Port = %v, want 4000", ma.Port)
	}
	want := []string{"signal", "backup"}
	if !reflect.DeepEqual(ma.Flags, want) {
		t.Errorf("Flags = %v, want %v", ma.Flags, want)
	}
}

func TestFromMptcpAddressOmitsPortWhenZero(t *testing.T) {
	t.Parallel()

	ma := fromMptcpAddress(mptcp.Address{ID: 1, Address: "10.0.0.1"})
	if ma.Port != nil {
		t.Errorf("Port = %v, want nil when raw port is 0", ma.Port)
	}
}

func TestFromQueryMptcpResolvesIfaceNameFromIndex(t *testing.T) {
	t.Parallel()

	m := &query.MptcpState{
		Enabled: true,
		Addresses: []mptcp.Address{
			{ID: 1, Address: "10.0.0.1", Iface: 3},
		},
	}
	byIndex := map[int]string{3: "eth0"}

	out := fromQueryMptcp(m, byIndex)
	if len(out.Addresses) != 1 {
		t.Fatalf("got %d addresses, want 1", len(out.Addresses))
	}
	if out.Addresses[0].Iface != "eth0" {
		t.Errorf("Iface = %q, want eth0", out.Addresses[0].Iface)
	}
}
