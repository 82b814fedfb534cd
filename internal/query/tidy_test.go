package query

import (
	"reflect"
	"testing"

	"github.com/kuuji/netmirror/internal/ifaces"
	"github.com/kuuji/netmirror/internal/nlattr"
	"github.com/kuuji/netmirror/internal/rtnl"
)

func TestBuildIfacesVlanBaseIfaceFallsBackToIndexWhenBaseFiltered(t *testing.T) {
	t.Parallel()

	baseIdx := int32(99) // not present in raws below (filtered out of this dump)
	raws := []rtnl.RawLink{
		{
			Index:     2,
			Name:      "vlan100",
			Kind:      "vlan",
			LinkIndex: &baseIdx,
			InfoData:  nlattr.Iterate(nlattr.EncodeU16(ifaces.IFLA_VLAN_ID, 100)),
		},
	}

	out := buildIfaces(nil, raws, nil, "")
	if len(out) != 1 {
		t.Fatalf("got %d ifaces, want 1", len(out))
	}
	if out[0].Vlan == nil {
		t.Fatal("Vlan info missing")
	}
	if out[0].Vlan.BaseIface != "99" {
		t.Errorf("BaseIface = %q, want stringified index 99 (base link not in this snapshot)", out[0].Vlan.BaseIface)
	}
}

func TestBuildIfacesBondSubordinatesSortedAndAggregated(t *testing.T) {
	t.Parallel()

	master := int32(1)
	raws := []rtnl.RawLink{
		{Index: 1, Name: "bond0", Kind: "bond"},
		{Index: 2, Name: "zeth", Master: &master, SlaveKind: "bond"},
		{Index: 3, Name: "aeth", Master: &master, SlaveKind: "bond"},
	}

	out := buildIfaces(nil, raws, nil, "")
	var bond *Iface
	for i := range out {
		if out[i].Name == "bond0" {
			bond = &out[i]
		}
	}
	if bond == nil || bond.Bond == nil {
		t.Fatal("bond0 not found or missing Bond info")
	}
	want := []string{"aeth", "zeth"}
	if !reflect.DeepEqual(bond.Bond.Subordinates, want) {
		t.Errorf("Subordinates = %v, want %v (sorted)", bond.Bond.Subordinates, want)
	}

	for _, name := range []string{"zeth", "aeth"} {
		for _, i := range out {
			if i.Name != name {
				continue
			}
			if i.ControllerType == nil || *i.ControllerType != "bond" {
				t.Errorf("%s.ControllerType = %v, want bond", name, i.ControllerType)
			}
			if i.Controller == nil || *i.Controller != "bond0" {
				t.Errorf("%s.Controller = %v, want bond0", name, i.Controller)
			}
		}
	}
}

func TestBuildIfacesEmptyKindDistinguishesLoopbackFromEthernet(t *testing.T) {
	t.Parallel()

	raws := []rtnl.RawLink{
		{Index: 1, Name: "lo", Flags: flagLoopback},
		{Index: 2, Name: "eth0"},
	}
	out := buildIfaces(nil, raws, nil, "")
	byName := map[string]string{}
	for _, i := range out {
		byName[i.Name] = i.IfaceType
	}
	if byName["lo"] != "loopback" {
		t.Errorf("lo IfaceType = %q, want loopback", byName["lo"])
	}
	if byName["eth0"] != "ethernet" {
		t.Errorf("eth0 IfaceType = %q, want ethernet", byName["eth0"])
	}
}

func TestBuildIfacesUnknownStateDefaultsToUnknown(t *testing.T) {
	t.Parallel()

	raws := []rtnl.RawLink{{Index: 1, Name: "eth0", OperState: 99}}
	out := buildIfaces(nil, raws, nil, "")
	if out[0].State != "unknown" {
		t.Errorf("State = %q, want unknown for an unmapped oper-state byte", out[0].State)
	}
}
