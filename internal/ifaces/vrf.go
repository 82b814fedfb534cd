package ifaces

import "github.com/kuuji/netmirror/internal/nlattr"

// ParseVrf decodes IFLA_INFO_DATA for a VRF controller. Subordinates is left
// for the caller to fill in from the reverse IFLA_MASTER scan (§4.5 tidy-up);
// this function only reads the table id the kernel puts on the master link.
func ParseVrf(data []nlattr.Attr) *Vrf {
	m := nlattr.Map(data)
	info := &Vrf{}
	if v, ok := u32(m, IFLA_VRF_TABLE); ok {
		info.TableID = v
	}
	return info
}

// ParseVrfSubordinate builds the per-member VRF record from the controller's
// table id, since the kernel does not repeat IFLA_VRF_TABLE on member links.
func ParseVrfSubordinate(tableID uint32) *VrfSubordinate {
	return &VrfSubordinate{TableID: tableID}
}
