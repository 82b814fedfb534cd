package ifaces

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kuuji/netmirror/internal/nlattr"
)

// IFLA_VF_INFO and its nested IFLA_VF_* children are not modeled in
// consts.go because SR-IOV VF data arrives nested two levels deep
// (IFLA_VFINFO_LIST > IFLA_VF_INFO > IFLA_VF_*) and is parsed entirely here.
const (
	ifla_vfinfo_list = 22
	ifla_vf_info     = 1

	ifla_vf_mac        = 1
	ifla_vf_vlan       = 2
	ifla_vf_tx_rate    = 3
	ifla_vf_spoofchk   = 4
	ifla_vf_link_state = 5
	ifla_vf_rate       = 6
	ifla_vf_rss_query_en = 7
	ifla_vf_trust      = 9
)

// ParseSriov decodes IFLA_VFINFO_LIST for a physical-function interface,
// then resolves each VF's representor interface name from sysfs
// (/sys/class/net/<pf>/device/virtfn<id>/net/), which netlink itself does
// not report (§4.2 sysfs merge note).
func ParseSriov(topLevel []nlattr.Attr, pfName string, sysfsRoot string) *Sriov {
	listAttr, ok := nlattr.Find(topLevel, ifla_vfinfo_list)
	if !ok {
		return nil
	}
	var vfs []SriovVF
	for _, entry := range nlattr.Nested(listAttr) {
		if entry.Type != ifla_vf_info {
			continue
		}
		vf := parseOneVF(nlattr.Nested(entry))
		vfs = append(vfs, vf)
	}
	if len(vfs) == 0 {
		return nil
	}
	for i := range vfs {
		vfs[i].IfaceName = resolveVFIfaceName(sysfsRoot, pfName, vfs[i].ID)
	}
	return &Sriov{TotalVFs: len(vfs), VFs: vfs}
}

func parseOneVF(attrs []nlattr.Attr) SriovVF {
	m := nlattr.Map(attrs)
	vf := SriovVF{LinkState: "auto"}
	if a, ok := m[ifla_vf_mac]; ok && len(a.Value) >= 4 {
		id, err := nlattr.U32(a.Value[0:4])
		if err == nil {
			vf.ID = int(id)
		}
		if len(a.Value) >= 10 {
			mac, err := nlattr.MAC(a.Value[4:10])
			if err == nil {
				vf.MAC = mac
			}
		}
	}
	if a, ok := m[ifla_vf_vlan]; ok && len(a.Value) >= 12 {
		vid, err1 := nlattr.U32(a.Value[4:8])
		qos, err2 := nlattr.U32(a.Value[8:12])
		if err1 == nil {
			vf.Vlan = uint16(vid)
		}
		if err2 == nil {
			vf.Qos = qos
		}
	}
	if a, ok := m[ifla_vf_tx_rate]; ok && len(a.Value) >= 8 {
		rate, err := nlattr.U32(a.Value[4:8])
		if err == nil {
			vf.TxRate = rate
		}
	}
	if a, ok := m[ifla_vf_rate]; ok && len(a.Value) >= 12 {
		minRate, err1 := nlattr.U32(a.Value[4:8])
		maxRate, err2 := nlattr.U32(a.Value[8:12])
		if err1 == nil {
			vf.MinTxRate = minRate
		}
		if err2 == nil {
			vf.MaxTxRate = maxRate
		}
	}
	if a, ok := m[ifla_vf_spoofchk]; ok && len(a.Value) >= 8 {
		v, err := nlattr.U32(a.Value[4:8])
		vf.Spoofchk = err == nil && v != 0
	}
	if a, ok := m[ifla_vf_rss_query_en]; ok && len(a.Value) >= 8 {
		v, err := nlattr.U32(a.Value[4:8])
		vf.RssQueryEn = err == nil && v != 0
	}
	if a, ok := m[ifla_vf_trust]; ok && len(a.Value) >= 8 {
		v, err := nlattr.U32(a.Value[4:8])
		vf.Trust = err == nil && v != 0
	}
	if a, ok := m[ifla_vf_link_state]; ok && len(a.Value) >= 8 {
		v, err := nlattr.U32(a.Value[4:8])
		if err == nil {
			switch v {
			case 1:
				vf.LinkState = "enable"
			case 2:
				vf.LinkState = "disable"
			default:
				vf.LinkState = "auto"
			}
		}
	}
	return vf
}

func resolveVFIfaceName(sysfsRoot, pfName string, vfID int) string {
	if sysfsRoot == "" {
		sysfsRoot = "/sys/class/net"
	}
	netDir := filepath.Join(sysfsRoot, pfName, "device", fmt.Sprintf("virtfn%d", vfID), "net")
	entries, err := os.ReadDir(netDir)
	if err != nil || len(entries) == 0 {
		return ""
	}
	return entries[0].Name()
}
