package query

import (
	"log/slog"
	"sort"

	"github.com/kuuji/netmirror/internal/ethtool"
	"github.com/kuuji/netmirror/internal/ifaces"
	"github.com/kuuji/netmirror/internal/mptcp"
	"github.com/kuuji/netmirror/internal/nlattr"
	"github.com/kuuji/netmirror/internal/rtnl"
)

// operStateByRaw mirrors IF_OPER_* from linux/if.h.
var operStateByRaw = map[uint8]string{
	0: "unknown",
	1: "not_present",
	2: "down",
	3: "lower_layer_down",
	4: "testing",
	5: "dormant",
	6: "up",
}

const (
	flagUp          = 1 << 0
	flagBroadcast   = 1 << 1
	flagLoopback    = 1 << 3
	flagPointToPoint = 1 << 4
	flagNoArp       = 1 << 7
	flagPromisc     = 1 << 8
	flagMaster      = 1 << 10
	flagSlave       = 1 << 11
	flagMulticast   = 1 << 12
	flagDormant     = 1 << 17
	flagLowerUp     = 1 << 16
)

func renderFlags(raw uint32) []string {
	type bit struct {
		mask uint32
		name string
	}
	bits := []bit{
		{flagUp, "up"}, {flagBroadcast, "broadcast"}, {flagLoopback, "loopback"},
		{flagPointToPoint, "point_to_point"}, {flagNoArp, "no_arp"}, {flagPromisc, "promisc"},
		{flagMaster, "master"}, {flagSlave, "slave"}, {flagMulticast, "multicast"},
		{flagDormant, "dormant"}, {flagLowerUp, "lower_up"},
	}
	var out []string
	for _, b := range bits {
		if raw&b.mask != 0 {
			out = append(out, b.name)
		}
	}
	return out
}

func ifaceTypeFromKind(kind string, raw rtnl.RawLink) string {
	switch kind {
	case "bond":
		return "bond"
	case "bridge":
		return "bridge"
	case "vlan":
		return "vlan"
	case "vxlan":
		return "vxlan"
	case "veth":
		return "veth"
	case "vrf":
		return "vrf"
	case "tun":
		return tunOrTapKind(raw)
	case "macvlan":
		return "mac_vlan"
	case "macvtap":
		return "mac_vtap"
	case "ipoib":
		return "ipoib"
	case "macsec":
		return "mac_sec"
	case "hsr":
		return "hsr"
	case "xfrm":
		return "xfrm"
	case "openvswitch":
		return "openvswitch"
	case "dummy":
		return "dummy"
	case "":
		if raw.Flags&flagLoopback != 0 {
			return "loopback"
		}
		return "ethernet"
	default:
		return "other"
	}
}

func tunOrTapKind(raw rtnl.RawLink) string {
	m := nlattr.Map(raw.InfoData)
	if a, ok := m[3]; ok { // IFLA_TUN_TYPE, see internal/ifaces/consts.go
		if v, err := nlattr.U8(a.Value); err == nil && v == 2 {
			return "tap"
		}
	}
	return "tun"
}

// buildIfaces runs the full C2/C5 per-link assembly: index resolution,
// per-kind parse dispatch, SR-IOV sysfs merge and bridge-VLAN coalescing.
func buildIfaces(log *slog.Logger, raws []rtnl.RawLink, vlanByIndex map[int][]nlattr.Attr, sysfsRoot string) []Iface {
	byIndex := make(map[int]string, len(raws))
	for _, r := range raws {
		byIndex[r.Index] = r.Name
	}

	masterNameByIndex := map[int]string{}
	for _, r := range raws {
		if r.Master != nil {
			masterNameByIndex[r.Index] = byIndex[int(*r.Master)]
		}
	}

	vrfTableByName := map[string]uint32{}
	for _, r := range raws {
		if r.Kind == "vrf" {
			vrfTableByName[r.Name] = ifaces.ParseVrf(r.InfoData).TableID
		}
	}

	out := make([]Iface, 0, len(raws))
	bondPorts := map[string][]string{}  // bond iface name -> port names
	bridgePorts := map[string][]string{}
	vrfMembers := map[string][]string{}

	for _, r := range raws {
		iface := Iface{
			Name:                r.Name,
			Index:               r.Index,
			IfaceType:           ifaceTypeFromKind(r.Kind, r),
			MTU:                 r.MTU,
			MinMTU:              r.MinMTU,
			MaxMTU:              r.MaxMTU,
			MACAddress:          r.HWAddr,
			PermanentMACAddress: r.PermHWAddr,
			State:               operStateByRaw[r.OperState],
			Flags:               renderFlags(r.Flags),
			LinkNetnsID:         int32ToIntPtr(r.LinkNetnsID),
		}
		if iface.State == "" {
			iface.State = "unknown"
		}

		if r.Master != nil {
			if name, ok := byIndex[int(*r.Master)]; ok {
				iface.Controller = &name
			}
		}

		baseIdx := int32(0)
		if r.LinkIndex != nil {
			baseIdx = *r.LinkIndex
		}

		switch iface.IfaceType {
		case "bond":
			b := ifaces.ParseBond(r.InfoData, byIndex)
			iface.Bond = b
		case "bridge":
			iface.Bridge = ifaces.ParseBridge(r.InfoData)
		case "vlan":
			iface.Vlan = ifaces.ParseVlan(r.InfoData, baseIdx, byIndex)
		case "vxlan":
			iface.Vxlan = ifaces.ParseVxlan(r.InfoData, baseIdx, byIndex)
		case "veth":
			iface.Veth = ifaces.ParseVeth(baseIdx, byIndex)
		case "vrf":
			iface.Vrf = ifaces.ParseVrf(r.InfoData)
		case "tun", "tap":
			iface.Tun = ifaces.ParseTun(r.InfoData)
		case "mac_vlan":
			iface.MacVlan = ifaces.ParseMacVlan(r.InfoData, baseIdx, byIndex)
		case "mac_vtap":
			iface.MacVtap = ifaces.ParseMacVlan(r.InfoData, baseIdx, byIndex)
		case "ipoib":
			iface.Ipoib = ifaces.ParseIpoib(r.InfoData)
		case "mac_sec":
			iface.MacSec = ifaces.ParseMacSec(r.InfoData, baseIdx, byIndex)
		case "hsr":
			iface.Hsr = ifaces.ParseHsr(r.InfoData, byIndex)
		case "xfrm":
			iface.Xfrm = ifaces.ParseXfrm(r.InfoData, byIndex)
		}

		switch r.SlaveKind {
		case "bond":
			iface.BondSubordinate = ifaces.ParseBondSubordinate(r.SlaveData)
			t := "bond"
			iface.ControllerType = &t
			if mn := masterNameByIndex[r.Index]; mn != "" {
				bondPorts[mn] = append(bondPorts[mn], r.Name)
			}
		case "bridge":
			iface.BridgePort = ifaces.ParseBridgePort(r.SlaveData, byIndex)
			t := "bridge"
			iface.ControllerType = &t
			if mn := masterNameByIndex[r.Index]; mn != "" {
				bridgePorts[mn] = append(bridgePorts[mn], r.Name)
			}
		}
		if r.Master != nil {
			if mname, ok := byIndex[int(*r.Master)]; ok {
				if table, ok := vrfTableByName[mname]; ok {
					iface.VrfSubordinate = ifaces.ParseVrfSubordinate(table)
					t := "vrf"
					iface.ControllerType = &t
					vrfMembers[mname] = append(vrfMembers[mname], r.Name)
				}
			}
		}

		if vlanAttrs, ok := vlanByIndex[r.Index]; ok {
			entries := ifaces.ParseBridgeVlans(log, vlanAttrs)
			if len(entries) > 0 {
				iface.BridgeVlan = entries
				if iface.BridgePort != nil {
					iface.BridgePort.Vlans = entries
				}
			}
		}

		if r.Kind == "" && iface.IfaceType == "ethernet" {
			sriov := ifaces.ParseSriov(r.TopAttrs, r.Name, sysfsRoot)
			if sriov != nil {
				iface.Sriov = sriov
			}
		}

		out = append(out, iface)
	}

	for i := range out {
		if out[i].Bond != nil {
			ports := append([]string(nil), bondPorts[out[i].Name]...)
			sort.Strings(ports)
			out[i].Bond.Subordinates = ports
		}
		if out[i].Bridge != nil {
			ports := append([]string(nil), bridgePorts[out[i].Name]...)
			sort.Strings(ports)
			out[i].Bridge.Ports = ports
		}
		if out[i].Vrf != nil {
			members := append([]string(nil), vrfMembers[out[i].Name]...)
			sort.Strings(members)
			out[i].Vrf.Subordinates = members
		}
	}

	return out
}

func int32ToIntPtr(p *int32) *int {
	if p == nil {
		return nil
	}
	v := int(*p)
	return &v
}

func mergeEthtool(log *slog.Logger, out []Iface, client *ethtool.Client) {
	if client == nil {
		return
	}
	for i := range out {
		info := &EthtoolInfo{}
		if p, err := client.Pause(out[i].Name); err == nil {
			info.Pause = p
		} else {
			log.Debug("ethtool pause query failed", "iface", out[i].Name, "error", err)
		}
		if c, err := client.Coalesce(out[i].Name); err == nil {
			info.Coalesce = c
		}
		if r, err := client.Ring(out[i].Name); err == nil {
			info.Ring = r
		}
		if lm, err := client.LinkMode(out[i].Name); err == nil {
			info.LinkMode = lm
		}
		out[i].Ethtool = info
	}
}

func mergeMptcp(out []Iface, addrs []mptcp.Address, byIndex map[int]string) {
	byIface := map[string][]mptcp.Address{}
	for _, a := range addrs {
		name, ok := byIndex[int(a.Iface)]
		if !ok {
			continue
		}
		byIface[name] = append(byIface[name], a)
	}
	for i := range out {
		if as, ok := byIface[out[i].Name]; ok {
			out[i].Mptcp = &MptcpIfaceInfo{Addresses: as}
		}
	}
}
