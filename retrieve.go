package netmirror

import (
	"errors"
	"log/slog"

	"github.com/kuuji/netmirror/internal/ifaces"
	"github.com/kuuji/netmirror/internal/mptcp"
	"github.com/kuuji/netmirror/internal/query"
	"github.com/kuuji/netmirror/internal/rtnl"
)

const defaultSysfsRoot = "/sys/class/net"

// Retrieve opens a fresh rtnetlink session, runs the dump sequence described
// by filter, and returns one assembled NetState. Logger may be nil.
func Retrieve(logger *slog.Logger, filter NetStateFilter) (*NetState, error) {
	if logger == nil {
		logger = slog.Default()
	}
	rt, err := rtnl.Dial(logger)
	if err != nil {
		return nil, NetlinkFailure("dial rtnetlink", err)
	}
	defer rt.Close()

	snap, err := query.Retrieve(logger, rt, toQueryFilter(filter), defaultSysfsRoot)
	if err != nil {
		if errors.Is(err, query.ErrIfaceNotFound) {
			return nil, InvalidArgument("iface_name filter matched no interface", err)
		}
		return nil, NetlinkFailure("retrieve snapshot", err)
	}
	return fromSnapshot(snap), nil
}

func toQueryFilter(f NetStateFilter) query.Filter {
	out := query.Filter{Mptcp: f.Mptcp, Dns: f.Dns}
	if f.Iface != nil {
		out.Iface = &query.IfaceFilter{
			IfaceName:          f.Iface.IfaceName,
			IncludeIPAddress:   f.Iface.IncludeIPAddress,
			IncludeSriovVfInfo: f.Iface.IncludeSriovVfInfo,
			IncludeBridgeVlan:  f.Iface.IncludeBridgeVlan,
			IncludeEthtool:     f.Iface.IncludeEthtool,
			IncludeMptcp:       f.Iface.IncludeMptcp,
		}
	}
	if f.Route != nil {
		out.Route = &query.RouteFilter{
			Protocol: (*string)(f.Route.Protocol),
			Scope:    (*string)(f.Route.Scope),
			Oif:      f.Route.Oif,
			Table:    f.Route.Table,
		}
	}
	if f.RouteRule != nil {
		out.RouteRule = &query.RouteRuleFilter{
			Table: f.RouteRule.Table,
			Iif:   f.RouteRule.Iif,
			Oif:   f.RouteRule.Oif,
		}
	}
	return out
}

func fromSnapshot(snap *query.Snapshot) *NetState {
	st := &NetState{
		Ifaces: make([]Iface, len(snap.Ifaces)),
		Routes: make([]Route, len(snap.Routes)),
	}
	for i, qi := range snap.Ifaces {
		st.Ifaces[i] = fromQueryIface(qi)
	}
	for i, qr := range snap.Routes {
		st.Routes[i] = fromQueryRoute(qr)
	}
	for _, qr := range snap.Rules {
		st.RouteRules = append(st.RouteRules, fromQueryRule(qr))
	}
	byIndex := make(map[int]string, len(snap.Ifaces))
	for _, qi := range snap.Ifaces {
		byIndex[qi.Index] = qi.Name
	}
	if snap.Mptcp != nil {
		st.Mptcp = fromQueryMptcp(snap.Mptcp, byIndex)
	}
	if snap.Dns != nil {
		st.Dns = &DnsState{Servers: snap.Dns.Servers, Search: snap.Dns.Search}
	}
	return st
}

func addrFamilyString(af int) string {
	// unix.AF_INET / unix.AF_INET6, spelled out here to avoid pulling in
	// golang.org/x/sys/unix at the root for one comparison.
	if af == 10 {
		return "ipv6"
	}
	return "ipv4"
}

func fromQueryRoute(r query.Route) Route {
	out := Route{
		AddressFamily: addrFamilyString(r.AddressFamily),
		Table:         r.Table,
		Protocol:      RouteProtocol(r.Protocol),
		Scope:         RouteScope(r.Scope),
		RouteType:     RouteType(r.RouteType),
		Flags:         r.Flags,
		Dst:           r.Dst,
		Src:           r.Src,
		Oif:           r.Oif,
		Iif:           r.Iif,
		Gateway:       r.Gateway,
		PreferedSrc:   r.PreferedSrc,
	}
	if r.Metric != nil {
		out.Metric = *r.Metric
	}
	return out
}

func fromQueryRule(r query.Rule) RouteRule {
	out := RouteRule{
		AddressFamily: addrFamilyString(r.AddressFamily),
		Action:        RouteAction(r.Action),
		Table:         r.Table,
		GotoTarget:    r.GotoTarget,
		Dst:           r.Dst,
		Src:           r.Src,
		Iif:           r.Iif,
		Oif:           r.Oif,
		FwMark:        r.FwMark,
		FwMask:        r.FwMask,
		Invert:        r.Invert,
	}
	if r.SuppressPrefixLen != nil {
		v := int32(*r.SuppressPrefixLen)
		out.SuppressPrefixLen = &v
	}
	if r.Priority != nil {
		out.Priority = *r.Priority
	}
	return out
}

func fromQueryMptcp(m *query.MptcpState, byIndex map[int]string) *MptcpState {
	out := &MptcpState{
		Enabled:              m.Enabled,
		AddAddrAcceptedLimit: m.AddAddrAcceptedLimit,
		SubflowsLimit:        m.SubflowsLimit,
	}
	for _, a := range m.Addresses {
		ma := fromMptcpAddress(a)
		ma.Iface = byIndex[int(a.Iface)]
		out.Addresses = append(out.Addresses, ma)
	}
	return out
}

func fromQueryIface(qi query.Iface) Iface {
	out := Iface{
		Name:                qi.Name,
		Index:               qi.Index,
		IfaceType:           IfaceType(qi.IfaceType),
		State:               IfaceState(qi.State),
		MTU:                 qi.MTU,
		MinMTU:              qi.MinMTU,
		MaxMTU:              qi.MaxMTU,
		MACAddress:          qi.MACAddress,
		PermanentMACAddress: qi.PermanentMACAddress,
		Controller:          qi.Controller,
		LinkNetnsID:         qi.LinkNetnsID,
	}
	for _, f := range qi.Flags {
		out.Flags = append(out.Flags, IfaceFlag(f))
	}
	if qi.ControllerType != nil {
		t := ControllerType(*qi.ControllerType)
		out.ControllerType = &t
	}
	if qi.IPv4 != nil {
		out.IPv4 = fromIPInfo(qi.IPv4)
	}
	if qi.IPv6 != nil {
		out.IPv6 = fromIPInfo(qi.IPv6)
	}

	if qi.Bond != nil {
		out.Bond = fromBond(qi.Bond)
	}
	if qi.BondSubordinate != nil {
		out.BondSubordinate = fromBondSubordinate(qi.BondSubordinate)
	}
	if qi.Bridge != nil {
		out.Bridge = fromBridge(qi.Bridge)
	}
	if qi.BridgePort != nil {
		out.BridgePort = fromBridgePort(qi.BridgePort)
	}
	if len(qi.BridgeVlan) > 0 {
		out.BridgeVlan = &BridgeVlanInfo{Vlans: fromVlanEntries(qi.BridgeVlan)}
	}
	if qi.Vlan != nil {
		out.Vlan = &VlanInfo{VlanID: qi.Vlan.VlanID, BaseIface: qi.Vlan.BaseIface, Protocol: qi.Vlan.Protocol}
	}
	if qi.Vxlan != nil {
		out.Vxlan = fromVxlan(qi.Vxlan)
	}
	if qi.Veth != nil {
		out.Veth = &VethInfo{Peer: qi.Veth.Peer}
	}
	if qi.Vrf != nil {
		out.Vrf = &VrfInfo{TableID: qi.Vrf.TableID, Subordinates: qi.Vrf.Subordinates}
	}
	if qi.VrfSubordinate != nil {
		out.VrfSubordinate = &VrfSubordinateInfo{TableID: qi.VrfSubordinate.TableID}
	}
	if qi.MacVlan != nil {
		out.MacVlan = &MacVlanInfo{BaseIface: qi.MacVlan.BaseIface, Mode: MacVlanMode(qi.MacVlan.Mode)}
	}
	if qi.MacVtap != nil {
		out.MacVtap = &MacVtapInfo{BaseIface: qi.MacVtap.BaseIface, Mode: MacVlanMode(qi.MacVtap.Mode)}
	}
	if qi.Tun != nil {
		out.Tun = fromTun(qi.Tun)
	}
	if qi.Ipoib != nil {
		out.Ipoib = &IpoibInfo{Pkey: qi.Ipoib.Pkey, Mode: qi.Ipoib.Mode, Umcast: qi.Ipoib.Umcast}
	}
	if qi.MacSec != nil {
		out.MacSec = fromMacSec(qi.MacSec)
	}
	if qi.Hsr != nil {
		out.Hsr = &HsrInfo{
			Port1: qi.Hsr.Port1, Port2: qi.Hsr.Port2,
			SupervisionAddr: qi.Hsr.SupervisionAddr,
			Protocol:        HsrProtocolVersion(qi.Hsr.Protocol),
			MulticastSpec:   qi.Hsr.MulticastSpec,
		}
	}
	if qi.Xfrm != nil {
		out.Xfrm = &XfrmInfo{BaseIface: qi.Xfrm.BaseIface, IfID: qi.Xfrm.IfID}
	}
	if qi.Sriov != nil {
		out.Sriov = fromSriov(qi.Sriov)
	}
	if qi.SriovVF != nil {
		out.SriovVF = fromSriovVF(*qi.SriovVF)
	}
	if qi.Ethtool != nil {
		out.Ethtool = fromEthtool(qi.Ethtool)
	}
	if qi.Mptcp != nil {
		mi := &MptcpIfaceInfo{}
		for _, a := range qi.Mptcp.Addresses {
			ma := fromMptcpAddress(a)
			ma.Iface = qi.Name
			mi.Addresses = append(mi.Addresses, ma)
		}
		out.Mptcp = mi
	}
	return out
}

func fromIPInfo(in *query.IPInfo) *IPInfo {
	out := &IPInfo{}
	for _, a := range in.Addresses {
		out.Addresses = append(out.Addresses, IPAddress{
			IP:           a.IP,
			PrefixLen:    a.PrefixLen,
			Label:        a.Label,
			ValidLft:     a.ValidLft,
			PreferredLft: a.PreferredLft,
		})
	}
	return out
}

func fromVlanEntries(in []ifaces.BridgeVlanEntry) []BridgeVlanEntry {
	out := make([]BridgeVlanEntry, len(in))
	for i, v := range in {
		out[i] = BridgeVlanEntry{Vid: v.Vid, VidRange: v.VidRange, Pvid: v.Pvid, Untagged: v.Untagged}
	}
	return out
}

func fromBond(b *ifaces.Bond) *BondInfo {
	out := &BondInfo{
		Mode:         BondMode(b.Mode),
		Subordinates: b.Subordinates,
		Primary:      b.Primary,
		ActiveSubordinate: b.ActiveSubordinate,
		NumUnsolNA:   b.NumUnsolNA,
		NumGratARP:   b.NumGratARP,
		ResendIgmp:   b.ResendIgmp,
		PacketsPerSubordinate: b.PacketsPerSubordinate,
		AdActorSysPrio: b.AdActorSysPrio,
		AdUserPortKey:  b.AdUserPortKey,
		AdActorSystem:  b.AdActorSystem,
		LacpActive:     b.LacpActive,
		TlbDynamicLb:   b.TlbDynamicLb,
		LpInterval:     b.LpInterval,
		MinLinks:       b.MinLinks,
	}
	if b.PrimaryReselect != nil {
		v := PrimaryReselect(*b.PrimaryReselect)
		out.PrimaryReselect = &v
	}
	if b.FailOverMac != nil {
		v := FailOverMac(*b.FailOverMac)
		out.FailOverMac = &v
	}
	if b.XmitHashPolicy != nil {
		v := XmitHashPolicy(*b.XmitHashPolicy)
		out.XmitHashPolicy = &v
	}
	if b.LacpRate != nil {
		v := LacpRate(*b.LacpRate)
		out.LacpRate = &v
	}
	if b.AdSelect != nil {
		v := AdSelect(*b.AdSelect)
		out.AdSelect = &v
	}
	if b.ArpValidate != nil {
		v := ArpValidate(*b.ArpValidate)
		out.ArpValidate = &v
	}
	return out
}

func fromBondSubordinate(b *ifaces.BondSubordinate) *BondSubordinateInfo {
	return &BondSubordinateInfo{
		SubordinateState:       BondSubordinateState(b.SubordinateState),
		MiiStatus:              MiiStatus(b.MiiStatus),
		LinkFailureCount:       b.LinkFailureCount,
		PermHwaddr:             b.PermHwaddr,
		QueueID:                b.QueueID,
		AdAggregatorID:         b.AdAggregatorID,
		AdActorOperPortState:   b.AdActorOperPortState,
		AdPartnerOperPortState: b.AdPartnerOperPortState,
	}
}

func fromBridge(b *ifaces.Bridge) *BridgeInfo {
	return &BridgeInfo{
		Ports:         b.Ports,
		StpState:      BridgeStpState(b.StpState),
		Priority:      b.Priority,
		VlanFiltering: b.VlanFiltering,
		VlanProtocol:  b.VlanProtocol,
		BridgeID:      b.BridgeID,
		RootID:        b.RootID,
		ForwardDelay:  b.ForwardDelay,
		HelloTime:     b.HelloTime,
		MaxAge:        b.MaxAge,
		AgeingTime:    b.AgeingTime,
		GroupFwdMask:  b.GroupFwdMask,
		GroupAddr:     b.GroupAddr,
	}
}

func fromBridgePort(b *ifaces.BridgePort) *BridgePortInfo {
	return &BridgePortInfo{
		StpState:   BridgeStpState(b.StpState),
		Priority:   b.Priority,
		Cost:       b.Cost,
		Hairpin:    b.Hairpin,
		Guard:      b.Guard,
		Protect:    b.Protect,
		FastLeave:  b.FastLeave,
		Learning:   b.Learning,
		Flood:      b.Flood,
		ProxyArp:   b.ProxyArp,
		BackupPort: b.BackupPort,
		Vlans:      fromVlanEntries(b.Vlans),
	}
}

func fromVxlan(v *ifaces.Vxlan) *VxlanInfo {
	return &VxlanInfo{
		VxlanID: v.VxlanID, BaseIface: v.BaseIface,
		Local: v.Local, Local6: v.Local6, Remote: v.Remote, Remote6: v.Remote6,
		Port: v.Port, SrcPortMin: v.SrcPortMin, SrcPortMax: v.SrcPortMax,
		Learning: v.Learning, AgeingSecs: v.AgeingSecs, MaxAddress: v.MaxAddress,
		TTL: v.TTL, TOS: v.TOS, UDPCsum: v.UDPCsum,
	}
}

func fromTun(t *ifaces.Tun) *TunInfo {
	return &TunInfo{
		Mode: TunMode(t.Mode), Owner: t.Owner, Group: t.Group, PersistGroup: t.PersistGroup,
		Type: t.Type, PersistFlag: t.PersistFlag, VnetHdr: t.VnetHdr, MultiQueue: t.MultiQueue,
	}
}

func fromMacSec(m *ifaces.MacSec) *MacSecInfo {
	return &MacSecInfo{
		BaseIface: m.BaseIface, Sci: m.Sci, Port: m.Port,
		Cipher: MacSecCipherID(m.Cipher), Icvlen: m.Icvlen, EncodingSa: m.EncodingSa,
		Encrypt: m.Encrypt, ProtectFrames: m.ProtectFrames, SendSci: m.SendSci,
		EndStation: m.EndStation, ScbEnabled: m.ScbEnabled, ReplayProtect: m.ReplayProtect,
		WindowSize: m.WindowSize, Validate: MacSecValidate(m.Validate),
	}
}

func fromSriov(s *ifaces.Sriov) *SriovInfo {
	out := &SriovInfo{TotalVFs: s.TotalVFs}
	for _, vf := range s.VFs {
		out.VFs = append(out.VFs, *fromSriovVF(vf))
	}
	return out
}

func fromSriovVF(vf ifaces.SriovVF) *SriovVFInfo {
	return &SriovVFInfo{
		ID: vf.ID, IfaceName: vf.IfaceName, MAC: vf.MAC, Vlan: vf.Vlan, Qos: vf.Qos,
		TxRate: vf.TxRate, Spoofchk: vf.Spoofchk, LinkState: vf.LinkState,
		MinTxRate: vf.MinTxRate, MaxTxRate: vf.MaxTxRate, RssQueryEn: vf.RssQueryEn, Trust: vf.Trust,
	}
}

func fromEthtool(e *query.EthtoolInfo) *EthtoolInfo {
	out := &EthtoolInfo{Features: e.Features}
	if e.Pause != nil {
		out.Pause = &EthtoolPauseInfo{RxPause: e.Pause.RxPause, TxPause: e.Pause.TxPause, AutoNeg: e.Pause.AutoNeg}
	}
	if e.Coalesce != nil {
		out.Coalesce = &EthtoolCoalesceInfo{
			RxUsecs: e.Coalesce.RxUsecs, RxMaxFrames: e.Coalesce.RxMaxFrames,
			TxUsecs: e.Coalesce.TxUsecs, TxMaxFrames: e.Coalesce.TxMaxFrames,
			UseAdaptiveRx: e.Coalesce.UseAdaptiveRx, UseAdaptiveTx: e.Coalesce.UseAdaptiveTx,
		}
	}
	if e.Ring != nil {
		out.Ring = &EthtoolRingInfo{
			RxMax: e.Ring.RxMax, RxMiniMax: e.Ring.RxMiniMax, RxJumboMax: e.Ring.RxJumboMax,
			TxMax: e.Ring.TxMax, Rx: e.Ring.Rx, RxMini: e.Ring.RxMini, RxJumbo: e.Ring.RxJumbo, Tx: e.Ring.Tx,
		}
	}
	if e.LinkMode != nil {
		// Ours/Peer bitset decoding isn't implemented yet (see
		// internal/ethtool/linkmode.go); left nil here rather than guessed.
		out.LinkMode = &EthtoolLinkModeInfo{
			Speed: e.LinkMode.Speed, Duplex: e.LinkMode.Duplex, Autoneg: e.LinkMode.Autoneg,
		}
	}
	return out
}

// mptcpFlagBits mirrors MPTCP_PM_ADDR_FLAG_* from linux/mptcp_pm.h.
var mptcpFlagBits = []struct {
	mask uint32
	name string
}{
	{1 << 0, "signal"},
	{1 << 1, "subflow"},
	{1 << 2, "backup"},
	{1 << 3, "fullmesh"},
	{1 << 4, "implicit"},
}

func fromMptcpAddress(a mptcp.Address) MptcpAddress {
	out := MptcpAddress{Address: a.Address}
	id := a.ID
	out.ID = &id
	if a.Port != 0 {
		p := a.Port
		out.Port = &p
	}
	for _, b := range mptcpFlagBits {
		if a.Flags&b.mask != 0 {
			out.Flags = append(out.Flags, b.name)
		}
	}
	return out
}
