package netmirror

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/kuuji/netmirror/internal/ifaces"
	"github.com/kuuji/netmirror/internal/nlattr"
	"github.com/kuuji/netmirror/internal/rtnl"
)

// Apply diffs nc against current kernel state and issues the ordered
// mutations described in §4.6: delete, then create, then change (with
// change sub-ordered mac -> controller -> admin-state -> ip), then routes
// and route rules. Logger may be nil.
func (nc *NetConf) Apply(logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	rt, err := rtnl.Dial(logger)
	if err != nil {
		return NetlinkFailure("dial rtnetlink", err)
	}
	defer rt.Close()

	current, err := rt.DumpLinks()
	if err != nil {
		return NetlinkFailure("retrieve current links for apply", err)
	}
	byName := make(map[string]rtnl.RawLink, len(current))
	for _, l := range current {
		byName[l.Name] = l
	}

	var toDelete, toCreate, toChange []IfaceConf
	for _, ic := range nc.Ifaces {
		_, present := byName[ic.Name]
		switch {
		case ic.State == IfaceStateAbsent && present:
			toDelete = append(toDelete, ic)
		case !present:
			toCreate = append(toCreate, ic)
		default:
			toChange = append(toChange, ic)
		}
	}

	for _, ic := range toDelete {
		if err := applyDelete(rt, byName[ic.Name]); err != nil {
			return err
		}
	}
	for _, ic := range toCreate {
		if err := applyCreate(rt, byName, ic); err != nil {
			return err
		}
	}
	// Re-resolve indices: creations above may have introduced new links
	// that later entries in toChange (e.g. a bond referencing a freshly
	// created veth leg) need to see.
	if len(toCreate) > 0 {
		refreshed, err := rt.DumpLinks()
		if err != nil {
			return NetlinkFailure("refresh links after create", err)
		}
		byName = make(map[string]rtnl.RawLink, len(refreshed))
		for _, l := range refreshed {
			byName[l.Name] = l
		}
	}
	for _, ic := range toChange {
		cur, ok := byName[ic.Name]
		if !ok {
			return InvalidArgument("change target not found: "+ic.Name, nil)
		}
		if err := applyChange(rt, cur, ic); err != nil {
			return err
		}
	}

	for _, rc := range nc.Routes {
		if err := applyRoute(rt, rc); err != nil {
			return err
		}
	}

	for _, rrc := range nc.RouteRules {
		if err := applyRouteRule(rt, rrc); err != nil {
			return err
		}
	}

	return nil
}

func applyDelete(rt *rtnl.Client, cur rtnl.RawLink) error {
	if err := rt.LinkDel(cur.Index); err != nil {
		if absorbDeleteErrno(err) {
			return nil
		}
		return NetlinkFailure("delete link "+cur.Name, err)
	}
	return nil
}

// creatableKinds is the closed set of interface types the create bucket
// accepts (§4.6 step 2); anything else is an InvalidArgument.
var creatableKinds = map[IfaceType]bool{
	IfaceTypeBridge: true,
	IfaceTypeBond:   true,
	IfaceTypeVeth:   true,
	IfaceTypeVlan:   true,
}

func applyCreate(rt *rtnl.Client, byName map[string]rtnl.RawLink, ic IfaceConf) error {
	if !creatableKinds[ic.IfaceType] {
		return InvalidArgument(fmt.Sprintf("iface_type %q is not creatable", ic.IfaceType), nil)
	}

	opts := rtnl.LinkAddOpts{Name: ic.Name}
	switch ic.IfaceType {
	case IfaceTypeVlan:
		if ic.Vlan == nil {
			return InvalidArgument("vlan config missing for "+ic.Name, nil)
		}
		base, ok := byName[ic.Vlan.BaseIface]
		if !ok {
			return InvalidArgument("vlan base_iface not found: "+ic.Vlan.BaseIface, nil)
		}
		link := int32(base.Index)
		opts.Kind = "vlan"
		opts.Link = &link
		opts.InfoData = nlattr.EncodeU16(ifaces.IFLA_VLAN_ID, ic.Vlan.VlanID)
	case IfaceTypeVeth:
		if ic.Veth == nil {
			return InvalidArgument("veth config missing for "+ic.Name, nil)
		}
		opts.Kind = "veth"
		opts.PeerName = ic.Veth.PeerName
	case IfaceTypeBond:
		opts.Kind = "bond"
		if ic.Bond != nil {
			if mode, ok := bondModeToRaw[ic.Bond.Mode]; ok {
				opts.InfoData = nlattr.EncodeU8(ifaces.IFLA_BOND_MODE, mode)
			}
		}
	case IfaceTypeBridge:
		opts.Kind = "bridge"
		if ic.Bridge != nil && ic.Bridge.VlanFiltering {
			opts.InfoData = nlattr.EncodeU8(ifaces.IFLA_BR_VLAN_FILTERING, 1)
		}
	}

	if err := rt.LinkAdd(opts); err != nil {
		if absorbErrno(err, unix.EEXIST) {
			return nil
		}
		return NetlinkFailure("create link "+ic.Name, err)
	}

	if ic.IfaceType == IfaceTypeBridge && ic.Bridge != nil {
		for _, port := range ic.Bridge.Ports {
			pl, ok := byName[port]
			if !ok {
				continue
			}
			self, ok2, err := rt.LinkByName(ic.Name)
			if err != nil {
				return NetlinkFailure("resolve new bridge "+ic.Name, err)
			}
			if !ok2 {
				continue
			}
			if err := rt.LinkSetMaster(pl.Index, self.Index); err != nil {
				return NetlinkFailure("attach bridge port "+port, err)
			}
		}
	}
	if ic.IfaceType == IfaceTypeBond && ic.Bond != nil {
		self, ok, err := rt.LinkByName(ic.Name)
		if err != nil {
			return NetlinkFailure("resolve new bond "+ic.Name, err)
		}
		if ok {
			for _, sub := range ic.Bond.Subordinates {
				pl, ok := byName[sub]
				if !ok {
					continue
				}
				if err := rt.LinkSetMaster(pl.Index, self.Index); err != nil {
					return NetlinkFailure("attach bond subordinate "+sub, err)
				}
			}
		}
	}

	return nil
}

var bondModeToRaw = map[BondMode]uint8{
	BondModeBalanceRR:    0,
	BondModeActiveBackup: 1,
	BondModeBalanceXOR:   2,
	BondModeBroadcast:    3,
	BondMode8023AD:       4,
	BondModeBalanceTLB:   5,
	BondModeBalanceALB:   6,
}

func applyChange(rt *rtnl.Client, cur rtnl.RawLink, ic IfaceConf) error {
	wasUp := cur.Flags&unix.IFF_UP != 0

	if ic.MAC != "" && !strings.EqualFold(ic.MAC, cur.HWAddr) {
		mac, err := net.ParseMAC(ic.MAC)
		if err != nil {
			return InvalidArgument("invalid mac for "+ic.Name, err)
		}
		if wasUp {
			if err := rt.LinkSetDown(cur.Index); err != nil {
				return NetlinkFailure("bring down "+ic.Name+" for mac change", err)
			}
		}
		if err := rt.LinkSetHardwareAddr(cur.Index, mac); err != nil {
			return NetlinkFailure("set mac on "+ic.Name, err)
		}
		if wasUp {
			if err := rt.LinkSetUp(cur.Index); err != nil {
				return NetlinkFailure("restore admin state on "+ic.Name, err)
			}
		}
	}

	if ic.MTU != nil {
		if err := rt.LinkSetMTU(cur.Index, uint32(*ic.MTU)); err != nil {
			return NetlinkFailure("set mtu on "+ic.Name, err)
		}
	}

	if ic.Controller != nil {
		masterIdx := 0
		if *ic.Controller != "" {
			ctrl, ok, err := rt.LinkByName(*ic.Controller)
			if err != nil {
				return NetlinkFailure("resolve controller "+*ic.Controller, err)
			}
			if !ok {
				return InvalidArgument("controller not found: "+*ic.Controller, nil)
			}
			masterIdx = ctrl.Index
		}
		if err := rt.LinkSetMaster(cur.Index, masterIdx); err != nil {
			return NetlinkFailure("set controller on "+ic.Name, err)
		}
	}

	switch ic.State {
	case IfaceStateUp:
		if err := rt.LinkSetUp(cur.Index); err != nil {
			return NetlinkFailure("bring up "+ic.Name, err)
		}
	case IfaceStateDown:
		if err := rt.LinkSetDown(cur.Index); err != nil {
			return NetlinkFailure("bring down "+ic.Name, err)
		}
	}

	if ic.IPv4 != nil {
		if err := applyIPConf(rt, cur.Index, ic.IPv4); err != nil {
			return err
		}
	}
	if ic.IPv6 != nil {
		if err := applyIPConf(rt, cur.Index, ic.IPv6); err != nil {
			return err
		}
	}

	return nil
}

func applyIPConf(rt *rtnl.Client, ifIndex int, ipc *IPConf) error {
	for _, a := range ipc.Addresses {
		ip := net.ParseIP(a.IP)
		if ip == nil {
			return InvalidArgument("invalid address: "+a.IP, nil)
		}
		if a.Remove {
			if err := rt.AddrDel(ifIndex, ip, a.PrefixLen); err != nil {
				if absorbDeleteErrno(err) {
					continue
				}
				return NetlinkFailure("remove address "+a.IP, err)
			}
			continue
		}
		validLft, err := parseLft(a.ValidLft)
		if err != nil {
			return InvalidArgument("invalid valid_lft for "+a.IP, err)
		}
		preferredLft, err := parseLft(a.PreferredLft)
		if err != nil {
			return InvalidArgument("invalid preferred_lft for "+a.IP, err)
		}
		if err := rt.AddrAdd(ifIndex, ip, a.PrefixLen, validLft, preferredLft); err != nil {
			if absorbErrno(err, unix.EEXIST) {
				continue
			}
			return NetlinkFailure("add address "+a.IP, err)
		}
	}
	return nil
}

// parseLft parses the "forever" | "<n>sec" lifetime convention (§4.6 step 4).
// An empty string means "unset, let the kernel default apply" and returns
// nil, nil rather than forever, so AddrAdd omits the CACHEINFO attribute.
func parseLft(s string) (*uint32, error) {
	if s == "" {
		return nil, nil
	}
	if s == "forever" {
		v := uint32(0xFFFFFFFF)
		return &v, nil
	}
	secs := strings.TrimSuffix(s, "sec")
	if secs == s {
		return nil, fmt.Errorf("lifetime %q missing \"sec\" suffix", s)
	}
	n, err := strconv.ParseUint(secs, 10, 32)
	if err != nil {
		return nil, err
	}
	v := uint32(n)
	return &v, nil
}

func applyRoute(rt *rtnl.Client, rc RouteConf) error {
	dst := net.ParseIP(rc.Dst)
	if rc.Dst != "" && dst == nil {
		return InvalidArgument("invalid route dst: "+rc.Dst, nil)
	}
	family := uint8(unix.AF_INET)
	if dst != nil && dst.To4() == nil {
		family = unix.AF_INET6
	} else if rc.AddressFamily == 10 {
		family = unix.AF_INET6
	}

	var oif int32
	if rc.Oif != "" {
		l, ok, err := rt.LinkByName(rc.Oif)
		if err != nil {
			return NetlinkFailure("resolve route oif "+rc.Oif, err)
		}
		if !ok {
			return InvalidArgument("route oif not found: "+rc.Oif, nil)
		}
		oif = int32(l.Index)
	}

	table := rc.Table
	if table == 0 {
		table = unix.RT_TABLE_MAIN
	}

	opts := rtnl.RouteAddOpts{
		Family:   family,
		DstLen:   uint8(rc.PrefixLen),
		Table:    uint8(table),
		Protocol: routeProtocolToRaw(rc.Protocol),
		Scope:    routeScopeToRaw(rc.Scope),
		Type:     unix.RTN_UNICAST,
		Dst:      dst,
		Oif:      oif,
		Metric:   rc.Metric,
	}
	if rc.Gateway != "" {
		opts.Gateway = net.ParseIP(rc.Gateway)
	}

	if rc.Remove {
		if err := rt.RouteDel(opts); err != nil {
			if absorbDeleteErrno(err) {
				return nil
			}
			return NetlinkFailure("delete route", err)
		}
		return nil
	}
	if err := rt.RouteAdd(opts); err != nil {
		if absorbErrno(err, unix.EEXIST) {
			return nil
		}
		return NetlinkFailure("add route", err)
	}
	return nil
}

func applyRouteRule(rt *rtnl.Client, rrc RouteRuleConf) error {
	family := uint8(unix.AF_INET)
	if rrc.AddressFamily == unix.AF_INET6 {
		family = unix.AF_INET6
	}

	var dst, src net.IP
	if rrc.Dst != "" {
		dst = net.ParseIP(rrc.Dst)
		if dst == nil {
			return InvalidArgument("invalid rule dst: "+rrc.Dst, nil)
		}
	}
	if rrc.Src != "" {
		src = net.ParseIP(rrc.Src)
		if src == nil {
			return InvalidArgument("invalid rule src: "+rrc.Src, nil)
		}
	}

	opts := rtnl.RuleAddOpts{
		Family:     family,
		DstLen:     uint8(rrc.DstPrefix),
		SrcLen:     uint8(rrc.SrcPrefix),
		Table:      rrc.Table,
		Action:     routeActionToRaw(rrc.Action),
		Dst:        dst,
		Src:        src,
		Iif:        rrc.Iif,
		Oif:        rrc.Oif,
		FwMark:     rrc.FwMark,
		FwMask:     rrc.FwMask,
		GotoTarget: rrc.GotoTarget,
	}
	if rrc.Priority != 0 {
		p := rrc.Priority
		opts.Priority = &p
	}

	if rrc.Remove {
		if err := rt.RuleDel(opts); err != nil {
			if absorbDeleteErrno(err) || absorbErrno(err, unix.ENOENT) {
				return nil
			}
			return NetlinkFailure("delete route rule", err)
		}
		return nil
	}
	if err := rt.RuleAdd(opts); err != nil {
		if absorbErrno(err, unix.EEXIST) {
			return nil
		}
		return NetlinkFailure("add route rule", err)
	}
	return nil
}

var routeActionByName = map[RouteAction]uint8{
	RuleActionTable:       1,
	RuleActionGoto:        2,
	RuleActionNop:         3,
	RuleActionBlackhole:   6,
	RuleActionUnreachable: 7,
	RuleActionProhibit:    8,
}

func routeActionToRaw(a RouteAction) uint8 {
	if v, ok := routeActionByName[a]; ok {
		return v
	}
	return 1 // table, the sensible default for caller-declared rules
}

func routeProtocolToRaw(p RouteProtocol) uint8 {
	switch p {
	case ProtoRedirect:
		return 1
	case ProtoKernel:
		return 2
	case ProtoBoot:
		return 3
	case ProtoStatic:
		return 4
	case ProtoDhcp:
		return 0x10
	default:
		return 4 // static, the sensible default for caller-declared routes
	}
}

func routeScopeToRaw(s RouteScope) uint8 {
	switch s {
	case ScopeSite:
		return 200
	case ScopeLink:
		return 253
	case ScopeHost:
		return 254
	case ScopeNowhere:
		return 255
	default:
		return 0 // universe
	}
}

// absorbErrno reports whether err wraps one of the given idempotency-benign
// errnos (§4.6 step 5 / §8).
func absorbErrno(err error, want ...unix.Errno) bool {
	var errno unix.Errno
	if !errors.As(err, &errno) {
		return false
	}
	for _, w := range want {
		if errno == w {
			return true
		}
	}
	return false
}

func absorbDeleteErrno(err error) bool {
	return absorbErrno(err, unix.ESRCH, unix.EADDRNOTAVAIL, unix.ENODEV)
}
