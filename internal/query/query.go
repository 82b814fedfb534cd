package query

import (
	"errors"
	"log/slog"

	"golang.org/x/sys/unix"

	"github.com/kuuji/netmirror/internal/ethtool"
	"github.com/kuuji/netmirror/internal/mptcp"
	"github.com/kuuji/netmirror/internal/nlattr"
	"github.com/kuuji/netmirror/internal/resolvstate"
	"github.com/kuuji/netmirror/internal/rtnl"
)

// ErrIfaceNotFound is returned when an IfaceFilter.IfaceName predicate
// matches no interface in the dump (§4.5 step 1). The root package
// translates this into a KindInvalidArgument error.
var ErrIfaceNotFound = errors.New("iface_name filter matched no interface")

// Retrieve runs the ordered dump sequence (§4.5): links, bridge VLANs,
// addresses, routes (v4 then v6), rules, then the optional MPTCP and DNS
// sections, merging everything into one Snapshot. Per-section failures in
// the optional subsystems (ethtool, MPTCP) are logged and treated as
// "unavailable" rather than aborting the whole retrieval; LINK/ADDRESS/
// ROUTE failures are fatal since nothing else can be trusted without them.
func Retrieve(logger *slog.Logger, rt *rtnl.Client, f Filter, sysfsRoot string) (*Snapshot, error) {
	if logger == nil {
		logger = slog.Default()
	}

	raws, err := rt.DumpLinks()
	if err != nil {
		return nil, err
	}
	if f.Iface != nil && f.Iface.IfaceName != "" {
		filtered := raws[:0]
		for _, r := range raws {
			if r.Name == f.Iface.IfaceName {
				filtered = append(filtered, r)
			}
		}
		raws = filtered
		if len(raws) == 0 {
			return nil, ErrIfaceNotFound
		}
	}

	var bridgeVlans map[int][]nlattr.Attr
	if f.Iface == nil || f.Iface.IncludeBridgeVlan {
		bv, err := rt.DumpBridgeVlans()
		if err != nil {
			logger.Warn("bridge vlan dump failed", "error", err)
		} else {
			bridgeVlans = bv
		}
	}

	ifaces := buildIfaces(logger, raws, bridgeVlans, sysfsRoot)

	byIndex := make(map[int]string, len(ifaces))
	for _, i := range ifaces {
		byIndex[i.Index] = i.Name
	}

	if f.Iface == nil || f.Iface.IncludeIPAddress {
		addrs, err := rt.DumpAddresses(0)
		if err != nil {
			return nil, err
		}
		mergeAddresses(ifaces, addrs)
	}

	if f.Iface == nil || f.Iface.IncludeEthtool {
		ec, err := ethtool.Dial(logger)
		if err != nil {
			logger.Debug("ethtool unavailable", "error", err)
		} else {
			defer ec.Close()
			mergeEthtool(logger, ifaces, ec)
		}
	}

	snap := &Snapshot{Ifaces: ifaces}

	if f.Route != nil {
		kernel, _ := f.Route.pushable()
		nameToIndex := make(map[string]int32, len(byIndex))
		for idx, name := range byIndex {
			nameToIndex[name] = int32(idx)
		}
		for _, fam := range []uint8{unix.AF_INET, unix.AF_INET6} {
			df := rtnl.RouteDumpFilter{Family: fam}
			if kernel.Table != nil {
				df.Table = kernel.Table
			}
			if kernel.Oif != "" {
				if idx, ok := nameToIndex[kernel.Oif]; ok {
					df.Oif = &idx
				}
			}
			raw, _, err := rt.DumpRoutes(df)
			if err != nil {
				return nil, err
			}
			for _, rr := range raw {
				route := convertRoute(rr, byIndex)
				if !routeMatchesUserspace(route, f.Route) {
					continue
				}
				snap.Routes = append(snap.Routes, route)
			}
		}
	}

	if f.RouteRule != nil {
		for _, fam := range []uint8{unix.AF_INET, unix.AF_INET6} {
			raw, _, err := rt.DumpRules(fam)
			if err != nil {
				return nil, err
			}
			for _, rr := range raw {
				rule := convertRule(rr)
				if f.RouteRule.Table != nil && rule.Table != *f.RouteRule.Table {
					continue
				}
				snap.Rules = append(snap.Rules, rule)
			}
		}
	}

	if f.Mptcp {
		snap.Mptcp = buildMptcpState(logger)
		mergeMptcp(ifaces, snap.Mptcp.Addresses, byIndex)
	}

	if f.Dns {
		if st, err := resolvstate.Read(); err == nil {
			snap.Dns = &DnsState{Servers: st.Servers, Search: st.Search}
		} else {
			logger.Warn("dns state read failed", "error", err)
		}
	}

	return snap, nil
}

func routeMatchesUserspace(r Route, f *RouteFilter) bool {
	if f == nil {
		return true
	}
	if f.Oif != "" && r.Oif != f.Oif {
		return false
	}
	if f.Scope != nil && r.Scope != *f.Scope {
		return false
	}
	if f.Protocol != nil && r.Protocol != *f.Protocol {
		return false
	}
	if f.Table != nil && r.Table != *f.Table {
		return false
	}
	return true
}

func buildMptcpState(logger *slog.Logger) *MptcpState {
	enabled, err := mptcp.Enabled()
	if err != nil {
		logger.Debug("mptcp sysctl unavailable", "error", err)
	}
	st := &MptcpState{Enabled: enabled}
	mc, err := mptcp.Dial(logger)
	if err != nil {
		logger.Debug("mptcp unavailable", "error", err)
		return st
	}
	defer mc.Close()
	if addrs, err := mc.Addresses(); err == nil {
		st.Addresses = addrs
	} else {
		logger.Debug("mptcp address dump failed", "error", err)
	}
	if add, sub, err := mc.Limits(); err == nil {
		st.AddAddrAcceptedLimit = add
		st.SubflowsLimit = sub
	} else {
		logger.Debug("mptcp limits query failed", "error", err)
	}
	return st
}
