// Package query implements the read pipeline (C5): it dials the family
// transports (internal/rtnl, internal/ethtool, internal/mptcp,
// internal/resolvstate), issues the ordered dump sequence, runs each raw
// record through internal/ifaces, and produces a tidied-up snapshot.
//
// Snapshot and its nested types intentionally mirror the root package's
// public types field-for-field but stay free of any dependency on it, for
// the same reason internal/ifaces does: the root package is what wires this
// package into Retrieve, so this package importing the root package back
// would cycle. The root package's retrieve.go does the final conversion.
package query

import (
	"github.com/kuuji/netmirror/internal/ethtool"
	"github.com/kuuji/netmirror/internal/ifaces"
	"github.com/kuuji/netmirror/internal/mptcp"
)

type Snapshot struct {
	Ifaces []Iface
	Routes []Route
	Rules  []Rule
	Mptcp  *MptcpState
	Dns    *DnsState
}

type Iface struct {
	Name      string
	Index     int
	IfaceType string
	State     string
	MTU       int
	MinMTU    *int
	MaxMTU    *int

	MACAddress          string
	PermanentMACAddress string

	Flags []string

	Controller     *string
	ControllerType *string
	LinkNetnsID    *int

	IPv4 *IPInfo
	IPv6 *IPInfo

	Bond            *ifaces.Bond
	Bridge          *ifaces.Bridge
	BridgePort      *ifaces.BridgePort
	BridgeVlan      []ifaces.BridgeVlanEntry
	Vlan            *ifaces.Vlan
	Vxlan           *ifaces.Vxlan
	Veth            *ifaces.Veth
	Vrf             *ifaces.Vrf
	VrfSubordinate  *ifaces.VrfSubordinate
	BondSubordinate *ifaces.BondSubordinate
	MacVlan         *ifaces.MacVlan
	MacVtap         *ifaces.MacVlan
	Tun             *ifaces.Tun
	Ipoib           *ifaces.Ipoib
	MacSec          *ifaces.MacSec
	Hsr             *ifaces.Hsr
	Xfrm            *ifaces.Xfrm
	Sriov           *ifaces.Sriov
	SriovVF         *ifaces.SriovVF

	Ethtool *EthtoolInfo
	Mptcp   *MptcpIfaceInfo
}

type IPInfo struct {
	Addresses []IPAddress
}

type IPAddress struct {
	IP           string
	PrefixLen    int
	Label        string
	ValidLft     string
	PreferredLft string
}

type EthtoolInfo struct {
	Pause    *ethtool.Pause
	Coalesce *ethtool.Coalesce
	Ring     *ethtool.Ring
	LinkMode *ethtool.LinkMode
	Features map[string]bool
}

type MptcpIfaceInfo struct {
	Addresses []mptcp.Address
}

type MptcpState struct {
	Enabled              bool
	AddAddrAcceptedLimit uint32
	SubflowsLimit        uint32
	Addresses            []mptcp.Address
}

type DnsState struct {
	Servers []string
	Search  []string
}

type Route struct {
	AddressFamily int
	Table         uint32
	Protocol      string
	Scope         string
	RouteType     string
	Flags         uint32
	Dst           string
	DstLen        int
	Src           string
	SrcLen        int
	Oif           string
	Iif           string
	Gateway       string
	PreferedSrc   string
	Metric        *uint32
}

type Rule struct {
	AddressFamily     int
	Action            string
	Table             uint32
	GotoTarget        *uint32
	Dst               string
	DstLen            int
	Src               string
	SrcLen            int
	Iif               string
	Oif               string
	FwMark            *uint32
	FwMask            *uint32
	SuppressPrefixLen *int
	Priority          *uint32
	Invert            bool
}
