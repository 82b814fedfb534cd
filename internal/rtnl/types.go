// Package rtnl is the rtnetlink family transport (C3): a thin wrapper that
// opens an rtnetlink connection, issues LINK/ADDRESS/ROUTE/RULE dumps and
// mutations, and hands back raw decoded fields plus unparsed nested
// attribute bytes for the per-kind parsers in internal/ifaces to decode.
package rtnl

import "github.com/kuuji/netmirror/internal/nlattr"

// RawLink is one RTM_NEWLINK dump record. Common fields are decoded here;
// IFLA_LINKINFO's nested IFLA_INFO_KIND/IFLA_INFO_DATA (and, for a bond
// port, IFLA_INFO_SLAVE_KIND/_DATA) are left as raw bytes for
// internal/ifaces to decode, since their layout is kind-specific.
type RawLink struct {
	Index  int
	Name   string
	MTU    int
	MinMTU *int
	MaxMTU *int

	HWAddr     string
	PermHWAddr string

	Flags     uint32
	OperState uint8 // IF_OPER_*

	Master      *int32
	LinkNetnsID *int32
	LinkIndex   *int32 // IFLA_LINK: base interface for vlan/vxlan/macvlan/... (index form)

	Kind     string
	InfoData []nlattr.Attr

	SlaveKind string
	SlaveData []nlattr.Attr

	// BridgeVlanEntries is not filled by DumpLinks; the AF_BRIDGE-scoped
	// bridge VLAN data (§4.5 step 5) comes back separately, keyed by
	// interface index, from DumpBridgeVlans.
	BridgeVlanEntries []nlattr.Attr

	// TopAttrs is the full decoded top-level IFLA_* attribute list, kept
	// around for attributes with no dedicated field above (IFLA_VFINFO_LIST,
	// for instance), so internal/ifaces can read them without this struct
	// growing a field per consumer.
	TopAttrs []nlattr.Attr
}

// RawAddress is one RTM_NEWADDR dump record.
type RawAddress struct {
	Index        int
	Family       uint8
	PrefixLen    uint8
	Local        []byte
	Address      []byte
	Label        string
	ValidLft     uint32
	PreferredLft uint32
}

// RawRoute is one RTM_NEWROUTE dump record, attribute payload left raw for
// the route decoder in internal/query (convertRoute). That decoder does not
// read RTA_MULTIPATH, RTA_METRICS or RTA_CACHEINFO.
type RawRoute struct {
	Family   uint8
	DstLen   uint8
	SrcLen   uint8
	Tos      uint8
	Table    uint8
	Protocol uint8
	Scope    uint8
	Type     uint8
	Flags    uint32
	Attrs    []nlattr.Attr
}

// RawRule is one FIB_RULE (RTM_NEWRULE) dump record.
type RawRule struct {
	Family   uint8
	DstLen   uint8
	SrcLen   uint8
	Tos      uint8
	Table    uint8
	Action   uint8
	Flags    uint32
	Attrs    []nlattr.Attr
}
