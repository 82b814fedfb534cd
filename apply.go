package netmirror

// NetConf is a declarative configuration bundle submitted to Apply. It is
// caller-owned: the library never persists it (§1 Non-goal, §6).
type NetConf struct {
	Ifaces     []IfaceConf
	Routes     []RouteConf
	RouteRules []RouteRuleConf
}

// IfaceConf declares the desired state of one interface. Setting State to
// IfaceStateAbsent and the interface being present triggers deletion (§4.6).
type IfaceConf struct {
	Name      string
	IfaceType IfaceType
	State     IfaceState

	MTU *int

	MAC string

	Controller *string // desired enslavement; nil leaves it untouched

	IPv4 *IPConf
	IPv6 *IPConf

	Vlan  *VlanConf
	Veth  *VethConf
	Bond  *BondConf
	Bridge *BridgeConf
}

// IPConf declares the desired address set on one interface/family.
type IPConf struct {
	Addresses []IPAddressConf
}

// IPAddressConf declares one address. Remove marks the address for deletion
// rather than creation (§4.6 step 4).
type IPAddressConf struct {
	IP           string
	PrefixLen    int
	ValidLft     string // "forever" (default) or "<n>sec"
	PreferredLft string
	Remove       bool
}

// VlanConf declares a VLAN sub-interface to create.
type VlanConf struct {
	BaseIface string
	VlanID    uint16
	Protocol  string // defaults to "802.1Q"
}

// VethConf declares a veth pair to create.
type VethConf struct {
	PeerName string
}

// BondConf declares a bond controller to create/update.
type BondConf struct {
	Mode         BondMode
	Subordinates []string
}

// BridgeConf declares a bridge controller to create/update.
type BridgeConf struct {
	Ports         []string
	VlanFiltering bool
}

// RouteConf declares one route to create or remove. Table defaults to the
// main table (254) when zero; Remove marks it for deletion instead of
// creation, mirroring IPAddressConf's convention (§4.6 step 5).
type RouteConf struct {
	AddressFamily int
	Dst           string
	PrefixLen     int
	Gateway       string
	Oif           string
	Table         uint32
	Protocol      RouteProtocol
	Scope         RouteScope
	Metric        *uint32
	Remove        bool
}

// RouteRuleConf declares one policy routing rule to create or remove,
// applied as a static list rather than diffed against current state
// (§4.6): every entry is installed or removed every Apply call, with
// kernel EEXIST/ENOENT absorbed as success the same way RouteConf is.
type RouteRuleConf struct {
	AddressFamily int
	Action        RouteAction
	Table         uint32
	GotoTarget    *uint32

	Dst       string
	DstPrefix int
	Src       string
	SrcPrefix int

	Iif string
	Oif string

	FwMark *uint32
	FwMask *uint32

	Priority uint32
	Remove   bool
}
