package netmirror

import "fmt"

// IfaceType is the closed set of link kinds this mirror understands, with an
// Other escape for anything the kernel reports that isn't modeled in detail.
type IfaceType string

const (
	IfaceTypeEthernet   IfaceType = "ethernet"
	IfaceTypeLoopback   IfaceType = "loopback"
	IfaceTypeInfiniband IfaceType = "infiniband"
	IfaceTypeBond       IfaceType = "bond"
	IfaceTypeBridge     IfaceType = "bridge"
	IfaceTypeVlan       IfaceType = "vlan"
	IfaceTypeVxlan      IfaceType = "vxlan"
	IfaceTypeVeth       IfaceType = "veth"
	IfaceTypeVrf        IfaceType = "vrf"
	IfaceTypeTun        IfaceType = "tun"
	IfaceTypeTap        IfaceType = "tap"
	IfaceTypeMacVlan    IfaceType = "mac_vlan"
	IfaceTypeMacVtap    IfaceType = "mac_vtap"
	IfaceTypeOpenvswitch IfaceType = "openvswitch"
	IfaceTypeIpoib      IfaceType = "ipoib"
	IfaceTypeMacSec     IfaceType = "mac_sec"
	IfaceTypeHsr        IfaceType = "hsr"
	IfaceTypeXfrm       IfaceType = "xfrm"
	IfaceTypeDummy      IfaceType = "dummy"
	IfaceTypeOther      IfaceType = "other"
)

// IfaceState mirrors IF_OPER_* from linux/if.h.
type IfaceState string

const (
	IfaceStateUp            IfaceState = "up"
	IfaceStateDown          IfaceState = "down"
	IfaceStateDormant       IfaceState = "dormant"
	IfaceStateLowerLayerDown IfaceState = "lower_layer_down"
	IfaceStateTesting       IfaceState = "testing"
	IfaceStateUnknown       IfaceState = "unknown"
	IfaceStateAbsent        IfaceState = "absent" // declarative-only: caller wants the iface removed
)

// IfaceFlag is one bit of the IFF_* flag word (net/if.h), rendered as a set.
type IfaceFlag string

const (
	FlagUp          IfaceFlag = "up"
	FlagBroadcast   IfaceFlag = "broadcast"
	FlagLoopback    IfaceFlag = "loopback"
	FlagPointToPoint IfaceFlag = "point_to_point"
	FlagMulticast   IfaceFlag = "multicast"
	FlagLowerUp     IfaceFlag = "lower_up"
	FlagDormant     IfaceFlag = "dormant"
	FlagSlave       IfaceFlag = "slave"
	FlagMaster      IfaceFlag = "master"
	FlagNoArp       IfaceFlag = "no_arp"
	FlagPromisc     IfaceFlag = "promisc"
)

// ControllerType names the kind of controller an Iface is enslaved to.
type ControllerType string

const (
	ControllerBond   ControllerType = "bond"
	ControllerBridge ControllerType = "bridge"
	ControllerVrf    ControllerType = "vrf"
)

// BondMode is the closed set of Linux bonding modes.
type BondMode string

const (
	BondModeBalanceRR    BondMode = "balance-rr"
	BondModeActiveBackup BondMode = "active-backup"
	BondModeBalanceXOR   BondMode = "balance-xor"
	BondModeBroadcast    BondMode = "broadcast"
	BondMode8023AD       BondMode = "802.3ad"
	BondModeBalanceTLB   BondMode = "balance-tlb"
	BondModeBalanceALB   BondMode = "balance-alb"
	BondModeUnknown      BondMode = "unknown"
)

// Other is the escape hatch enums use for unrecognized raw kernel values.
type Other struct {
	Raw uint32
}

func (o Other) String() string { return fmt.Sprintf("other(%d)", o.Raw) }

// BridgeStpState mirrors the kernel's bridge STP state enum.
type BridgeStpState string

const (
	StpDisabled   BridgeStpState = "disabled"
	StpKernelSTP  BridgeStpState = "kernel_stp"
	StpUserSTP    BridgeStpState = "user_stp"
	StpUnknown    BridgeStpState = "unknown"
)

// RouteAction is the closed set of rtnetlink rule actions.
type RouteAction string

const (
	RuleActionTable       RouteAction = "table"
	RuleActionGoto        RouteAction = "goto"
	RuleActionNop         RouteAction = "nop"
	RuleActionBlackhole   RouteAction = "blackhole"
	RuleActionUnreachable RouteAction = "unreachable"
	RuleActionProhibit    RouteAction = "prohibit"
)

// RouteScope mirrors RT_SCOPE_* from linux/rtnetlink.h.
type RouteScope string

const (
	ScopeUniverse RouteScope = "universe"
	ScopeSite     RouteScope = "site"
	ScopeLink     RouteScope = "link"
	ScopeHost     RouteScope = "host"
	ScopeNowhere  RouteScope = "nowhere"
)

// RouteProtocol mirrors RTPROT_* from linux/rtnetlink.h.
type RouteProtocol string

const (
	ProtoUnspec RouteProtocol = "unspec"
	ProtoRedirect RouteProtocol = "redirect"
	ProtoKernel RouteProtocol = "kernel"
	ProtoBoot   RouteProtocol = "boot"
	ProtoStatic RouteProtocol = "static"
	ProtoDhcp   RouteProtocol = "dhcp"
	ProtoOther  RouteProtocol = "other"
)

// RouteType mirrors RTN_* from linux/rtnetlink.h.
type RouteType string

const (
	RouteTypeUnicast     RouteType = "unicast"
	RouteTypeLocal       RouteType = "local"
	RouteTypeBroadcast   RouteType = "broadcast"
	RouteTypeAnycast     RouteType = "anycast"
	RouteTypeMulticast   RouteType = "multicast"
	RouteTypeBlackhole   RouteType = "blackhole"
	RouteTypeUnreachable RouteType = "unreachable"
	RouteTypeProhibit    RouteType = "prohibit"
	RouteTypeOther       RouteType = "other"
)
