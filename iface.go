package netmirror

// Iface is the central entity of a snapshot: one network interface as the
// kernel reports it, plus at most one populated kind-specific sub-record.
type Iface struct {
	Name     string
	Index    int // kernel ifindex; transient, not a durable identifier across snapshots
	IfaceType IfaceType
	State    IfaceState
	MTU      int
	MinMTU   *int
	MaxMTU   *int

	MACAddress          string // lowercase colon-separated hex
	PermanentMACAddress string

	Flags []IfaceFlag

	Controller     *string
	ControllerType *ControllerType
	LinkNetnsID    *int

	IPv4 *IPInfo
	IPv6 *IPInfo

	// At most one of the following is non-nil, selected by IfaceType.
	Bond            *BondInfo
	Bridge          *BridgeInfo
	BridgePort      *BridgePortInfo
	BridgeVlan      *BridgeVlanInfo
	Vlan            *VlanInfo
	Vxlan           *VxlanInfo
	Veth            *VethInfo
	Vrf             *VrfInfo
	VrfSubordinate  *VrfSubordinateInfo
	BondSubordinate *BondSubordinateInfo
	MacVlan         *MacVlanInfo
	MacVtap         *MacVtapInfo
	Tun             *TunInfo
	Ipoib           *IpoibInfo
	MacSec          *MacSecInfo
	Hsr             *HsrInfo
	Xfrm            *XfrmInfo
	Sriov           *SriovInfo
	SriovVF         *SriovVFInfo
	Ethtool         *EthtoolInfo
	Mptcp           *MptcpIfaceInfo
}

// IPInfo is the set of addresses of one family on an interface.
type IPInfo struct {
	Addresses []IPAddress
}

// IPAddress is a single address entry with its netlink-reported lifetime.
type IPAddress struct {
	IP           string
	PrefixLen    int
	PeerIP       string
	Label        string
	ValidLft     string // "forever" or "<n>sec"
	PreferredLft string
}

// VlanInfo describes an 802.1Q VLAN sub-interface.
type VlanInfo struct {
	VlanID    uint16
	BaseIface string // name if resolvable, else the stringified kernel index
	Protocol  string // "802.1Q" or "802.1ad"
}

// VxlanInfo describes a VXLAN interface.
type VxlanInfo struct {
	VxlanID      uint32
	BaseIface    string
	Local        string
	Local6       string
	Remote       string
	Remote6      string
	Port         uint16
	SrcPortMin   uint16
	SrcPortMax   uint16
	Learning     bool
	AgeingSecs   uint32
	MaxAddress   uint32
	TTL          uint8
	TOS          uint8
	UDPCsum      bool
}

// VethInfo describes a veth endpoint.
type VethInfo struct {
	// Peer is the name of the other endpoint if it lives in this netns,
	// or the stringified kernel index if it lives in another namespace.
	Peer string
}

// VrfInfo describes a VRF controller.
type VrfInfo struct {
	TableID      uint32
	Subordinates []string
}

// VrfSubordinateInfo is attached to each VRF member interface.
type VrfSubordinateInfo struct {
	TableID uint32
}

// BondSubordinateState mirrors the kernel's bond slave state enum.
type BondSubordinateState string

const (
	BondSubordinateActive BondSubordinateState = "active"
	BondSubordinateBackup BondSubordinateState = "backup"
)

// MiiStatus mirrors the kernel's MII carrier-status enum for bond ports.
type MiiStatus string

const (
	MiiStatusLinkUp   MiiStatus = "link_up"
	MiiStatusLinkDown MiiStatus = "link_down"
	MiiStatusLinkFail MiiStatus = "link_fail"
	MiiStatusUnknown  MiiStatus = "unknown"
)

// BondSubordinateInfo is attached to each bond member interface.
type BondSubordinateInfo struct {
	SubordinateState BondSubordinateState
	MiiStatus        MiiStatus
	LinkFailureCount uint32
	PermHwaddr       string
	QueueID          uint16
	AdAggregatorID   *uint16
	AdActorOperPortState *uint8
	AdPartnerOperPortState *uint8
}

// ArpValidate preserves the kernel's disjoint scalar enumeration rather than
// interpreting it as a bitmask (see spec §9 open question).
type ArpValidate string

const (
	ArpValidateNone       ArpValidate = "none"
	ArpValidateActive     ArpValidate = "active"
	ArpValidateBackup     ArpValidate = "backup"
	ArpValidateAll        ArpValidate = "all"
	ArpValidateFiltered   ArpValidate = "filter"
	ArpValidateFilterActive ArpValidate = "filter_active"
	ArpValidateFilterBackup ArpValidate = "filter_backup"
	ArpValidateUnknown    ArpValidate = "unknown"
)

// FailOverMac mirrors the kernel's fail_over_mac enum (active-backup only).
type FailOverMac string

const (
	FailOverMacNone   FailOverMac = "none"
	FailOverMacActive FailOverMac = "active"
	FailOverMacFollow FailOverMac = "follow"
)

// PrimaryReselect mirrors the kernel's primary_reselect enum.
type PrimaryReselect string

const (
	PrimaryReselectAlways  PrimaryReselect = "always"
	PrimaryReselectBetter  PrimaryReselect = "better"
	PrimaryReselectFailure PrimaryReselect = "failure"
)

// XmitHashPolicy mirrors the kernel's xmit_hash_policy enum.
type XmitHashPolicy string

const (
	XmitHashLayer2       XmitHashPolicy = "layer2"
	XmitHashLayer34      XmitHashPolicy = "layer3+4"
	XmitHashLayer23      XmitHashPolicy = "layer2+3"
	XmitHashEncap23      XmitHashPolicy = "encap2+3"
	XmitHashEncap34      XmitHashPolicy = "encap3+4"
	XmitHashVlanSrcMac   XmitHashPolicy = "vlan+srcmac"
)

// LacpRate mirrors the kernel's lacp_rate enum (802.3ad only).
type LacpRate string

const (
	LacpRateSlow LacpRate = "slow"
	LacpRateFast LacpRate = "fast"
)

// AdSelect mirrors the kernel's ad_select enum (802.3ad only).
type AdSelect string

const (
	AdSelectStable    AdSelect = "stable"
	AdSelectBandwidth AdSelect = "bandwidth"
	AdSelectCount     AdSelect = "count"
)

// BondInfo describes a bond controller. Fields are populated only when
// meaningful for Mode — see spec §9's gating matrix, enforced in
// internal/ifaces/bond.go.
type BondInfo struct {
	Mode         BondMode
	Subordinates []string

	Primary            *string
	PrimaryReselect    *PrimaryReselect
	ActiveSubordinate  *string

	FailOverMac *FailOverMac
	NumUnsolNA  *uint32
	NumGratARP  *uint32

	XmitHashPolicy *XmitHashPolicy

	ResendIgmp *uint32

	PacketsPerSubordinate *uint32

	LacpRate       *LacpRate
	AdSelect       *AdSelect
	AdActorSysPrio *uint16
	AdUserPortKey  *uint16
	AdActorSystem  *string
	LacpActive     *bool

	TlbDynamicLb *bool
	LpInterval   *uint32

	MinLinks *uint32

	ArpValidate *ArpValidate
}

// MacVlanMode mirrors the kernel's macvlan mode enum.
type MacVlanMode string

const (
	MacVlanPrivate  MacVlanMode = "private"
	MacVlanVepa     MacVlanMode = "vepa"
	MacVlanBridge   MacVlanMode = "bridge"
	MacVlanPassthru MacVlanMode = "passthru"
	MacVlanSource   MacVlanMode = "source"
	MacVlanUnknown  MacVlanMode = "unknown"
)

// MacVlanInfo describes a macvlan interface.
type MacVlanInfo struct {
	BaseIface string
	Mode      MacVlanMode
}

// MacVtapInfo describes a macvtap interface (same attribute layout as macvlan).
type MacVtapInfo struct {
	BaseIface string
	Mode      MacVlanMode
}

// TunMode distinguishes TUN from TAP device-type.
type TunMode string

const (
	TunModeTun TunMode = "tun"
	TunModeTap TunMode = "tap"
)

// TunInfo describes a TUN/TAP interface.
type TunInfo struct {
	Mode          TunMode
	Owner         *uint32
	Group         *uint32
	PersistGroup  *string
	Type          string
	PersistFlag   bool
	VnetHdr       bool
	MultiQueue    bool
}

// IpoibInfo describes an IP-over-InfiniBand interface.
type IpoibInfo struct {
	Pkey   uint16
	Mode   string
	Umcast uint8
}

// MacSecValidate mirrors the kernel's macsec validate enum.
type MacSecValidate string

const (
	MacSecValidateDisabled MacSecValidate = "disabled"
	MacSecValidateCheck    MacSecValidate = "check"
	MacSecValidateStrict   MacSecValidate = "strict"
)

// MacSecCipherID mirrors the kernel's macsec cipher-suite identifiers.
type MacSecCipherID string

const (
	MacSecCipherGcmAes128 MacSecCipherID = "gcm-aes-128"
	MacSecCipherGcmAes256 MacSecCipherID = "gcm-aes-256"
	MacSecCipherUnknown   MacSecCipherID = "unknown"
)

// MacSecInfo describes a MACsec interface.
type MacSecInfo struct {
	BaseIface      string
	Sci            uint64
	Port           uint16
	Cipher         MacSecCipherID
	Icvlen         uint8
	EncodingSa     uint8
	Encrypt        bool
	ProtectFrames  bool
	SendSci        bool
	EndStation     bool
	ScbEnabled     bool
	ReplayProtect  bool
	WindowSize     uint32
	Validate       MacSecValidate
}

// HsrProtocolVersion mirrors the kernel's HSR protocol selector.
type HsrProtocolVersion string

const (
	HsrProtocolHsr HsrProtocolVersion = "hsr"
	HsrProtocolPrp HsrProtocolVersion = "prp"
)

// HsrInfo describes a High-availability Seamless Redundancy interface.
type HsrInfo struct {
	Port1           string
	Port2           string
	SupervisionAddr string
	Protocol        HsrProtocolVersion
	MulticastSpec   uint8
}

// XfrmInfo describes an IPsec virtual tunnel interface.
type XfrmInfo struct {
	BaseIface string
	IfID      uint32
}

// SriovInfo is attached to a physical-function interface, one entry per VF.
type SriovInfo struct {
	TotalVFs int
	VFs      []SriovVFInfo
}

// SriovVFInfo describes a single SR-IOV virtual function. IfaceName is
// resolved from sysfs and may be empty if the mapping isn't present (§4.2).
type SriovVFInfo struct {
	ID        int
	IfaceName string
	MAC       string
	Vlan      uint16
	Qos       uint32
	TxRate    uint32
	Spoofchk  bool
	LinkState string
	MinTxRate uint32
	MaxTxRate uint32
	RssQueryEn bool
	Trust      bool
}

// BridgeInfo describes a bridge controller.
type BridgeInfo struct {
	Ports         []string
	StpState      BridgeStpState
	Priority      uint16
	VlanFiltering bool
	VlanProtocol  string
	BridgeID      string // "PPPP.xxxxxxxxxxxx"
	RootID        string
	ForwardDelay  uint32
	HelloTime     uint32
	MaxAge        uint32
	AgeingTime    uint32
	GroupFwdMask  uint16
	GroupAddr     string
}

// BridgePortInfo is attached to each bridge member interface.
type BridgePortInfo struct {
	StpState    BridgeStpState
	Priority    uint16
	PathCost    uint32
	Cost        uint32
	Hairpin     bool
	Guard       bool
	Protect     bool
	FastLeave   bool
	Learning    bool
	Flood       bool
	ProxyArp    bool
	BackupPort  *string
	Vlans       []BridgeVlanEntry
}

// BridgeVlanInfo carries the per-port VLAN membership list (duplicated onto
// BridgePort.Vlans for convenience, kept as its own sub-record per spec §3).
type BridgeVlanInfo struct {
	Vlans []BridgeVlanEntry
}

// BridgeVlanEntry is a single coalesced VLAN membership entry; exactly one
// of Vid or VidRange is set, per the coalescing algorithm in spec §4.2.
type BridgeVlanEntry struct {
	Vid      *uint16
	VidRange *[2]uint16
	Pvid     bool
	Untagged bool
}

// EthtoolInfo carries the merged ethtool-family query results.
type EthtoolInfo struct {
	Pause    *EthtoolPauseInfo
	Features map[string]bool
	Coalesce *EthtoolCoalesceInfo
	Ring     *EthtoolRingInfo
	LinkMode *EthtoolLinkModeInfo
}

// EthtoolPauseInfo mirrors ETHTOOL_A_PAUSE_*.
type EthtoolPauseInfo struct {
	RxPause  bool
	TxPause  bool
	AutoNeg  bool
}

// EthtoolCoalesceInfo mirrors a subset of struct ethtool_coalesce.
type EthtoolCoalesceInfo struct {
	RxUsecs        uint32
	RxMaxFrames    uint32
	TxUsecs        uint32
	TxMaxFrames    uint32
	UseAdaptiveRx  bool
	UseAdaptiveTx  bool
}

// EthtoolRingInfo mirrors struct ethtool_ringparam.
type EthtoolRingInfo struct {
	RxMax     uint32
	RxMiniMax uint32
	RxJumboMax uint32
	TxMax     uint32
	Rx        uint32
	RxMini    uint32
	RxJumbo   uint32
	Tx        uint32
}

// EthtoolLinkModeInfo mirrors struct ethtool_link_settings.
type EthtoolLinkModeInfo struct {
	Speed    int32
	Duplex   string
	Autoneg  bool
	Ours     []string
	Peer     []string
}

// MptcpIfaceInfo is attached to the interface an MPTCP endpoint resolves to.
type MptcpIfaceInfo struct {
	Addresses []MptcpAddress
}
