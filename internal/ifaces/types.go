package ifaces

// The DTOs below deliberately do not import the root package: internal/query
// (which assembles a public snapshot) sits between this package and the root
// package's Retrieve, and the root package is what ties query together, so a
// dependency from here on the root package would cycle. Enum-like fields are
// plain strings holding the same literal values as their root-package
// counterparts; the root package's assembly step converts with a plain
// string conversion, never a lookup table.

type Bond struct {
	Mode              string
	Subordinates      []string
	ActiveSubordinate *string
	Primary           *string
	PrimaryReselect   *string

	FailOverMac *string
	NumUnsolNA  *uint32
	NumGratARP  *uint32

	XmitHashPolicy *string

	ResendIgmp *uint32

	PacketsPerSubordinate *uint32

	LacpRate       *string
	AdSelect       *string
	AdActorSysPrio *uint16
	AdUserPortKey  *uint16
	AdActorSystem  *string
	LacpActive     *bool

	TlbDynamicLb *bool
	LpInterval   *uint32

	MinLinks *uint32

	ArpValidate *string
}

type BondSubordinate struct {
	SubordinateState string
	MiiStatus        string
	LinkFailureCount uint32
	PermHwaddr       string
	QueueID          uint16
	AdAggregatorID   *uint16
	AdActorOperPortState   *uint8
	AdPartnerOperPortState *uint8
}

type Vlan struct {
	VlanID    uint16
	BaseIface string
	Protocol  string
}

type Vxlan struct {
	VxlanID    uint32
	BaseIface  string
	Local      string
	Local6     string
	Remote     string
	Remote6    string
	Port       uint16
	SrcPortMin uint16
	SrcPortMax uint16
	Learning   bool
	AgeingSecs uint32
	MaxAddress uint32
	TTL        uint8
	TOS        uint8
	UDPCsum    bool
}

type Veth struct {
	Peer string
}

type Vrf struct {
	TableID      uint32
	Subordinates []string
}

type VrfSubordinate struct {
	TableID uint32
}

type MacVlan struct {
	BaseIface string
	Mode      string
}

type Tun struct {
	Mode         string
	Owner        *uint32
	Group        *uint32
	PersistGroup *string
	Type         string
	PersistFlag  bool
	VnetHdr      bool
	MultiQueue   bool
}

type Ipoib struct {
	Pkey   uint16
	Mode   string
	Umcast uint8
}

type MacSec struct {
	BaseIface     string
	Sci           uint64
	Port          uint16
	Cipher        string
	Icvlen        uint8
	EncodingSa    uint8
	Encrypt       bool
	ProtectFrames bool
	SendSci       bool
	EndStation    bool
	ScbEnabled    bool
	ReplayProtect bool
	WindowSize    uint32
	Validate      string
}

type Hsr struct {
	Port1           string
	Port2           string
	SupervisionAddr string
	Protocol        string
	MulticastSpec   uint8
}

type Xfrm struct {
	BaseIface string
	IfID      uint32
}

type Bridge struct {
	Ports         []string
	StpState      string
	Priority      uint16
	VlanFiltering bool
	VlanProtocol  string
	BridgeID      string
	RootID        string
	ForwardDelay  uint32
	HelloTime     uint32
	MaxAge        uint32
	AgeingTime    uint32
	GroupFwdMask  uint16
	GroupAddr     string
}

type BridgePort struct {
	StpState   string
	Priority   uint16
	Cost       uint32
	Hairpin    bool
	Guard      bool
	Protect    bool
	FastLeave  bool
	Learning   bool
	Flood      bool
	ProxyArp   bool
	BackupPort *string
	Vlans      []BridgeVlanEntry
}

type BridgeVlanEntry struct {
	Vid      *uint16
	VidRange *[2]uint16
	Pvid     bool
	Untagged bool
}

type Sriov struct {
	TotalVFs int
	VFs      []SriovVF
}

type SriovVF struct {
	ID         int
	IfaceName  string
	MAC        string
	Vlan       uint16
	Qos        uint32
	TxRate     uint32
	Spoofchk   bool
	LinkState  string
	MinTxRate  uint32
	MaxTxRate  uint32
	RssQueryEn bool
	Trust      bool
}
