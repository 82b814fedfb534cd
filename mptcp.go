package netmirror

// MptcpState is the host-wide MPTCP path-manager state: whether the
// subsystem is enabled (from the sysctl), the global limits, and every
// registered endpoint address.
type MptcpState struct {
	Enabled              bool
	AddAddrAcceptedLimit uint32
	SubflowsLimit        uint32
	Addresses            []MptcpAddress
}

// MptcpAddress is one MPTCP_PM endpoint address.
type MptcpAddress struct {
	Address string
	ID      *uint8
	Port    *uint16
	Flags   []string // "signal", "subflow", "backup", "fullmesh", ...
	Iface   string   // resolved from the kernel ifindex after tidy-up
}
