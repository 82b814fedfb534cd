package netmirror

// NetState is one point-in-time snapshot of host networking state, shaped by
// the NetStateFilter passed to Retrieve (§4).
type NetState struct {
	Ifaces     []Iface
	Routes     []Route
	RouteRules []RouteRule
	Mptcp      *MptcpState
	Dns        *DnsState
}
