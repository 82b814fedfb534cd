package netmirror

// Route is one entry in the kernel routing table (IPv4 or IPv6).
type Route struct {
	AddressFamily string // "ipv4" or "ipv6"
	Table         uint32
	Protocol      RouteProtocol
	Scope         RouteScope
	RouteType     RouteType
	Flags         uint32

	Dst string // CIDR, empty for the default route
	Src string // CIDR, optional

	Oif string
	Iif string

	Gateway     string
	PreferedSrc string
	Metric      uint32

	MultipathHops []MultipathHop

	CacheInfo   *RouteCacheInfo
	RTAXMetrics map[string]uint32
}

// MultipathHop is one via/iface/weight leg of a multipath route.
type MultipathHop struct {
	Via    string
	Iface  string
	Weight uint8
	Flags  uint32
}

// RouteCacheInfo mirrors struct rta_cacheinfo.
type RouteCacheInfo struct {
	Error    int32
	Used     uint32
	LastUse  uint32
	ExpiresSecs *uint32
}
