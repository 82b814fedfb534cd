package query

// Filter is the query-local mirror of the root package's NetStateFilter;
// see internal/query/types.go for why this package keeps its own copies
// instead of importing the root package's.
type Filter struct {
	Iface     *IfaceFilter
	Route     *RouteFilter
	RouteRule *RouteRuleFilter
	Mptcp     bool
	Dns       bool
}

type IfaceFilter struct {
	IfaceName string

	IncludeIPAddress   bool
	IncludeSriovVfInfo bool
	IncludeBridgeVlan  bool
	IncludeEthtool     bool
	IncludeMptcp       bool
}

type RouteFilter struct {
	Protocol *string
	Scope    *string
	Oif      string
	Table    *uint32
}

func (f *RouteFilter) pushable() (kernel RouteFilter, userspace RouteFilter) {
	if f == nil {
		return RouteFilter{}, RouteFilter{}
	}
	kernel = RouteFilter{Protocol: f.Protocol, Oif: f.Oif, Table: f.Table}
	if f.Scope != nil && *f.Scope != "universe" {
		kernel.Scope = f.Scope
	} else if f.Scope != nil {
		userspace.Scope = f.Scope
	}
	return kernel, userspace
}

type RouteRuleFilter struct {
	Table *uint32
	Iif   string
	Oif   string
}
