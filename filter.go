package netmirror

// NetStateFilter selects which sections of kernel state Retrieve assembles,
// and which optional sub-fields/predicates within each section to apply. The
// zero value matches nothing; use Default or Minimum to start from a
// sensible baseline (§4.4).
type NetStateFilter struct {
	Iface     *IfaceFilter
	Route     *RouteFilter
	RouteRule *RouteRuleFilter
	Mptcp     bool
	Dns       bool
}

// DefaultFilter returns a filter selecting every section with every
// optional field included.
func DefaultFilter() NetStateFilter {
	return NetStateFilter{
		Iface:     defaultIfaceFilter(),
		Route:     defaultRouteFilter(),
		RouteRule: defaultRouteRuleFilter(),
		Mptcp:     true,
		Dns:       true,
	}
}

// MinimumFilter returns a filter selecting nothing.
func MinimumFilter() NetStateFilter {
	return NetStateFilter{}
}

// IfaceFilter controls the LINK/ADDRESS/bridge-VLAN/ethtool dump phases.
type IfaceFilter struct {
	IfaceName string // exact-match predicate; empty means "all"

	IncludeIPAddress     bool
	IncludeSriovVfInfo   bool
	IncludeBridgeVlan    bool
	IncludeEthtool       bool
	IncludeMptcp         bool
}

func defaultIfaceFilter() *IfaceFilter {
	return &IfaceFilter{
		IncludeIPAddress:   true,
		IncludeSriovVfInfo: true,
		IncludeBridgeVlan:  true,
		IncludeEthtool:     true,
		IncludeMptcp:       true,
	}
}

// RouteFilter selects and constrains the ROUTE dump (§4.4).
type RouteFilter struct {
	Protocol *RouteProtocol
	Scope    *RouteScope
	Oif      string
	Table    *uint32
}

func defaultRouteFilter() *RouteFilter { return &RouteFilter{} }

// pushable reports which of this filter's predicates the kernel can enforce
// in strict-check mode, versus which must be applied in user space (§4.4).
// Scope == ScopeUniverse is a wildcard at the kernel level and is never
// pushed down even when set explicitly.
func (f *RouteFilter) pushable() (kernel RouteFilter, userspace RouteFilter) {
	if f == nil {
		return RouteFilter{}, RouteFilter{}
	}
	kernel = RouteFilter{Protocol: f.Protocol, Oif: f.Oif, Table: f.Table}
	userspace = RouteFilter{}
	if f.Scope != nil && *f.Scope != ScopeUniverse {
		kernel.Scope = f.Scope
	} else if f.Scope != nil {
		userspace.Scope = f.Scope
	}
	return kernel, userspace
}

// RouteRuleFilter selects the RULE dump.
type RouteRuleFilter struct {
	Table *uint32
	Iif   string
	Oif   string
}

func defaultRouteRuleFilter() *RouteRuleFilter { return &RouteRuleFilter{} }
