package query

import "testing"

func TestRouteFilterPushableKeepsNonUniverseScopeAtKernel(t *testing.T) {
	t.Parallel()

	scope := "link"
	f := &RouteFilter{Scope: &scope}
	kernel, userspace := f.pushable()
	if kernel.Scope == nil || *kernel.Scope != "link" {
		t.Errorf("kernel.Scope = %v, want link (non-universe scopes push to the kernel dump request)", kernel.Scope)
	}
	if userspace.Scope != nil {
		t.Errorf("userspace.Scope = %v, want nil", userspace.Scope)
	}
}

func TestRouteFilterPushableMovesUniverseScopeToUserspace(t *testing.T) {
	t.Parallel()

	scope := "universe"
	f := &RouteFilter{Scope: &scope}
	kernel, userspace := f.pushable()
	if kernel.Scope != nil {
		t.Errorf("kernel.Scope = %v, want nil (universe is the kernel's default, not a real filter)", kernel.Scope)
	}
	if userspace.Scope == nil || *userspace.Scope != "universe" {
		t.Errorf("userspace.Scope = %v, want universe", userspace.Scope)
	}
}

func TestRouteFilterPushableNilFilter(t *testing.T) {
	t.Parallel()

	var f *RouteFilter
	kernel, userspace := f.pushable()
	if kernel != (RouteFilter{}) || userspace != (RouteFilter{}) {
		t.Errorf("expected zero-value filters for nil receiver, got kernel=%+v userspace=%+v", kernel, userspace)
	}
}

func TestRouteFilterPushableCarriesOverOtherFields(t *testing.T) {
	t.Parallel()

	proto := "static"
	table := uint32(100)
	f := &RouteFilter{Protocol: &proto, Oif: "eth0", Table: &table}
	kernel, _ := f.pushable()
	if kernel.Protocol == nil || *kernel.Protocol != "static" {
		t.Errorf("kernel.Protocol = %v, want static", kernel.Protocol)
	}
	if kernel.Oif != "eth0" {
		t.Errorf("kernel.Oif = %q, want eth0", kernel.Oif)
	}
	if kernel.Table == nil || *kernel.Table != 100 {
		t.Errorf("kernel.Table = %v, want 100", kernel.Table)
	}
}
