package query

import (
	"testing"

	"golang.org/x/sys/unix"

	"github.com/kuuji/netmirror/internal/nlattr"
	"github.com/kuuji/netmirror/internal/rtnl"
)

func TestConvertRuleDecodesCoreFields(t *testing.T) {
	t.Parallel()

	attrs := []nlattr.Attr{
		{Type: fraIifname, Value: []byte("eth0\x00")},
		{Type: fraOifname, Value: []byte("eth1\x00")},
		{Type: fraFwmark, Value: leU32(0x42)},
		{Type: fraPriority, Value: leU32(100)},
	}
	raw := rtnl.RawRule{Family: unix.AF_INET, Table: 254, Action: 1, Attrs: attrs}

	r := convertRule(raw)

	if r.Action != "table" {
		t.Errorf("Action = %q, want table", r.Action)
	}
	if r.Iif != "eth0" || r.Oif != "eth1" {
		t.Errorf("Iif/Oif = %q/%q, want eth0/eth1", r.Iif, r.Oif)
	}
	if r.FwMark == nil || *r.FwMark != 0x42 {
		t.Errorf("FwMark = %v, want 0x42", r.FwMark)
	}
	if r.Priority == nil || *r.Priority != 100 {
		t.Errorf("Priority = %v, want 100", r.Priority)
	}
}

func TestConvertRuleUnknownActionDefaultsToTable(t *testing.T) {
	t.Parallel()

	raw := rtnl.RawRule{Family: unix.AF_INET, Action: 0xee}
	r := convertRule(raw)
	if r.Action != "table" {
		t.Errorf("Action = %q, want table (unknown action falls back)", r.Action)
	}
}

func TestConvertRuleInvertFlag(t *testing.T) {
	t.Parallel()

	raw := rtnl.RawRule{Family: unix.AF_INET, Flags: fibRuleInvert}
	r := convertRule(raw)
	if !r.Invert {
		t.Errorf("Invert = false, want true when FIB_RULE_INVERT is set")
	}
}
