package query

import (
	"github.com/kuuji/netmirror/internal/nlattr"
	"github.com/kuuji/netmirror/internal/rtnl"
)

const (
	fraDst      = 1
	fraSrc      = 2
	fraIifname  = 3
	fraGoto     = 4
	fraPriority = 6
	fraFwmark   = 10
	fraFlow     = 11
	fraFwmask   = 16
	fraOifname  = 17
	fraSuppressPrefixLen = 14
)

var ruleActionByRaw = map[uint8]string{
	1: "table", 2: "goto", 3: "nop", 6: "blackhole", 7: "unreachable", 8: "prohibit",
}

func convertRule(r rtnl.RawRule) Rule {
	m := nlattr.Map(r.Attrs)
	out := Rule{
		AddressFamily: int(r.Family),
		Table:         uint32(r.Table),
		DstLen:        int(r.DstLen),
		SrcLen:        int(r.SrcLen),
		Invert:        r.Flags&fibRuleInvert != 0,
	}
	if a, ok := ruleActionByRaw[r.Action]; ok {
		out.Action = a
	} else {
		out.Action = "table"
	}
	if a, ok := m[fraDst]; ok {
		out.Dst = decodeAddr(r.Family, a.Value)
	}
	if a, ok := m[fraSrc]; ok {
		out.Src = decodeAddr(r.Family, a.Value)
	}
	if a, ok := m[fraIifname]; ok {
		out.Iif = nlattr.CString(a.Value)
	}
	if a, ok := m[fraOifname]; ok {
		out.Oif = nlattr.CString(a.Value)
	}
	if a, ok := m[fraFwmark]; ok {
		if v, err := nlattr.U32(a.Value); err == nil {
			out.FwMark = &v
		}
	}
	if a, ok := m[fraFwmask]; ok {
		if v, err := nlattr.U32(a.Value); err == nil {
			out.FwMask = &v
		}
	}
	if a, ok := m[fraPriority]; ok {
		if v, err := nlattr.U32(a.Value); err == nil {
			out.Priority = &v
		}
	}
	if a, ok := m[fraGoto]; ok {
		if v, err := nlattr.U32(a.Value); err == nil {
			out.GotoTarget = &v
		}
	}
	if a, ok := m[fraSuppressPrefixLen]; ok {
		if v, err := nlattr.I32(a.Value); err == nil {
			sp := int(v)
			out.SuppressPrefixLen = &sp
		}
	}
	return out
}

const fibRuleInvert = 0x2 // FIB_RULE_INVERT, from linux/fib_rules.h
