package rtnl

import (
	"fmt"
	"net"

	"github.com/mdlayher/netlink"
	"golang.org/x/sys/unix"

	"github.com/kuuji/netmirror/internal/nlattr"
)

const fibRuleHdrLen = 12

// FRA_* attribute types from linux/fib_rules.h. Not exposed by
// golang.org/x/sys/unix, so kept local the same way internal/query/rule.go
// does for the decode side.
const (
	fraDst      = 1
	fraSrc      = 2
	fraIifname  = 3
	fraGoto     = 4
	fraPriority = 6
	fraFwmark   = 10
	fraFwmask   = 16
	fraOifname  = 17
)

// DumpRules issues RTM_GETRULE for one address family (§4.5 step 9).
func (c *Client) DumpRules(family uint8) (rules []RawRule, strict bool, err error) {
	strict = c.setStrict(true)
	defer c.setStrict(false)

	payload := make([]byte, fibRuleHdrLen)
	payload[0] = family

	req := netlink.Message{
		Header: netlink.Header{
			Type:  netlink.HeaderType(unix.RTM_GETRULE),
			Flags: netlink.Request | netlink.Dump,
		},
		Data: payload,
	}
	replies, err := c.raw.Execute(req)
	if err != nil {
		return nil, strict, fmt.Errorf("rtnl: rule dump: %w", err)
	}
	for _, reply := range replies {
		if len(reply.Data) < fibRuleHdrLen {
			continue
		}
		d := reply.Data
		rules = append(rules, RawRule{
			Family: d[0],
			DstLen: d[1],
			SrcLen: d[2],
			Tos:    d[3],
			Table:  d[4],
			Action: d[7],
			Flags:  nlattr.LE32(d[8:12]),
			Attrs:  nlattr.Iterate(d[fibRuleHdrLen:]),
		})
	}
	return rules, strict, nil
}

// RuleAddOpts describes a FIB rule mutation.
type RuleAddOpts struct {
	Family     uint8
	DstLen     uint8
	SrcLen     uint8
	Table      uint32 // >255 goes out as FRA_TABLE instead of the header byte
	Action     uint8
	Dst        net.IP
	Src        net.IP
	Iif        string
	Oif        string
	FwMark     *uint32
	FwMask     *uint32
	Priority   *uint32
	GotoTarget *uint32
}

const fraTable = 15 // FRA_TABLE, linux/fib_rules.h

// RuleAdd issues RTM_NEWRULE with NLM_F_CREATE|NLM_F_EXCL. The apply engine
// treats EEXIST as success, mirroring RouteAdd.
func (c *Client) RuleAdd(opts RuleAddOpts) error {
	return c.ruleMutate(unix.RTM_NEWRULE, unix.NLM_F_CREATE|unix.NLM_F_EXCL, opts)
}

// RuleDel issues RTM_DELRULE. The apply engine treats ENOENT as success.
func (c *Client) RuleDel(opts RuleAddOpts) error {
	return c.ruleMutate(unix.RTM_DELRULE, 0, opts)
}

func (c *Client) ruleMutate(msgType uint16, extraFlags uint16, opts RuleAddOpts) error {
	payload := make([]byte, fibRuleHdrLen)
	payload[0] = opts.Family
	payload[1] = opts.DstLen
	payload[2] = opts.SrcLen
	if opts.Table <= 0xff {
		payload[4] = byte(opts.Table)
	} else {
		payload[4] = 0 // RT_TABLE_UNSPEC; real table carried via FRA_TABLE below
	}
	payload[7] = opts.Action

	var attrs []byte
	if opts.Dst != nil {
		attrs = append(attrs, nlattr.Encode(fraDst, familyAddr(opts.Family, opts.Dst))...)
	}
	if opts.Src != nil {
		attrs = append(attrs, nlattr.Encode(fraSrc, familyAddr(opts.Family, opts.Src))...)
	}
	if opts.Iif != "" {
		attrs = append(attrs, nlattr.EncodeString(fraIifname, opts.Iif)...)
	}
	if opts.Oif != "" {
		attrs = append(attrs, nlattr.EncodeString(fraOifname, opts.Oif)...)
	}
	if opts.FwMark != nil {
		attrs = append(attrs, nlattr.EncodeU32(fraFwmark, *opts.FwMark)...)
	}
	if opts.FwMask != nil {
		attrs = append(attrs, nlattr.EncodeU32(fraFwmask, *opts.FwMask)...)
	}
	if opts.Priority != nil {
		attrs = append(attrs, nlattr.EncodeU32(fraPriority, *opts.Priority)...)
	}
	if opts.GotoTarget != nil {
		attrs = append(attrs, nlattr.EncodeU32(fraGoto, *opts.GotoTarget)...)
	}
	if opts.Table > 0xff {
		attrs = append(attrs, nlattr.EncodeU32(fraTable, opts.Table)...)
	}
	payload = append(payload, attrs...)

	req := netlink.Message{
		Header: netlink.Header{
			Type:  netlink.HeaderType(msgType),
			Flags: netlink.Request | netlink.Acknowledge | netlink.HeaderFlags(extraFlags),
		},
		Data: payload,
	}
	if _, err := c.raw.Execute(req); err != nil {
		return fmt.Errorf("rtnl: rule mutate: %w", err)
	}
	return nil
}
