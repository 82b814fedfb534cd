package rtnl

import (
	"fmt"

	"github.com/jsimonetti/rtnetlink/v2"
	"github.com/mdlayher/netlink"
	"golang.org/x/sys/unix"

	"github.com/kuuji/netmirror/internal/nlattr"
)

// IFLA_* attribute numbers this package decodes directly off the wire
// (golang.org/x/sys/unix exports most of these; a couple of newer ones —
// MIN_MTU/MAX_MTU/PERM_ADDRESS — are not, so the full set is listed here for
// a single source of truth).
const (
	ifla_address      = 1
	ifla_broadcast    = 2
	ifla_ifname       = 3
	ifla_mtu          = 4
	ifla_link         = 5
	ifla_operstate    = 16
	ifla_linkinfo     = 18
	ifla_net_ns_id    = 37
	ifla_vfinfo_list  = 22
	ifla_master       = 10
	ifla_min_mtu      = 50
	ifla_max_mtu      = 51
	ifla_perm_address = 54

	ifla_info_kind       = 1
	ifla_info_data       = 2
	ifla_info_slave_kind = 4
	ifla_info_slave_data = 5
)

// DumpLinks issues RTM_GETLINK with NLM_F_DUMP over the raw connection and
// decodes every reply field-by-field: the typed rtnetlink.Conn wrapper does
// not expose several attributes this package needs (MIN_MTU/MAX_MTU,
// PERM_ADDRESS, VFINFO_LIST), so links are parsed the same way routes and
// rules are. It always returns every link: the kernel's link dump has no
// native by-name filter, so an iface_name filter is applied by the caller
// in user space (§4.5 step 1/3).
func (c *Client) DumpLinks() ([]RawLink, error) {
	req := netlink.Message{
		Header: netlink.Header{
			Type:  netlink.HeaderType(unix.RTM_GETLINK),
			Flags: netlink.Request | netlink.Dump,
		},
		Data: make([]byte, ifinfomsgLen),
	}
	replies, err := c.raw.Execute(req)
	if err != nil {
		return nil, fmt.Errorf("rtnl: link dump: %w", err)
	}
	out := make([]RawLink, 0, len(replies))
	for _, reply := range replies {
		if len(reply.Data) < ifinfomsgLen {
			continue
		}
		out = append(out, convertLink(reply.Data))
	}
	return out, nil
}

func convertLink(d []byte) RawLink {
	rl := RawLink{
		Index: int(nlattr.LE32(d[4:8])),
		Flags: nlattr.LE32(d[8:12]),
	}
	attrs := nlattr.Iterate(d[ifinfomsgLen:])
	rl.TopAttrs = attrs
	m := nlattr.Map(attrs)

	if a, ok := m[ifla_ifname]; ok {
		rl.Name = nlattr.CString(a.Value)
	}
	if a, ok := m[ifla_mtu]; ok {
		if v, err := nlattr.U32(a.Value); err == nil {
			rl.MTU = int(v)
		}
	}
	if a, ok := m[ifla_min_mtu]; ok {
		if v, err := nlattr.U32(a.Value); err == nil {
			mv := int(v)
			rl.MinMTU = &mv
		}
	}
	if a, ok := m[ifla_max_mtu]; ok {
		if v, err := nlattr.U32(a.Value); err == nil {
			mv := int(v)
			rl.MaxMTU = &mv
		}
	}
	if a, ok := m[ifla_address]; ok {
		if v, err := nlattr.MAC(a.Value); err == nil {
			rl.HWAddr = v
		}
	}
	if a, ok := m[ifla_perm_address]; ok {
		if v, err := nlattr.MAC(a.Value); err == nil {
			rl.PermHWAddr = v
		}
	}
	if a, ok := m[ifla_operstate]; ok {
		if v, err := nlattr.U8(a.Value); err == nil {
			rl.OperState = v
		}
	}
	if a, ok := m[ifla_master]; ok {
		if v, err := nlattr.I32(a.Value); err == nil {
			rl.Master = &v
		}
	}
	if a, ok := m[ifla_link]; ok {
		if v, err := nlattr.I32(a.Value); err == nil {
			rl.LinkIndex = &v
		}
	}
	if a, ok := m[ifla_net_ns_id]; ok {
		if v, err := nlattr.I32(a.Value); err == nil {
			id := int32(v)
			rl.LinkNetnsID = &id
		}
	}
	if a, ok := m[ifla_linkinfo]; ok {
		nested := nlattr.Map(nlattr.Nested(a))
		if k, ok := nested[ifla_info_kind]; ok {
			rl.Kind = nlattr.CString(k.Value)
		}
		if v, ok := nested[ifla_info_data]; ok {
			rl.InfoData = nlattr.Nested(v)
		}
		if k, ok := nested[ifla_info_slave_kind]; ok {
			rl.SlaveKind = nlattr.CString(k.Value)
		}
		if v, ok := nested[ifla_info_slave_data]; ok {
			rl.SlaveData = nlattr.Nested(v)
		}
	}
	return rl
}

// DumpBridgeVlans re-issues a LINK dump scoped to AF_BRIDGE with the
// compressed-VLAN extended filter mask set, returning the raw IFLA_AF_SPEC
// payload for each interface so the bridge-VLAN coalescing parser can merge
// it into the already-built Iface (§4.5 step 5).
func (c *Client) DumpBridgeVlans() (map[int][]nlattr.Attr, error) {
	req := netlink.Message{
		Header: netlink.Header{
			Type:  netlink.HeaderType(unix.RTM_GETLINK),
			Flags: netlink.Request | netlink.Dump,
		},
		Data: bridgeVlanDumpPayload(),
	}
	replies, err := c.raw.Execute(req)
	if err != nil {
		return nil, fmt.Errorf("rtnl: bridge vlan dump: %w", err)
	}
	out := make(map[int][]nlattr.Attr, len(replies))
	for _, reply := range replies {
		if len(reply.Data) < ifinfomsgLen {
			continue
		}
		idx := int(nlattr.LE32(reply.Data[4:8]))
		attrs := nlattr.Iterate(reply.Data[ifinfomsgLen:])
		if spec, ok := nlattr.Find(attrs, unix.IFLA_AF_SPEC); ok {
			out[idx] = nlattr.Nested(spec)
		}
	}
	return out, nil
}

const ifinfomsgLen = 16

// bridgeVlanDumpPayload builds the ifinfomsg header (family=AF_BRIDGE) plus
// an IFLA_EXT_MASK attribute requesting the compressed VLAN list.
func bridgeVlanDumpPayload() []byte {
	const extMaskBridgeVlanCompressed = 1 << 5 // RTEXT_FILTER_BRVLAN_COMPRESSED
	buf := make([]byte, ifinfomsgLen)
	buf[0] = unix.AF_BRIDGE
	extMask := nlattr.EncodeU32(unix.IFLA_EXT_MASK, extMaskBridgeVlanCompressed)
	return append(buf, extMask...)
}

// --- Link mutations (C6) ---

// LinkSetUp brings an interface up.
func (c *Client) LinkSetUp(index int) error {
	return c.setLinkFlags(index, unix.IFF_UP, unix.IFF_UP)
}

// LinkSetDown brings an interface down.
func (c *Client) LinkSetDown(index int) error {
	return c.setLinkFlags(index, 0, unix.IFF_UP)
}

func (c *Client) setLinkFlags(index int, flags, change uint32) error {
	err := c.high.Link.Set(&rtnetlink.LinkMessage{
		Family: unix.AF_UNSPEC,
		Index:  uint32(index),
		Flags:  flags,
		Change: change,
	})
	if err != nil {
		return fmt.Errorf("rtnl: set link flags: %w", err)
	}
	return nil
}

// LinkSetMaster enslaves index to masterIndex (pass 0 to release).
func (c *Client) LinkSetMaster(index int, masterIndex int) error {
	master := uint32(masterIndex)
	err := c.high.Link.Set(&rtnetlink.LinkMessage{
		Family: unix.AF_UNSPEC,
		Index:  uint32(index),
		Attributes: &rtnetlink.LinkAttributes{
			Master: &master,
		},
	})
	if err != nil {
		return fmt.Errorf("rtnl: set link master: %w", err)
	}
	return nil
}

// LinkSetHardwareAddr sets the MAC address of an interface.
func (c *Client) LinkSetHardwareAddr(index int, mac []byte) error {
	err := c.high.Link.Set(&rtnetlink.LinkMessage{
		Family: unix.AF_UNSPEC,
		Index:  uint32(index),
		Attributes: &rtnetlink.LinkAttributes{
			Address: mac,
		},
	})
	if err != nil {
		return fmt.Errorf("rtnl: set link hwaddr: %w", err)
	}
	return nil
}

// LinkSetMTU sets the interface MTU.
func (c *Client) LinkSetMTU(index int, mtu uint32) error {
	err := c.high.Link.Set(&rtnetlink.LinkMessage{
		Family: unix.AF_UNSPEC,
		Index:  uint32(index),
		Attributes: &rtnetlink.LinkAttributes{
			MTU: mtu,
		},
	})
	if err != nil {
		return fmt.Errorf("rtnl: set link mtu: %w", err)
	}
	return nil
}

const (
	veth_info_peer = 1
)

// LinkAddOpts describes a virtual link to create (§4.6 create bucket). Built
// and executed as a raw RTM_NEWLINK rather than through the typed Link.New
// helper: IFLA_LINK and the veth IFLA_INFO_DATA/VETH_INFO_PEER nesting need
// exact control over attribute layout that the typed wrapper doesn't expose.
type LinkAddOpts struct {
	Name     string
	Kind     string // "vlan", "bond", "veth", "bridge"
	InfoData []byte // raw IFLA_INFO_DATA payload, already encoded by internal/ifaces
	Link     *int32 // IFLA_LINK, e.g. VLAN base interface
	PeerName string // veth only
}

// LinkAdd creates a virtual interface with NLM_F_CREATE|NLM_F_EXCL. The
// apply engine treats EEXIST as success.
func (c *Client) LinkAdd(opts LinkAddOpts) error {
	payload := make([]byte, ifinfomsgLen)

	var attrs []byte
	attrs = append(attrs, nlattr.EncodeString(ifla_ifname, opts.Name)...)
	if opts.Link != nil {
		attrs = append(attrs, nlattr.EncodeU32(ifla_link, uint32(*opts.Link))...)
	}

	var linkInfo []byte
	linkInfo = append(linkInfo, nlattr.EncodeString(ifla_info_kind, opts.Kind)...)
	switch {
	case opts.Kind == "veth":
		peerIfinfo := make([]byte, ifinfomsgLen)
		peerAttrs := nlattr.EncodeString(ifla_ifname, opts.PeerName)
		peer := append(peerIfinfo, peerAttrs...)
		linkInfo = append(linkInfo, nlattr.EncodeNested(ifla_info_data, nlattr.EncodeNested(veth_info_peer, peer))...)
	case len(opts.InfoData) > 0:
		linkInfo = append(linkInfo, nlattr.EncodeNested(ifla_info_data, opts.InfoData)...)
	}
	attrs = append(attrs, nlattr.EncodeNested(ifla_linkinfo, linkInfo)...)

	payload = append(payload, attrs...)

	req := netlink.Message{
		Header: netlink.Header{
			Type:  netlink.HeaderType(unix.RTM_NEWLINK),
			Flags: netlink.Request | netlink.Acknowledge | netlink.HeaderFlags(unix.NLM_F_CREATE|unix.NLM_F_EXCL),
		},
		Data: payload,
	}
	if _, err := c.raw.Execute(req); err != nil {
		return fmt.Errorf("rtnl: link add %s (%s): %w", opts.Name, opts.Kind, err)
	}
	return nil
}

// LinkDel deletes an interface by index.
func (c *Client) LinkDel(index int) error {
	if err := c.high.Link.Delete(uint32(index)); err != nil {
		return fmt.Errorf("rtnl: link delete: %w", err)
	}
	return nil
}

// LinkByName resolves a name to a link by dumping every link and matching
// the name.
func (c *Client) LinkByName(name string) (RawLink, bool, error) {
	links, err := c.DumpLinks()
	if err != nil {
		return RawLink{}, false, err
	}
	for _, l := range links {
		if l.Name == name {
			return l, true, nil
		}
	}
	return RawLink{}, false, nil
}
