package ethtool

import "github.com/kuuji/netmirror/internal/nlattr"

// LinkMode queries ETHTOOL_MSG_LINKMODES_GET for one interface. Ours/Peer
// bitsets (ETHTOOL_A_LINKMODES_OURS/PEER) are variable-width compressed
// bitmaps the kernel can grow at any time; decoding them is left to a future
// iteration (see DESIGN.md) and only the fixed-width fields are surfaced.
func (c *Client) LinkMode(ifaceName string) (*LinkMode, error) {
	replies, err := c.doRequest(cmdLinkmodesGet, ifaceName, nil)
	if err != nil {
		return nil, err
	}
	if len(replies) == 0 {
		return nil, nil
	}
	m := nlattr.Map(replies[0])
	out := &LinkMode{Duplex: "unknown"}
	if a, ok := m[attrLinkmodesSpeed]; ok {
		if v, err := nlattr.U32(a.Value); err == nil {
			out.Speed = int32(v)
		}
	}
	if a, ok := m[attrLinkmodesDuplex]; ok {
		if v, err := nlattr.U8(a.Value); err == nil {
			if s, ok := duplexByRaw[v]; ok {
				out.Duplex = s
			}
		}
	}
	if a, ok := m[attrLinkmodesAutoneg]; ok {
		v, err := nlattr.U8(a.Value)
		out.Autoneg = err == nil && v != 0
	}
	return out, nil
}
