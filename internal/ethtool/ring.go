package ethtool

import "github.com/kuuji/netmirror/internal/nlattr"

// Ring queries ETHTOOL_MSG_RINGS_GET for one interface.
func (c *Client) Ring(ifaceName string) (*Ring, error) {
	replies, err := c.doRequest(cmdRingsGet, ifaceName, nil)
	if err != nil {
		return nil, err
	}
	if len(replies) == 0 {
		return nil, nil
	}
	m := nlattr.Map(replies[0])
	out := &Ring{}
	assign := func(typ uint16, dst *uint32) {
		if a, ok := m[typ]; ok {
			if v, err := nlattr.U32(a.Value); err == nil {
				*dst = v
			}
		}
	}
	assign(attrRingsRxMax, &out.RxMax)
	assign(attrRingsRxMiniMax, &out.RxMiniMax)
	assign(attrRingsRxJumboMax, &out.RxJumboMax)
	assign(attrRingsTxMax, &out.TxMax)
	assign(attrRingsRx, &out.Rx)
	assign(attrRingsRxMini, &out.RxMini)
	assign(attrRingsRxJumbo, &out.RxJumbo)
	assign(attrRingsTx, &out.Tx)
	return out, nil
}
