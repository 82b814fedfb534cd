package ethtool

import "github.com/kuuji/netmirror/internal/nlattr"

// Coalesce queries ETHTOOL_MSG_COALESCE_GET for one interface.
func (c *Client) Coalesce(ifaceName string) (*Coalesce, error) {
	replies, err := c.doRequest(cmdCoalesceGet, ifaceName, nil)
	if err != nil {
		return nil, err
	}
	if len(replies) == 0 {
		return nil, nil
	}
	m := nlattr.Map(replies[0])
	out := &Coalesce{}
	if a, ok := m[attrCoalesceRxUsecs]; ok {
		v, err := nlattr.U32(a.Value)
		if err == nil {
			out.RxUsecs = v
		}
	}
	if a, ok := m[attrCoalesceRxMaxFrames]; ok {
		v, err := nlattr.U32(a.Value)
		if err == nil {
			out.RxMaxFrames = v
		}
	}
	if a, ok := m[attrCoalesceTxUsecs]; ok {
		v, err := nlattr.U32(a.Value)
		if err == nil {
			out.TxUsecs = v
		}
	}
	if a, ok := m[attrCoalesceTxMaxFrames]; ok {
		v, err := nlattr.U32(a.Value)
		if err == nil {
			out.TxMaxFrames = v
		}
	}
	if a, ok := m[attrCoalesceUseAdaptiveRx]; ok {
		v, err := nlattr.U8(a.Value)
		out.UseAdaptiveRx = err == nil && v != 0
	}
	if a, ok := m[attrCoalesceUseAdaptiveTx]; ok {
		v, err := nlattr.U8(a.Value)
		out.UseAdaptiveTx = err == nil && v != 0
	}
	return out, nil
}
