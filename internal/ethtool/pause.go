package ethtool

import "github.com/kuuji/netmirror/internal/nlattr"

// Pause queries ETHTOOL_MSG_PAUSE_GET for one interface.
func (c *Client) Pause(ifaceName string) (*Pause, error) {
	replies, err := c.doRequest(cmdPauseGet, ifaceName, nil)
	if err != nil {
		return nil, err
	}
	if len(replies) == 0 {
		return nil, nil
	}
	m := nlattr.Map(replies[0])
	out := &Pause{}
	if a, ok := m[attrPauseAutoneg]; ok {
		v, err := nlattr.U8(a.Value)
		out.AutoNeg = err == nil && v != 0
	}
	if a, ok := m[attrPauseRx]; ok {
		v, err := nlattr.U8(a.Value)
		out.RxPause = err == nil && v != 0
	}
	if a, ok := m[attrPauseTx]; ok {
		v, err := nlattr.U8(a.Value)
		out.TxPause = err == nil && v != 0
	}
	return out, nil
}
