package mptcp

import "github.com/kuuji/netmirror/internal/nlattr"

// MPTCP_PM_CMD_GET_ADDR / MPTCP_PM_ATTR_* numbers from
// linux/mptcp_pm_netlink.h, limited to the subset this package decodes.
const (
	cmdGetAddr = 3
	cmdGetLimits = 6

	attrAddr = 1

	addrInfoAddr  = 1
	addrInfoID    = 2
	addrInfoFlags = 6
	addrInfoIface = 7
	addrInfoPort  = 5

	addrFamily = 1
	addrFamilyV4 = 1
	addrV4       = 3
	addrV6       = 4

	limitsRcvAddAddr = 2
	limitsSubflows   = 3
)

type Address struct {
	ID      uint8
	Address string
	Port    uint16
	Flags   uint32
	Iface   int32
}

// Addresses lists every configured MPTCP endpoint (MPTCP_PM_CMD_GET_ADDR).
func (c *Client) Addresses() ([]Address, error) {
	replies, err := c.execute(cmdGetAddr, nil)
	if err != nil {
		return nil, err
	}
	var out []Address
	for _, attrs := range replies {
		top, ok := nlattr.Find(attrs, attrAddr)
		if !ok {
			continue
		}
		m := nlattr.Map(nlattr.Nested(top))
		addr := Address{}
		if a, ok := m[addrInfoID]; ok {
			if v, err := nlattr.U8(a.Value); err == nil {
				addr.ID = v
			}
		}
		if a, ok := m[addrInfoFlags]; ok {
			if v, err := nlattr.U32(a.Value); err == nil {
				addr.Flags = v
			}
		}
		if a, ok := m[addrInfoIface]; ok {
			if v, err := nlattr.I32(a.Value); err == nil {
				addr.Iface = v
			}
		}
		if a, ok := m[addrInfoPort]; ok {
			if v, err := nlattr.U16(a.Value); err == nil {
				addr.Port = v
			}
		}
		if a, ok := m[addrV4]; ok {
			if ip, err := nlattr.IPv4(a.Value); err == nil {
				addr.Address = ip.String()
			}
		} else if a, ok := m[addrV6]; ok {
			if ip, err := nlattr.IPv6(a.Value); err == nil {
				addr.Address = ip.String()
			}
		}
		out = append(out, addr)
	}
	return out, nil
}

// Limits reads the add_addr_accepted/subflows ceilings
// (MPTCP_PM_CMD_GET_LIMITS).
func (c *Client) Limits() (addAddrAccepted, subflows uint32, err error) {
	replies, err := c.execute(cmdGetLimits, nil)
	if err != nil {
		return 0, 0, err
	}
	if len(replies) == 0 {
		return 0, 0, nil
	}
	m := nlattr.Map(replies[0])
	if a, ok := m[limitsRcvAddAddr]; ok {
		if v, e := nlattr.U32(a.Value); e == nil {
			addAddrAccepted = v
		}
	}
	if a, ok := m[limitsSubflows]; ok {
		if v, e := nlattr.U32(a.Value); e == nil {
			subflows = v
		}
	}
	return addAddrAccepted, subflows, nil
}
