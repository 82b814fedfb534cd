package rtnl

import (
	"fmt"
	"net"

	"github.com/jsimonetti/rtnetlink/v2"
	"golang.org/x/sys/unix"
)

// DumpAddresses issues RTM_GETADDR, optionally scoped to one interface index
// (ifIndex == 0 means all interfaces) (§4.5 step 4).
func (c *Client) DumpAddresses(ifIndex int) ([]RawAddress, error) {
	msgs, err := c.high.Address.List()
	if err != nil {
		return nil, fmt.Errorf("rtnl: address dump: %w", err)
	}
	out := make([]RawAddress, 0, len(msgs))
	for _, m := range msgs {
		if ifIndex != 0 && int(m.Index) != ifIndex {
			continue
		}
		ra := RawAddress{
			Index:     int(m.Index),
			Family:    m.Family,
			PrefixLen: m.PrefixLength,
		}
		if a := m.Attributes; a != nil {
			if a.Local != nil {
				ra.Local = a.Local
			} else if a.Address != nil {
				ra.Local = a.Address
			}
			ra.Address = a.Address
			ra.Label = a.Label
			if a.CacheInfo != nil {
				ra.ValidLft = a.CacheInfo.Valid
				ra.PreferredLft = a.CacheInfo.Preferred
			}
		}
		out = append(out, ra)
	}
	return out, nil
}

// AddrAdd installs an address (RTM_NEWADDR, NLM_F_CREATE|NLM_F_EXCL). The
// apply engine absorbs EEXIST into success (§4.6 step 5 / §8 idempotence).
func (c *Client) AddrAdd(ifIndex int, ip net.IP, prefixLen int, validLft, preferredLft *uint32) error {
	family := uint8(unix.AF_INET)
	if ip.To4() == nil {
		family = unix.AF_INET6
	}
	msg := &rtnetlink.AddressMessage{
		Family:       family,
		PrefixLength: uint8(prefixLen),
		Scope:        unix.RT_SCOPE_UNIVERSE,
		Index:        uint32(ifIndex),
		Attributes: &rtnetlink.AddressAttributes{
			Local:   ip,
			Address: ip,
		},
	}
	if validLft != nil && preferredLft != nil {
		msg.Attributes.CacheInfo = &rtnetlink.CacheInfo{Valid: *validLft, Preferred: *preferredLft}
	}
	if err := c.high.Address.New(msg); err != nil {
		return fmt.Errorf("rtnl: addr add: %w", err)
	}
	return nil
}

// AddrDel removes an address (RTM_DELADDR). The apply engine absorbs
// ESRCH/EADDRNOTAVAIL into success.
func (c *Client) AddrDel(ifIndex int, ip net.IP, prefixLen int) error {
	family := uint8(unix.AF_INET)
	if ip.To4() == nil {
		family = unix.AF_INET6
	}
	msg := &rtnetlink.AddressMessage{
		Family:       family,
		PrefixLength: uint8(prefixLen),
		Index:        uint32(ifIndex),
		Attributes: &rtnetlink.AddressAttributes{
			Local:   ip,
			Address: ip,
		},
	}
	if err := c.high.Address.Delete(msg); err != nil {
		return fmt.Errorf("rtnl: addr delete: %w", err)
	}
	return nil
}
