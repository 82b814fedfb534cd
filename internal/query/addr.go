package query

import (
	"fmt"
	"net"

	"github.com/kuuji/netmirror/internal/rtnl"
)

func mergeAddresses(out []Iface, addrs []rtnl.RawAddress) {
	byIndex := map[int]*Iface{}
	for i := range out {
		byIndex[out[i].Index] = &out[i]
	}
	for _, a := range addrs {
		iface, ok := byIndex[a.Index]
		if !ok || len(a.Local) == 0 {
			continue
		}
		ip := net.IP(a.Local)
		entry := IPAddress{
			IP:           ip.String(),
			PrefixLen:    int(a.PrefixLen),
			Label:        a.Label,
			ValidLft:     lftString(a.ValidLft),
			PreferredLft: lftString(a.PreferredLft),
		}
		if ip.To4() != nil {
			if iface.IPv4 == nil {
				iface.IPv4 = &IPInfo{}
			}
			iface.IPv4.Addresses = append(iface.IPv4.Addresses, entry)
		} else {
			if iface.IPv6 == nil {
				iface.IPv6 = &IPInfo{}
			}
			iface.IPv6.Addresses = append(iface.IPv6.Addresses, entry)
		}
	}
}

func lftString(sec uint32) string {
	if sec == 0xFFFFFFFF {
		return "forever"
	}
	return fmt.Sprintf("%dsec", sec)
}
