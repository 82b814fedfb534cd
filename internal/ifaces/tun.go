package ifaces

import (
	"fmt"

	"github.com/kuuji/netmirror/internal/nlattr"
)

// ParseTun decodes IFLA_INFO_DATA for a TUN/TAP interface.
func ParseTun(data []nlattr.Attr) *Tun {
	m := nlattr.Map(data)
	info := &Tun{Mode: "tun"}
	if v, ok := u8(m, IFLA_TUN_TYPE); ok {
		switch v {
		case 2:
			info.Mode = "tap"
		default:
			info.Mode = "tun"
		}
		info.Type = fmt.Sprintf("%d", v)
	}
	if v, ok := u32(m, IFLA_TUN_OWNER); ok {
		info.Owner = &v
	}
	if v, ok := u32(m, IFLA_TUN_GROUP); ok {
		info.Group = &v
	}
	info.PersistFlag = boolU8(m, IFLA_TUN_PERSIST)
	info.VnetHdr = boolU8(m, IFLA_TUN_VNET_HDR)
	info.MultiQueue = boolU8(m, IFLA_TUN_MULTI_QUEUE)
	return info
}
