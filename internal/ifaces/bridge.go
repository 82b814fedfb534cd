package ifaces

import (
	"fmt"

	"github.com/kuuji/netmirror/internal/nlattr"
)

var stpStateByRaw = map[uint32]string{0: "disabled", 1: "kernel_stp", 2: "user_stp"}

// ParseBridge decodes IFLA_INFO_DATA for a bridge controller. Ports is left
// for the caller to fill from the IFLA_MASTER reverse scan.
func ParseBridge(data []nlattr.Attr) *Bridge {
	m := nlattr.Map(data)
	info := &Bridge{StpState: "unknown", VlanProtocol: "802.1Q"}
	if v, ok := u32(m, IFLA_BR_STP_STATE); ok {
		if s, ok := stpStateByRaw[v]; ok {
			info.StpState = s
		}
	}
	if v, ok := u16(m, IFLA_BR_PRIORITY); ok {
		info.Priority = v
	}
	info.VlanFiltering = boolU8(m, IFLA_BR_VLAN_FILTERING)
	if v, ok := u16be(m, IFLA_BR_VLAN_PROTOCOL); ok {
		switch v {
		case 0x8100:
			info.VlanProtocol = "802.1Q"
		case 0x88a8:
			info.VlanProtocol = "802.1ad"
		}
	}
	if v, ok := u16(m, IFLA_BR_GROUP_FWD_MASK); ok {
		info.GroupFwdMask = v
	}
	if v, ok := u32(m, IFLA_BR_FORWARD_DELAY); ok {
		info.ForwardDelay = v
	}
	if v, ok := u32(m, IFLA_BR_HELLO_TIME); ok {
		info.HelloTime = v
	}
	if v, ok := u32(m, IFLA_BR_MAX_AGE); ok {
		info.MaxAge = v
	}
	if v, ok := u32(m, IFLA_BR_AGEING_TIME); ok {
		info.AgeingTime = v
	}
	if a, ok := m[IFLA_BR_BRIDGE_ID]; ok {
		info.BridgeID = formatBridgeID(a.Value)
	}
	if a, ok := m[IFLA_BR_ROOT_ID]; ok {
		info.RootID = formatBridgeID(a.Value)
	}
	if v, ok := mac(m, IFLA_BR_GROUP_ADDR); ok {
		info.GroupAddr = v
	}
	return info
}

// formatBridgeID renders struct ifla_bridge_id (2-byte priority + 6-byte
// MAC) as the traditional "PPPP.xxxxxxxxxxxx" bridge/STP identifier string.
func formatBridgeID(b []byte) string {
	if len(b) < 8 {
		return ""
	}
	prio, err := nlattr.U16BE(b[0:2])
	if err != nil {
		return ""
	}
	macStr, err := nlattr.MAC(b[2:8])
	if err != nil {
		return ""
	}
	compact := ""
	for _, r := range macStr {
		if r != ':' {
			compact += string(r)
		}
	}
	return fmt.Sprintf("%04x.%s", prio, compact)
}
