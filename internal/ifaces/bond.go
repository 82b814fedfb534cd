package ifaces

import "github.com/kuuji/netmirror/internal/nlattr"

var bondModeByRaw = map[uint8]string{
	0: "balance-rr",
	1: "active-backup",
	2: "balance-xor",
	3: "broadcast",
	4: "802.3ad",
	5: "balance-tlb",
	6: "balance-alb",
}

var failOverMacByRaw = map[uint8]string{0: "none", 1: "active", 2: "follow"}

var primaryReselectByRaw = map[uint8]string{0: "always", 1: "better", 2: "failure"}

var xmitHashByRaw = map[uint8]string{
	0: "layer2", 1: "layer3+4", 2: "layer2+3", 3: "encap2+3", 4: "encap3+4", 5: "vlan+srcmac",
}

var lacpRateByRaw = map[uint8]string{0: "slow", 1: "fast"}

var adSelectByRaw = map[uint8]string{0: "stable", 1: "bandwidth", 2: "count"}

var arpValidateByRaw = map[uint32]string{
	0: "none", 1: "active", 2: "backup", 3: "all", 4: "filter", 5: "filter_active", 6: "filter_backup",
}

// ParseBond decodes IFLA_INFO_DATA for a bond master, gating optional fields
// by Mode per the kernel's own net/bonding semantics: a field absent from the
// raw attributes, or meaningless for the active mode, stays nil rather than
// carrying a stale zero value.
func ParseBond(data []nlattr.Attr, byIndex map[int]string) *Bond {
	m := nlattr.Map(data)
	info := &Bond{Mode: "unknown"}

	if raw, ok := u8(m, IFLA_BOND_MODE); ok {
		if mode, ok := bondModeByRaw[raw]; ok {
			info.Mode = mode
		}
	}

	if info.Mode == "active-backup" || info.Mode == "balance-tlb" || info.Mode == "balance-alb" {
		if raw, ok := i32Attr(m, IFLA_BOND_ACTIVE_SLAVE); ok && raw >= 0 {
			name := resolveIndex(byIndex, raw)
			info.ActiveSubordinate = &name
		}
		if raw, ok := i32Attr(m, IFLA_BOND_PRIMARY); ok && raw >= 0 {
			name := resolveIndex(byIndex, raw)
			info.Primary = &name
		}
		if raw, ok := u8(m, IFLA_BOND_PRIMARY_RESELECT); ok {
			if v, ok := primaryReselectByRaw[raw]; ok {
				info.PrimaryReselect = &v
			}
		}
	}

	switch info.Mode {
	case "active-backup":
		if raw, ok := u8(m, IFLA_BOND_FAIL_OVER_MAC); ok {
			if v, ok := failOverMacByRaw[raw]; ok {
				info.FailOverMac = &v
			}
		}
		if v, ok := u32(m, IFLA_BOND_NUM_PEER_NOTIF); ok {
			info.NumUnsolNA = &v
			info.NumGratARP = &v
		}
	case "balance-xor", "802.3ad", "balance-tlb":
		if raw, ok := u8(m, IFLA_BOND_XMIT_HASH_POLICY); ok {
			if v, ok := xmitHashByRaw[raw]; ok {
				info.XmitHashPolicy = &v
			}
		}
	}

	if info.Mode == "balance-rr" || info.Mode == "active-backup" || info.Mode == "balance-tlb" || info.Mode == "balance-alb" {
		if v, ok := u32(m, IFLA_BOND_RESEND_IGMP); ok {
			info.ResendIgmp = &v
		}
	}

	if info.Mode == "balance-rr" {
		if v, ok := u32(m, IFLA_BOND_PACKETS_PER_SLAVE); ok {
			info.PacketsPerSubordinate = &v
		}
	}

	if info.Mode == "802.3ad" {
		if raw, ok := u8(m, IFLA_BOND_AD_LACP_RATE); ok {
			if v, ok := lacpRateByRaw[raw]; ok {
				info.LacpRate = &v
			}
		}
		if raw, ok := u8(m, IFLA_BOND_AD_SELECT); ok {
			if v, ok := adSelectByRaw[raw]; ok {
				info.AdSelect = &v
			}
		}
		if v, ok := u16(m, IFLA_BOND_AD_ACTOR_SYS_PRIO); ok {
			info.AdActorSysPrio = &v
		}
		if v, ok := u16(m, IFLA_BOND_AD_USER_PORT_KEY); ok {
			info.AdUserPortKey = &v
		}
		if v, ok := mac(m, IFLA_BOND_AD_ACTOR_SYSTEM); ok {
			info.AdActorSystem = &v
		}
		if v, ok := u8(m, IFLA_BOND_AD_LACP_ACTIVE); ok {
			b := v != 0
			info.LacpActive = &b
		}
	}

	if info.Mode == "balance-tlb" || info.Mode == "balance-alb" {
		if v, ok := u8(m, IFLA_BOND_TLB_DYNAMIC_LB); ok {
			b := v != 0
			info.TlbDynamicLb = &b
		}
		if v, ok := u32(m, IFLA_BOND_LP_INTERVAL); ok {
			info.LpInterval = &v
		}
	}

	if v, ok := u32(m, IFLA_BOND_MIN_LINKS); ok {
		info.MinLinks = &v
	}
	if v, ok := u32(m, IFLA_BOND_ARP_VALIDATE); ok {
		if av, ok := arpValidateByRaw[v]; ok {
			info.ArpValidate = &av
		} else {
			unknown := "unknown"
			info.ArpValidate = &unknown
		}
	}

	return info
}

// ParseBondSubordinate decodes IFLA_INFO_SLAVE_DATA for a bond member.
func ParseBondSubordinate(data []nlattr.Attr) *BondSubordinate {
	m := nlattr.Map(data)
	info := &BondSubordinate{
		SubordinateState: "backup",
		MiiStatus:        "unknown",
	}
	if v, ok := u8(m, IFLA_BOND_SLAVE_STATE); ok && v == 0 {
		info.SubordinateState = "active"
	}
	if v, ok := u8(m, IFLA_BOND_SLAVE_MII_STATUS); ok {
		switch v {
		case 0:
			info.MiiStatus = "link_up"
		case 1:
			info.MiiStatus = "link_fail"
		case 2:
			info.MiiStatus = "link_down"
		}
	}
	if v, ok := u32(m, IFLA_BOND_SLAVE_LINK_FAILURE_COUNT); ok {
		info.LinkFailureCount = v
	}
	if v, ok := mac(m, IFLA_BOND_SLAVE_PERM_HWADDR); ok {
		info.PermHwaddr = v
	}
	if v, ok := u16(m, IFLA_BOND_SLAVE_QUEUE_ID); ok {
		info.QueueID = v
	}
	if v, ok := u16(m, IFLA_BOND_SLAVE_AD_AGGREGATOR_ID); ok {
		info.AdAggregatorID = &v
	}
	if v, ok := u8(m, IFLA_BOND_SLAVE_AD_ACTOR_OPER_PORT_STATE); ok {
		info.AdActorOperPortState = &v
	}
	if v, ok := u8(m, IFLA_BOND_SLAVE_AD_PARTNER_OPER_PORT_STATE); ok {
		info.AdPartnerOperPortState = &v
	}
	return info
}

func i32Attr(m map[uint16]nlattr.Attr, typ uint16) (int32, bool) {
	a, ok := m[typ]
	if !ok {
		return 0, false
	}
	v, err := nlattr.I32(a.Value)
	return v, err == nil
}
