package ifaces

import (
	"log/slog"

	"github.com/kuuji/netmirror/internal/nlattr"
)

// ParseBridgeVlans coalesces the kernel's flat per-VID bridge_vlan_info
// records (four bytes each: u16 flags, u16 vid) into range entries. The
// kernel always emits a contiguous run bracketed by RANGE_BEGIN and
// RANGE_END flags on the first and last VID of the run; every other VID is
// a standalone entry. PVID/UNTAGGED on a coalesced range are taken from the
// RANGE_END record that closes it. A record with both RANGE_BEGIN and
// RANGE_END set is a single-VID range and is emitted as a scalar entry,
// matching the kernel's own dump. A RANGE_END with no open RANGE_BEGIN is
// dropped and logged.
func ParseBridgeVlans(log *slog.Logger, entries []nlattr.Attr) []BridgeVlanEntry {
	if log == nil {
		log = slog.Default()
	}

	var out []BridgeVlanEntry
	var rangeStart *uint16

	for _, a := range entries {
		if a.Type != IFLA_BRIDGE_VLAN_INFO || len(a.Value) < 4 {
			continue
		}
		flags, err1 := nlattr.U16(a.Value[0:2])
		vid, err2 := nlattr.U16(a.Value[2:4])
		if err1 != nil || err2 != nil {
			continue
		}
		begin := flags&bridgeVlanInfoRangeBegin != 0
		end := flags&bridgeVlanInfoRangeEnd != 0
		switch {
		case begin && end:
			vv := vid
			out = append(out, BridgeVlanEntry{
				Vid:      &vv,
				Pvid:     flags&bridgeVlanInfoPvid != 0,
				Untagged: flags&bridgeVlanInfoUntagged != 0,
			})
			rangeStart = nil
		case begin:
			v := vid
			rangeStart = &v
		case end:
			if rangeStart == nil {
				log.Warn("dangling bridge vlan range end with no range start", "vid", vid)
				continue
			}
			out = append(out, BridgeVlanEntry{
				VidRange: &[2]uint16{*rangeStart, vid},
				Pvid:     flags&bridgeVlanInfoPvid != 0,
				Untagged: flags&bridgeVlanInfoUntagged != 0,
			})
			rangeStart = nil
		default:
			vv := vid
			out = append(out, BridgeVlanEntry{
				Vid:      &vv,
				Pvid:     flags&bridgeVlanInfoPvid != 0,
				Untagged: flags&bridgeVlanInfoUntagged != 0,
			})
		}
	}
	return out
}
