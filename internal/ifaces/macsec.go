package ifaces

import "github.com/kuuji/netmirror/internal/nlattr"

var macSecCipherByRaw = map[uint64]string{
	0x0080020001000001: "gcm-aes-128",
	0x0080020001000002: "gcm-aes-256",
}

var macSecValidateByRaw = map[uint8]string{0: "disabled", 1: "check", 2: "strict"}

// ParseMacSec decodes IFLA_INFO_DATA for a MACsec interface.
func ParseMacSec(data []nlattr.Attr, baseIndex int32, byIndex map[int]string) *MacSec {
	m := nlattr.Map(data)
	info := &MacSec{
		BaseIface: resolveIndex(byIndex, baseIndex),
		Cipher:    "unknown",
		Validate:  "disabled",
	}
	if v, ok := u64(m, IFLA_MACSEC_SCI); ok {
		info.Sci = v
	}
	if v, ok := u16(m, IFLA_MACSEC_PORT); ok {
		info.Port = v
	}
	if v, ok := u8(m, IFLA_MACSEC_ICV_LEN); ok {
		info.Icvlen = v
	}
	if v, ok := u64(m, IFLA_MACSEC_CIPHER_SUITE); ok {
		if c, ok := macSecCipherByRaw[v]; ok {
			info.Cipher = c
		}
	}
	if v, ok := u8(m, IFLA_MACSEC_ENCODING_SA); ok {
		info.EncodingSa = v
	}
	info.Encrypt = boolU8(m, IFLA_MACSEC_ENCRYPT)
	info.ProtectFrames = boolU8(m, IFLA_MACSEC_PROTECT)
	info.SendSci = boolU8(m, IFLA_MACSEC_INC_SCI)
	info.EndStation = boolU8(m, IFLA_MACSEC_ES)
	info.ScbEnabled = boolU8(m, IFLA_MACSEC_SCB)
	info.ReplayProtect = boolU8(m, IFLA_MACSEC_REPLAY_PROTECT)
	if v, ok := u32(m, IFLA_MACSEC_WINDOW); ok {
		info.WindowSize = v
	}
	if v, ok := u8(m, IFLA_MACSEC_VALIDATION); ok {
		if s, ok := macSecValidateByRaw[v]; ok {
			info.Validate = s
		}
	}
	return info
}
