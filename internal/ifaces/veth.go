package ifaces

// ParseVeth resolves the peer endpoint of a veth pair. The kernel reports the
// peer as the link's own IFLA_LINK index (no IFLA_INFO_DATA is needed); the
// caller passes the index straight from the RawLink it came from.
func ParseVeth(peerIndex int32, byIndex map[int]string) *Veth {
	return &Veth{Peer: resolveIndex(byIndex, peerIndex)}
}
