package ethtool

// Local DTOs, not importing the root package for the same reason documented
// in internal/ifaces/types.go.

type Pause struct {
	RxPause bool
	TxPause bool
	AutoNeg bool
}

type Coalesce struct {
	RxUsecs       uint32
	RxMaxFrames   uint32
	TxUsecs       uint32
	TxMaxFrames   uint32
	UseAdaptiveRx bool
	UseAdaptiveTx bool
}

type Ring struct {
	RxMax      uint32
	RxMiniMax  uint32
	RxJumboMax uint32
	TxMax      uint32
	Rx         uint32
	RxMini     uint32
	RxJumbo    uint32
	Tx         uint32
}

type LinkMode struct {
	Speed   int32
	Duplex  string
	Autoneg bool
}
