package ethtool

// Command and attribute numbers from linux/ethtool_netlink.h. Only the
// handful exercised by this package are listed.
const (
	cmdPauseGet    = 21
	cmdCoalesceGet = 19
	cmdRingsGet    = 15
	cmdLinkmodesGet = 4

	attrHeader         = 1
	attrHeaderDevIndex = 1
	attrHeaderDevName  = 2

	attrPauseHeader  = 1
	attrPauseAutoneg = 2
	attrPauseRx      = 3
	attrPauseTx      = 4

	attrCoalesceHeader        = 1
	attrCoalesceRxUsecs       = 2
	attrCoalesceRxMaxFrames   = 3
	attrCoalesceTxUsecs       = 6
	attrCoalesceTxMaxFrames   = 7
	attrCoalesceUseAdaptiveRx = 11
	attrCoalesceUseAdaptiveTx = 12

	attrRingsHeader    = 1
	attrRingsRxMax     = 2
	attrRingsRxMiniMax = 3
	attrRingsRxJumboMax = 4
	attrRingsTxMax     = 5
	attrRingsRx        = 6
	attrRingsRxMini    = 7
	attrRingsRxJumbo   = 8
	attrRingsTx        = 9

	attrLinkmodesHeader  = 1
	attrLinkmodesAutoneg = 2
	attrLinkmodesOurs    = 3
	attrLinkmodesPeer    = 4
	attrLinkmodesSpeed   = 5
	attrLinkmodesDuplex  = 6
)

var duplexByRaw = map[uint8]string{0: "half", 1: "full", 255: "unknown"}
