package rtnl

import (
	"fmt"
	"log/slog"

	"github.com/jsimonetti/rtnetlink/v2"
	"github.com/mdlayher/netlink"
	"golang.org/x/sys/unix"
)

// Client is one rtnetlink session. It holds two connections: the
// higher-level jsimonetti/rtnetlink Conn for ADDRESS dumps and mutations and
// the simple link mutations (flags, master, MAC, MTU, delete), where its
// typed helpers pay for themselves, and a raw mdlayher/netlink Conn for link
// dumps, link creation and ROUTE/RULE, which need exact attribute layout or
// direct access to NETLINK_GET_STRICT_CHK via Conn.SetOption — something
// the higher-level wrapper doesn't expose.
type Client struct {
	log *slog.Logger

	high *rtnetlink.Conn
	raw  *netlink.Conn
}

// Dial opens both connections. logger may be nil, matching the teacher's
// NewBind(logger)/New(cfg, logger) convention of defaulting to slog.Default().
func Dial(logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	high, err := rtnetlink.Dial(nil)
	if err != nil {
		return nil, fmt.Errorf("rtnl: dial rtnetlink: %w", err)
	}
	raw, err := netlink.Dial(unix.NETLINK_ROUTE, nil)
	if err != nil {
		high.Close()
		return nil, fmt.Errorf("rtnl: dial raw netlink: %w", err)
	}
	return &Client{log: logger.With("component", "rtnl"), high: high, raw: raw}, nil
}

// Close closes both underlying connections.
func (c *Client) Close() error {
	err1 := c.high.Close()
	err2 := c.raw.Close()
	if err1 != nil {
		return err1
	}
	return err2
}

// setStrict toggles NETLINK_GET_STRICT_CHK on the raw connection used for
// route/rule dumps and reports whether it succeeded. If the kernel or
// socket layer rejects the option, it logs a warning and returns false; the
// caller's user-space filtering then carries the predicates (§4.4).
func (c *Client) setStrict(enable bool) bool {
	if err := c.raw.SetOption(netlink.GetStrictCheckErrors, enable); err != nil {
		c.log.Warn("netlink strict-check sockopt unavailable, falling back to user-space filtering", "error", err)
		return false
	}
	return true
}
