// Package mptcp queries the kernel's MPTCP_PM generic-netlink family for
// configured endpoint addresses and limits, and /proc/sys/net/mptcp/enabled
// for the global on/off switch.
package mptcp

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mdlayher/genetlink"
	"github.com/mdlayher/netlink"

	"github.com/kuuji/netmirror/internal/nlattr"
)

const familyName = "mptcp_pm"

type Client struct {
	log    *slog.Logger
	conn   *genetlink.Conn
	family genetlink.Family
}

// Dial resolves the MPTCP_PM family. Kernels without CONFIG_MPTCP return
// ErrNotExist from family resolution; the caller treats that as "no MPTCP
// support" rather than a hard failure (§4.2).
func Dial(logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	conn, err := genetlink.Dial(nil)
	if err != nil {
		return nil, fmt.Errorf("mptcp: dial genetlink: %w", err)
	}
	family, err := conn.GetFamily(familyName)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("mptcp: resolve family: %w", err)
	}
	return &Client{log: logger.With("component", "mptcp"), conn: conn, family: family}, nil
}

func (c *Client) Close() error { return c.conn.Close() }

// Enabled reads the global MPTCP switch from /proc/sys/net/mptcp/enabled,
// following the teacher's pattern of reading simple sysctls directly rather
// than via a netlink round trip.
func Enabled() (bool, error) {
	b, err := os.ReadFile("/proc/sys/net/mptcp/enabled")
	if err != nil {
		return false, fmt.Errorf("mptcp: read sysctl: %w", err)
	}
	return strings.TrimSpace(string(b)) == "1", nil
}

func (c *Client) execute(cmd uint8, payload []byte) ([][]nlattr.Attr, error) {
	req := genetlink.Message{
		Header: genetlink.Header{Command: cmd, Version: 1},
		Data:   payload,
	}
	replies, err := c.conn.Execute(req, c.family.ID, netlink.Request|netlink.Dump)
	if err != nil {
		return nil, fmt.Errorf("mptcp: execute cmd %d: %w", cmd, err)
	}
	out := make([][]nlattr.Attr, 0, len(replies))
	for _, r := range replies {
		out = append(out, nlattr.Iterate(r.Data))
	}
	return out, nil
}
