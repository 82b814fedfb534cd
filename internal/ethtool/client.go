// Package ethtool queries the kernel's ETHTOOL_ generic-netlink family
// (Linux 4.20+) for pause, ring, coalesce and link-mode settings, replacing
// the old ioctl(SIOCETHTOOL) surface rtnetlink never covered.
package ethtool

import (
	"fmt"
	"log/slog"

	"github.com/mdlayher/genetlink"
	"github.com/mdlayher/netlink"

	"github.com/kuuji/netmirror/internal/nlattr"
)

const familyName = "ethtool"

// Client is one genetlink session bound to the resolved ethtool family id.
type Client struct {
	log    *slog.Logger
	conn   *genetlink.Conn
	family genetlink.Family
}

// Dial resolves the ethtool family and returns a ready client. Callers on
// kernels built without CONFIG_ETHTOOL_NETLINK get ErrNotExist from the
// family lookup; the query pipeline treats that as "no ethtool data" rather
// than a hard failure (§4.2).
func Dial(logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	conn, err := genetlink.Dial(nil)
	if err != nil {
		return nil, fmt.Errorf("ethtool: dial genetlink: %w", err)
	}
	family, err := conn.GetFamily(familyName)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("ethtool: resolve family: %w", err)
	}
	return &Client{log: logger.With("component", "ethtool"), conn: conn, family: family}, nil
}

// Close closes the underlying genetlink connection.
func (c *Client) Close() error { return c.conn.Close() }

func (c *Client) groupIDForMulticast(name string) uint32 {
	for _, g := range c.family.Groups {
		if g.Name == name {
			return g.ID
		}
	}
	return 0
}

// doRequest sends one genetlink command/attribute payload carrying
// ETHTOOL_A_HEADER_DEV_NAME and returns the raw reply attribute lists.
func (c *Client) doRequest(cmd uint8, ifaceName string, extraAttrs []byte) ([][]nlattr.Attr, error) {
	header := nlattr.EncodeNested(attrHeader, nlattr.EncodeString(attrHeaderDevName, ifaceName))
	payload := append(header, extraAttrs...)

	req := genetlink.Message{
		Header: genetlink.Header{Command: cmd, Version: 1},
		Data:   payload,
	}
	flags := netlink.Request | netlink.Acknowledge
	replies, err := c.conn.Execute(req, c.family.ID, flags)
	if err != nil {
		return nil, fmt.Errorf("ethtool: execute cmd %d: %w", cmd, err)
	}
	out := make([][]nlattr.Attr, 0, len(replies))
	for _, r := range replies {
		out = append(out, nlattr.Iterate(r.Data))
	}
	return out, nil
}
