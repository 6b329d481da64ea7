// Package client implements the requesting side of the DSU protocol:
// version handshake, slot-info queries, and telemetry subscriptions over
// one UDP socket.
package client

import (
	"context"
	"errors"
	"hash/crc32"
	"log/slog"
	"net"
	"time"

	"github.com/padspace/dsuwire/protocol"
)

// Handler receives each server-originated message. The view aliases the
// client's receive buffer and is only valid for the duration of the
// call; copy out anything that must outlive it.
type Handler func(msg protocol.Message)

// Client talks to one DSU server.
type Client struct {
	conn     *net.UDPConn
	senderID uint32
	logger   *slog.Logger
}

// Dial connects a UDP socket to the server at addr.
func Dial(addr string, senderID uint32, logger *slog.Logger) (*Client, error) {
	raddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, err
	}
	conn, err := net.DialUDP("udp", nil, raddr)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, senderID: senderID, logger: logger}, nil
}

// Close releases the socket.
func (c *Client) Close() error { return c.conn.Close() }

// RequestVersion sends the protocol handshake request.
func (c *Client) RequestVersion() error {
	msg := protocol.NewRequestVersion(c.senderID, crc32.NewIEEE())
	_, err := c.conn.Write(msg.Bytes())
	return err
}

// RequestControllerInfo queries the status of the given slots (1 to 4).
func (c *Client) RequestControllerInfo(slots []byte) error {
	msg, err := protocol.NewRequestControllerInfo(c.senderID, slots, crc32.NewIEEE())
	if err != nil {
		return err
	}
	_, err = c.conn.Write(msg.Bytes())
	return err
}

// SubscribeAll registers for telemetry from every slot. Subscriptions
// age out server-side; re-send periodically to stay registered.
func (c *Client) SubscribeAll() error {
	return c.subscribe(protocol.RegisterAll, 0, [6]byte{})
}

// SubscribeSlot registers for telemetry from one slot.
func (c *Client) SubscribeSlot(slot uint8) error {
	return c.subscribe(protocol.RegisterSlot, slot, [6]byte{})
}

// SubscribeMAC registers for telemetry from the pad with the given
// hardware address.
func (c *Client) SubscribeMAC(mac [6]byte) error {
	return c.subscribe(protocol.RegisterMAC, 0, mac)
}

func (c *Client) subscribe(reg protocol.Registration, slot uint8, mac [6]byte) error {
	msg := protocol.NewRequestControllerData(c.senderID, reg, slot, mac, crc32.NewIEEE())
	_, err := c.conn.Write(msg.Bytes())
	return err
}

// Run reads datagrams until ctx is done, delivering each valid
// server-originated message to handler. Malformed datagrams and client
// echoes are dropped with a debug log.
func (c *Client) Run(ctx context.Context, handler Handler) error {
	buf := make([]byte, 1500)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		// Short deadline so ctx cancellation is noticed promptly.
		if err := c.conn.SetReadDeadline(time.Now().Add(250 * time.Millisecond)); err != nil {
			return err
		}
		n, err := c.conn.Read(buf)
		if err != nil {
			var nerr net.Error
			if errors.As(err, &nerr) && nerr.Timeout() {
				continue
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}

		msg, err := protocol.Parse(buf[:n], crc32.NewIEEE())
		if err != nil {
			c.logger.Debug("dropping malformed datagram", "error", err)
			continue
		}
		magic, err := msg.Header().Magic()
		if err != nil || magic != protocol.MagicServer {
			c.logger.Debug("dropping non-server message")
			continue
		}
		handler(msg)
	}
}
