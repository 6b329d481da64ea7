// Package server implements the UDP side of the DSU protocol: it answers
// handshake and slot-info requests and streams controller telemetry to
// subscribed clients. The codec itself lives in package protocol; this
// package owns sockets, subscriptions, and timing.
package server

import (
	"errors"
	"hash/crc32"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/padspace/dsuwire/pad"
	"github.com/padspace/dsuwire/protocol"
)

// DefaultPort is the conventional DSU server port.
const DefaultPort = 26760

// Source provides slot metadata and telemetry samples. Implementations
// must be safe for concurrent use; the server queries it from its read
// and stream loops.
type Source interface {
	Info(slot uint8) pad.Info
	State(slot uint8, elapsed time.Duration) (pad.State, bool)
}

// Config holds the server settings.
type Config struct {
	// Addr is the UDP listen address, e.g. ":26760".
	Addr string

	// SenderID is the opaque identifier written into every outgoing
	// message header.
	SenderID uint32

	// Tick is the telemetry frame interval.
	Tick time.Duration

	// ClientTimeout drops subscribers that have not re-registered for
	// this long.
	ClientTimeout time.Duration
}

// Server serves the DSU protocol over one UDP socket.
type Server struct {
	cfg    Config
	source Source
	logger *slog.Logger

	conn  *net.UDPConn
	start time.Time

	closeOnce sync.Once
	closed    chan struct{}

	mu        sync.Mutex
	subs      map[string]*subscription
	packetNum [protocol.MaxSlots]uint32
}

// subscription is one client's registration for telemetry frames. All
// fields are guarded by Server.mu; the broadcast path works from
// subSnapshot copies instead.
type subscription struct {
	addr  *net.UDPAddr
	seen  time.Time
	all   bool
	slots [protocol.MaxSlots]bool
	macs  map[[6]byte]bool
}

// subSnapshot is an immutable copy of one live subscription, safe to
// match against without holding the lock.
type subSnapshot struct {
	addr  *net.UDPAddr
	all   bool
	slots [protocol.MaxSlots]bool
	macs  [][6]byte
}

func (s subSnapshot) matches(slot uint8, mac [6]byte) bool {
	if s.all || (int(slot) < len(s.slots) && s.slots[slot]) {
		return true
	}
	for _, m := range s.macs {
		if m == mac {
			return true
		}
	}
	return false
}

// New creates a server. Zero config fields get defaults.
func New(cfg Config, source Source, logger *slog.Logger) *Server {
	if cfg.Tick <= 0 {
		cfg.Tick = 16 * time.Millisecond
	}
	if cfg.ClientTimeout <= 0 {
		cfg.ClientTimeout = 5 * time.Second
	}
	return &Server{
		cfg:    cfg,
		source: source,
		logger: logger,
		closed: make(chan struct{}),
		subs:   make(map[string]*subscription),
	}
}

// Start binds the UDP socket and launches the read and stream loops.
func (s *Server) Start() error {
	addr, err := net.ResolveUDPAddr("udp", s.cfg.Addr)
	if err != nil {
		return err
	}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return err
	}
	s.conn = conn
	s.start = time.Now()
	s.logger.Info("DSU server listening", "addr", conn.LocalAddr().String())
	go s.readLoop()
	go s.streamLoop()
	return nil
}

// Addr returns the bound socket address.
func (s *Server) Addr() net.Addr {
	if s.conn == nil {
		return nil
	}
	return s.conn.LocalAddr()
}

// Close stops the server.
func (s *Server) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)
		if s.conn != nil {
			_ = s.conn.Close()
		}
	})
}

func (s *Server) readLoop() {
	buf := make([]byte, 1500)
	for {
		n, raddr, err := s.conn.ReadFromUDP(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				s.logger.Info("DSU server stopped")
				return
			}
			s.logger.Error("DSU read error", "error", err)
			return
		}
		s.handleDatagram(buf[:n], raddr)
	}
}

// handleDatagram parses and answers one inbound datagram. Malformed
// traffic is dropped.
func (s *Server) handleDatagram(b []byte, raddr *net.UDPAddr) {
	msg, err := protocol.Parse(b, crc32.NewIEEE())
	if err != nil {
		s.logger.Debug("dropping malformed datagram", "remote", raddr.String(), "error", err)
		return
	}

	switch v := msg.(type) {
	case protocol.RequestVersion:
		reply := protocol.NewVersionInfo(s.cfg.SenderID, protocol.Version1001, crc32.NewIEEE())
		s.send(reply.Bytes(), raddr)

	case protocol.RequestControllerInfo:
		slots, err := v.Slots()
		if err != nil {
			s.logger.Debug("dropping bad info request", "remote", raddr.String(), "error", err)
			return
		}
		for _, slot := range slots {
			if slot >= protocol.MaxSlots {
				s.logger.Debug("ignoring out-of-range slot", "remote", raddr.String(), "slot", slot)
				continue
			}
			info := s.source.Info(slot)
			reply := protocol.NewControllerInfo(s.cfg.SenderID, info.Slot, info.State,
				info.Model, info.Connection, info.MAC, info.Battery, crc32.NewIEEE())
			s.send(reply.Bytes(), raddr)
		}

	case protocol.RequestControllerData:
		reg, err := v.Registration()
		if err != nil {
			s.logger.Debug("dropping bad data request", "remote", raddr.String(), "error", err)
			return
		}
		s.register(raddr, reg, v.Slot(), v.MAC())

	default:
		// Server-originated messages echoed back at us.
		s.logger.Debug("ignoring unexpected message", "remote", raddr.String())
	}
}

func (s *Server) register(raddr *net.UDPAddr, reg protocol.Registration, slot uint8, mac [6]byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := raddr.String()
	sub, ok := s.subs[key]
	if !ok {
		sub = &subscription{addr: raddr, macs: make(map[[6]byte]bool)}
		s.subs[key] = sub
		s.logger.Info("client subscribed", "remote", key, "registration", reg.String())
	}
	sub.seen = time.Now()

	switch reg {
	case protocol.RegisterAll:
		sub.all = true
	case protocol.RegisterSlot:
		if slot >= protocol.MaxSlots {
			s.logger.Debug("ignoring out-of-range slot registration", "remote", key, "slot", slot)
			return
		}
		sub.slots[slot] = true
	case protocol.RegisterMAC:
		sub.macs[mac] = true
	}
}

func (s *Server) streamLoop() {
	ticker := time.NewTicker(s.cfg.Tick)
	defer ticker.Stop()
	for {
		select {
		case <-s.closed:
			return
		case <-ticker.C:
			s.broadcast(time.Since(s.start))
		}
	}
}

// broadcast sends one telemetry frame per active slot to every matching
// live subscriber, then prunes expired subscriptions.
func (s *Server) broadcast(elapsed time.Duration) {
	targets := s.snapshotSubs()
	if len(targets) == 0 {
		return
	}

	for slot := uint8(0); slot < protocol.MaxSlots; slot++ {
		state, ok := s.source.State(slot, elapsed)
		if !ok {
			continue
		}
		info := s.source.Info(slot)

		frame := protocol.NewControllerData(s.cfg.SenderID, info.Slot, info.State,
			info.Model, info.Connection, info.MAC, info.Battery,
			info.State == protocol.SlotConnected, crc32.NewIEEE())
		m := frame.Mut()
		state.ApplyTo(m)
		m.SetPacketNumber(s.nextPacketNumber(slot))
		m.UpdateCRC32(crc32.NewIEEE())

		for _, sub := range targets {
			if sub.matches(slot, info.MAC) {
				s.send(frame.Bytes(), sub.addr)
			}
		}
	}
}

// snapshotSubs prunes expired subscriptions and returns copies of the
// live ones. The read loop keeps mutating the originals under the lock;
// matching and sending run against the copies only.
func (s *Server) snapshotSubs() []subSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	out := make([]subSnapshot, 0, len(s.subs))
	for key, sub := range s.subs {
		if now.Sub(sub.seen) > s.cfg.ClientTimeout {
			delete(s.subs, key)
			s.logger.Info("client timed out", "remote", key)
			continue
		}
		snap := subSnapshot{addr: sub.addr, all: sub.all, slots: sub.slots}
		for mac := range sub.macs {
			snap.macs = append(snap.macs, mac)
		}
		out = append(out, snap)
	}
	return out
}

func (s *Server) nextPacketNumber(slot uint8) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.packetNum[slot]++
	return s.packetNum[slot]
}

func (s *Server) send(b []byte, raddr *net.UDPAddr) {
	if _, err := s.conn.WriteToUDP(b, raddr); err != nil {
		if !errors.Is(err, net.ErrClosed) {
			s.logger.Error("DSU send error", "remote", raddr.String(), "error", err)
		}
	}
}
