package cmd

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/padspace/dsuwire/internal/server"
	"github.com/padspace/dsuwire/pad"
)

type Serve struct {
	Addr          string        `help:"UDP listen address" default:":26760" env:"DSUWIRE_ADDR"`
	SenderID      uint32        `help:"Server identifier sent in message headers (0 = derive from startup time)" default:"0" env:"DSUWIRE_SENDER_ID"`
	Tick          time.Duration `help:"Telemetry frame interval" default:"16ms" env:"DSUWIRE_TICK"`
	ClientTimeout time.Duration `help:"Drop subscribers silent for longer than this" default:"5s" env:"DSUWIRE_CLIENT_TIMEOUT"`
	MAC           string        `help:"MAC address reported for the simulated controller" default:"02:00:00:00:00:01" env:"DSUWIRE_MAC"`
}

// Run is called by Kong when the serve command is executed.
func (s *Serve) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hw, err := net.ParseMAC(s.MAC)
	if err != nil {
		return err
	}
	var mac [6]byte
	copy(mac[:], hw)

	senderID := s.SenderID
	if senderID == 0 {
		senderID = uint32(time.Now().UnixNano())
	}

	logger.Info("Starting DSU telemetry server", "addr", s.Addr, "tick", s.Tick)
	srv := server.New(server.Config{
		Addr:          s.Addr,
		SenderID:      senderID,
		Tick:          s.Tick,
		ClientTimeout: s.ClientTimeout,
	}, pad.NewSimulator(mac), logger)

	if err := srv.Start(); err != nil {
		return err
	}

	<-ctx.Done()
	logger.Info("Shutting down DSU server")
	srv.Close()
	return nil
}
