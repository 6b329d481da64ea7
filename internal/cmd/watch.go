package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/padspace/dsuwire/internal/client"
	"github.com/padspace/dsuwire/pad"
	"github.com/padspace/dsuwire/protocol"
)

type Watch struct {
	Addr     string `help:"DSU server address" default:"127.0.0.1:26760" env:"DSUWIRE_SERVER"`
	Slot     int    `help:"Controller slot to watch (-1 = all slots)" default:"-1"`
	SenderID uint32 `help:"Client identifier sent in message headers" default:"1"`
}

// Run is called by Kong when the watch command is executed.
func (w *Watch) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := client.Dial(w.Addr, w.SenderID, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RequestVersion(); err != nil {
		return err
	}
	if err := c.RequestControllerInfo([]byte{0, 1, 2, 3}); err != nil {
		return err
	}
	if err := w.subscribe(c); err != nil {
		return err
	}

	// Subscriptions expire server side, so renew them periodically.
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := w.subscribe(c); err != nil {
					return
				}
			}
		}
	}()

	// On a terminal, rewrite a single status line instead of scrolling.
	inPlace := term.IsTerminal(int(os.Stdout.Fd()))

	err = c.Run(ctx, func(msg protocol.Message) {
		switch m := msg.(type) {
		case protocol.VersionInfo:
			ver, verr := m.Version()
			if verr != nil {
				return
			}
			logger.Info("Server version", "version", uint16(ver))
		case protocol.ControllerInfo:
			info := m.SlotInfo()
			state, serr := info.State()
			if serr != nil {
				return
			}
			logger.Info("Slot info", "slot", info.Slot(), "state", state.String())
		case protocol.ControllerData:
			if w.Slot >= 0 && int(m.SlotInfo().Slot()) != w.Slot {
				return
			}
			printFrame(m, inPlace)
		}
	})
	if inPlace {
		fmt.Println()
	}
	return err
}

func (w *Watch) subscribe(c *client.Client) error {
	if w.Slot >= 0 {
		return c.SubscribeSlot(uint8(w.Slot))
	}
	return c.SubscribeAll()
}

func printFrame(m protocol.ControllerData, inPlace bool) {
	state := pad.FromView(m)
	line := fmt.Sprintf("slot=%d packet=%d buttons=%04x lx=%3d ly=%3d rx=%3d ry=%3d gyro=(%+7.2f %+7.2f %+7.2f)",
		m.SlotInfo().Slot(), m.PacketNumber(), uint16(state.Buttons),
		state.LeftStickX, state.LeftStickY, state.RightStickX, state.RightStickY,
		state.GyroPitch, state.GyroYaw, state.GyroRoll)
	if inPlace {
		fmt.Printf("\r\033[K%s", line)
		return
	}
	fmt.Println(line)
}
