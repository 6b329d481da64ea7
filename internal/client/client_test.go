package client_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padspace/dsuwire/internal/client"
	"github.com/padspace/dsuwire/internal/server"
	"github.com/padspace/dsuwire/pad"
	"github.com/padspace/dsuwire/protocol"
)

var testMAC = [6]byte{0x02, 0x00, 0x00, 0x00, 0x00, 0x02}

func startBackend(t *testing.T) string {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := server.New(server.Config{
		Addr:          "127.0.0.1:0",
		SenderID:      0xD5,
		Tick:          2 * time.Millisecond,
		ClientTimeout: time.Second,
	}, pad.NewSimulator(testMAC), logger)
	require.NoError(t, srv.Start())
	t.Cleanup(srv.Close)
	return srv.Addr().String()
}

func dialTestClient(t *testing.T, addr string) *client.Client {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c, err := client.Dial(addr, 7, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestClientVersionHandshake(t *testing.T) {
	addr := startBackend(t)
	c := dialTestClient(t, addr)

	require.NoError(t, c.RequestVersion())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var got protocol.Version
	err := c.Run(ctx, func(msg protocol.Message) {
		info, ok := msg.(protocol.VersionInfo)
		if !ok {
			return
		}
		ver, verr := info.Version()
		require.NoError(t, verr)
		got = ver
		cancel()
	})
	require.NoError(t, err)
	assert.Equal(t, protocol.Version1001, got)
}

func TestClientReceivesTelemetry(t *testing.T) {
	addr := startBackend(t)
	c := dialTestClient(t, addr)

	require.NoError(t, c.SubscribeAll())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	type frame struct {
		packet uint32
		state  pad.State
	}
	var frames []frame
	err := c.Run(ctx, func(msg protocol.Message) {
		data, ok := msg.(protocol.ControllerData)
		if !ok {
			return
		}
		assert.True(t, data.IsConnected())
		// The view is only valid inside the callback, so copy out.
		frames = append(frames, frame{
			packet: data.PacketNumber(),
			state:  pad.FromView(data),
		})
		if len(frames) >= 3 {
			cancel()
		}
	})
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(frames), 3)

	assert.Greater(t, frames[2].packet, frames[0].packet)
	assert.Greater(t, frames[2].state.MotionTimestamp, frames[0].state.MotionTimestamp)
}

func TestClientSubscribeSlotFilters(t *testing.T) {
	addr := startBackend(t)
	c := dialTestClient(t, addr)

	require.NoError(t, c.RequestControllerInfo([]byte{0, 1, 2, 3}))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	infos := map[uint8]protocol.SlotState{}
	err := c.Run(ctx, func(msg protocol.Message) {
		info, ok := msg.(protocol.ControllerInfo)
		if !ok {
			return
		}
		state, serr := info.SlotInfo().State()
		require.NoError(t, serr)
		infos[info.SlotInfo().Slot()] = state
		if len(infos) == 4 {
			cancel()
		}
	})
	require.NoError(t, err)

	assert.Equal(t, protocol.SlotConnected, infos[0])
	for slot := uint8(1); slot < 4; slot++ {
		assert.Equal(t, protocol.SlotDisconnected, infos[slot])
	}
}
