package server_test

import (
	"hash/crc32"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padspace/dsuwire/internal/server"
	"github.com/padspace/dsuwire/pad"
	"github.com/padspace/dsuwire/protocol"
)

var testMAC = [6]byte{0x02, 0x00, 0x00, 0x00, 0x00, 0x01}

func startTestServer(t *testing.T) (*server.Server, *net.UDPConn) {
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

	conn, err := net.DialUDP("udp", nil, srv.Addr().(*net.UDPAddr))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return srv, conn
}

func readMessage(t *testing.T, conn *net.UDPConn) protocol.Message {
	t.Helper()
	buf := make([]byte, 1500)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	n, err := conn.Read(buf)
	require.NoError(t, err)
	msg, err := protocol.Parse(buf[:n], crc32.NewIEEE())
	require.NoError(t, err)
	return msg
}

func TestServerVersionHandshake(t *testing.T) {
	_, conn := startTestServer(t)

	req := protocol.NewRequestVersion(1, crc32.NewIEEE())
	_, err := conn.Write(req.Bytes())
	require.NoError(t, err)

	msg := readMessage(t, conn)
	info, ok := msg.(protocol.VersionInfo)
	require.True(t, ok, "expected VersionInfo, got %T", msg)

	ver, err := info.Version()
	require.NoError(t, err)
	assert.Equal(t, protocol.Version1001, ver)
	assert.Equal(t, uint32(0xD5), info.Header().SenderID())
}

func TestServerControllerInfo(t *testing.T) {
	_, conn := startTestServer(t)

	req, err := protocol.NewRequestControllerInfo(1, []byte{0, 1}, crc32.NewIEEE())
	require.NoError(t, err)
	_, err = conn.Write(req.Bytes())
	require.NoError(t, err)

	got := map[uint8]protocol.SlotState{}
	for n := 0; n < 2; n++ {
		msg := readMessage(t, conn)
		info, ok := msg.(protocol.ControllerInfo)
		require.True(t, ok, "expected ControllerInfo, got %T", msg)
		state, err := info.SlotInfo().State()
		require.NoError(t, err)
		got[info.SlotInfo().Slot()] = state
	}

	assert.Equal(t, map[uint8]protocol.SlotState{
		0: protocol.SlotConnected,
		1: protocol.SlotDisconnected,
	}, got)
}

func TestServerStreamsTelemetry(t *testing.T) {
	_, conn := startTestServer(t)

	sub := protocol.NewRequestControllerData(1, protocol.RegisterAll, 0, [6]byte{}, crc32.NewIEEE())
	_, err := conn.Write(sub.Bytes())
	require.NoError(t, err)

	var last uint32
	for i := 0; i < 5; i++ {
		msg := readMessage(t, conn)
		data, ok := msg.(protocol.ControllerData)
		require.True(t, ok, "expected ControllerData, got %T", msg)

		assert.Equal(t, uint8(0), data.SlotInfo().Slot())
		assert.True(t, data.IsConnected())
		assert.Equal(t, testMAC, data.SlotInfo().MAC())

		n := data.PacketNumber()
		if i > 0 {
			assert.Greater(t, n, last)
		}
		last = n
	}
}

func TestServerSubscriptionByMAC(t *testing.T) {
	_, conn := startTestServer(t)

	sub := protocol.NewRequestControllerData(1, protocol.RegisterMAC, 0, testMAC, crc32.NewIEEE())
	_, err := conn.Write(sub.Bytes())
	require.NoError(t, err)

	msg := readMessage(t, conn)
	data, ok := msg.(protocol.ControllerData)
	require.True(t, ok)
	assert.Equal(t, testMAC, data.SlotInfo().MAC())
}

func TestServerRegistrationWhileStreaming(t *testing.T) {
	_, conn := startTestServer(t)

	sub := protocol.NewRequestControllerData(1, protocol.RegisterAll, 0, [6]byte{}, crc32.NewIEEE())
	_, err := conn.Write(sub.Bytes())
	require.NoError(t, err)

	// Keep re-registering from the read loop's side while the stream
	// ticker broadcasts, the way clients renew their subscriptions.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			mac := testMAC
			mac[5] = byte(i)
			msg := protocol.NewRequestControllerData(1, protocol.RegisterMAC, 0, mac, crc32.NewIEEE())
			if _, err := conn.Write(msg.Bytes()); err != nil {
				return
			}
		}
	}()

	for n := 0; n < 20; n++ {
		msg := readMessage(t, conn)
		data, ok := msg.(protocol.ControllerData)
		require.True(t, ok, "expected ControllerData, got %T", msg)
		assert.Equal(t, uint8(0), data.SlotInfo().Slot())
	}
	<-done
}

func TestServerSurvivesGarbage(t *testing.T) {
	_, conn := startTestServer(t)

	for _, b := range [][]byte{{}, {0xFF}, make([]byte, 19), make([]byte, 1500)} {
		if len(b) == 0 {
			continue
		}
		_, err := conn.Write(b)
		require.NoError(t, err)
	}

	req := protocol.NewRequestVersion(1, crc32.NewIEEE())
	_, err := conn.Write(req.Bytes())
	require.NoError(t, err)

	msg := readMessage(t, conn)
	_, ok := msg.(protocol.VersionInfo)
	assert.True(t, ok)
}
