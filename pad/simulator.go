package pad

import (
	"math"
	"time"

	"github.com/padspace/dsuwire/protocol"
)

// Simulator is a synthetic controller occupying slot 0. It produces a
// slow circular motion sweep so downstream consumers can verify gyro and
// accel plumbing without physical hardware. Samples are a pure function
// of elapsed time, which keeps tests deterministic.
type Simulator struct {
	mac [6]byte
}

// NewSimulator creates a simulator with the given hardware address.
func NewSimulator(mac [6]byte) *Simulator {
	return &Simulator{mac: mac}
}

// Info reports slot 0 as a connected full-gyro bluetooth pad; all other
// slots are empty.
func (s *Simulator) Info(slot uint8) Info {
	if slot != 0 {
		return Info{
			Slot:       slot,
			State:      protocol.SlotDisconnected,
			Model:      protocol.ModelNone,
			Connection: protocol.ConnectionNone,
			Battery:    protocol.BatteryNone,
		}
	}
	return Info{
		Slot:       0,
		State:      protocol.SlotConnected,
		Model:      protocol.ModelFullGyro,
		Connection: protocol.ConnectionBluetooth,
		MAC:        s.mac,
		Battery:    protocol.BatteryFull,
	}
}

// State returns the sample for the given slot at the given elapsed time
// since the simulator started. Only slot 0 produces data.
func (s *Simulator) State(slot uint8, elapsed time.Duration) (State, bool) {
	if slot != 0 {
		return State{}, false
	}

	// One full revolution every four seconds.
	phase := elapsed.Seconds() * math.Pi / 2

	st := Neutral()
	st.MotionTimestamp = uint64(elapsed.Microseconds())
	st.GyroPitch = float32(45 * math.Sin(phase))
	st.GyroYaw = float32(45 * math.Cos(phase))
	st.GyroRoll = float32(10 * math.Sin(phase/2))
	st.AccelX = float32(0.1 * math.Cos(phase))
	st.AccelY = -1
	st.AccelZ = float32(0.1 * math.Sin(phase))
	return st, true
}
