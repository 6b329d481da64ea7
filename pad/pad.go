// Package pad bridges application-side controller state to the wire
// views in package protocol.
package pad

import "github.com/padspace/dsuwire/protocol"

// StickCenter is the rest position of an 8-bit stick axis.
const StickCenter uint8 = 128

// TouchState is one touch point of a controller touchpad.
type TouchState struct {
	Active bool
	ID     uint8
	X      uint16
	Y      uint16
}

// Info is the slot metadata reported in ControllerInfo messages and in
// the slot block of every telemetry frame.
type Info struct {
	Slot       uint8
	State      protocol.SlotState
	Model      protocol.Model
	Connection protocol.ConnectionType
	MAC        [6]byte
	Battery    protocol.BatteryStatus
}

// State is one telemetry sample of a connected controller.
type State struct {
	Buttons     protocol.Buttons
	HomeButton  uint8
	TouchButton uint8

	LeftStickX  uint8
	LeftStickY  uint8
	RightStickX uint8
	RightStickY uint8

	AnalogDPadLeft  uint8
	AnalogDPadDown  uint8
	AnalogDPadRight uint8
	AnalogDPadUp    uint8
	AnalogY         uint8
	AnalogB         uint8
	AnalogA         uint8
	AnalogX         uint8
	AnalogR1        uint8
	AnalogL1        uint8
	AnalogR2        uint8
	AnalogL2        uint8

	Touch [2]TouchState

	// MotionTimestamp is in microseconds.
	MotionTimestamp uint64
	AccelX          float32
	AccelY          float32
	AccelZ          float32
	GyroPitch       float32
	GyroYaw         float32
	GyroRoll        float32
}

// Neutral returns a state with sticks centered and everything else
// released.
func Neutral() State {
	return State{
		LeftStickX:  StickCenter,
		LeftStickY:  StickCenter,
		RightStickX: StickCenter,
		RightStickY: StickCenter,
	}
}

// ApplyTo writes the sample into a telemetry frame view. The caller is
// responsible for recomputing the frame checksum afterwards.
func (s State) ApplyTo(m protocol.ControllerDataMut) {
	m.SetButtons(s.Buttons)
	m.SetHomeButton(s.HomeButton)
	m.SetTouchButton(s.TouchButton)

	m.SetLeftStickX(s.LeftStickX)
	m.SetLeftStickY(s.LeftStickY)
	m.SetRightStickX(s.RightStickX)
	m.SetRightStickY(s.RightStickY)

	m.SetAnalogDPadLeft(s.AnalogDPadLeft)
	m.SetAnalogDPadDown(s.AnalogDPadDown)
	m.SetAnalogDPadRight(s.AnalogDPadRight)
	m.SetAnalogDPadUp(s.AnalogDPadUp)
	m.SetAnalogY(s.AnalogY)
	m.SetAnalogB(s.AnalogB)
	m.SetAnalogA(s.AnalogA)
	m.SetAnalogX(s.AnalogX)
	m.SetAnalogR1(s.AnalogR1)
	m.SetAnalogL1(s.AnalogL1)
	m.SetAnalogR2(s.AnalogR2)
	m.SetAnalogL2(s.AnalogL2)

	for i, touch := range []protocol.TouchMut{m.Touch1Mut(), m.Touch2Mut()} {
		touch.SetActive(s.Touch[i].Active)
		touch.SetID(s.Touch[i].ID)
		touch.SetX(s.Touch[i].X)
		touch.SetY(s.Touch[i].Y)
	}

	m.SetMotionTimestamp(s.MotionTimestamp)
	m.SetAccelX(s.AccelX)
	m.SetAccelY(s.AccelY)
	m.SetAccelZ(s.AccelZ)
	m.SetGyroPitch(s.GyroPitch)
	m.SetGyroYaw(s.GyroYaw)
	m.SetGyroRoll(s.GyroRoll)
}

// FromView reads a telemetry frame back into a State.
func FromView(v protocol.ControllerData) State {
	s := State{
		Buttons:     v.Buttons(),
		HomeButton:  v.HomeButton(),
		TouchButton: v.TouchButton(),

		LeftStickX:  v.LeftStickX(),
		LeftStickY:  v.LeftStickY(),
		RightStickX: v.RightStickX(),
		RightStickY: v.RightStickY(),

		AnalogDPadLeft:  v.AnalogDPadLeft(),
		AnalogDPadDown:  v.AnalogDPadDown(),
		AnalogDPadRight: v.AnalogDPadRight(),
		AnalogDPadUp:    v.AnalogDPadUp(),
		AnalogY:         v.AnalogY(),
		AnalogB:         v.AnalogB(),
		AnalogA:         v.AnalogA(),
		AnalogX:         v.AnalogX(),
		AnalogR1:        v.AnalogR1(),
		AnalogL1:        v.AnalogL1(),
		AnalogR2:        v.AnalogR2(),
		AnalogL2:        v.AnalogL2(),

		MotionTimestamp: v.MotionTimestamp(),
		AccelX:          v.AccelX(),
		AccelY:          v.AccelY(),
		AccelZ:          v.AccelZ(),
		GyroPitch:       v.GyroPitch(),
		GyroYaw:         v.GyroYaw(),
		GyroRoll:        v.GyroRoll(),
	}
	for i, touch := range []protocol.Touch{v.Touch1(), v.Touch2()} {
		s.Touch[i] = TouchState{
			Active: touch.Active(),
			ID:     touch.ID(),
			X:      touch.X(),
			Y:      touch.Y(),
		}
	}
	return s
}
