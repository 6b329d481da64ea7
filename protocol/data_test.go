package protocol

import (
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestControllerDataRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		reg  Registration
		slot uint8
		mac  [6]byte
	}{
		{"all controllers", RegisterAll, 0, [6]byte{}},
		{"slot based", RegisterSlot, 3, [6]byte{}},
		{"mac based", RegisterMAC, 0, [6]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := NewRequestControllerData(123, tc.reg, tc.slot, tc.mac, crc32.NewIEEE())

			v := o.View()
			reg, err := v.Registration()
			require.NoError(t, err)
			assert.Equal(t, tc.reg, reg)
			assert.Equal(t, tc.slot, v.Slot())
			assert.Equal(t, tc.mac, v.MAC())
			assert.Equal(t, uint32(123), v.Header().SenderID())

			typ, err := v.Header().Type()
			require.NoError(t, err)
			assert.Equal(t, MessageTypeData, typ)

			assert.NoError(t, VerifyChecksum(crc32.NewIEEE(), o.Bytes()))
		})
	}
}

func TestRequestControllerDataRegistrationClosure(t *testing.T) {
	o := NewRequestControllerData(1, RegisterAll, 0, [6]byte{}, crc32.NewIEEE())
	o.Bytes()[offRegistration] = 3

	_, err := o.View().Registration()
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "registration", fieldErr.Field)
	assert.Equal(t, uint32(3), fieldErr.Value)
}

// The concrete telemetry scenario: every field written, every field read
// back, then a surgical corruption of the motion timestamp.
func TestControllerDataScenario(t *testing.T) {
	mac := [6]byte{1, 2, 3, 4, 5, 6}
	o := NewControllerData(99, 0, SlotConnected, ModelFullGyro, ConnectionBluetooth,
		mac, BatteryFull, true, crc32.NewIEEE())

	m := o.Mut()
	m.SetPacketNumber(42)
	m.ClearAnalogButtons()
	m.UpdateCRC32(crc32.NewIEEE())

	msg := o.Bytes()
	require.Len(t, msg, ControllerDataSize)

	parsed, err := Parse(msg, crc32.NewIEEE())
	require.NoError(t, err)
	v, ok := parsed.(ControllerData)
	require.True(t, ok)

	si := v.SlotInfo()
	assert.Equal(t, uint8(0), si.Slot())
	state, err := si.State()
	require.NoError(t, err)
	assert.Equal(t, SlotConnected, state)
	model, err := si.Model()
	require.NoError(t, err)
	assert.Equal(t, ModelFullGyro, model)
	conn, err := si.ConnectionType()
	require.NoError(t, err)
	assert.Equal(t, ConnectionBluetooth, conn)
	assert.Equal(t, mac, si.MAC())
	battery, err := si.BatteryStatus()
	require.NoError(t, err)
	assert.Equal(t, BatteryFull, battery)

	assert.True(t, v.IsConnected())
	assert.Equal(t, uint32(42), v.PacketNumber())
	assert.Equal(t, Buttons(0), v.Buttons())
	assert.Zero(t, v.LeftStickX())
	assert.Zero(t, v.LeftStickY())
	assert.Zero(t, v.RightStickX())
	assert.Zero(t, v.RightStickY())
	assert.Zero(t, v.AnalogA())
	assert.Zero(t, v.AnalogL2())
	assert.False(t, v.Touch1().Active())
	assert.False(t, v.Touch2().Active())
	assert.Zero(t, v.MotionTimestamp())
	assert.Zero(t, v.AccelX())
	assert.Zero(t, v.GyroRoll())

	// Zero only the motion timestamp bytes: the stored checksum must no
	// longer verify.
	o.Mut().SetMotionTimestamp(0x0102030405060708)
	o.Mut().UpdateCRC32(crc32.NewIEEE())
	require.NoError(t, VerifyChecksum(crc32.NewIEEE(), o.Bytes()))

	for i := offMotionTimestamp; i < offMotionTimestamp+8; i++ {
		o.Bytes()[i] = 0
	}
	_, err = Parse(o.Bytes(), crc32.NewIEEE())
	var crcErr *ChecksumError
	require.ErrorAs(t, err, &crcErr)
	assert.NotEqual(t, crcErr.Expected, crcErr.Calculated)
}

func TestControllerDataFieldRoundTrip(t *testing.T) {
	o := NewControllerData(1, 2, SlotConnected, ModelPartialGyro, ConnectionUSB,
		[6]byte{9, 8, 7, 6, 5, 4}, BatteryDying, true, crc32.NewIEEE())
	m := o.Mut()

	m.SetButtons(ButtonUp | ButtonA | ButtonL2)
	m.SetHomeButton(0xFF)
	m.SetTouchButton(0x80)
	m.SetLeftStickX(10)
	m.SetLeftStickY(20)
	m.SetRightStickX(30)
	m.SetRightStickY(40)
	m.SetAnalogDPadLeft(1)
	m.SetAnalogDPadDown(2)
	m.SetAnalogDPadRight(3)
	m.SetAnalogDPadUp(4)
	m.SetAnalogY(5)
	m.SetAnalogB(6)
	m.SetAnalogA(7)
	m.SetAnalogX(8)
	m.SetAnalogR1(9)
	m.SetAnalogL1(10)
	m.SetAnalogR2(11)
	m.SetAnalogL2(12)

	t1 := m.Touch1Mut()
	t1.SetActive(true)
	t1.SetID(1)
	t1.SetX(100)
	t1.SetY(200)
	t2 := m.Touch2Mut()
	t2.SetActive(true)
	t2.SetID(2)
	t2.SetX(300)
	t2.SetY(400)

	m.SetMotionTimestamp(16000)
	m.SetAccelX(0.5)
	m.SetAccelY(-1.0)
	m.SetAccelZ(9.81)
	m.SetGyroPitch(0.25)
	m.SetGyroYaw(-0.25)
	m.SetGyroRoll(180.0)
	m.UpdateCRC32(crc32.NewIEEE())

	v := o.View()
	assert.True(t, v.Buttons().Has(ButtonUp))
	assert.True(t, v.Buttons().Has(ButtonA))
	assert.True(t, v.Buttons().Has(ButtonL2))
	assert.False(t, v.Buttons().Has(ButtonY))
	assert.Equal(t, uint8(0xFF), v.HomeButton())
	assert.Equal(t, uint8(0x80), v.TouchButton())
	assert.Equal(t, uint8(10), v.LeftStickX())
	assert.Equal(t, uint8(40), v.RightStickY())
	assert.Equal(t, uint8(1), v.AnalogDPadLeft())
	assert.Equal(t, uint8(12), v.AnalogL2())

	assert.True(t, v.Touch1().Active())
	assert.Equal(t, uint8(1), v.Touch1().ID())
	assert.Equal(t, uint16(100), v.Touch1().X())
	assert.Equal(t, uint16(200), v.Touch1().Y())
	assert.Equal(t, uint16(300), v.Touch2().X())
	assert.Equal(t, uint16(400), v.Touch2().Y())

	assert.Equal(t, uint64(16000), v.MotionTimestamp())
	assert.Equal(t, float32(0.5), v.AccelX())
	assert.Equal(t, float32(-1.0), v.AccelY())
	assert.Equal(t, float32(9.81), v.AccelZ())
	assert.Equal(t, float32(0.25), v.GyroPitch())
	assert.Equal(t, float32(-0.25), v.GyroYaw())
	assert.Equal(t, float32(180.0), v.GyroRoll())

	m.ClearAnalogButtons()
	assert.Zero(t, v.AnalogDPadLeft())
	assert.Zero(t, v.AnalogDPadDown())
	assert.Zero(t, v.AnalogDPadRight())
	assert.Zero(t, v.AnalogDPadUp())
	assert.Zero(t, v.AnalogY())
	assert.Zero(t, v.AnalogB())
	assert.Zero(t, v.AnalogA())
	assert.Zero(t, v.AnalogX())
	assert.Zero(t, v.AnalogR1())
	assert.Zero(t, v.AnalogL1())
	assert.Zero(t, v.AnalogR2())
	assert.Zero(t, v.AnalogL2())
	// Digital buttons and sticks survive the analog clear.
	assert.True(t, v.Buttons().Has(ButtonA))
	assert.Equal(t, uint8(10), v.LeftStickX())
}

func TestButtonsWireLayout(t *testing.T) {
	b := make([]byte, ControllerDataSize)
	m, err := ViewControllerDataMut(b)
	require.NoError(t, err)

	// Byte 0 bits 0-7: Select, LStick, RStick, Start, Up, Right, Down,
	// Left. Byte 1 bits 0-7: L2, R2, L1, R1, X, A, B, Y.
	m.SetButtons(ButtonSelect | ButtonLeft)
	assert.Equal(t, byte(0x81), b[offButtons])
	assert.Equal(t, byte(0x00), b[offButtons+1])

	m.SetButtons(ButtonL2 | ButtonY)
	assert.Equal(t, byte(0x00), b[offButtons])
	assert.Equal(t, byte(0x81), b[offButtons+1])

	m.SetButtons(ButtonStart | ButtonX)
	assert.Equal(t, byte(0x08), b[offButtons])
	assert.Equal(t, byte(0x10), b[offButtons+1])
}
