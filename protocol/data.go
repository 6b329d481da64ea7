package protocol

import "hash"

// RequestControllerData field offsets.
const (
	offRegistration = 20
	offReqSlot      = 21
	offReqMAC       = 22
)

// ControllerData field offsets.
const (
	offDataSlotInfo    = 20
	offConnected       = 31
	offPacketNumber    = 32
	offButtons         = 36
	offHomeButton      = 38
	offTouchButton     = 39
	offLeftStickX      = 40
	offLeftStickY      = 41
	offRightStickX     = 42
	offRightStickY     = 43
	offAnalogDPadLeft  = 44
	offAnalogDPadDown  = 45
	offAnalogDPadRight = 46
	offAnalogDPadUp    = 47
	offAnalogY         = 48
	offAnalogB         = 49
	offAnalogA         = 50
	offAnalogX         = 51
	offAnalogR1        = 52
	offAnalogL1        = 53
	offAnalogR2        = 54
	offAnalogL2        = 55
	offTouch1          = 56
	offTouch2          = 62
	offMotionTimestamp = 68
	offAccelX          = 76
	offAccelY          = 80
	offAccelZ          = 84
	offGyroPitch       = 88
	offGyroYaw         = 92
	offGyroRoll        = 96
)

// RequestControllerData is the client's telemetry subscription: header,
// registration mode, slot index, and a 6-byte MAC. Slot and MAC are only
// meaningful for the matching registration mode; the others are sent as
// zero.
type RequestControllerData struct {
	b []byte
}

// ViewRequestControllerData returns a read-only view over the first 28
// bytes of b.
func ViewRequestControllerData(b []byte) (RequestControllerData, error) {
	if err := checkSize(b, RequestControllerDataSize); err != nil {
		return RequestControllerData{}, err
	}
	return RequestControllerData{b: b[:RequestControllerDataSize]}, nil
}

// Header returns a view of the embedded envelope.
func (v RequestControllerData) Header() Header { return Header{b: v.b[:HeaderSize]} }

// Registration returns the subscription mode, or a FieldError for an
// unknown byte.
func (v RequestControllerData) Registration() (Registration, error) {
	r := Registration(v.b[offRegistration])
	if !r.valid() {
		return 0, &FieldError{Field: "registration", Value: uint32(v.b[offRegistration])}
	}
	return r, nil
}

// Slot returns the requested slot index.
func (v RequestControllerData) Slot() uint8 { return v.b[offReqSlot] }

// MAC returns the requested hardware address.
func (v RequestControllerData) MAC() [6]byte {
	var mac [6]byte
	copy(mac[:], v.b[offReqMAC:offReqMAC+6])
	return mac
}

// Bytes returns the underlying message bytes.
func (v RequestControllerData) Bytes() []byte { return v.b }

// RequestControllerDataMut is the mutable form of RequestControllerData.
type RequestControllerDataMut struct {
	RequestControllerData
}

// ViewRequestControllerDataMut returns a mutable view over the first 28
// bytes of b.
func ViewRequestControllerDataMut(b []byte) (RequestControllerDataMut, error) {
	v, err := ViewRequestControllerData(b)
	if err != nil {
		return RequestControllerDataMut{}, err
	}
	return RequestControllerDataMut{v}, nil
}

// HeaderMut returns a mutable view of the embedded envelope.
func (v RequestControllerDataMut) HeaderMut() HeaderMut {
	return HeaderMut{Header{b: v.b[:HeaderSize]}}
}

func (v RequestControllerDataMut) SetRegistration(r Registration) {
	v.b[offRegistration] = uint8(r)
}
func (v RequestControllerDataMut) SetSlot(slot uint8) { v.b[offReqSlot] = slot }
func (v RequestControllerDataMut) SetMAC(mac [6]byte) {
	copy(v.b[offReqMAC:offReqMAC+6], mac[:])
}

// UpdateCRC32 recomputes and stores the message checksum.
func (v RequestControllerDataMut) UpdateCRC32(h hash.Hash32) { UpdateChecksum(h, v.b) }

// Initialize populates the message and writes its checksum last.
func (v RequestControllerDataMut) Initialize(senderID uint32, reg Registration, slot uint8, mac [6]byte, h hash.Hash32) {
	v.HeaderMut().fill(MagicClient, Version1001, RequestControllerDataSize-packetLengthBase, 0, senderID, MessageTypeData)
	v.SetRegistration(reg)
	v.SetSlot(slot)
	v.SetMAC(mac)
	v.UpdateCRC32(h)
}

// OwnedRequestControllerData holds a RequestControllerData message by
// value.
type OwnedRequestControllerData struct {
	buf [RequestControllerDataSize]byte
}

// NewRequestControllerData builds a ready-to-send telemetry subscription.
func NewRequestControllerData(senderID uint32, reg Registration, slot uint8, mac [6]byte, h hash.Hash32) *OwnedRequestControllerData {
	var o OwnedRequestControllerData
	o.Mut().Initialize(senderID, reg, slot, mac, h)
	return &o
}

func (o *OwnedRequestControllerData) View() RequestControllerData {
	return RequestControllerData{b: o.buf[:]}
}
func (o *OwnedRequestControllerData) Mut() RequestControllerDataMut {
	return RequestControllerDataMut{RequestControllerData{b: o.buf[:]}}
}
func (o *OwnedRequestControllerData) Bytes() []byte { return o.buf[:] }

// ControllerData is the server's 100-byte telemetry frame: header,
// SlotInfo block, connected flag, packet number, digital buttons, analog
// levels, two touch points, motion timestamp, and six float32 motion
// values.
type ControllerData struct {
	b []byte
}

// ViewControllerData returns a read-only view over the first 100 bytes
// of b.
func ViewControllerData(b []byte) (ControllerData, error) {
	if err := checkSize(b, ControllerDataSize); err != nil {
		return ControllerData{}, err
	}
	return ControllerData{b: b[:ControllerDataSize]}, nil
}

// Header returns a view of the embedded envelope.
func (v ControllerData) Header() Header { return Header{b: v.b[:HeaderSize]} }

// SlotInfo returns a view of the embedded slot block at bytes 20-30.
func (v ControllerData) SlotInfo() SlotInfo {
	return SlotInfo{b: v.b[offDataSlotInfo : offDataSlotInfo+SlotInfoSize]}
}

// IsConnected reports the connected flag at byte 31.
func (v ControllerData) IsConnected() bool { return v.b[offConnected] != 0 }

// PacketNumber returns the per-slot frame counter.
func (v ControllerData) PacketNumber() uint32 { return getU32(v.b, offPacketNumber) }

// Buttons returns the 2-byte digital button bitmask.
func (v ControllerData) Buttons() Buttons { return Buttons(getU16(v.b, offButtons)) }

// HomeButton returns the PS/home button level.
func (v ControllerData) HomeButton() uint8 { return v.b[offHomeButton] }

// TouchButton returns the touchpad click level.
func (v ControllerData) TouchButton() uint8 { return v.b[offTouchButton] }

func (v ControllerData) LeftStickX() uint8  { return v.b[offLeftStickX] }
func (v ControllerData) LeftStickY() uint8  { return v.b[offLeftStickY] }
func (v ControllerData) RightStickX() uint8 { return v.b[offRightStickX] }
func (v ControllerData) RightStickY() uint8 { return v.b[offRightStickY] }

func (v ControllerData) AnalogDPadLeft() uint8  { return v.b[offAnalogDPadLeft] }
func (v ControllerData) AnalogDPadDown() uint8  { return v.b[offAnalogDPadDown] }
func (v ControllerData) AnalogDPadRight() uint8 { return v.b[offAnalogDPadRight] }
func (v ControllerData) AnalogDPadUp() uint8    { return v.b[offAnalogDPadUp] }
func (v ControllerData) AnalogY() uint8         { return v.b[offAnalogY] }
func (v ControllerData) AnalogB() uint8         { return v.b[offAnalogB] }
func (v ControllerData) AnalogA() uint8         { return v.b[offAnalogA] }
func (v ControllerData) AnalogX() uint8         { return v.b[offAnalogX] }
func (v ControllerData) AnalogR1() uint8        { return v.b[offAnalogR1] }
func (v ControllerData) AnalogL1() uint8        { return v.b[offAnalogL1] }
func (v ControllerData) AnalogR2() uint8        { return v.b[offAnalogR2] }
func (v ControllerData) AnalogL2() uint8        { return v.b[offAnalogL2] }

// Touch1 returns a view of the first touch point at bytes 56-61.
func (v ControllerData) Touch1() Touch { return Touch{b: v.b[offTouch1 : offTouch1+TouchSize]} }

// Touch2 returns a view of the second touch point at bytes 62-67.
func (v ControllerData) Touch2() Touch { return Touch{b: v.b[offTouch2 : offTouch2+TouchSize]} }

// MotionTimestamp returns the motion sample timestamp in microseconds.
func (v ControllerData) MotionTimestamp() uint64 { return getU64(v.b, offMotionTimestamp) }

func (v ControllerData) AccelX() float32    { return getF32(v.b, offAccelX) }
func (v ControllerData) AccelY() float32    { return getF32(v.b, offAccelY) }
func (v ControllerData) AccelZ() float32    { return getF32(v.b, offAccelZ) }
func (v ControllerData) GyroPitch() float32 { return getF32(v.b, offGyroPitch) }
func (v ControllerData) GyroYaw() float32   { return getF32(v.b, offGyroYaw) }
func (v ControllerData) GyroRoll() float32  { return getF32(v.b, offGyroRoll) }

// Bytes returns the underlying message bytes.
func (v ControllerData) Bytes() []byte { return v.b }

// ControllerDataMut is the mutable form of ControllerData.
type ControllerDataMut struct {
	ControllerData
}

// ViewControllerDataMut returns a mutable view over the first 100 bytes
// of b.
func ViewControllerDataMut(b []byte) (ControllerDataMut, error) {
	v, err := ViewControllerData(b)
	if err != nil {
		return ControllerDataMut{}, err
	}
	return ControllerDataMut{v}, nil
}

// HeaderMut returns a mutable view of the embedded envelope.
func (v ControllerDataMut) HeaderMut() HeaderMut {
	return HeaderMut{Header{b: v.b[:HeaderSize]}}
}

// SlotInfoMut returns a mutable view of the embedded slot block.
func (v ControllerDataMut) SlotInfoMut() SlotInfoMut {
	return SlotInfoMut{SlotInfo{b: v.b[offDataSlotInfo : offDataSlotInfo+SlotInfoSize]}}
}

func (v ControllerDataMut) SetConnected(connected bool) { putBool(v.b, offConnected, connected) }
func (v ControllerDataMut) SetPacketNumber(n uint32) { putU32(v.b, offPacketNumber, n) }
func (v ControllerDataMut) SetButtons(b Buttons) { putU16(v.b, offButtons, uint16(b)) }
func (v ControllerDataMut) SetHomeButton(level uint8) { v.b[offHomeButton] = level }
func (v ControllerDataMut) SetTouchButton(level uint8) { v.b[offTouchButton] = level }

func (v ControllerDataMut) SetLeftStickX(x uint8) { v.b[offLeftStickX] = x }
func (v ControllerDataMut) SetLeftStickY(y uint8) { v.b[offLeftStickY] = y }
func (v ControllerDataMut) SetRightStickX(x uint8) { v.b[offRightStickX] = x }
func (v ControllerDataMut) SetRightStickY(y uint8) { v.b[offRightStickY] = y }

func (v ControllerDataMut) SetAnalogDPadLeft(l uint8) { v.b[offAnalogDPadLeft] = l }
func (v ControllerDataMut) SetAnalogDPadDown(l uint8) { v.b[offAnalogDPadDown] = l }
func (v ControllerDataMut) SetAnalogDPadRight(l uint8) { v.b[offAnalogDPadRight] = l }
func (v ControllerDataMut) SetAnalogDPadUp(l uint8) { v.b[offAnalogDPadUp] = l }
func (v ControllerDataMut) SetAnalogY(l uint8) { v.b[offAnalogY] = l }
func (v ControllerDataMut) SetAnalogB(l uint8) { v.b[offAnalogB] = l }
func (v ControllerDataMut) SetAnalogA(l uint8) { v.b[offAnalogA] = l }
func (v ControllerDataMut) SetAnalogX(l uint8) { v.b[offAnalogX] = l }
func (v ControllerDataMut) SetAnalogR1(l uint8) { v.b[offAnalogR1] = l }
func (v ControllerDataMut) SetAnalogL1(l uint8) { v.b[offAnalogL1] = l }
func (v ControllerDataMut) SetAnalogR2(l uint8) { v.b[offAnalogR2] = l }
func (v ControllerDataMut) SetAnalogL2(l uint8) { v.b[offAnalogL2] = l }

// ClearAnalogButtons zeroes all twelve analog button levels in one call.
func (v ControllerDataMut) ClearAnalogButtons() {
	for i := offAnalogDPadLeft; i <= offAnalogL2; i++ {
		v.b[i] = 0
	}
}

// Touch1Mut returns a mutable view of the first touch point.
func (v ControllerDataMut) Touch1Mut() TouchMut {
	return TouchMut{Touch{b: v.b[offTouch1 : offTouch1+TouchSize]}}
}

// Touch2Mut returns a mutable view of the second touch point.
func (v ControllerDataMut) Touch2Mut() TouchMut {
	return TouchMut{Touch{b: v.b[offTouch2 : offTouch2+TouchSize]}}
}

func (v ControllerDataMut) SetMotionTimestamp(us uint64) { putU64(v.b, offMotionTimestamp, us) }

func (v ControllerDataMut) SetAccelX(a float32) { putF32(v.b, offAccelX, a) }
func (v ControllerDataMut) SetAccelY(a float32) { putF32(v.b, offAccelY, a) }
func (v ControllerDataMut) SetAccelZ(a float32) { putF32(v.b, offAccelZ, a) }
func (v ControllerDataMut) SetGyroPitch(g float32) { putF32(v.b, offGyroPitch, g) }
func (v ControllerDataMut) SetGyroYaw(g float32) { putF32(v.b, offGyroYaw, g) }
func (v ControllerDataMut) SetGyroRoll(g float32) { putF32(v.b, offGyroRoll, g) }

// UpdateCRC32 recomputes and stores the message checksum. Call it after
// any field change; the frame is not valid on the wire until then.
func (v ControllerDataMut) UpdateCRC32(h hash.Hash32) { UpdateChecksum(h, v.b) }

// Initialize populates the header, slot block, and connected flag, then
// writes the checksum. Telemetry fields keep their current buffer
// contents; set them and call UpdateCRC32 before sending.
func (v ControllerDataMut) Initialize(senderID uint32, slot uint8, state SlotState, model Model, conn ConnectionType, mac [6]byte, battery BatteryStatus, connected bool, h hash.Hash32) {
	v.HeaderMut().fill(MagicServer, Version1001, ControllerDataSize-packetLengthBase, 0, senderID, MessageTypeData)
	v.SlotInfoMut().fill(slot, state, model, conn, mac, battery)
	v.SetConnected(connected)
	v.UpdateCRC32(h)
}

// OwnedControllerData holds a ControllerData message by value, zero
// filled.
type OwnedControllerData struct {
	buf [ControllerDataSize]byte
}

// NewControllerData builds a telemetry frame with zeroed inputs.
func NewControllerData(senderID uint32, slot uint8, state SlotState, model Model, conn ConnectionType, mac [6]byte, battery BatteryStatus, connected bool, h hash.Hash32) *OwnedControllerData {
	var o OwnedControllerData
	o.Mut().Initialize(senderID, slot, state, model, conn, mac, battery, connected, h)
	return &o
}

func (o *OwnedControllerData) View() ControllerData { return ControllerData{b: o.buf[:]} }
func (o *OwnedControllerData) Mut() ControllerDataMut {
	return ControllerDataMut{ControllerData{b: o.buf[:]}}
}
func (o *OwnedControllerData) Bytes() []byte { return o.buf[:] }
