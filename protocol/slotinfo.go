package protocol

// SlotInfo is a read-only view of the 11-byte controller slot block
// embedded in ControllerInfo and ControllerData messages:
//
//	0     slot index
//	1     slot state
//	2     model
//	3     connection type
//	4-9   hardware (MAC) address, opaque
//	10    battery status
type SlotInfo struct {
	b []byte
}

// ViewSlotInfo returns a read-only slot-info view over the first 11 bytes
// of b.
func ViewSlotInfo(b []byte) (SlotInfo, error) {
	if err := checkSize(b, SlotInfoSize); err != nil {
		return SlotInfo{}, err
	}
	return SlotInfo{b: b[:SlotInfoSize]}, nil
}

// Slot returns the controller port index.
func (s SlotInfo) Slot() uint8 { return s.b[0] }

// State returns the slot state, or a FieldError for an unknown byte.
func (s SlotInfo) State() (SlotState, error) {
	v := SlotState(s.b[1])
	if !v.valid() {
		return 0, &FieldError{Field: "state", Value: uint32(s.b[1])}
	}
	return v, nil
}

// Model returns the controller model, or a FieldError for an unknown byte.
func (s SlotInfo) Model() (Model, error) {
	v := Model(s.b[2])
	if !v.valid() {
		return 0, &FieldError{Field: "model", Value: uint32(s.b[2])}
	}
	return v, nil
}

// ConnectionType returns the connection medium, or a FieldError for an
// unknown byte.
func (s SlotInfo) ConnectionType() (ConnectionType, error) {
	v := ConnectionType(s.b[3])
	if !v.valid() {
		return 0, &FieldError{Field: "connection_type", Value: uint32(s.b[3])}
	}
	return v, nil
}

// MAC returns the 6-byte hardware address.
func (s SlotInfo) MAC() [6]byte {
	var mac [6]byte
	copy(mac[:], s.b[4:10])
	return mac
}

// BatteryStatus returns the battery level, or a FieldError for an unknown
// byte.
func (s SlotInfo) BatteryStatus() (BatteryStatus, error) {
	v := BatteryStatus(s.b[10])
	if !v.valid() {
		return 0, &FieldError{Field: "battery_status", Value: uint32(s.b[10])}
	}
	return v, nil
}

// Bytes returns the underlying 11 bytes.
func (s SlotInfo) Bytes() []byte { return s.b }

// SlotInfoMut is a mutable slot-info view writing in place.
type SlotInfoMut struct {
	SlotInfo
}

// ViewSlotInfoMut returns a mutable slot-info view over the first 11
// bytes of b.
func ViewSlotInfoMut(b []byte) (SlotInfoMut, error) {
	s, err := ViewSlotInfo(b)
	if err != nil {
		return SlotInfoMut{}, err
	}
	return SlotInfoMut{s}, nil
}

func (s SlotInfoMut) SetSlot(slot uint8) { s.b[0] = slot }
func (s SlotInfoMut) SetState(v SlotState) { s.b[1] = uint8(v) }
func (s SlotInfoMut) SetModel(v Model) { s.b[2] = uint8(v) }
func (s SlotInfoMut) SetConnectionType(v ConnectionType) { s.b[3] = uint8(v) }
func (s SlotInfoMut) SetMAC(mac [6]byte) { copy(s.b[4:10], mac[:]) }
func (s SlotInfoMut) SetBatteryStatus(v BatteryStatus) { s.b[10] = uint8(v) }

func (s SlotInfoMut) fill(slot uint8, state SlotState, model Model, conn ConnectionType, mac [6]byte, battery BatteryStatus) {
	s.SetSlot(slot)
	s.SetState(state)
	s.SetModel(model)
	s.SetConnectionType(conn)
	s.SetMAC(mac)
	s.SetBatteryStatus(battery)
}
