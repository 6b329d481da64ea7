package protocol

import "hash"

// RequestControllerInfo is the client's slot status query. It is the one
// variable-length message: header, a signed 32-bit slot count at bytes
// 20-23, then count slot-index bytes. Valid counts are 1 through 4; the
// count arrives from the network and is bound-checked before it is ever
// used to size a read.
type RequestControllerInfo struct {
	b []byte
}

// ViewRequestControllerInfo returns a read-only view over b. b must hold
// at least the 24-byte fixed prefix; the slot bytes are validated lazily
// by NumSlots and Slots.
func ViewRequestControllerInfo(b []byte) (RequestControllerInfo, error) {
	if err := checkSize(b, RequestControllerInfoMinSize); err != nil {
		return RequestControllerInfo{}, err
	}
	return RequestControllerInfo{b: b}, nil
}

// Header returns a view of the embedded envelope.
func (v RequestControllerInfo) Header() Header { return Header{b: v.b[:HeaderSize]} }

// NumSlots decodes the stored slot count. A count outside [0,4] fails
// with InvalidSlotsLengthError echoing the raw value; the zero count is
// rejected by SetSlots on encode but tolerated here so a reader can
// still inspect a peer that sent one.
func (v RequestControllerInfo) NumSlots() (int, error) {
	n := int32(getU32(v.b, HeaderSize))
	if n < 0 || n > MaxSlots {
		return 0, InvalidSlotsLengthError(n)
	}
	return int(n), nil
}

// Slots returns the stored slot indices as a sub-slice of the backing
// buffer, exactly NumSlots bytes long. It fails with a size error if the
// buffer is shorter than the count claims.
func (v RequestControllerInfo) Slots() ([]byte, error) {
	n, err := v.NumSlots()
	if err != nil {
		return nil, err
	}
	if err := checkSize(v.b, RequestControllerInfoMinSize+n); err != nil {
		return nil, err
	}
	return v.b[RequestControllerInfoMinSize : RequestControllerInfoMinSize+n], nil
}

// Len returns the logical message length, 24+NumSlots. The physical
// buffer may be padded past it (up to the 28-byte capacity); the
// checksum covers only the logical bytes.
func (v RequestControllerInfo) Len() (int, error) {
	n, err := v.NumSlots()
	if err != nil {
		return 0, err
	}
	if err := checkSize(v.b, RequestControllerInfoMinSize+n); err != nil {
		return 0, err
	}
	return RequestControllerInfoMinSize + n, nil
}

// Bytes returns the backing buffer.
func (v RequestControllerInfo) Bytes() []byte { return v.b }

// RequestControllerInfoMut is the mutable form of RequestControllerInfo.
type RequestControllerInfoMut struct {
	RequestControllerInfo
}

// ViewRequestControllerInfoMut returns a mutable view over b.
func ViewRequestControllerInfoMut(b []byte) (RequestControllerInfoMut, error) {
	v, err := ViewRequestControllerInfo(b)
	if err != nil {
		return RequestControllerInfoMut{}, err
	}
	return RequestControllerInfoMut{v}, nil
}

// HeaderMut returns a mutable view of the embedded envelope.
func (v RequestControllerInfoMut) HeaderMut() HeaderMut {
	return HeaderMut{Header{b: v.b[:HeaderSize]}}
}

// SetSlots stores the slot count and indices. Slot lists of length 0 or
// longer than 4 fail with InvalidSlotsLengthError; a backing buffer too
// small for the list fails with a size error.
func (v RequestControllerInfoMut) SetSlots(slots []byte) error {
	if len(slots) < 1 || len(slots) > MaxSlots {
		return InvalidSlotsLengthError(len(slots))
	}
	if err := checkSize(v.b, RequestControllerInfoMinSize+len(slots)); err != nil {
		return err
	}
	putU32(v.b, HeaderSize, uint32(int32(len(slots))))
	copy(v.b[RequestControllerInfoMinSize:], slots)
	return nil
}

// UpdateCRC32 recomputes the checksum over exactly the logical message
// length and stores it.
func (v RequestControllerInfoMut) UpdateCRC32(h hash.Hash32) error {
	n, err := v.Len()
	if err != nil {
		return err
	}
	UpdateChecksum(h, v.b[:n])
	return nil
}

// Initialize populates the message for the given slot list, deriving the
// header length from the list, and writes the checksum last.
func (v RequestControllerInfoMut) Initialize(senderID uint32, slots []byte, h hash.Hash32) error {
	if err := v.SetSlots(slots); err != nil {
		return err
	}
	length := uint16(RequestControllerInfoMinSize + len(slots) - packetLengthBase)
	v.HeaderMut().fill(MagicClient, Version1001, length, 0, senderID, MessageTypeInfo)
	return v.UpdateCRC32(h)
}

// OwnedRequestControllerInfo holds a RequestControllerInfo message by
// value at the maximum 28-byte capacity.
type OwnedRequestControllerInfo struct {
	buf [RequestControllerInfoMaxSize]byte
}

// NewRequestControllerInfo builds a ready-to-send slot status query.
func NewRequestControllerInfo(senderID uint32, slots []byte, h hash.Hash32) (*OwnedRequestControllerInfo, error) {
	var o OwnedRequestControllerInfo
	if err := o.Mut().Initialize(senderID, slots, h); err != nil {
		return nil, err
	}
	return &o, nil
}

func (o *OwnedRequestControllerInfo) View() RequestControllerInfo {
	return RequestControllerInfo{b: o.buf[:]}
}
func (o *OwnedRequestControllerInfo) Mut() RequestControllerInfoMut {
	return RequestControllerInfoMut{RequestControllerInfo{b: o.buf[:]}}
}

// Bytes returns the logical message bytes, excluding capacity padding.
func (o *OwnedRequestControllerInfo) Bytes() []byte {
	n, err := o.View().Len()
	if err != nil {
		// The owned form is only built through Initialize, which
		// validated the count.
		n = RequestControllerInfoMaxSize
	}
	return o.buf[:n]
}

// ControllerInfo is the server's slot status reply: header, an 11-byte
// SlotInfo block, and one zero padding byte.
type ControllerInfo struct {
	b []byte
}

// ViewControllerInfo returns a read-only view over the first 32 bytes of b.
func ViewControllerInfo(b []byte) (ControllerInfo, error) {
	if err := checkSize(b, ControllerInfoSize); err != nil {
		return ControllerInfo{}, err
	}
	return ControllerInfo{b: b[:ControllerInfoSize]}, nil
}

// Header returns a view of the embedded envelope.
func (v ControllerInfo) Header() Header { return Header{b: v.b[:HeaderSize]} }

// SlotInfo returns a view of the embedded slot block at bytes 20-30.
func (v ControllerInfo) SlotInfo() SlotInfo {
	return SlotInfo{b: v.b[HeaderSize : HeaderSize+SlotInfoSize]}
}

// Bytes returns the underlying message bytes.
func (v ControllerInfo) Bytes() []byte { return v.b }

// ControllerInfoMut is the mutable form of ControllerInfo.
type ControllerInfoMut struct {
	ControllerInfo
}

// ViewControllerInfoMut returns a mutable view over the first 32 bytes of b.
func ViewControllerInfoMut(b []byte) (ControllerInfoMut, error) {
	v, err := ViewControllerInfo(b)
	if err != nil {
		return ControllerInfoMut{}, err
	}
	return ControllerInfoMut{v}, nil
}

// HeaderMut returns a mutable view of the embedded envelope.
func (v ControllerInfoMut) HeaderMut() HeaderMut {
	return HeaderMut{Header{b: v.b[:HeaderSize]}}
}

// SlotInfoMut returns a mutable view of the embedded slot block, aliasing
// the same bytes.
func (v ControllerInfoMut) SlotInfoMut() SlotInfoMut {
	return SlotInfoMut{SlotInfo{b: v.b[HeaderSize : HeaderSize+SlotInfoSize]}}
}

// UpdateCRC32 recomputes and stores the message checksum.
func (v ControllerInfoMut) UpdateCRC32(h hash.Hash32) { UpdateChecksum(h, v.b) }

// Initialize populates the message and writes its checksum last.
func (v ControllerInfoMut) Initialize(senderID uint32, slot uint8, state SlotState, model Model, conn ConnectionType, mac [6]byte, battery BatteryStatus, h hash.Hash32) {
	v.HeaderMut().fill(MagicServer, Version1001, ControllerInfoSize-packetLengthBase, 0, senderID, MessageTypeInfo)
	v.SlotInfoMut().fill(slot, state, model, conn, mac, battery)
	v.b[ControllerInfoSize-1] = 0
	v.UpdateCRC32(h)
}

// OwnedControllerInfo holds a ControllerInfo message by value.
type OwnedControllerInfo struct {
	buf [ControllerInfoSize]byte
}

// NewControllerInfo builds a ready-to-send slot status reply.
func NewControllerInfo(senderID uint32, slot uint8, state SlotState, model Model, conn ConnectionType, mac [6]byte, battery BatteryStatus, h hash.Hash32) *OwnedControllerInfo {
	var o OwnedControllerInfo
	o.Mut().Initialize(senderID, slot, state, model, conn, mac, battery, h)
	return &o
}

func (o *OwnedControllerInfo) View() ControllerInfo { return ControllerInfo{b: o.buf[:]} }
func (o *OwnedControllerInfo) Mut() ControllerInfoMut {
	return ControllerInfoMut{ControllerInfo{b: o.buf[:]}}
}
func (o *OwnedControllerInfo) Bytes() []byte { return o.buf[:] }
