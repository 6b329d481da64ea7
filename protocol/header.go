package protocol

// Header is a read-only view of the 20-byte envelope shared by every
// message:
//
//	0-3   magic ("DSUC" client, "DSUS" server)
//	4-5   protocol version (LE uint16)
//	6-7   packet length: bytes after offset 16 (LE uint16)
//	8-11  crc32 over the message with these four bytes zeroed
//	12-15 sender id (opaque, LE uint32)
//	16-19 message type (LE uint32)
type Header struct {
	b []byte
}

// ViewHeader returns a read-only header view over the first 20 bytes of b.
func ViewHeader(b []byte) (Header, error) {
	if err := checkSize(b, HeaderSize); err != nil {
		return Header{}, err
	}
	return Header{b: b[:HeaderSize]}, nil
}

// Magic returns the role magic, or InvalidMagicError carrying the raw
// four bytes.
func (h Header) Magic() (Magic, error) {
	switch m := Magic(getU32(h.b, offMagic)); m {
	case MagicClient, MagicServer:
		return m, nil
	}
	return 0, InvalidMagicError{h.b[0], h.b[1], h.b[2], h.b[3]}
}

// Version returns the protocol version, or UnsupportedVersionError with
// the raw value.
func (h Header) Version() (Version, error) {
	v := Version(getU16(h.b, offProtocol))
	if v != Version1001 {
		return 0, UnsupportedVersionError(v)
	}
	return v, nil
}

// PacketLength returns the declared byte length of the message after
// offset 16. The codec does not cross-check it against the buffer; the
// buffer's real size governs checksum scope.
func (h Header) PacketLength() uint16 { return getU16(h.b, offPacketLength) }

// CRC32 returns the stored checksum field.
func (h Header) CRC32() uint32 { return getU32(h.b, offCRC32) }

// SenderID returns the opaque origin identifier.
func (h Header) SenderID() uint32 { return getU32(h.b, offSenderID) }

// Type returns the message-type code, or InvalidMessageTypeError with the
// raw value.
func (h Header) Type() (MessageType, error) {
	switch t := MessageType(getU32(h.b, offMessageType)); t {
	case MessageTypeVersion, MessageTypeInfo, MessageTypeData:
		return t, nil
	default:
		return 0, InvalidMessageTypeError(t)
	}
}

// Bytes returns the underlying 20 header bytes.
func (h Header) Bytes() []byte { return h.b }

// Validate decodes the three enumerated header fields in wire order:
// magic, then protocol version, then message type. The checksum is a
// whole-message concern and is not inspected here.
func (h Header) Validate() error {
	if _, err := h.Magic(); err != nil {
		return err
	}
	if _, err := h.Version(); err != nil {
		return err
	}
	if _, err := h.Type(); err != nil {
		return err
	}
	return nil
}

// HeaderMut is a mutable header view writing in place.
type HeaderMut struct {
	Header
}

// ViewHeaderMut returns a mutable header view over the first 20 bytes of b.
func ViewHeaderMut(b []byte) (HeaderMut, error) {
	h, err := ViewHeader(b)
	if err != nil {
		return HeaderMut{}, err
	}
	return HeaderMut{h}, nil
}

func (h HeaderMut) SetMagic(m Magic) { putU32(h.b, offMagic, uint32(m)) }
func (h HeaderMut) SetVersion(v Version) { putU16(h.b, offProtocol, uint16(v)) }
func (h HeaderMut) SetPacketLength(n uint16) { putU16(h.b, offPacketLength, n) }
func (h HeaderMut) SetCRC32(crc uint32) { putU32(h.b, offCRC32, crc) }
func (h HeaderMut) SetSenderID(id uint32) { putU32(h.b, offSenderID, id) }
func (h HeaderMut) SetType(t MessageType) { putU32(h.b, offMessageType, uint32(t)) }

// fill writes all six fields at once. Message Initialize methods use it
// with the role magic and length fixed per message kind.
func (h HeaderMut) fill(m Magic, v Version, length uint16, crc, senderID uint32, t MessageType) {
	h.SetMagic(m)
	h.SetVersion(v)
	h.SetPacketLength(length)
	h.SetCRC32(crc)
	h.SetSenderID(senderID)
	h.SetType(t)
}
