package protocol

import "hash"

// Message is a typed, read-only view of a whole decoded message. The
// concrete type is one of the six message views; callers type-switch on
// it.
type Message interface {
	Header() Header
	Bytes() []byte
}

// MessageMut is the mutable counterpart of Message.
type MessageMut interface {
	Message
	HeaderMut() HeaderMut
}

// Parse decodes a raw datagram into a typed read-only view. It validates
// the header (magic, protocol version, message type, in that order),
// selects the body shape from the magic and message type, checks the
// buffer covers the body, and verifies the checksum over the message's
// logical bytes. Every failure is terminal for this one parse; no state
// is kept across calls, and no input can cause a panic or out-of-bounds
// read.
func Parse(buf []byte, h hash.Hash32) (Message, error) {
	view, msg, err := dispatch(buf)
	if err != nil {
		return nil, err
	}
	if err := VerifyChecksum(h, msg); err != nil {
		return nil, err
	}
	return view, nil
}

// ParseMut decodes like Parse but returns a mutable view over buf.
func ParseMut(buf []byte, h hash.Hash32) (MessageMut, error) {
	view, msg, err := dispatch(buf)
	if err != nil {
		return nil, err
	}
	if err := VerifyChecksum(h, msg); err != nil {
		return nil, err
	}
	switch v := view.(type) {
	case RequestVersion:
		return RequestVersionMut{v}, nil
	case VersionInfo:
		return VersionInfoMut{v}, nil
	case RequestControllerInfo:
		return RequestControllerInfoMut{v}, nil
	case ControllerInfo:
		return ControllerInfoMut{v}, nil
	case RequestControllerData:
		return RequestControllerDataMut{v}, nil
	case ControllerData:
		return ControllerDataMut{v}, nil
	}
	// dispatch returns exactly the six view types above.
	panic("protocol: unreachable message kind")
}

// dispatch validates the header and re-interprets buf as the message kind
// selected by (magic, message type). The second return value is the
// logical message byte range the checksum covers.
func dispatch(buf []byte) (Message, []byte, error) {
	hdr, err := ViewHeader(buf)
	if err != nil {
		return nil, nil, err
	}
	magic, err := hdr.Magic()
	if err != nil {
		return nil, nil, err
	}
	if _, err := hdr.Version(); err != nil {
		return nil, nil, err
	}
	typ, err := hdr.Type()
	if err != nil {
		return nil, nil, err
	}

	// The six (magic, type) combinations are exhaustive over the 2x3
	// product space; each maps to exactly one body shape.
	switch {
	case magic == MagicClient && typ == MessageTypeVersion:
		v, err := ViewRequestVersion(buf)
		if err != nil {
			return nil, nil, err
		}
		return v, v.Bytes(), nil
	case magic == MagicServer && typ == MessageTypeVersion:
		v, err := ViewVersionInfo(buf)
		if err != nil {
			return nil, nil, err
		}
		return v, v.Bytes(), nil
	case magic == MagicClient && typ == MessageTypeInfo:
		v, err := ViewRequestControllerInfo(buf)
		if err != nil {
			return nil, nil, err
		}
		// The stored slot count is attacker-controlled: bound-check it
		// and the buffer before trusting it for checksum scope.
		n, err := v.Len()
		if err != nil {
			return nil, nil, err
		}
		return v, v.Bytes()[:n], nil
	case magic == MagicServer && typ == MessageTypeInfo:
		v, err := ViewControllerInfo(buf)
		if err != nil {
			return nil, nil, err
		}
		return v, v.Bytes(), nil
	case magic == MagicClient && typ == MessageTypeData:
		v, err := ViewRequestControllerData(buf)
		if err != nil {
			return nil, nil, err
		}
		return v, v.Bytes(), nil
	default: // MagicServer, MessageTypeData
		v, err := ViewControllerData(buf)
		if err != nil {
			return nil, nil, err
		}
		return v, v.Bytes(), nil
	}
}
