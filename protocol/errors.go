package protocol

import "fmt"

// SizeError reports a buffer shorter than the structure it is supposed to
// hold. Every view constructor fails with this instead of reading past the
// end of its input.
type SizeError struct {
	Need int
	Got  int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("protocol: buffer too small: need %d bytes, got %d", e.Need, e.Got)
}

// InvalidMagicError reports a header whose first four bytes match neither
// of the known role magics.
type InvalidMagicError [4]byte

func (e InvalidMagicError) Error() string {
	return fmt.Sprintf("protocol: invalid magic [%#02x %#02x %#02x %#02x]", e[0], e[1], e[2], e[3])
}

// UnsupportedVersionError reports a protocol version other than the one
// supported value.
type UnsupportedVersionError uint16

func (e UnsupportedVersionError) Error() string {
	return fmt.Sprintf("protocol: unsupported protocol version %d", uint16(e))
}

// InvalidMessageTypeError reports an unknown message-type code.
type InvalidMessageTypeError uint32

func (e InvalidMessageTypeError) Error() string {
	return fmt.Sprintf("protocol: invalid message type %#x", uint32(e))
}

// FieldError reports a wire value outside a field's defined set. Field is
// the logical field name, Value the raw wire value.
type FieldError struct {
	Field string
	Value uint32
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("protocol: invalid %s %#x", e.Field, e.Value)
}

// InvalidSlotsLengthError reports a RequestControllerInfo slot count
// outside [1,4], either as stored on the wire or as requested by a caller.
type InvalidSlotsLengthError int32

func (e InvalidSlotsLengthError) Error() string {
	return fmt.Sprintf("protocol: invalid slots length %d", int32(e))
}

// ChecksumError reports a whole-message integrity failure. Expected is the
// value stored in the header, Calculated the value recomputed over the
// received bytes.
type ChecksumError struct {
	Expected   uint32
	Calculated uint32
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("protocol: invalid crc32: expected %#08x, calculated %#08x", e.Expected, e.Calculated)
}
