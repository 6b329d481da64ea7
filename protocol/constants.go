// Package protocol implements the DSU ("cemuhook") UDP controller
// telemetry wire format: fixed little-endian message layouts, zero-copy
// views over caller-owned buffers, and whole-message checksum handling.
//
// The package is a pure codec. It performs no I/O and keeps no state;
// callers hand in raw datagram buffers plus a hash.Hash32 for the
// checksum field and get typed views or structured errors back.
package protocol

// Magic identifies which role originated a message. The constants are the
// ASCII sequences "DSUC" and "DSUS" read as little-endian uint32.
type Magic uint32

const (
	MagicClient Magic = 0x43555344 // "DSUC"
	MagicServer Magic = 0x53555344 // "DSUS"
)

// MessageType is the 4-byte message family code. Request and response of a
// family share the code; the magic disambiguates direction.
type MessageType uint32

const (
	MessageTypeVersion MessageType = 0x100000 // protocol version info
	MessageTypeInfo    MessageType = 0x100001 // controller info
	MessageTypeData    MessageType = 0x100002 // controller data
)

// Version is the protocol version carried in the header and in the
// ProtocolVersionInfo body. Version1001 is the only supported value;
// anything else is rejected at decode time.
type Version uint16

const Version1001 Version = 1001

// Total message sizes in bytes. RequestControllerInfo is variable:
// RequestControllerInfoMinSize plus one byte per requested slot, up to
// RequestControllerInfoMaxSize.
const (
	HeaderSize   = 20
	SlotInfoSize = 11
	TouchSize    = 6

	RequestVersionSize           = 20
	VersionInfoSize              = 22
	RequestControllerInfoMinSize = 24
	RequestControllerInfoMaxSize = 28
	ControllerInfoSize           = 32
	RequestControllerDataSize    = 28
	ControllerDataSize           = 100
)

// MaxSlots is the number of controller ports addressable by the protocol.
const MaxSlots = 4

// packetLengthBase is the fixed point the header's packet-length field is
// measured from: the field counts every message byte after the first 16
// (magic, protocol version, length, checksum), i.e. sender id onward.
const packetLengthBase = 16

// Header field offsets.
const (
	offMagic        = 0
	offProtocol     = 4
	offPacketLength = 6
	offCRC32        = 8
	offSenderID     = 12
	offMessageType  = 16
)
