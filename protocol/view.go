package protocol

import (
	"encoding/binary"
	"math"
)

// Views give typed access to a byte region without copying it. Each wire
// structure has a read-only view (getters over a borrowed []byte), a
// mutable view (the read-only view plus in-place setters, obtained by
// embedding), and for the message kinds an owned form holding the backing
// array by value. All three share one set of field offsets; the helpers
// below are the only place the byte order is spelled out.
//
// A mutable view is an exclusive alias of its buffer: taking a mutable
// sub-view (Header, SlotInfo, Touch) of a mutable parent yields a view
// over the same bytes, so callers must not hold two mutable views of
// overlapping regions while writing through either.

func getU16(b []byte, off int) uint16 { return binary.LittleEndian.Uint16(b[off:]) }
func getU32(b []byte, off int) uint32 { return binary.LittleEndian.Uint32(b[off:]) }
func getU64(b []byte, off int) uint64 { return binary.LittleEndian.Uint64(b[off:]) }

func getF32(b []byte, off int) float32 {
	return math.Float32frombits(getU32(b, off))
}

func putU16(b []byte, off int, v uint16) { binary.LittleEndian.PutUint16(b[off:], v) }
func putU32(b []byte, off int, v uint32) { binary.LittleEndian.PutUint32(b[off:], v) }
func putU64(b []byte, off int, v uint64) { binary.LittleEndian.PutUint64(b[off:], v) }

func putF32(b []byte, off int, v float32) {
	putU32(b, off, math.Float32bits(v))
}

func putBool(b []byte, off int, v bool) {
	if v {
		b[off] = 1
	} else {
		b[off] = 0
	}
}

// checkSize fails closed when b cannot hold need bytes.
func checkSize(b []byte, need int) error {
	if len(b) < need {
		return &SizeError{Need: need, Got: len(b)}
	}
	return nil
}
