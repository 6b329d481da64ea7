package protocol

import "hash"

// The checksum lives in header bytes [8,12) and is computed over the full
// message with those four bytes read as zero. Both directions must follow
// the zero-substitution exactly; hashing the stored checksum bytes
// instead yields a value that never verifies.
//
// The hash algorithm is caller-supplied (the DSU wire protocol uses
// crc32.NewIEEE); only the 32-bit width is fixed by the wire format.

var checksumZero [4]byte

// Checksum computes the 32-bit checksum of msg using h. h is reset before
// use. msg must be at least 12 bytes; message views guarantee that before
// calling.
func Checksum(h hash.Hash32, msg []byte) uint32 {
	h.Reset()
	h.Write(msg[:offCRC32])
	h.Write(checksumZero[:])
	h.Write(msg[offSenderID:])
	return h.Sum32()
}

// UpdateChecksum recomputes the checksum of msg and stores it at bytes
// [8,12).
func UpdateChecksum(h hash.Hash32, msg []byte) {
	putU32(msg, offCRC32, Checksum(h, msg))
}

// VerifyChecksum recomputes the checksum of msg and compares it against
// the stored field, returning a ChecksumError with both values on
// mismatch.
func VerifyChecksum(h hash.Hash32, msg []byte) error {
	if err := checkSize(msg, offSenderID); err != nil {
		return err
	}
	stored := getU32(msg, offCRC32)
	calc := Checksum(h, msg)
	if stored != calc {
		return &ChecksumError{Expected: stored, Calculated: calc}
	}
	return nil
}
