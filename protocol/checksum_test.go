package protocol

import (
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHash captures every byte fed to the checksum so tests can
// assert the exact hashing scope, independent of any real algorithm.
type recordingHash struct {
	fed []byte
}

func (r *recordingHash) Write(p []byte) (int, error) {
	r.fed = append(r.fed, p...)
	return len(p), nil
}
func (r *recordingHash) Sum(b []byte) []byte { return append(b, 0, 0, 0, 0) }
func (r *recordingHash) Reset() { r.fed = nil }
func (r *recordingHash) Size() int           { return 4 }
func (r *recordingHash) BlockSize() int      { return 1 }
func (r *recordingHash) Sum32() uint32       { return uint32(len(r.fed)) }

func TestChecksumZeroesOwnField(t *testing.T) {
	msg := NewRequestVersion(7, crc32.NewIEEE()).Bytes()
	require.NotEqual(t, uint32(0), getU32(msg, offCRC32))

	rec := &recordingHash{}
	Checksum(rec, msg)

	// The stored checksum bytes must be replaced by zeros in the hashed
	// stream, everything else fed verbatim.
	require.Len(t, rec.fed, len(msg))
	assert.Equal(t, msg[:8], rec.fed[:8])
	assert.Equal(t, []byte{0, 0, 0, 0}, rec.fed[8:12])
	assert.Equal(t, msg[12:], rec.fed[12:])
}

func TestChecksumDeterministic(t *testing.T) {
	a := NewRequestControllerData(9, RegisterSlot, 2, [6]byte{1, 2, 3, 4, 5, 6}, crc32.NewIEEE())
	b := NewRequestControllerData(9, RegisterSlot, 2, [6]byte{1, 2, 3, 4, 5, 6}, crc32.NewIEEE())
	assert.Equal(t, a.Bytes(), b.Bytes())
	assert.Equal(t, a.View().Header().CRC32(), b.View().Header().CRC32())
}

func TestChecksumDetectsCorruption(t *testing.T) {
	o := NewControllerData(3, 0, SlotConnected, ModelFullGyro, ConnectionUSB,
		[6]byte{1, 2, 3, 4, 5, 6}, BatteryHigh, true, crc32.NewIEEE())
	msg := o.Bytes()
	require.NoError(t, VerifyChecksum(crc32.NewIEEE(), msg))

	// Flipping any single payload byte without recomputing must fail
	// verification with both values exposed.
	for _, off := range []int{0, 5, 13, offConnected, offMotionTimestamp, ControllerDataSize - 1} {
		if off >= offCRC32 && off < offSenderID {
			continue
		}
		msg[off] ^= 0x01
		err := VerifyChecksum(crc32.NewIEEE(), msg)
		var crcErr *ChecksumError
		require.ErrorAs(t, err, &crcErr, "offset %d", off)
		assert.NotEqual(t, crcErr.Expected, crcErr.Calculated)
		msg[off] ^= 0x01
	}
	assert.NoError(t, VerifyChecksum(crc32.NewIEEE(), msg))
}

func TestVerifyChecksumShortBuffer(t *testing.T) {
	var sizeErr *SizeError
	err := VerifyChecksum(crc32.NewIEEE(), make([]byte, 11))
	assert.ErrorAs(t, err, &sizeErr)
}
