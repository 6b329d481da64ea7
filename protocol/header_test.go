package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validHeaderBytes() []byte {
	b := make([]byte, HeaderSize)
	hm, err := ViewHeaderMut(b)
	if err != nil {
		panic(err)
	}
	hm.fill(MagicClient, Version1001, 4, 0xDEADBEEF, 0xCAFE, MessageTypeVersion)
	return b
}

func TestHeaderRoundTrip(t *testing.T) {
	b := make([]byte, HeaderSize)
	hm, err := ViewHeaderMut(b)
	require.NoError(t, err)

	hm.fill(MagicServer, Version1001, 84, 0x11223344, 42, MessageTypeData)

	h, err := ViewHeader(b)
	require.NoError(t, err)

	magic, err := h.Magic()
	assert.NoError(t, err)
	assert.Equal(t, MagicServer, magic)

	ver, err := h.Version()
	assert.NoError(t, err)
	assert.Equal(t, Version1001, ver)

	assert.Equal(t, uint16(84), h.PacketLength())
	assert.Equal(t, uint32(0x11223344), h.CRC32())
	assert.Equal(t, uint32(42), h.SenderID())

	typ, err := h.Type()
	assert.NoError(t, err)
	assert.Equal(t, MessageTypeData, typ)
}

func TestHeaderWireLayout(t *testing.T) {
	b := validHeaderBytes()

	// "DSUC", version 1001, length 4, sender id 0xCAFE, type 0x100000.
	assert.Equal(t, []byte{'D', 'S', 'U', 'C'}, b[0:4])
	assert.Equal(t, []byte{0xE9, 0x03}, b[4:6])
	assert.Equal(t, []byte{0x04, 0x00}, b[6:8])
	assert.Equal(t, []byte{0xEF, 0xBE, 0xAD, 0xDE}, b[8:12])
	assert.Equal(t, []byte{0xFE, 0xCA, 0x00, 0x00}, b[12:16])
	assert.Equal(t, []byte{0x00, 0x00, 0x10, 0x00}, b[16:20])
}

func TestHeaderInvalidMagic(t *testing.T) {
	b := validHeaderBytes()
	copy(b[0:4], "XSUX")

	h, err := ViewHeader(b)
	require.NoError(t, err)

	_, err = h.Magic()
	var magicErr InvalidMagicError
	require.ErrorAs(t, err, &magicErr)
	assert.Equal(t, InvalidMagicError{'X', 'S', 'U', 'X'}, magicErr)

	// Validate reports the magic error before looking at anything else.
	putU16(b, offProtocol, 999)
	assert.ErrorAs(t, h.Validate(), &magicErr)
}

func TestHeaderUnsupportedVersion(t *testing.T) {
	b := validHeaderBytes()
	putU16(b, offProtocol, 1002)

	h, err := ViewHeader(b)
	require.NoError(t, err)

	_, err = h.Version()
	var verErr UnsupportedVersionError
	require.ErrorAs(t, err, &verErr)
	assert.Equal(t, UnsupportedVersionError(1002), verErr)
	assert.ErrorAs(t, h.Validate(), &verErr)
}

func TestHeaderInvalidMessageType(t *testing.T) {
	b := validHeaderBytes()
	putU32(b, offMessageType, 0x100003)

	h, err := ViewHeader(b)
	require.NoError(t, err)

	_, err = h.Type()
	var typeErr InvalidMessageTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, InvalidMessageTypeError(0x100003), typeErr)
	assert.ErrorAs(t, h.Validate(), &typeErr)
}

func TestHeaderTruncated(t *testing.T) {
	b := validHeaderBytes()

	_, err := ViewHeader(b[:HeaderSize-1])
	var sizeErr *SizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, HeaderSize, sizeErr.Need)
	assert.Equal(t, HeaderSize-1, sizeErr.Got)

	_, err = ViewHeaderMut(b[:0])
	assert.ErrorAs(t, err, &sizeErr)
}
