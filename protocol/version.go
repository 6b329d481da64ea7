package protocol

import "hash"

// RequestVersion is the client's protocol handshake message
// (RequestProtocolVersionInfo). It is a bare 20-byte header.
type RequestVersion struct {
	b []byte
}

// ViewRequestVersion returns a read-only view over the first 20 bytes of b.
func ViewRequestVersion(b []byte) (RequestVersion, error) {
	if err := checkSize(b, RequestVersionSize); err != nil {
		return RequestVersion{}, err
	}
	return RequestVersion{b: b[:RequestVersionSize]}, nil
}

// Header returns a view of the embedded envelope.
func (v RequestVersion) Header() Header { return Header{b: v.b[:HeaderSize]} }

// Bytes returns the underlying message bytes.
func (v RequestVersion) Bytes() []byte { return v.b }

// RequestVersionMut is the mutable form of RequestVersion.
type RequestVersionMut struct {
	RequestVersion
}

// ViewRequestVersionMut returns a mutable view over the first 20 bytes of b.
func ViewRequestVersionMut(b []byte) (RequestVersionMut, error) {
	v, err := ViewRequestVersion(b)
	if err != nil {
		return RequestVersionMut{}, err
	}
	return RequestVersionMut{v}, nil
}

// HeaderMut returns a mutable view of the embedded envelope, aliasing the
// same bytes.
func (v RequestVersionMut) HeaderMut() HeaderMut {
	return HeaderMut{Header{b: v.b[:HeaderSize]}}
}

// UpdateCRC32 recomputes and stores the message checksum.
func (v RequestVersionMut) UpdateCRC32(h hash.Hash32) { UpdateChecksum(h, v.b) }

// Initialize populates the message and writes its checksum last.
func (v RequestVersionMut) Initialize(senderID uint32, h hash.Hash32) {
	v.HeaderMut().fill(MagicClient, Version1001, RequestVersionSize-packetLengthBase, 0, senderID, MessageTypeVersion)
	v.UpdateCRC32(h)
}

// OwnedRequestVersion holds a RequestVersion message by value.
type OwnedRequestVersion struct {
	buf [RequestVersionSize]byte
}

// NewRequestVersion builds a ready-to-send handshake request.
func NewRequestVersion(senderID uint32, h hash.Hash32) *OwnedRequestVersion {
	var o OwnedRequestVersion
	o.Mut().Initialize(senderID, h)
	return &o
}

func (o *OwnedRequestVersion) View() RequestVersion { return RequestVersion{b: o.buf[:]} }
func (o *OwnedRequestVersion) Mut() RequestVersionMut {
	return RequestVersionMut{RequestVersion{b: o.buf[:]}}
}
func (o *OwnedRequestVersion) Bytes() []byte { return o.buf[:] }

// VersionInfo is the server's protocol handshake reply
// (ProtocolVersionInfo): header plus the negotiated version at bytes
// 20-21.
type VersionInfo struct {
	b []byte
}

// ViewVersionInfo returns a read-only view over the first 22 bytes of b.
func ViewVersionInfo(b []byte) (VersionInfo, error) {
	if err := checkSize(b, VersionInfoSize); err != nil {
		return VersionInfo{}, err
	}
	return VersionInfo{b: b[:VersionInfoSize]}, nil
}

// Header returns a view of the embedded envelope.
func (v VersionInfo) Header() Header { return Header{b: v.b[:HeaderSize]} }

// Version returns the negotiated protocol version from the body, or
// UnsupportedVersionError with the raw value.
func (v VersionInfo) Version() (Version, error) {
	ver := Version(getU16(v.b, HeaderSize))
	if ver != Version1001 {
		return 0, UnsupportedVersionError(ver)
	}
	return ver, nil
}

// Bytes returns the underlying message bytes.
func (v VersionInfo) Bytes() []byte { return v.b }

// VersionInfoMut is the mutable form of VersionInfo.
type VersionInfoMut struct {
	VersionInfo
}

// ViewVersionInfoMut returns a mutable view over the first 22 bytes of b.
func ViewVersionInfoMut(b []byte) (VersionInfoMut, error) {
	v, err := ViewVersionInfo(b)
	if err != nil {
		return VersionInfoMut{}, err
	}
	return VersionInfoMut{v}, nil
}

// HeaderMut returns a mutable view of the embedded envelope.
func (v VersionInfoMut) HeaderMut() HeaderMut {
	return HeaderMut{Header{b: v.b[:HeaderSize]}}
}

// SetVersion stores the negotiated version in the body.
func (v VersionInfoMut) SetVersion(ver Version) { putU16(v.b, HeaderSize, uint16(ver)) }

// UpdateCRC32 recomputes and stores the message checksum.
func (v VersionInfoMut) UpdateCRC32(h hash.Hash32) { UpdateChecksum(h, v.b) }

// Initialize populates the message and writes its checksum last.
func (v VersionInfoMut) Initialize(senderID uint32, ver Version, h hash.Hash32) {
	v.HeaderMut().fill(MagicServer, Version1001, VersionInfoSize-packetLengthBase, 0, senderID, MessageTypeVersion)
	v.SetVersion(ver)
	v.UpdateCRC32(h)
}

// OwnedVersionInfo holds a VersionInfo message by value.
type OwnedVersionInfo struct {
	buf [VersionInfoSize]byte
}

// NewVersionInfo builds a ready-to-send handshake reply.
func NewVersionInfo(senderID uint32, ver Version, h hash.Hash32) *OwnedVersionInfo {
	var o OwnedVersionInfo
	o.Mut().Initialize(senderID, ver, h)
	return &o
}

func (o *OwnedVersionInfo) View() VersionInfo { return VersionInfo{b: o.buf[:]} }
func (o *OwnedVersionInfo) Mut() VersionInfoMut {
	return VersionInfoMut{VersionInfo{b: o.buf[:]}}
}
func (o *OwnedVersionInfo) Bytes() []byte { return o.buf[:] }
