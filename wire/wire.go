// Package wire defines the on-the-wire frame layout shared by the
// parser and serializer: the start-of-frame marker, fixed header and
// tail sizes, and the little-endian field encoding used throughout.
package wire

import "github.com/basestationlabs/rframe/crc"

// SOF is the single byte that marks the start of every frame.
const SOF byte = 0xA5

// HeaderSize is the number of bytes in a frame header: SOF (1) +
// command ID (2) + data length (2) + sequence (1) + header CRC8 (1).
// The packet payload begins immediately after the header, at offset
// HeaderSize.
const HeaderSize = 7

// TailSize is the number of bytes in the frame tail: the whole-frame
// CRC16.
const TailSize = 2

// Header is the decoded form of a frame's fixed-size header.
type Header struct {
	CmdID      uint16
	DataLength uint16
	Sequence   uint8
	HeaderCRC  uint8
}

// PutUint16LE writes v into b[0:2] in little-endian order.
func PutUint16LE(b []byte, v uint16) {
	_ = b[1]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

// Uint16LE reads a little-endian uint16 from b[0:2].
func Uint16LE(b []byte) uint16 {
	_ = b[1]
	return uint16(b[0]) | uint16(b[1])<<8
}

// EncodeHeader writes a complete header into b, which must be at least
// HeaderSize bytes: SOF, command ID, data length, sequence, and header
// CRC8 (computed over the preceding six bytes).
func EncodeHeader(b []byte, cmdID uint16, dataLength uint16, sequence uint8) {
	_ = b[HeaderSize-1]
	b[0] = SOF
	PutUint16LE(b[1:3], cmdID)
	PutUint16LE(b[3:5], dataLength)
	b[5] = sequence
	b[6] = crc.CRC8(b[0:6])
}

// DecodeHeader parses a HeaderSize-byte slice (starting at SOF) into a
// Header. It does not validate the CRC; that is the caller's job, via
// VerifyHeaderCRC.
func DecodeHeader(b []byte) Header {
	_ = b[HeaderSize-1]
	return Header{
		CmdID:      Uint16LE(b[1:3]),
		DataLength: Uint16LE(b[3:5]),
		Sequence:   b[5],
		HeaderCRC:  b[6],
	}
}

// VerifyHeaderCRC reports whether the CRC8 over b[0:6] matches the
// stored header CRC at b[6]. b must be at least HeaderSize bytes.
func VerifyHeaderCRC(b []byte) bool {
	_ = b[HeaderSize-1]
	return crc.CRC8(b[0:6]) == b[6]
}
