package packets

import "math"

func putUint32LE(b []byte, v uint32) {
	_ = b[3]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func uint32LE(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func putUint64LE(b []byte, v uint64) {
	_ = b[7]
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * uint(i)))
	}
}

func uint64LE(b []byte) uint64 {
	_ = b[7]
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * uint(i))
	}
	return v
}

func putInt16LE(b []byte, v int16) {
	_ = b[1]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func int16LE(b []byte) int16 {
	_ = b[1]
	return int16(uint16(b[0]) | uint16(b[1])<<8)
}

func putFloat32LE(b []byte, v float32) {
	putUint32LE(b, math.Float32bits(v))
}

func float32LE(b []byte) float32 {
	return math.Float32frombits(uint32LE(b))
}
