// Package packets implements the registered RoboMaster referee-system
// payload types: one Go type per wire command, each satisfying
// registry.Payload via explicit little-endian marshal/unmarshal rather
// than unsafe struct reinterpretation, since Go has no equivalent of a
// C __attribute__((packed)) bitfield layout. Packed sub-byte fields
// are kept as a single raw byte (or word) plus named accessor methods.
package packets
