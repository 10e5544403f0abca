// Package transport adapts the frame codec onto a physical duplex
// link: a Driver moves raw bytes in and out, and Link pushes received
// bytes through a Parser and serializes outgoing packets through a
// Serializer.
package transport

import (
	"errors"
	"time"
)

// ErrTimeout is returned by Driver.Rx when no data arrives before the
// requested timeout elapses.
var ErrTimeout = errors.New("transport: receive timed out")

// ErrInvalidChannel is returned by Configure/SetChannel when the
// requested channel is outside the radio's usable range.
var ErrInvalidChannel = errors.New("transport: invalid channel")

// Driver is the interface a physical or simulated link implements.
// Configure/SetChannel let a radio or serial backend pick its
// addressing and channel before traffic starts; Tx/Rx move raw bytes.
type Driver interface {
	StartHFCLK()
	Configure(address uint32, prefix byte, channel uint8) error
	SetChannel(channel uint8) error
	Tx(data []byte) error
	Rx(timeout time.Duration) ([]byte, error)
}
