package rframe

import "github.com/basestationlabs/rframe/parser"

// ErrBufferOverflow is returned by Parser.Push/AdvanceWrite when the
// ring buffer has no room left for incoming bytes; the caller must
// drain it with TryParsePackets before pushing more data.
var ErrBufferOverflow = parser.ErrBufferOverflow
