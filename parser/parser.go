// Package parser implements the streaming frame reader: bytes pushed
// in from any source accumulate in a ring buffer, and TryParsePackets
// scans it for complete, checksum-valid frames, dispatching each
// successfully parsed payload straight into arena storage.
package parser

import (
	"errors"

	"github.com/basestationlabs/rframe/arena"
	"github.com/basestationlabs/rframe/crc"
	"github.com/basestationlabs/rframe/registry"
	"github.com/basestationlabs/rframe/ringbuf"
	"github.com/basestationlabs/rframe/wire"
	"github.com/rs/zerolog"
)

// ErrBufferOverflow is the only error the parser returns, from Push and
// AdvanceWrite: it signals the ring buffer cannot absorb more bytes
// until drained by parsing. Framing and checksum problems are never
// returned as errors; they are reported through Metrics as Results.
var (
	ErrBufferOverflow = errors.New("parser: ring buffer has no space for incoming data")
)

// Result classifies the outcome of one parse step inside
// TryParsePackets, for metrics and logging.
type Result int

const (
	ResultIncomplete Result = iota
	ResultSuccess
	ResultCRCMismatch
	ResultInvalidCommand
	ResultNoFrameHeader
	ResultJunkDiscarded
)

// Metrics receives one ObserveParse call for every frame accepted or
// rejected and for every run of junk discarded; waiting on an
// incomplete frame is not reported. ObserveDispatch follows each
// successful parse. Implementations must be safe for use from the
// single goroutine that drives the parser; the parser never calls
// Metrics concurrently with itself.
type Metrics interface {
	ObserveParse(result Result)
	ObserveBufferOverflow()
	ObserveDispatch(cmd uint16)
}

// NoopMetrics discards every observation. It is the default when no
// Metrics implementation is supplied.
type NoopMetrics struct{}

func (NoopMetrics) ObserveParse(Result)   {}
func (NoopMetrics) ObserveBufferOverflow() {}
func (NoopMetrics) ObserveDispatch(uint16) {}

// scratchMax is the size of the parser's reusable scratch buffer, used
// to copy a payload out of the ring and to checksum a frame that
// straddles the ring's physical wrap. A frame larger than this is
// still handled, through a one-off allocation.
const scratchMax = 4096

// Parser accumulates bytes in a ring buffer and extracts complete,
// checksum-valid frames into an Arena, dispatching against a frozen
// Registry. A Parser is owned by a single goroutine; it is not safe
// for concurrent use.
type Parser struct {
	ring    *ringbuf.Ring
	reg     *registry.Registry
	arena   *arena.Arena
	metrics Metrics
	log     zerolog.Logger
	scratch []byte
}

// Option configures optional Parser behavior.
type Option func(*Parser)

// WithMetrics attaches a Metrics recorder. Without this option the
// parser uses NoopMetrics.
func WithMetrics(m Metrics) Option {
	return func(p *Parser) { p.metrics = m }
}

// WithLogger attaches a zerolog.Logger used to trace in-band resync
// activity at Debug level. Without this option logging is a no-op
// logger, so it costs nothing when disabled.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Parser) { p.log = log }
}

// New builds a Parser over a ring buffer of the given capacity (which
// must be a power of two), dispatching into arena against reg.
func New(ringCapacity int, reg *registry.Registry, a *arena.Arena, opts ...Option) *Parser {
	p := &Parser{
		ring:    ringbuf.New(ringCapacity),
		reg:     reg,
		arena:   a,
		metrics: NoopMetrics{},
		log:     zerolog.Nop(),
		scratch: make([]byte, scratchMax),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Push copies data into the ring buffer. It returns ErrBufferOverflow
// if the ring cannot hold all of data; callers should call
// TryParsePackets to drain the buffer and retry.
func (p *Parser) Push(data []byte) error {
	if !p.ring.Write(data) {
		p.metrics.ObserveBufferOverflow()
		return ErrBufferOverflow
	}
	return nil
}

// WritableView exposes the ring's contiguous writable region directly,
// for zero-copy ingestion (e.g. a single read(2) call into it). Pair
// with AdvanceWrite once the caller knows how many bytes it wrote.
func (p *Parser) WritableView() []byte {
	return p.ring.WritableView()
}

// AdvanceWrite commits length bytes previously written directly into
// the slice returned by WritableView.
func (p *Parser) AdvanceWrite(length int) error {
	if !p.ring.AdvanceWrite(length) {
		p.metrics.ObserveBufferOverflow()
		return ErrBufferOverflow
	}
	return nil
}

// AvailableData reports how many bytes are buffered and awaiting
// parsing.
func (p *Parser) AvailableData() int { return p.ring.Available() }

// AvailableSpace reports how many bytes of room remain in the ring.
func (p *Parser) AvailableSpace() int { return p.ring.Space() }

// IsBufferFull reports whether the ring has no writable space left.
func (p *Parser) IsBufferFull() bool { return p.ring.Full() }

// ClearBuffer discards all buffered bytes, parsed or not. Intended for
// recovering from an unrecoverable desync.
func (p *Parser) ClearBuffer() { p.ring.Clear() }

// TryParsePackets scans the ring buffer for as many complete frames as
// it currently holds, dispatching each into the Arena. It returns once
// the remaining buffered bytes cannot possibly form a complete frame
// (ResultIncomplete) — it never blocks waiting for more data.
func (p *Parser) TryParsePackets() {
	for {
		switch p.parseOne() {
		case ResultSuccess, ResultJunkDiscarded, ResultCRCMismatch, ResultInvalidCommand, ResultNoFrameHeader:
			continue
		case ResultIncomplete:
			return
		}
	}
}

// parseOne attempts to locate and consume exactly one frame, or to
// make forward progress discarding junk, and reports what happened.
func (p *Parser) parseOne() Result {
	sofOffset := p.ring.FindByte(wire.SOF)
	if sofOffset < 0 {
		// No SOF anywhere in the buffer: none of it can ever become
		// a frame, so it's all junk. Drop it.
		if n := p.ring.Available(); n > 0 {
			p.ring.Discard(n)
			p.metrics.ObserveParse(ResultNoFrameHeader)
			p.log.Debug().Int("discarded", n).Msg("no frame start byte found, discarding buffered junk")
		}
		return ResultIncomplete
	}
	if sofOffset > 0 {
		p.ring.Discard(sofOffset)
		p.metrics.ObserveParse(ResultJunkDiscarded)
		p.log.Debug().Int("discarded", sofOffset).Msg("discarding junk before frame start byte")
	}

	if p.ring.Available() < wire.HeaderSize {
		return ResultIncomplete
	}

	header := make([]byte, wire.HeaderSize)
	p.ring.Peek(header, 0, wire.HeaderSize)
	if !wire.VerifyHeaderCRC(header) {
		p.ring.Discard(1)
		p.metrics.ObserveParse(ResultCRCMismatch)
		p.log.Debug().Msg("header CRC8 mismatch, resyncing by one byte")
		return ResultCRCMismatch
	}
	h := wire.DecodeHeader(header)
	cmd := h.CmdID

	total := wire.HeaderSize + int(h.DataLength) + wire.TailSize
	if p.ring.Available() < total {
		return ResultIncomplete
	}

	if !p.reg.IsRegistered(cmd) {
		p.ring.Discard(1)
		p.metrics.ObserveParse(ResultInvalidCommand)
		p.log.Debug().Uint16("cmd", cmd).Msg("unregistered command, resyncing by one byte")
		return ResultInvalidCommand
	}
	if size, _ := p.reg.Size(cmd); size != int(h.DataLength) {
		p.ring.Discard(1)
		p.metrics.ObserveParse(ResultInvalidCommand)
		p.log.Debug().Uint16("cmd", cmd).Msg("declared length does not match registered payload size, resyncing by one byte")
		return ResultInvalidCommand
	}

	crcBodyLen := wire.HeaderSize + int(h.DataLength)
	computed := p.checksumView(crcBodyLen)

	tailBuf := make([]byte, wire.TailSize)
	p.ring.Peek(tailBuf, crcBodyLen, wire.TailSize)
	stored := wire.Uint16LE(tailBuf)

	if computed != stored {
		p.ring.Discard(1)
		p.metrics.ObserveParse(ResultCRCMismatch)
		p.log.Debug().Uint16("cmd", cmd).Msg("frame CRC16 mismatch, resyncing by one byte")
		return ResultCRCMismatch
	}

	payload := p.scratch
	if int(h.DataLength) > len(payload) {
		payload = make([]byte, h.DataLength)
	}
	payload = payload[:h.DataLength]
	p.ring.Peek(payload, wire.HeaderSize, int(h.DataLength))
	if err := p.arena.WriteRaw(cmd, payload); err != nil {
		p.ring.Discard(1)
		p.metrics.ObserveParse(ResultInvalidCommand)
		return ResultInvalidCommand
	}

	p.ring.Discard(total)
	p.metrics.ObserveParse(ResultSuccess)
	p.metrics.ObserveDispatch(cmd)
	return ResultSuccess
}

// checksumView computes the CRC16 over the first n buffered bytes,
// taking the fast contiguous path when possible and falling back to a
// seeded two-part computation across the ring's physical wrap.
func (p *Parser) checksumView(n int) uint16 {
	view := p.ring.ReadableView()
	if len(view) >= n {
		return crc.CRC16(view[:n])
	}

	// The frame straddles the physical end of the backing array:
	// checksum the contiguous prefix directly out of the ring, then
	// continue the same running CRC across a scratch copy of the
	// wrapped tail.
	seed := crc.CRC16Seed(crc.CRC16Init, view)
	remaining := n - len(view)
	tail := p.scratch
	if remaining > len(tail) {
		tail = make([]byte, remaining)
	}
	tail = tail[:remaining]
	p.ring.Peek(tail, len(view), remaining)
	return crc.CRC16Seed(seed, tail)
}
