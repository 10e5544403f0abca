package transport

import (
	"sync"
	"time"

	"github.com/basestationlabs/rframe/arena"
	"github.com/basestationlabs/rframe/parser"
	"github.com/basestationlabs/rframe/registry"
	"github.com/basestationlabs/rframe/serializer"
)

// Link binds a Driver to the frame codec: outgoing packets are
// serialized and handed to the driver's Tx, incoming bytes from Rx are
// pushed through a Parser into an Arena.
type Link struct {
	driver Driver
	reg    *registry.Registry
	ser    *serializer.Serializer
	parser *parser.Parser
	arena  *arena.Arena

	mu        sync.Mutex
	txScratch []byte

	polling bool
	stop    chan struct{}
}

// NewLink wires a Driver to a freshly built codec stack. ringCapacity
// sizes the Parser's internal ring buffer.
func NewLink(d Driver, reg *registry.Registry, ringCapacity int) *Link {
	a := arena.New(reg)
	return &Link{
		driver:    d,
		reg:       reg,
		ser:       serializer.New(reg),
		parser:    parser.New(ringCapacity, reg, a),
		arena:     a,
		txScratch: make([]byte, serializer.New(reg).MaxFrameSize()*4),
	}
}

// Arena exposes the dispatch target so callers can read out packets
// the Parser has decoded.
func (l *Link) Arena() *arena.Arena { return l.arena }

// Initialise starts the driver's clock and configures its addressing.
func (l *Link) Initialise(address uint32, prefix byte, channel uint8) error {
	l.driver.StartHFCLK()
	return l.driver.Configure(address, prefix, channel)
}

// Send serializes packets into one or more frames and transmits them.
func (l *Link) Send(packets ...registry.Payload) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	need := 0
	for _, p := range packets {
		if n, ok := l.ser.FrameSizeByCmd(p.Cmd()); ok {
			need += n
		}
	}
	if need > len(l.txScratch) {
		l.txScratch = make([]byte, need)
	}

	n, err := l.ser.Serialize(l.txScratch, packets...)
	if err != nil {
		return err
	}
	return l.driver.Tx(l.txScratch[:n])
}

// PollOnce reads one chunk from the driver and runs it through the
// parser, dispatching any complete packets into the Arena.
func (l *Link) PollOnce(timeout time.Duration) error {
	data, err := l.driver.Rx(timeout)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := l.parser.Push(data); err != nil {
		l.parser.ClearBuffer()
		return err
	}
	l.parser.TryParsePackets()
	return nil
}

// Listen polls the driver in a background goroutine until Stop is
// called. pollTimeout bounds each individual Rx call.
func (l *Link) Listen(pollTimeout time.Duration) {
	l.mu.Lock()
	if l.polling {
		l.mu.Unlock()
		return
	}
	l.polling = true
	l.stop = make(chan struct{})
	stop := l.stop
	l.mu.Unlock()

	go func() {
		for {
			select {
			case <-stop:
				return
			default:
			}
			_ = l.PollOnce(pollTimeout)
		}
	}()
}

// Stop halts a goroutine started by Listen.
func (l *Link) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.polling {
		return
	}
	l.polling = false
	close(l.stop)
}
