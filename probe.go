// Package sndprobe measures how a UDP socket with a deliberately small kernel
// send buffer behaves under a burst of non-blocking sends.
package sndprobe

//go:generate mockgen -package sndprobe -destination mock_raw_conn_test.go github.com/hadi77ir/go-sndprobe/types RawConn

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/hadi77ir/go-logging"
	"github.com/pion/transport/v3/deadline"

	"github.com/hadi77ir/go-sndprobe/log"
	"github.com/hadi77ir/go-sndprobe/raw"
	"github.com/hadi77ir/go-sndprobe/types"
)

// Report is the outcome of a send loop.
type Report struct {
	// Attempts is the number of sendto calls made.
	Attempts int
	// Sent counts attempts the kernel accepted.
	Sent int
	// WouldBlock counts attempts rejected because the send buffer was full.
	WouldBlock int
	// Err is the error that ended the loop early, or nil if every
	// sequence number was attempted.
	Err error
}

// Probe owns one socket for the duration of an experiment.
type Probe struct {
	conn  types.RawConn
	cfg   Config
	raddr *net.UDPAddr

	deadline *deadline.Deadline
	sink     EventSink
}

// Listen binds the socket described by cfg and prepares a probe around it.
func Listen(cfg Config) (*Probe, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	laddr, err := cfg.resolveLocal()
	if err != nil {
		return nil, err
	}
	raddr, err := cfg.resolveRemote()
	if err != nil {
		return nil, err
	}
	conn, err := raw.Listen(cfg.network(), laddr)
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", laddr, err)
	}
	if cfg.DontFragment {
		supported, err := conn.SetDontFragment()
		if err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("set don't fragment: %w", err)
		}
		if !supported {
			log.Log(logging.WarnLevel, "Don't fragment is not supported on this platform.")
		}
	}
	return newProbe(conn, raddr, cfg), nil
}

// Wrap prepares a probe around an already bound socket. The probe takes
// ownership of conn.
func Wrap(conn types.RawConn, cfg Config) (*Probe, error) {
	if conn == nil {
		return nil, types.ErrUnexpectedNil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	raddr, err := cfg.resolveRemote()
	if err != nil {
		return nil, err
	}
	return newProbe(conn, raddr, cfg), nil
}

func newProbe(conn types.RawConn, raddr *net.UDPAddr, cfg Config) *Probe {
	return &Probe{
		conn:     conn,
		cfg:      cfg,
		raddr:    raddr,
		deadline: deadline.New(),
		sink:     discardSink{},
	}
}

// SetSink sets the receiver of per-attempt events. A nil sink discards them.
func (p *Probe) SetSink(sink EventSink) {
	if sink == nil {
		sink = discardSink{}
	}
	p.sink = sink
}

// SetDeadline stops a running or future send loop once t has passed.
// A zero value for t means Run will not time out.
func (p *Probe) SetDeadline(t time.Time) {
	p.deadline.Set(t)
}

// LocalAddr returns the address the socket is bound to.
func (p *Probe) LocalAddr() net.Addr {
	return p.conn.LocalAddr()
}

// RemoteAddr returns the resolved destination of every datagram.
func (p *Probe) RemoteAddr() net.Addr {
	return p.raddr
}

// SendBufferSize returns the kernel's current SO_SNDBUF for the socket.
func (p *Probe) SendBufferSize() (int, error) {
	size, err := p.conn.SendBufferSize()
	if err != nil {
		return 0, fmt.Errorf("read send buffer size: %w", err)
	}
	return size, nil
}

// SetSendBufferSize requests bytes as the socket's send buffer and returns
// the size the kernel actually applied. Kernels commonly double or clamp the
// request, so the result is not expected to equal bytes.
func (p *Probe) SetSendBufferSize(bytes int) (int, error) {
	var err error
	if p.cfg.ForceSendBuffer {
		err = p.conn.ForceSendBufferSize(bytes)
	} else {
		err = p.conn.SetSendBufferSize(bytes)
	}
	if err != nil {
		return 0, fmt.Errorf("write send buffer size: %w", err)
	}
	size, err := p.SendBufferSize()
	if err != nil {
		return 0, err
	}
	log.Logf(logging.DebugLevel, "Requested a send buffer of %d bytes, kernel applied %d bytes.", bytes, size)
	return size, nil
}

// Run sends PacketCount datagrams without pacing. Sends rejected because the
// send buffer is full are counted and skipped. Any other send error ends the
// loop and is returned in Report.Err together with the counts so far.
func (p *Probe) Run() Report {
	if p.cfg.Timeout > 0 {
		p.deadline.Set(time.Now().Add(p.cfg.Timeout))
	}

	pkt := newPacket(p.cfg.PacketSize)
	defer pkt.release()

	var rep Report
	for i := 0; i < p.cfg.PacketCount; i++ {
		if err := p.checkDeadline(); err != nil {
			rep.Err = err
			break
		}
		seq := uint32(i + 1)
		pkt.setSeq(seq)

		rep.Attempts++
		n, err := p.conn.SendTo(pkt.bytes(), p.raddr)
		switch {
		case err == nil:
			rep.Sent++
			p.sink.Record(types.Event{Seq: seq, Outcome: types.OutcomeSent, Bytes: n})
		case raw.IsWouldBlock(err):
			rep.WouldBlock++
			p.sink.Record(types.Event{Seq: seq, Outcome: types.OutcomeWouldBlock, Err: err})
		default:
			rep.Err = fmt.Errorf("send seq %d: %w", seq, err)
			p.sink.Record(types.Event{Seq: seq, Outcome: types.OutcomeFailed, Err: err})
			log.Logf(logging.DebugLevel, "Send loop aborted after %d attempts: %s", rep.Attempts, err)
			return rep
		}
	}
	return rep
}

func (p *Probe) checkDeadline() error {
	select {
	case <-p.deadline.Done():
		return context.DeadlineExceeded
	default:
	}
	return nil
}

// Close releases the socket.
func (p *Probe) Close() error {
	return p.conn.Close()
}
