package raw

import (
	"errors"
	"net"
	"sync/atomic"
	"syscall"

	"github.com/hadi77ir/go-logging"

	"github.com/hadi77ir/go-sndprobe/log"
	"github.com/hadi77ir/go-sndprobe/types"
)

// SockConn is a bound UDP socket that is written with raw sendto(2) calls.
// A *net.UDPConn parks the writing goroutine on the poller when the kernel
// send buffer is full. SockConn returns the EAGAIN to the caller instead.
type SockConn struct {
	conn    *net.UDPConn
	rawConn syscall.RawConn
	isIPv6  bool

	closed atomic.Bool
}

var _ types.RawConn = &SockConn{}

// Listen binds a UDP socket to laddr and wraps it with WrapConn.
func Listen(network string, laddr *net.UDPAddr) (*SockConn, error) {
	switch network {
	case "udp", "udp4", "udp6":
	default:
		return nil, types.ErrUnknownNetwork
	}
	if laddr == nil {
		return nil, types.ErrMissingAddr
	}
	conn, err := net.ListenUDP(network, laddr)
	if err != nil {
		return nil, err
	}
	c, err := WrapConn(conn)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return c, nil
}

// WrapConn switches conn to non-blocking mode and takes ownership of it.
func WrapConn(conn *net.UDPConn) (*SockConn, error) {
	if conn == nil {
		return nil, types.ErrUnexpectedNil
	}
	rawConn, err := conn.SyscallConn()
	if err != nil {
		return nil, err
	}
	if err := setNonblock(rawConn); err != nil {
		return nil, err
	}
	isIPv6, err := socketIsIPv6(rawConn)
	if err != nil {
		return nil, err
	}
	family := "IPv4"
	if isIPv6 {
		family = "IPv6"
	}
	log.Logf(logging.DebugLevel, "Bound non-blocking %s socket to %s.", family, conn.LocalAddr())
	return &SockConn{conn: conn, rawConn: rawConn, isIPv6: isIPv6}, nil
}

// SendTo sends b as a single datagram to addr, which must be a *net.UDPAddr.
func (c *SockConn) SendTo(b []byte, addr net.Addr) (int, error) {
	if c.closed.Load() {
		return 0, types.ErrClosed
	}
	udpAddr, ok := addr.(*net.UDPAddr)
	if !ok || udpAddr == nil {
		return 0, types.ErrMissingAddr
	}
	return sendTo(c.rawConn, b, udpAddr, c.isIPv6)
}

func (c *SockConn) SendBufferSize() (int, error) {
	return InspectWriteBuffer(c.rawConn)
}

func (c *SockConn) SetSendBufferSize(bytes int) error {
	return setSendBuffer(c.rawConn, bytes)
}

// ForceSendBufferSize tries SO_SNDBUFFORCE first. Without the privileges
// for it, or on platforms that lack it, it falls back to SO_SNDBUF.
func (c *SockConn) ForceSendBufferSize(bytes int) error {
	if err := forceSetSendBuffer(c.rawConn, bytes); err != nil {
		log.Logf(logging.DebugLevel, "Forcing send buffer size failed (%s). Falling back to SO_SNDBUF.", err)
		return setSendBuffer(c.rawConn, bytes)
	}
	return nil
}

// SetDontFragment sets the DF bit on outgoing datagrams. It reports whether
// the platform supports it.
func (c *SockConn) SetDontFragment() (bool, error) {
	return setDF(c.rawConn)
}

func (c *SockConn) LocalAddr() net.Addr {
	return c.conn.LocalAddr()
}

func (c *SockConn) Close() error {
	if c.closed.Swap(true) {
		return types.ErrClosed
	}
	return c.conn.Close()
}

// IsWouldBlock reports whether err means the send buffer had no room for the datagram.
func IsWouldBlock(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, types.ErrWouldBlock) || isWouldBlockErrno(err)
}
