package types

import (
	"io"
	"net"
)

// RawConn is a bound, non-blocking datagram socket whose send buffer can be
// inspected and resized.
type RawConn interface {
	// SendTo performs exactly one sendto(2). A full send buffer is reported as
	// an error wrapping ErrWouldBlock instead of waiting for the socket to
	// become writable.
	SendTo(b []byte, addr net.Addr) (int, error)
	// SendBufferSize returns SO_SNDBUF as reported by the kernel.
	SendBufferSize() (int, error)
	// SetSendBufferSize requests a new SO_SNDBUF. The kernel may adjust it.
	SetSendBufferSize(bytes int) error
	// ForceSendBufferSize is like SetSendBufferSize but bypasses the system
	// maximum where the platform allows it.
	ForceSendBufferSize(bytes int) error
	LocalAddr() net.Addr
	io.Closer
}
