package types

import "errors"

var (
	ErrUnknownNetwork      = errors.New("sndprobe: unknown network")
	ErrMissingAddr         = errors.New("sndprobe: missing address")
	ErrUnexpectedNil       = errors.New("sndprobe: unexpected nil")
	ErrClosed              = errors.New("sndprobe: socket closed")
	ErrWouldBlock          = errors.New("sndprobe: send buffer full, operation would block")
	ErrNonblockUnsupported = errors.New("sndprobe: non-blocking sendto not supported on this platform")
	ErrInvalidPacketSize   = errors.New("sndprobe: packet size must hold the 4-byte sequence number")
	ErrInvalidPacketCount  = errors.New("sndprobe: packet count out of range")
)
