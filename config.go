package sndprobe

import (
	"fmt"
	"math"
	"net"
	"time"

	"github.com/hadi77ir/go-sndprobe/types"
)

const (
	DefaultNetwork             = "udp"
	DefaultLocalAddr           = "10.0.0.2:1234"
	DefaultRemoteAddr          = "10.0.0.8:1235"
	DefaultPacketSize          = 1316
	DefaultRequestedSendBuffer = 20000
	DefaultPacketCount         = 199
)

// seqLen is the size of the big-endian sequence number at the start of every datagram.
const seqLen = 4

// Config stores the parameters of a single probe run.
type Config struct {
	// Network is one of "udp", "udp4" or "udp6".
	Network string `yaml:"network"`

	// LocalAddr is the host:port the socket is bound to.
	LocalAddr string `yaml:"localAddr"`

	// RemoteAddr is the host:port every datagram is sent to.
	RemoteAddr string `yaml:"remoteAddr"`

	// PacketSize is the length of every datagram, including the
	// sequence number.
	PacketSize int `yaml:"packetSize"`

	// RequestedSendBuffer is the SO_SNDBUF value asked of the kernel
	// before sending. The kernel may double or clamp it.
	RequestedSendBuffer int `yaml:"requestedSendBuffer"`

	// PacketCount is the number of send attempts. Sequence numbers
	// run from 1 to PacketCount inclusive.
	PacketCount int `yaml:"packetCount"`

	// ForceSendBuffer uses SO_SNDBUFFORCE where available, bypassing
	// the system maximum. Requires CAP_NET_ADMIN on Linux.
	ForceSendBuffer bool `yaml:"forceSendBuffer"`

	// DontFragment sets the DF bit on outgoing datagrams.
	DontFragment bool `yaml:"dontFragment"`

	// Timeout bounds the send loop. When non-zero, Run replaces any
	// deadline set with Probe.SetDeadline. Zero means no limit, which is
	// how the reference experiment in DefaultConfig runs.
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultConfig returns the reference experiment:
// 199 datagrams of 1316 bytes after requesting a 20000-byte send buffer.
func DefaultConfig() Config {
	return Config{
		Network:             DefaultNetwork,
		LocalAddr:           DefaultLocalAddr,
		RemoteAddr:          DefaultRemoteAddr,
		PacketSize:          DefaultPacketSize,
		RequestedSendBuffer: DefaultRequestedSendBuffer,
		PacketCount:         DefaultPacketCount,
	}
}

// Validate rejects unknown networks, empty addresses, packets too small to
// carry the sequence number and packet counts outside 1..math.MaxUint32.
// Negative buffer sizes and timeouts are rejected as well.
func (c *Config) Validate() error {
	switch c.network() {
	case "udp", "udp4", "udp6":
	default:
		return types.ErrUnknownNetwork
	}
	if c.LocalAddr == "" || c.RemoteAddr == "" {
		return types.ErrMissingAddr
	}
	if c.PacketSize < seqLen {
		return fmt.Errorf("%w: %d", types.ErrInvalidPacketSize, c.PacketSize)
	}
	if c.PacketCount < 1 || uint64(c.PacketCount) > math.MaxUint32 {
		return fmt.Errorf("%w: %d", types.ErrInvalidPacketCount, c.PacketCount)
	}
	if c.RequestedSendBuffer < 0 {
		return fmt.Errorf("sndprobe: negative send buffer size %d", c.RequestedSendBuffer)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("sndprobe: negative timeout %s", c.Timeout)
	}
	return nil
}

func (c *Config) network() string {
	if c.Network == "" {
		return DefaultNetwork
	}
	return c.Network
}

func (c *Config) resolveLocal() (*net.UDPAddr, error) {
	addr, err := net.ResolveUDPAddr(c.network(), c.LocalAddr)
	if err != nil {
		return nil, fmt.Errorf("resolve local address %q: %w", c.LocalAddr, err)
	}
	return addr, nil
}

func (c *Config) resolveRemote() (*net.UDPAddr, error) {
	addr, err := net.ResolveUDPAddr(c.network(), c.RemoteAddr)
	if err != nil {
		return nil, fmt.Errorf("resolve remote address %q: %w", c.RemoteAddr, err)
	}
	return addr, nil
}
