//go:build darwin || linux || freebsd

package raw

import (
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/hadi77ir/go-sndprobe/types"
)

func InspectWriteBuffer(c syscall.RawConn) (int, error) {
	var size int
	var serr error
	if err := c.Control(func(fd uintptr) {
		size, serr = unix.GetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_SNDBUF)
	}); err != nil {
		return 0, err
	}
	if serr != nil {
		return 0, os.NewSyscallError("getsockopt", serr)
	}
	return size, nil
}

func setSendBuffer(c syscall.RawConn, bytes int) error {
	var serr error
	if err := c.Control(func(fd uintptr) {
		serr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_SNDBUF, bytes)
	}); err != nil {
		return err
	}
	if serr != nil {
		return os.NewSyscallError("setsockopt", serr)
	}
	return nil
}

func setNonblock(c syscall.RawConn) error {
	var serr error
	if err := c.Control(func(fd uintptr) {
		serr = unix.SetNonblock(int(fd), true)
	}); err != nil {
		return err
	}
	if serr != nil {
		return os.NewSyscallError("fcntl", serr)
	}
	return nil
}

func socketIsIPv6(c syscall.RawConn) (bool, error) {
	var sa unix.Sockaddr
	var serr error
	if err := c.Control(func(fd uintptr) {
		sa, serr = unix.Getsockname(int(fd))
	}); err != nil {
		return false, err
	}
	if serr != nil {
		return false, os.NewSyscallError("getsockname", serr)
	}
	_, ok := sa.(*unix.SockaddrInet6)
	return ok, nil
}

func sendTo(c syscall.RawConn, b []byte, addr *net.UDPAddr, isIPv6 bool) (int, error) {
	sa, err := sockaddr(addr, isIPv6)
	if err != nil {
		return 0, err
	}
	var serr error
	if err := c.Write(func(fd uintptr) bool {
		for {
			serr = unix.Sendto(int(fd), b, 0, sa)
			if serr != unix.EINTR {
				break
			}
		}
		// Returning false would wait for POLLOUT, hiding the full buffer.
		return true
	}); err != nil {
		return 0, err
	}
	if serr != nil {
		return 0, sendError(serr)
	}
	return len(b), nil
}

// sendError wraps the errno of a failed sendto(2). EAGAIN additionally
// matches types.ErrWouldBlock.
func sendError(errno error) error {
	serr := os.NewSyscallError("sendto", errno)
	if errno == unix.EAGAIN || errno == unix.EWOULDBLOCK {
		return fmt.Errorf("%w: %w", types.ErrWouldBlock, serr)
	}
	return serr
}

func sockaddr(addr *net.UDPAddr, isIPv6 bool) (unix.Sockaddr, error) {
	if ip4 := addr.IP.To4(); ip4 != nil && !isIPv6 {
		sa := &unix.SockaddrInet4{Port: addr.Port}
		copy(sa.Addr[:], ip4)
		return sa, nil
	}
	ip16 := addr.IP.To16()
	if ip16 == nil {
		return nil, types.ErrMissingAddr
	}
	if !isIPv6 {
		return nil, fmt.Errorf("sndprobe: cannot send to %s from an IPv4 socket", addr)
	}
	sa := &unix.SockaddrInet6{Port: addr.Port}
	copy(sa.Addr[:], ip16)
	if addr.Zone != "" {
		if ifi, err := net.InterfaceByName(addr.Zone); err == nil {
			sa.ZoneId = uint32(ifi.Index)
		}
	}
	return sa, nil
}

func isWouldBlockErrno(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK)
}

func IsSendMsgSizeErr(err error) bool {
	return errors.Is(err, unix.EMSGSIZE)
}
