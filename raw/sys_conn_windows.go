//go:build windows

package raw

import (
	"errors"
	"net"
	"os"
	"syscall"

	"golang.org/x/sys/windows"

	"github.com/hadi77ir/go-sndprobe/types"
)

// WSAEWOULDBLOCK
const errnoWouldBlock = syscall.Errno(10035)

func InspectWriteBuffer(c syscall.RawConn) (int, error) {
	var size int
	var serr error
	if err := c.Control(func(fd uintptr) {
		size, serr = windows.GetsockoptInt(windows.Handle(fd), windows.SOL_SOCKET, windows.SO_SNDBUF)
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
		serr = windows.SetsockoptInt(windows.Handle(fd), windows.SOL_SOCKET, windows.SO_SNDBUF, bytes)
	}); err != nil {
		return err
	}
	if serr != nil {
		return os.NewSyscallError("setsockopt", serr)
	}
	return nil
}

// Sockets owned by the Go runtime on Windows use overlapped I/O, so a send
// never reports WSAEWOULDBLOCK back to the caller.
func setNonblock(syscall.RawConn) error {
	return types.ErrNonblockUnsupported
}

func socketIsIPv6(syscall.RawConn) (bool, error) {
	return false, types.ErrNonblockUnsupported
}

func sendTo(syscall.RawConn, []byte, *net.UDPAddr, bool) (int, error) {
	return 0, types.ErrNonblockUnsupported
}

func isWouldBlockErrno(err error) bool {
	return errors.Is(err, errnoWouldBlock)
}

func IsSendMsgSizeErr(err error) bool {
	return errors.Is(err, windows.WSAEMSGSIZE)
}
