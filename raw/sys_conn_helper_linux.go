//go:build linux

package raw

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// forceSetSendBuffer needs CAP_NET_ADMIN. It ignores net.core.wmem_max.
func forceSetSendBuffer(c syscall.RawConn, bytes int) error {
	var serr error
	if err := c.Control(func(fd uintptr) {
		serr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_SNDBUFFORCE, bytes)
	}); err != nil {
		return err
	}
	if serr != nil {
		return os.NewSyscallError("setsockopt", serr)
	}
	return nil
}
