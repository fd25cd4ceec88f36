//go:build !darwin && !linux && !freebsd && !windows

package raw

import (
	"net"
	"syscall"

	"github.com/hadi77ir/go-sndprobe/types"
)

func InspectWriteBuffer(syscall.RawConn) (int, error) {
	return 0, types.ErrNonblockUnsupported
}

func setSendBuffer(syscall.RawConn, int) error {
	return types.ErrNonblockUnsupported
}

func setNonblock(syscall.RawConn) error {
	return types.ErrNonblockUnsupported
}

func socketIsIPv6(syscall.RawConn) (bool, error) {
	return false, types.ErrNonblockUnsupported
}

func sendTo(syscall.RawConn, []byte, *net.UDPAddr, bool) (int, error) {
	return 0, types.ErrNonblockUnsupported
}

func isWouldBlockErrno(error) bool { return false }

func IsSendMsgSizeErr(error) bool {
	// to be implemented for more specific platforms
	return false
}
