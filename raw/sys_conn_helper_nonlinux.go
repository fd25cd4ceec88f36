//go:build !linux

package raw

import (
	"errors"
	"syscall"
)

func forceSetSendBuffer(syscall.RawConn, int) error {
	return errors.ErrUnsupported
}
