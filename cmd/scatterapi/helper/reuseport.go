//go:build !linux

package helper

import (
	"syscall"
)

// ReusePort is a no-op where SO_REUSEPORT is not available.
func ReusePort(network, address string, conn syscall.RawConn) error {
	return nil
}
