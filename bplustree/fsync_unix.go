//go:build linux && !windows
// +build linux,!windows

package bplus

import (
	"os"

	"golang.org/x/sys/unix"
)

// fsyncFile flushes f's contents to stable storage before Serialize returns,
// so a snapshot a caller believes is durable actually is (spec §4.7).
func fsyncFile(f *os.File) error {
	for {
		err := unix.Fsync(int(f.Fd()))
		if err != unix.EINTR {
			if err != nil {
				return os.NewSyscallError("fsync", err)
			}
			return nil
		}
	}
}
