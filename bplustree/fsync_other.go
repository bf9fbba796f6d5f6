//go:build !linux || windows
// +build !linux windows

package bplus

import "os"

// fsyncFile flushes f's contents to stable storage before Serialize returns.
// On every platform other than Linux this uses os.File's own Sync.
func fsyncFile(f *os.File) error {
	return f.Sync()
}
