//go:build !windows

package statefile

import (
	"fmt"
	"os"
	"syscall"
)

// lock acquires an exclusive flock on path + ".lock".
// Blocks until the lock is acquired.
func lock(path string) (*lockHandle, error) {
	f, err := os.OpenFile(path+".lock", os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}

	return &lockHandle{file: f}, nil
}

// Unlock releases the lock.
func (h *lockHandle) Unlock() error {
	if h == nil || h.file == nil {
		return nil
	}
	defer func() { h.file = nil }()

	if err := syscall.Flock(int(h.file.Fd()), syscall.LOCK_UN); err != nil {
		_ = h.file.Close()
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if err := h.file.Close(); err != nil {
		return fmt.Errorf("failed to close lock file: %w", err)
	}
	return nil
}
