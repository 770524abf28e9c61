//go:build !windows

package config

import (
	"fmt"
	"os"
	"syscall"
)

// Lock acquires an exclusive lock, blocking until it is available.
func (l *FileLock) Lock() error {
	return l.flock(syscall.LOCK_EX, os.O_RDWR)
}

// RLock acquires a shared lock. Concurrent readers can hold it together;
// it blocks only while a writer holds the exclusive lock.
func (l *FileLock) RLock() error {
	return l.flock(syscall.LOCK_SH, os.O_RDONLY)
}

func (l *FileLock) flock(how int, mode int) error {
	if l.file != nil {
		return fmt.Errorf("lock already held")
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|mode, 0644)
	if err != nil {
		return fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := syscall.Flock(int(f.Fd()), how); err != nil {
		f.Close()
		return fmt.Errorf("failed to lock %s: %w", l.path, err)
	}

	l.file = f
	return nil
}

// Unlock releases the lock and closes the lock file. A no-op when no lock
// is held.
func (l *FileLock) Unlock() error {
	if l.file == nil {
		return nil
	}

	if err := syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN); err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("failed to close lock file: %w", err)
	}

	l.file = nil
	return nil
}
