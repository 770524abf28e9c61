//go:build windows

package config

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// Lock acquires an exclusive lock, blocking until it is available.
func (l *FileLock) Lock() error {
	return l.lockFile(windows.LOCKFILE_EXCLUSIVE_LOCK, os.O_RDWR)
}

// RLock acquires a shared lock. Concurrent readers can hold it together;
// it blocks only while a writer holds the exclusive lock.
func (l *FileLock) RLock() error {
	// LockFileEx without LOCKFILE_EXCLUSIVE_LOCK takes a shared lock.
	return l.lockFile(0, os.O_RDONLY)
}

func (l *FileLock) lockFile(flags uint32, mode int) error {
	if l.file != nil {
		return fmt.Errorf("lock already held")
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|mode, 0644)
	if err != nil {
		return fmt.Errorf("failed to open lock file: %w", err)
	}

	// Lock one byte at offset zero; the lock file carries no data, so the
	// range is only an identity.
	ol := new(windows.Overlapped)
	if err := windows.LockFileEx(windows.Handle(f.Fd()), flags, 0, 1, 0, ol); err != nil {
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

	ol := new(windows.Overlapped)
	if err := windows.UnlockFileEx(windows.Handle(l.file.Fd()), 0, 1, 0, ol); err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("failed to close lock file: %w", err)
	}

	l.file = nil
	return nil
}
