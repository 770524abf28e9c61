package config

import (
	"os"
	"path/filepath"
)

const lockFileName = "state.lock"

// FileLock serializes state-file access across processes, so a running
// inspector and a CLI invocation cannot interleave writes. It locks a
// sibling lock file rather than the data file itself, which keeps the data
// file freely replaceable while a reader holds the lock.
type FileLock struct {
	path string
	file *os.File
}

// NewFileLock creates a lock guarding the given path. The lock file lives
// next to it.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		path: filepath.Join(filepath.Dir(path), lockFileName),
	}
}
