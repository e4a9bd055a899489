package platform

import (
	"os"
	"runtime"
)

// Owner-only modes for files that may hold credentials.
const (
	PrivateFileMode os.FileMode = 0600
	PrivateDirMode  os.FileMode = 0700
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// SecureFile restricts path to its owner.
func SecureFile(path string) error { return Chmod(path, PrivateFileMode) }

// SecureDir creates dir if needed and restricts it to its owner. Unlike
// os.MkdirAll alone, it also tightens a directory that already exists.
func SecureDir(dir string) error {
	if err := os.MkdirAll(dir, PrivateDirMode); err != nil {
		return err
	}
	return Chmod(dir, PrivateDirMode)
}
