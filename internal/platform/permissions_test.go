package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func assertMode(t *testing.T, path string, want os.FileMode) {
	t.Helper()
	if runtime.GOOS == "windows" {
		return
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != want {
		t.Errorf("%s permissions = %o, want %o", filepath.Base(path), perm, want)
	}
}

func TestSecureFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("automation:\n  api_key: k\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := SecureFile(path); err != nil {
		t.Fatalf("SecureFile failed: %v", err)
	}
	assertMode(t, path, PrivateFileMode)
}

func TestSecureDir(t *testing.T) {
	tests := []struct {
		name   string
		exists bool
	}{
		{"creates missing dir", false},
		{"tightens existing dir", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "home", ".ytplugin")
			if tt.exists {
				if err := os.MkdirAll(dir, 0755); err != nil {
					t.Fatal(err)
				}
			}

			if err := SecureDir(dir); err != nil {
				t.Fatalf("SecureDir failed: %v", err)
			}
			assertMode(t, dir, PrivateDirMode)
		})
	}
}

func TestSecureFile_Missing(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("chmod is a no-op on windows")
	}
	if err := SecureFile(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for a missing file")
	}
}
