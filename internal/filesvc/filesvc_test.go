package filesvc

import (
	"path/filepath"
	"testing"
)

func TestOSServiceResolvesRelativePaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	svc := NewOS(dir)

	if err := svc.WriteFile("nested/out.txt", []byte("payload")); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := svc.ReadFile("nested/out.txt")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("unexpected contents %q", data)
	}

	// absolute paths bypass the base dir
	abs := filepath.Join(dir, "nested", "out.txt")
	if _, err := svc.ReadFile(abs); err != nil {
		t.Fatalf("absolute read: %v", err)
	}
}

func TestOSServiceDeleteMissingIsQuiet(t *testing.T) {
	t.Parallel()

	svc := NewOS(t.TempDir())
	if err := svc.DeleteFile("gone.txt"); err != nil {
		t.Fatalf("deleting a missing file must be a no-op, got %v", err)
	}
}

func TestMemService(t *testing.T) {
	t.Parallel()

	mem := NewMem()
	mem.Put("a.txt", "alpha")

	data, err := mem.ReadFile("a.txt")
	if err != nil || string(data) != "alpha" {
		t.Fatalf("read: %q %v", data, err)
	}

	if _, err := mem.ReadFile("missing.txt"); !IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}

	if err := mem.DeleteFile("a.txt"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := mem.Contents("a.txt"); ok {
		t.Fatalf("file must be gone after delete")
	}
}
