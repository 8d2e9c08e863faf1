package filex

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureSubDir(t *testing.T) {
	tmp := t.TempDir()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(orig) })

	dir, err := EnsureSubDir("exports")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected directory at %s", dir)
	}

	// Second call on an existing directory must succeed.
	if _, err := EnsureSubDir("exports"); err != nil {
		t.Fatalf("second call: %v", err)
	}
}

func TestWriteFileUnique(t *testing.T) {
	dir := t.TempDir()

	p1, err := WriteFileUnique(dir, "Laporan.xlsx", []byte("a"))
	if err != nil {
		t.Fatalf("first write: %v", err)
	}
	if filepath.Base(p1) != "Laporan.xlsx" {
		t.Fatalf("unexpected name: %s", p1)
	}

	p2, err := WriteFileUnique(dir, "Laporan.xlsx", []byte("b"))
	if err != nil {
		t.Fatalf("second write: %v", err)
	}
	if filepath.Base(p2) != "Laporan (1).xlsx" {
		t.Fatalf("expected suffixed name, got %s", p2)
	}

	got, err := os.ReadFile(p1)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "a" {
		t.Fatalf("first file overwritten: %q", got)
	}
}
