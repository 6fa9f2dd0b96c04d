package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveDest(t *testing.T) {
	t.Run("absolute path passes through cleaned", func(t *testing.T) {
		got, err := ResolveDest("/tmp/proj/../proj")
		if err != nil {
			t.Fatalf("ResolveDest failed: %v", err)
		}
		if got != filepath.Clean("/tmp/proj") {
			t.Errorf("got %s, want /tmp/proj", got)
		}
	})

	t.Run("relative path resolves against cwd", func(t *testing.T) {
		got, err := ResolveDest("proj")
		if err != nil {
			t.Fatalf("ResolveDest failed: %v", err)
		}
		if !filepath.IsAbs(got) {
			t.Errorf("expected absolute path, got %s", got)
		}
		cwd, err := os.Getwd()
		if err != nil {
			t.Fatalf("getwd: %v", err)
		}
		if got != filepath.Join(cwd, "proj") {
			t.Errorf("got %s, want %s", got, filepath.Join(cwd, "proj"))
		}
	})

	t.Run("expands user home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		got, err := ResolveDest("~/proj")
		if err != nil {
			t.Fatalf("ResolveDest failed: %v", err)
		}
		if got != filepath.Join(home, "proj") {
			t.Errorf("got %s, want %s", got, filepath.Join(home, "proj"))
		}

		got, err = ResolveDest("~")
		if err != nil {
			t.Fatalf("ResolveDest failed: %v", err)
		}
		if got != home {
			t.Errorf("got %s, want %s", got, home)
		}
	})

	t.Run("rejects empty destination", func(t *testing.T) {
		if _, err := ResolveDest(""); err == nil {
			t.Error("expected error for empty destination")
		}
	})
}

func TestEnsureDest(t *testing.T) {
	base := t.TempDir()
	dest := filepath.Join(base, "a", "b", "out")

	if err := EnsureDest(dest); err != nil {
		t.Fatalf("EnsureDest failed: %v", err)
	}
	info, err := os.Stat(dest)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.IsDir() {
		t.Error("destination is not a directory")
	}

	// Idempotent when the destination already exists.
	if err := EnsureDest(dest); err != nil {
		t.Errorf("EnsureDest on existing dir failed: %v", err)
	}
}
