package credential

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore(t *testing.T) {
	t.Run("missing file yields an empty slot", func(t *testing.T) {
		store, err := NewStore(filepath.Join(t.TempDir(), "cred"))
		if err != nil {
			t.Fatalf("new store: %v", err)
		}
		if store.Get() != "" {
			t.Fatalf("expected empty credential, got %q", store.Get())
		}
	})

	t.Run("save persists and reloads", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cred")
		store, err := NewStore(path)
		if err != nil {
			t.Fatalf("new store: %v", err)
		}
		if err := store.Save("sk-test-123"); err != nil {
			t.Fatalf("save: %v", err)
		}
		if store.Get() != "sk-test-123" {
			t.Fatalf("expected sk-test-123, got %q", store.Get())
		}

		reloaded, err := NewStore(path)
		if err != nil {
			t.Fatalf("reload: %v", err)
		}
		if reloaded.Get() != "sk-test-123" {
			t.Fatalf("expected persisted credential, got %q", reloaded.Get())
		}
	})

	t.Run("trailing whitespace is trimmed on load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cred")
		if err := os.WriteFile(path, []byte("sk-abc\n"), 0600); err != nil {
			t.Fatalf("write: %v", err)
		}
		store, err := NewStore(path)
		if err != nil {
			t.Fatalf("new store: %v", err)
		}
		if store.Get() != "sk-abc" {
			t.Fatalf("expected sk-abc, got %q", store.Get())
		}
	})
}
