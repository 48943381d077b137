package display

import (
	"testing"
	"time"
)

func TestSlot(t *testing.T) {
	manager := newManager(time.Minute)
	slot := NewSlot(manager, time.Minute)

	t.Run("acquire stores the payload under a fresh handle", func(t *testing.T) {
		id, err := slot.Acquire([]byte{1, 2, 3}, "image/png")
		if err != nil {
			t.Fatalf("acquire: %v", err)
		}
		if id == "" || slot.Current() != id {
			t.Fatalf("handle not tracked as current")
		}
		payload, ok := slot.Get(id)
		if !ok {
			t.Fatalf("payload not retrievable")
		}
		if payload.MIMEType != "image/png" || len(payload.Data) != 3 {
			t.Fatalf("payload mangled: %+v", payload)
		}
	})

	t.Run("a new handle releases the previous one", func(t *testing.T) {
		first, err := slot.Acquire([]byte{1}, "image/png")
		if err != nil {
			t.Fatalf("acquire: %v", err)
		}
		second, err := slot.Acquire([]byte{2}, "image/png")
		if err != nil {
			t.Fatalf("acquire: %v", err)
		}
		if first == second {
			t.Fatalf("expected distinct handles")
		}
		if _, ok := slot.Get(first); ok {
			t.Fatalf("previous handle should be released")
		}
		if _, ok := slot.Get(second); !ok {
			t.Fatalf("current handle should be live")
		}
	})

	t.Run("release drops the current handle", func(t *testing.T) {
		id, err := slot.Acquire([]byte{3}, "image/png")
		if err != nil {
			t.Fatalf("acquire: %v", err)
		}
		slot.Release()
		if slot.Current() != "" {
			t.Fatalf("current should be cleared")
		}
		if _, ok := slot.Get(id); ok {
			t.Fatalf("released payload should be gone")
		}
		// releasing an empty slot is a no-op
		slot.Release()
	})
}

func TestShutdownReleasesHeldHandles(t *testing.T) {
	Init(time.Minute)
	generated, err := GeneratedSlot.Acquire([]byte{9}, "image/png")
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	source, err := SourceSlot.Acquire([]byte{8}, "image/jpeg")
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	Shutdown()
	if _, ok := GeneratedSlot.Get(generated); ok {
		t.Fatalf("generated handle should be released on shutdown")
	}
	if _, ok := SourceSlot.Get(source); ok {
		t.Fatalf("source handle should be released on shutdown")
	}
}
