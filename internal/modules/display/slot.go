package display

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/eko/gocache/store/go_cache/v4"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// Payload is the binary image data behind a display handle.
type Payload struct {
	MIMEType string
	Data     []byte
}

type Manager struct {
	cache *cache.Cache[Payload]
}

func newManager(ttl time.Duration) *Manager {
	client := gocache.New(ttl, ttl)
	return &Manager{
		cache: cache.New[Payload](go_cache.NewGoCache(client)),
	}
}

func (m *Manager) SetWithExpiration(key string, value Payload, expir time.Duration) error {
	timeout, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	return m.cache.Set(timeout, key, value, store.WithExpiration(expir))
}

func (m *Manager) GetValue(key string) (value Payload, ok bool, err error) {
	timeout, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	const errorMessage = "value not found"
	value, err = m.cache.Get(timeout, key)
	if err != nil {
		if strings.Contains(err.Error(), errorMessage) {
			return Payload{}, false, nil
		}
		return Payload{}, false, err
	}
	return value, true, nil
}

func (m *Manager) Delete(key string) error {
	timeout, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	return m.cache.Delete(timeout, key)
}

// Slot owns at most one live display handle. Acquiring a new handle releases
// the previous one first; Release drops the current handle on teardown or
// explicit clear.
type Slot struct {
	mu      sync.Mutex
	store   *Manager
	ttl     time.Duration
	current string
}

func NewSlot(store *Manager, ttl time.Duration) *Slot {
	return &Slot{store: store, ttl: ttl}
}

func (s *Slot) Acquire(data []byte, mimeType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != "" {
		// release the previous handle before replacing it
		_ = s.store.Delete(s.current)
		s.current = ""
	}
	id := uuid.NewString()
	err := s.store.SetWithExpiration(id, Payload{MIMEType: mimeType, Data: data}, s.ttl)
	if err != nil {
		return "", err
	}
	s.current = id
	return id, nil
}

func (s *Slot) Get(id string) (Payload, bool) {
	payload, ok, err := s.store.GetValue(id)
	if err != nil {
		return Payload{}, false
	}
	return payload, ok
}

func (s *Slot) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Slot) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != "" {
		_ = s.store.Delete(s.current)
		s.current = ""
	}
}

var (
	GeneratedSlot *Slot
	SourceSlot    *Slot
)

func Init(ttl time.Duration) {
	manager := newManager(ttl)
	GeneratedSlot = NewSlot(manager, ttl)
	SourceSlot = NewSlot(manager, ttl)
}

// Shutdown releases any still-held handles.
func Shutdown() {
	if GeneratedSlot != nil {
		GeneratedSlot.Release()
	}
	if SourceSlot != nil {
		SourceSlot.Release()
	}
}
