package credential

import (
	"os"
	"strings"
	"sync"
)

// Store holds the API credential in a single persisted slot: read once at
// startup, rewritten on explicit save. The value is opaque, no validation.
type Store struct {
	mu    sync.RWMutex
	path  string
	value string
}

var GStore *Store

func Init(path string) {
	store, err := NewStore(path)
	if err != nil {
		panic(err)
	}
	GStore = store
}

func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	s.value = strings.TrimSpace(string(data))
	return s, nil
}

func (s *Store) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

func (s *Store) Save(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.WriteFile(s.path, []byte(value), 0600)
	if err != nil {
		return err
	}
	s.value = value
	return nil
}
