package memory

import "sync"

// Backend is a volatile key-value storage, used by tests and dry runs.
type Backend struct {
	mu     sync.Mutex
	values map[string]string
	writes int
}

func NewBackend() *Backend {
	return &Backend{values: map[string]string{}}
}

func (b *Backend) Get(key string) (string, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.values[key]
	return v, ok, nil
}

func (b *Backend) Set(key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values[key] = value
	b.writes++
	return nil
}

// Writes reports how many Set calls the backend has served.
func (b *Backend) Writes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writes
}
