package session

import (
	"context"
	"net/http"
	"sync"

	"github.com/kiran7893/talenthub-frontend/pkg/logger"
)

// MemoryBackend keeps sessions in process memory, keyed by browser id.
// Sessions are lost on restart and are not shared between replicas.
type MemoryBackend struct {
	mu   sync.Mutex
	data map[string]map[string]string
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]map[string]string)}
}

func (b *MemoryBackend) Name() string { return "memory" }

func (b *MemoryBackend) Open(_ http.ResponseWriter, r *http.Request) Area {
	return b.Area(logger.BrowserIDFromContext(r.Context()))
}

// Area returns the area of browserID.
func (b *MemoryBackend) Area(browserID string) Area {
	return &memoryArea{b: b, browserID: browserID}
}

type memoryArea struct {
	b         *MemoryBackend
	browserID string
}

func (a *memoryArea) Get(_ context.Context, key string) (string, bool, error) {
	if a.browserID == "" {
		return "", false, ErrNoBrowserID
	}
	a.b.mu.Lock()
	defer a.b.mu.Unlock()
	v, ok := a.b.data[a.browserID][key]
	return v, ok, nil
}

func (a *memoryArea) Set(_ context.Context, key, value string) error {
	if a.browserID == "" {
		return ErrNoBrowserID
	}
	a.b.mu.Lock()
	defer a.b.mu.Unlock()
	m, ok := a.b.data[a.browserID]
	if !ok {
		m = make(map[string]string)
		a.b.data[a.browserID] = m
	}
	m[key] = value
	return nil
}

func (a *memoryArea) Delete(_ context.Context, keys ...string) error {
	if a.browserID == "" {
		return ErrNoBrowserID
	}
	a.b.mu.Lock()
	defer a.b.mu.Unlock()
	m := a.b.data[a.browserID]
	for _, k := range keys {
		delete(m, k)
	}
	if len(m) == 0 {
		delete(a.b.data, a.browserID)
	}
	return nil
}
