package encode

import (
	"sync"

	"github.com/anysticker/anysticker/core"
)

// Registry is a thread-safe map from Format to Encoder.
type Registry struct {
	mu       sync.RWMutex
	encoders map[core.Format]core.Encoder
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{encoders: make(map[core.Format]core.Encoder)}
}

// Register stores e under its own format.
func (r *Registry) Register(e core.Encoder) {
	r.mu.Lock()
	r.encoders[e.Format()] = e
	r.mu.Unlock()
}

// For returns the encoder registered for f.
func (r *Registry) For(f core.Format) (core.Encoder, bool) {
	r.mu.RLock()
	e, ok := r.encoders[f]
	r.mu.RUnlock()
	return e, ok
}
