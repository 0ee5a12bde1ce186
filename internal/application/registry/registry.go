// Package registry mantiene un objeto de estado por sesión de administrador
// (controlador del dashboard, listado de productos).
package registry

import (
	"sync"
	"time"
)

type item[T any] struct {
	value    T
	lastUsed time.Time
}

// Registry mapa concurrente clave → T con creación perezosa y expiración por inactividad.
type Registry[T any] struct {
	mu      sync.Mutex
	items   map[string]*item[T]
	factory func() T
	now     func() time.Time
}

// New construye un registro que usa factory para crear cada entrada nueva.
func New[T any](factory func() T) *Registry[T] {
	return &Registry[T]{
		items:   make(map[string]*item[T]),
		factory: factory,
		now:     time.Now,
	}
}

// Get devuelve la entrada de key, creándola si no existe. created indica si se acaba de crear.
func (r *Registry[T]) Get(key string) (value T, created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[key]
	if !ok {
		it = &item[T]{value: r.factory()}
		r.items[key] = it
	}
	it.lastUsed = r.now()
	return it.value, !ok
}

// Remove descarta la entrada (logout).
func (r *Registry[T]) Remove(key string) {
	r.mu.Lock()
	delete(r.items, key)
	r.mu.Unlock()
}

// Prune elimina las entradas sin uso desde hace más de maxIdle y devuelve cuántas borró.
func (r *Registry[T]) Prune(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.now().Add(-maxIdle)
	removed := 0
	for k, it := range r.items {
		if it.lastUsed.Before(cutoff) {
			delete(r.items, k)
			removed++
		}
	}
	return removed
}

// Len número de entradas vivas.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}
