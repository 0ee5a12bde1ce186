package registry

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_GetCreaUnaVez(t *testing.T) {
	calls := 0
	r := New(func() *int { calls++; n := calls; return &n })

	a, created := r.Get("sid-1")
	assert.True(t, created)
	b, created := r.Get("sid-1")
	assert.False(t, created)
	assert.Same(t, a, b)
	assert.Equal(t, 1, calls)
}

func TestRegistry_RemoveYPrune(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	r := New(func() string { return "x" })
	r.now = func() time.Time { return now }

	r.Get("viejo")
	now = now.Add(time.Hour)
	r.Get("nuevo")
	r.Get("borrar")
	r.Remove("borrar")

	assert.Equal(t, 1, r.Prune(30*time.Minute))
	assert.Equal(t, 1, r.Len())
	_, created := r.Get("nuevo")
	assert.False(t, created)
}

func TestRegistry_Concurrente(t *testing.T) {
	r := New(func() *sync.Mutex { return &sync.Mutex{} })
	var wg sync.WaitGroup
	seen := make(chan *sync.Mutex, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, _ := r.Get("same")
			seen <- v
		}()
	}
	wg.Wait()
	close(seen)
	first := <-seen
	for v := range seen {
		assert.Same(t, first, v)
	}
}
