// Package cache decora los puertos de lectura con cachés de vida corta.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/entity"
	"github.com/mintriago123/bancoalimentostest-sub002/internal/domain/repository"
)

var _ repository.ConversionRepository = (*EdgeCache)(nil)

// EdgeCache guarda la última lista de aristas de conversión durante ttl.
// Los errores del almacén no se cachean.
type EdgeCache struct {
	next repository.ConversionRepository
	ttl  time.Duration
	now  func() time.Time

	mu       sync.Mutex
	edges    []entity.ConversionEdge
	loadedAt time.Time
	loaded   bool
}

// NewEdgeCache construye el decorador. Con ttl <= 0 devuelve next sin decorar.
func NewEdgeCache(next repository.ConversionRepository, ttl time.Duration) repository.ConversionRepository {
	if ttl <= 0 {
		return next
	}
	return &EdgeCache{next: next, ttl: ttl, now: time.Now}
}

// ListConversionEdges devuelve una copia de la lista cacheada o la recarga si venció.
func (c *EdgeCache) ListConversionEdges(ctx context.Context) ([]entity.ConversionEdge, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded && c.now().Sub(c.loadedAt) < c.ttl {
		return clone(c.edges), nil
	}
	edges, err := c.next.ListConversionEdges(ctx)
	if err != nil {
		return nil, err
	}
	c.edges = clone(edges)
	c.loadedAt = c.now()
	c.loaded = true
	return clone(edges), nil
}

// Invalidate descarta la lista cacheada; la próxima lectura va al almacén.
func (c *EdgeCache) Invalidate() {
	c.mu.Lock()
	c.loaded = false
	c.edges = nil
	c.mu.Unlock()
}

func clone(edges []entity.ConversionEdge) []entity.ConversionEdge {
	out := make([]entity.ConversionEdge, len(edges))
	copy(out, edges)
	return out
}
