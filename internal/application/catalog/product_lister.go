// Package catalog mantiene el listado incremental de productos de cada administrador.
package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/rasan-admin-api/internal/application/ports"
	"github.com/jhoicas/rasan-admin-api/internal/domain"
	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
	"github.com/jhoicas/rasan-admin-api/internal/domain/repository"
)

// Status estado del listado.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusFetching  Status = "fetching"
	StatusExhausted Status = "exhausted"
)

const component = "product_feed"

// DefaultPageSize tamaño de página de la grilla de productos.
const DefaultPageSize = 9

// Page foto del listado.
type Page struct {
	Status  Status
	Items   []entity.Product
	Offset  int
	HasMore bool
	Search  string
	Error   string
}

// ProductLister listado paginado por offset con búsqueda por nombre.
// Los ids ya presentes se ignoran al fusionar páginas.
type ProductLister struct {
	repo    repository.ProductRepository
	files   repository.FileStorage
	limit   int
	log     zerolog.Logger
	metrics ports.MetricsRecorder

	mu      sync.Mutex
	status  Status
	items   []*entity.Product
	known   map[string]struct{}
	offset  int
	hasMore bool
	search  string
	token   uint64
	errMsg  string
}

// NewProductLister crea el listado en Idle, offset 0, vacío y con hasMore.
func NewProductLister(repo repository.ProductRepository, files repository.FileStorage, limit int, log zerolog.Logger, metrics ports.MetricsRecorder) *ProductLister {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &ProductLister{
		repo:    repo,
		files:   files,
		limit:   limit,
		log:     log,
		metrics: metrics,
		status:  StatusIdle,
		known:   make(map[string]struct{}),
		hasMore: true,
	}
}

// LoadMore pide la siguiente página. Solo procede desde Idle con hasMore;
// en otro caso devuelve domain.ErrBusy o domain.ErrExhausted sin tocar el estado.
func (l *ProductLister) LoadMore(ctx context.Context) (Page, error) {
	l.mu.Lock()
	switch {
	case l.status == StatusFetching:
		p := l.pageLocked()
		l.mu.Unlock()
		return p, domain.ErrBusy
	case !l.hasMore || l.status == StatusExhausted:
		p := l.pageLocked()
		l.mu.Unlock()
		return p, domain.ErrExhausted
	}
	return l.fetchLocked(ctx)
}

// SetSearch reinicia lista, offset y hasMore, invalida cualquier carga en curso
// y pide la primera página del nuevo término.
func (l *ProductLister) SetSearch(ctx context.Context, term string) (Page, error) {
	l.mu.Lock()
	l.search = term
	l.items = nil
	l.known = make(map[string]struct{})
	l.offset = 0
	l.hasMore = true
	l.errMsg = ""
	return l.fetchLocked(ctx)
}

// EnsureLoaded pide la primera página si el listado nunca cargó nada.
func (l *ProductLister) EnsureLoaded(ctx context.Context) (Page, error) {
	l.mu.Lock()
	if l.token > 0 {
		p := l.pageLocked()
		l.mu.Unlock()
		return p, nil
	}
	return l.fetchLocked(ctx)
}

// Snapshot estado actual sin cargar.
func (l *ProductLister) Snapshot() Page {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pageLocked()
}

// fetchLocked se llama con l.mu tomado y lo libera durante la llamada remota.
func (l *ProductLister) fetchLocked(ctx context.Context) (Page, error) {
	l.token++
	token := l.token
	l.status = StatusFetching
	q := repository.ProductQuery{Search: l.search, Offset: l.offset, Limit: l.limit}
	l.mu.Unlock()

	products, _, err := l.repo.List(ctx, q)

	l.mu.Lock()
	defer l.mu.Unlock()
	if token != l.token {
		l.metrics.RecordSuperseded(component)
		l.log.Debug().Uint64("token", token).Uint64("latest", l.token).Str("search", q.Search).
			Msg("página de productos descartada")
		return l.pageLocked(), domain.ErrSuperseded
	}
	if err != nil {
		l.metrics.RecordFetch(component, "error")
		l.status = StatusIdle
		l.errMsg = "No se pudieron cargar los productos: " + err.Error()
		return l.pageLocked(), fmt.Errorf("cargar productos: %w", err)
	}
	l.metrics.RecordFetch(component, "ok")

	l.errMsg = ""
	for _, p := range products {
		if _, dup := l.known[p.ID]; dup {
			continue
		}
		l.known[p.ID] = struct{}{}
		l.items = append(l.items, p)
	}
	l.offset += len(products)
	if len(products) == l.limit {
		l.status = StatusIdle
		l.hasMore = true
	} else {
		l.status = StatusExhausted
		l.hasMore = false
	}
	return l.pageLocked(), nil
}

// DeleteProduct elimina la fila remota y luego su imagen. El listado local solo cambia
// cuando ambos pasos terminaron bien.
func (l *ProductLister) DeleteProduct(ctx context.Context, id string) (Page, error) {
	imageID, err := l.imageIDOf(ctx, id)
	if err != nil {
		return l.Snapshot(), err
	}

	if err := l.repo.Delete(ctx, id); err != nil {
		return l.Snapshot(), fmt.Errorf("eliminar producto %s: %w", id, err)
	}
	if imageID != "" {
		if err := l.files.Delete(ctx, imageID); err != nil {
			return l.Snapshot(), fmt.Errorf("eliminar imagen %s del producto %s: %w", imageID, id, err)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for i, p := range l.items {
		if p.ID != id {
			continue
		}
		l.items = append(l.items[:i:i], l.items[i+1:]...)
		delete(l.known, id)
		// la fila ya no existe en el servidor: las siguientes quedan un lugar antes
		if l.offset > 0 {
			l.offset--
		}
		break
	}
	return l.pageLocked(), nil
}

func (l *ProductLister) imageIDOf(ctx context.Context, id string) (string, error) {
	l.mu.Lock()
	for _, p := range l.items {
		if p.ID == id {
			imageID := p.ImageID
			l.mu.Unlock()
			return imageID, nil
		}
	}
	l.mu.Unlock()

	p, err := l.repo.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("obtener producto %s: %w", id, err)
	}
	if p == nil {
		return "", domain.ErrNotFound
	}
	return p.ImageID, nil
}

func (l *ProductLister) pageLocked() Page {
	items := make([]entity.Product, 0, len(l.items))
	for _, p := range l.items {
		items = append(items, *p)
	}
	return Page{
		Status:  l.status,
		Items:   items,
		Offset:  l.offset,
		HasMore: l.hasMore,
		Search:  l.search,
		Error:   l.errMsg,
	}
}
