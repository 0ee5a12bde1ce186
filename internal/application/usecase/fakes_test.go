package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
	"github.com/jhoicas/rasan-admin-api/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes compartidos
// ─────────────────────────────────────────────────────────────────────────────

var errRemote = errors.New("appwrite caído")

type memFiles struct {
	uploaded  []string
	deleted   []string
	uploadErr error
	deleteErr error
	seq       int
}

func (f *memFiles) Upload(_ context.Context, filename string, r io.Reader) (*repository.StoredFile, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	if _, err := io.ReadAll(r); err != nil {
		return nil, err
	}
	f.seq++
	id := fmt.Sprintf("file-%d", f.seq)
	f.uploaded = append(f.uploaded, filename)
	return &repository.StoredFile{ID: id, ViewURL: "https://cdn.test/v1/storage/buckets/b/files/" + id + "/view"}, nil
}

func (f *memFiles) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *memFiles) FileIDFromURL(u string) string {
	const marker = "/files/"
	for i := 0; i+len(marker) <= len(u); i++ {
		if u[i:i+len(marker)] == marker {
			rest := u[i+len(marker):]
			for j := 0; j < len(rest); j++ {
				if rest[j] == '/' {
					return rest[:j]
				}
			}
			return rest
		}
	}
	return ""
}

type memProducts struct {
	byID      map[string]*entity.Product
	createErr error
	updateErr error
	deleted   []string
	lastQuery repository.ProductQuery
}

func newMemProducts(products ...*entity.Product) *memProducts {
	m := &memProducts{byID: map[string]*entity.Product{}}
	for _, p := range products {
		m.byID[p.ID] = p
	}
	return m
}

func (m *memProducts) List(_ context.Context, q repository.ProductQuery) ([]*entity.Product, int, error) {
	m.lastQuery = q
	out := make([]*entity.Product, 0, len(m.byID))
	for _, p := range m.byID {
		out = append(out, p)
	}
	return out, len(out), nil
}

func (m *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return m.byID[id], nil
}

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	if m.createErr != nil {
		return m.createErr
	}
	p.ID = fmt.Sprintf("prod-%d", len(m.byID)+1)
	m.byID[p.ID] = p
	return nil
}

func (m *memProducts) Update(_ context.Context, p *entity.Product) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.byID[p.ID] = p
	return nil
}

func (m *memProducts) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type memCategories struct {
	byID      map[string]*entity.Category
	order     []string
	remoteSet *bool // si no es nil SetActive responde con este valor, ignorando el pedido
	deleteErr error
	deleted   []string
}

func newMemCategories(categories ...*entity.Category) *memCategories {
	m := &memCategories{byID: map[string]*entity.Category{}}
	for _, c := range categories {
		m.byID[c.ID] = c
		m.order = append(m.order, c.ID)
	}
	return m
}

func (m *memCategories) List(context.Context, int) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(m.order))
	for _, id := range m.order {
		if c, ok := m.byID[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCategories) GetByID(_ context.Context, id string) (*entity.Category, error) {
	return m.byID[id], nil
}

func (m *memCategories) Create(_ context.Context, c *entity.Category) error {
	c.ID = fmt.Sprintf("cat-%d", len(m.order)+1)
	m.byID[c.ID] = c
	m.order = append(m.order, c.ID)
	return nil
}

func (m *memCategories) Update(_ context.Context, c *entity.Category) error {
	m.byID[c.ID] = c
	return nil
}

func (m *memCategories) SetActive(_ context.Context, id string, active bool) (*entity.Category, error) {
	c := *m.byID[id]
	c.IsActive = active
	if m.remoteSet != nil {
		c.IsActive = *m.remoteSet
	}
	m.byID[id] = &c
	return &c, nil
}

func (m *memCategories) Delete(_ context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.byID, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type memHeaders struct {
	rows    []*entity.HeaderCategory
	created []string
}

func (m *memHeaders) List(context.Context, int) ([]*entity.HeaderCategory, error) {
	return m.rows, nil
}

func (m *memHeaders) Create(_ context.Context, categoryID string) (*entity.HeaderCategory, error) {
	m.created = append(m.created, categoryID)
	h := &entity.HeaderCategory{ID: "hdr-new", IsActive: true}
	m.rows = append(m.rows, h)
	return h, nil
}

func (m *memHeaders) SetActive(_ context.Context, id string, active bool) (*entity.HeaderCategory, error) {
	for _, h := range m.rows {
		if h.ID == id {
			h.IsActive = active
			return h, nil
		}
	}
	return nil, errRemote
}

func (m *memHeaders) Delete(context.Context, string) error { return nil }

type memBodies struct {
	gotIDs []string
}

func (m *memBodies) List(context.Context, int) ([]*entity.BodyCategory, error) {
	return []*entity.BodyCategory{{ID: "body-1", Name: "Ofertas", ProductCategories: []entity.Category{{ID: "c1", Name: "Frutas"}}}}, nil
}

func (m *memBodies) SetProductCategories(_ context.Context, id string, ids []string) (*entity.BodyCategory, error) {
	m.gotIDs = ids
	cats := make([]entity.Category, 0, len(ids))
	for _, cid := range ids {
		cats = append(cats, entity.Category{ID: cid})
	}
	return &entity.BodyCategory{ID: id, Name: "Ofertas", ProductCategories: cats}, nil
}

type memCarousel struct {
	rows      []*entity.CarouselRow
	createErr error
	deleted   []string
}

func (m *memCarousel) List(context.Context) ([]*entity.CarouselRow, error) { return m.rows, nil }

func (m *memCarousel) Create(_ context.Context, row *entity.CarouselRow) error {
	if m.createErr != nil {
		return m.createErr
	}
	row.ID = "row-new"
	m.rows = append(m.rows, row)
	return nil
}

func (m *memCarousel) Delete(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type recordingSender struct {
	sent []entity.Notification
	err  error
}

func (s *recordingSender) Send(_ context.Context, n entity.Notification) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.sent = append(s.sent, n)
	return "exec-1", nil
}
