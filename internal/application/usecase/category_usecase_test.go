package usecase_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rasan-admin-api/internal/application/dto"
	"github.com/jhoicas/rasan-admin-api/internal/application/usecase"
	"github.com/jhoicas/rasan-admin-api/internal/domain"
	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
)

// ─────────────────────────────────────────────────────────────────────────────
// Categorías de producto
// ─────────────────────────────────────────────────────────────────────────────

func TestCategoryUseCase_Create_RequiereImagen(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newMemCategories(), &memFiles{}, zerolog.Nop())
	_, err := uc.Create(context.Background(), dto.CategoryRequest{Name: "Frutas"}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryUseCase_Create_ActivaPorDefecto(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newMemCategories(), &memFiles{}, zerolog.Nop())
	out, err := uc.Create(context.Background(), dto.CategoryRequest{Name: "Frutas"}, image("f.png"))
	require.NoError(t, err)
	assert.True(t, out.IsActive)
	assert.Equal(t, "file-1", out.ImageID)
}

// El estado devuelto es el que respondió Appwrite, no el pedido.
func TestCategoryUseCase_ToggleActive_UsaRespuestaRemota(t *testing.T) {
	repo := newMemCategories(&entity.Category{ID: "c1", Name: "Frutas", IsActive: true})
	stillActive := true
	repo.remoteSet = &stillActive
	uc := usecase.NewCategoryUseCase(repo, &memFiles{}, zerolog.Nop())

	out, err := uc.ToggleActive(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, out.IsActive)
}

func TestCategoryUseCase_ToggleActive_Invierte(t *testing.T) {
	repo := newMemCategories(&entity.Category{ID: "c1", Name: "Frutas", IsActive: true})
	uc := usecase.NewCategoryUseCase(repo, &memFiles{}, zerolog.Nop())

	out, err := uc.ToggleActive(context.Background(), "c1")
	require.NoError(t, err)
	assert.False(t, out.IsActive)
}

// Si la imagen no se puede borrar, la fila queda intacta.
func TestCategoryUseCase_Delete_ImagenPrimero(t *testing.T) {
	repo := newMemCategories(&entity.Category{ID: "c1", ImageID: "img-1"})
	files := &memFiles{deleteErr: errRemote}
	uc := usecase.NewCategoryUseCase(repo, files, zerolog.Nop())

	err := uc.Delete(context.Background(), "c1")
	assert.ErrorIs(t, err, errRemote)
	assert.Empty(t, repo.deleted)

	files.deleteErr = nil
	require.NoError(t, uc.Delete(context.Background(), "c1"))
	assert.Equal(t, []string{"img-1"}, files.deleted)
	assert.Equal(t, []string{"c1"}, repo.deleted)
}

func TestCategoryUseCase_Update_ReemplazaImagen(t *testing.T) {
	repo := newMemCategories(&entity.Category{ID: "c1", Name: "Frutas", ImageID: "img-old", IsActive: true})
	files := &memFiles{}
	uc := usecase.NewCategoryUseCase(repo, files, zerolog.Nop())

	out, err := uc.Update(context.Background(), "c1", dto.CategoryRequest{Name: "Frutas frescas"}, image("n.png"))
	require.NoError(t, err)
	assert.Equal(t, "Frutas frescas", out.Name)
	assert.Equal(t, "file-1", out.ImageID)
	assert.True(t, out.IsActive)
	assert.Equal(t, []string{"img-old"}, files.deleted)
}

// ─────────────────────────────────────────────────────────────────────────────
// Cabecera y cuerpo
// ─────────────────────────────────────────────────────────────────────────────

func headerFixture() (*memHeaders, *memCategories) {
	categories := newMemCategories(
		&entity.Category{ID: "c1", Name: "Frutas"},
		&entity.Category{ID: "c2", Name: "Verduras"},
		&entity.Category{ID: "c3", Name: "Frutos secos"},
	)
	headers := &memHeaders{rows: []*entity.HeaderCategory{
		{ID: "h1", IsActive: true, ProductCategory: categories.byID["c1"]},
		{ID: "h2", IsActive: true}, // relación huérfana
	}}
	return headers, categories
}

func TestHeaderCategoryUseCase_Available_ExcluyeUsadasYFiltra(t *testing.T) {
	headers, categories := headerFixture()
	uc := usecase.NewHeaderCategoryUseCase(headers, categories)

	all, err := uc.Available(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "c2", all[0].ID)

	filtered, err := uc.Available(context.Background(), "FRUT")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "c3", filtered[0].ID)
}

func TestHeaderCategoryUseCase_Create(t *testing.T) {
	headers, categories := headerFixture()
	uc := usecase.NewHeaderCategoryUseCase(headers, categories)

	out, err := uc.Create(context.Background(), dto.HeaderCategoryRequest{CategoryID: "c2"})
	require.NoError(t, err)
	assert.True(t, out.IsActive)
	require.NotNil(t, out.Category)
	assert.Equal(t, "Verduras", out.Category.Name)

	_, err = uc.Create(context.Background(), dto.HeaderCategoryRequest{CategoryID: "c1"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = uc.Create(context.Background(), dto.HeaderCategoryRequest{CategoryID: "zz"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Equal(t, []string{"c2"}, headers.created)
}

func TestHeaderCategoryUseCase_List_RelacionHuerfana(t *testing.T) {
	headers, categories := headerFixture()
	uc := usecase.NewHeaderCategoryUseCase(headers, categories)

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.NotNil(t, out[0].Category)
	assert.Nil(t, out[1].Category)
}

func TestBodyCategoryUseCase_SetProductCategories_DepuraIDs(t *testing.T) {
	bodies := &memBodies{}
	uc := usecase.NewBodyCategoryUseCase(bodies)

	out, err := uc.SetProductCategories(context.Background(), "body-1",
		dto.BodyCategoryRequest{CategoryIDs: []string{"c1", " ", "c2", "c1"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, bodies.gotIDs)
	assert.Len(t, out.Categories, 2)
}
