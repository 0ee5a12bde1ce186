package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/rasan-admin-api/internal/application/dto"
	"github.com/jhoicas/rasan-admin-api/internal/domain"
	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
	"github.com/jhoicas/rasan-admin-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos con imagen en el bucket.
type ProductUseCase struct {
	repo  repository.ProductRepository
	files repository.FileStorage
	log   zerolog.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, files repository.FileStorage, log zerolog.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, files: files, log: log}
}

// List lista productos ordenados por id con búsqueda opcional por nombre.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, repository.ProductQuery{
		Search: strings.TrimSpace(page.Search),
		Offset: page.Offset,
		Limit:  page.Limit,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, ToProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// GetByID obtiene un producto; domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	out := ToProductResponse(p)
	return &out, nil
}

// Create sube la imagen (obligatoria) y crea la fila. Si la fila falla se intenta borrar la imagen.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest, image *dto.FileUpload) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	if image == nil {
		return nil, fmt.Errorf("%w: la imagen del producto es obligatoria", domain.ErrInvalidInput)
	}

	stored, err := uc.files.Upload(ctx, image.Filename, image.Content)
	if err != nil {
		return nil, err
	}
	product := &entity.Product{ImageURL: stored.ViewURL, ImageID: stored.ID}
	applyProduct(product, in)

	if err := uc.repo.Create(ctx, product); err != nil {
		uc.discardFile(ctx, stored.ID)
		return nil, err
	}
	out := ToProductResponse(product)
	return &out, nil
}

// Update reescribe el producto. Con imagen nueva la anterior se elimina después de guardar.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest, image *dto.FileUpload) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	oldImageID := ""
	if image != nil {
		stored, err := uc.files.Upload(ctx, image.Filename, image.Content)
		if err != nil {
			return nil, err
		}
		oldImageID = product.ImageID
		product.ImageURL, product.ImageID = stored.ViewURL, stored.ID
	}
	applyProduct(product, in)

	if err := uc.repo.Update(ctx, product); err != nil {
		if image != nil {
			uc.discardFile(ctx, product.ImageID)
		}
		return nil, err
	}
	if oldImageID != "" {
		uc.discardFile(ctx, oldImageID)
	}
	out := ToProductResponse(product)
	return &out, nil
}

// Delete elimina la fila y después la imagen.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	if product.ImageID != "" {
		if err := uc.files.Delete(ctx, product.ImageID); err != nil {
			return fmt.Errorf("producto eliminado pero su imagen no: %w", err)
		}
	}
	return nil
}

func (uc *ProductUseCase) discardFile(ctx context.Context, fileID string) {
	if err := uc.files.Delete(ctx, fileID); err != nil {
		uc.log.Warn().Err(err).Str("file_id", fileID).Msg("no se pudo eliminar imagen huérfana")
	}
}

// validateProduct exige los mismos campos que el formulario de la consola.
func validateProduct(in dto.ProductRequest) error {
	missing := func(field string) error {
		return fmt.Errorf("%w: falta %s", domain.ErrInvalidInput, field)
	}
	switch {
	case strings.TrimSpace(in.Name) == "":
		return missing("name")
	case strings.TrimSpace(in.Description) == "":
		return missing("description")
	case in.Price == nil:
		return missing("price")
	case in.Discount == nil:
		return missing("discount")
	case in.StockQuantity == nil:
		return missing("stock_quantity")
	case strings.TrimSpace(in.CategoryID) == "":
		return missing("category_id")
	}
	if in.Price.IsNegative() || in.Discount.IsNegative() || *in.StockQuantity < 0 {
		return fmt.Errorf("%w: price, discount y stock_quantity no pueden ser negativos", domain.ErrInvalidInput)
	}
	for i, opt := range in.QuantityOptions {
		if strings.TrimSpace(opt.Label) == "" || opt.AppPrice == nil || opt.PurchasePrice == nil || opt.Discount == nil {
			return fmt.Errorf("%w: completa todos los campos de la presentación %d", domain.ErrInvalidInput, i+1)
		}
	}
	return nil
}

func applyProduct(p *entity.Product, in dto.ProductRequest) {
	p.Name = strings.TrimSpace(in.Name)
	p.Description = strings.TrimSpace(in.Description)
	p.Price = *in.Price
	p.Discount = *in.Discount
	p.StockQuantity = *in.StockQuantity
	p.CategoryID = strings.TrimSpace(in.CategoryID)
	p.QuantityOptions = make([]entity.QuantityOption, 0, len(in.QuantityOptions))
	for _, opt := range in.QuantityOptions {
		p.QuantityOptions = append(p.QuantityOptions, entity.QuantityOption{
			Label:         strings.TrimSpace(opt.Label),
			AppPrice:      *opt.AppPrice,
			PurchasePrice: *opt.PurchasePrice,
			Discount:      *opt.Discount,
		})
	}
}

// ToProductResponse convierte la entidad al DTO de salida.
func ToProductResponse(p *entity.Product) dto.ProductResponse {
	options := make([]dto.QuantityOptionResponse, 0, len(p.QuantityOptions))
	for _, o := range p.QuantityOptions {
		options = append(options, dto.QuantityOptionResponse{
			Label:         o.Label,
			AppPrice:      o.AppPrice,
			PurchasePrice: o.PurchasePrice,
			Discount:      o.Discount,
		})
	}
	return dto.ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		Discount:        p.Discount,
		FinalPrice:      p.FinalPrice(),
		StockQuantity:   p.StockQuantity,
		InStock:         p.InStock(),
		CategoryID:      p.CategoryID,
		ImageURL:        p.ImageURL,
		ImageID:         p.ImageID,
		QuantityOptions: options,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
