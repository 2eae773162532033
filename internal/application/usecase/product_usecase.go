package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/textile-market/internal/application/dto"
	"github.com/jhoicas/textile-market/internal/domain"
	"github.com/jhoicas/textile-market/internal/domain/entity"
	"github.com/jhoicas/textile-market/internal/domain/repository"
	"github.com/jhoicas/textile-market/internal/domain/validation"
)

// ProductUseCase casos de uso CRUD para productos del catálogo.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. Stock inicia en lo enviado (0 por defecto), MOQ en 1 y disponibilidad In Stock.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	var errs validation.Errors
	if in.PricePerUnit == nil {
		errs = append(errs, validation.FieldError{Field: "price_per_unit", Kind: validation.KindRequired, Message: "es requerido"})
	}
	product := &entity.Product{
		ID:                   uuid.New().String(),
		Name:                 in.Name,
		Description:          in.Description,
		SellerID:             strings.TrimSpace(in.SellerID),
		CompanyID:            strings.TrimSpace(in.CompanyID),
		CategoryID:           strings.TrimSpace(in.CategoryID),
		FabricType:           in.FabricType,
		GSM:                  in.GSM,
		Unit:                 in.Unit,
		PriceTiers:           toPriceTiers(in.PriceTiers),
		ColorOptions:         in.ColorOptions,
		SizeOptions:          in.SizeOptions,
		Stock:                in.Stock,
		MinimumOrderQuantity: in.MinimumOrderQuantity,
		MinPrice:             in.MinPrice,
		MaxPrice:             in.MaxPrice,
		Availability:         in.Availability,
		Images:               in.Images,
	}
	if in.PricePerUnit != nil {
		product.PricePerUnit = *in.PricePerUnit
	}
	product.Trim()
	product.ApplyDefaults()
	if err := validation.Merge(errs, validation.Product(product)); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update aplica cambios parciales. Empresa, vendedor y reseñas no se modifican aquí.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		product.CategoryID = strings.TrimSpace(*in.CategoryID)
	}
	if in.FabricType != nil {
		product.FabricType = *in.FabricType
	}
	if in.GSM != nil {
		product.GSM = *in.GSM
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.PriceTiers != nil {
		product.PriceTiers = toPriceTiers(in.PriceTiers)
	}
	if in.ColorOptions != nil {
		product.ColorOptions = in.ColorOptions
	}
	if in.SizeOptions != nil {
		product.SizeOptions = in.SizeOptions
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.MinimumOrderQuantity != nil {
		product.MinimumOrderQuantity = *in.MinimumOrderQuantity
	}
	if in.PricePerUnit != nil {
		product.PricePerUnit = *in.PricePerUnit
	}
	if in.MinPrice != nil {
		product.MinPrice = *in.MinPrice
	}
	if in.MaxPrice != nil {
		product.MaxPrice = *in.MaxPrice
	}
	if in.Availability != nil {
		product.Availability = *in.Availability
	}
	if in.Images != nil {
		product.Images = in.Images
	}
	product.Trim()
	if err := validation.Product(product); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// ListByCompany lista productos de una empresa con paginación.
func (uc *ProductUseCase) ListByCompany(ctx context.Context, companyID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page = page.Normalize()
	list, err := uc.repo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toProductList(list, page), nil
}

// ListByCategory lista productos de una categoría con paginación.
func (uc *ProductUseCase) ListByCategory(ctx context.Context, categoryID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page = page.Normalize()
	list, err := uc.repo.ListByCategory(ctx, categoryID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toProductList(list, page), nil
}

// PriceSummary devuelve cantidad y precio unitario mínimo y máximo de una categoría.
func (uc *ProductUseCase) PriceSummary(ctx context.Context, categoryID string) (*dto.PriceSummaryResponse, error) {
	summary, err := uc.repo.PriceSummary(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return &dto.PriceSummaryResponse{
		CategoryID: categoryID,
		Count:      summary.Count,
		MinPrice:   summary.Min,
		MaxPrice:   summary.Max,
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ProductUseCase) get(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func toProductList(list []*entity.Product, page dto.PageRequest) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}
