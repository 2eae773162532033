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
	"github.com/jhoicas/textile-market/pkg/logger"
)

// CategoryUseCase casos de uso del árbol de categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
	log  *logger.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, log: log.Component("categories")}
}

// Create crea una categoría. El slug se calcula del nombre; un slug enviado se rechaza.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	var errs validation.Errors
	errs.Add(validation.SlugChange("", strings.TrimSpace(in.Slug)))

	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		ParentID:    in.ParentID,
	}
	category.Slug = entity.Slugify(category.Name)
	if err := validation.Merge(errs, validation.Category(category)); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update aplica cambios parciales. Renombrar recalcula el slug; editarlo a mano se rechaza.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}

	nameChanged := false
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		nameChanged = name != category.Name
		category.Name = name
	}
	if in.Description != nil {
		category.Description = strings.TrimSpace(*in.Description)
	}
	switch {
	case in.ClearParent:
		category.ParentID = nil
	case in.ParentID != nil:
		category.ParentID = in.ParentID
	}
	if nameChanged || category.Slug == "" {
		category.Slug = entity.Slugify(category.Name)
	}
	// el slug pedido se compara con el que resulta del nombre final
	var errs validation.Errors
	if in.Slug != nil {
		errs.Add(validation.SlugChange(category.Slug, strings.TrimSpace(*in.Slug)))
	}
	if err := validation.Merge(errs, validation.Category(category)); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetBySlug obtiene una categoría por slug.
func (uc *CategoryUseCase) GetBySlug(ctx context.Context, slug string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// ListRoots lista las categorías sin padre.
func (uc *CategoryUseCase) ListRoots(ctx context.Context) ([]dto.CategoryResponse, error) {
	return uc.list(ctx, nil)
}

// ListChildren lista las hijas directas de parentID.
func (uc *CategoryUseCase) ListChildren(ctx context.Context, parentID string) ([]dto.CategoryResponse, error) {
	return uc.list(ctx, &parentID)
}

// SeedRoots crea las categorías raíz que falten. Es idempotente; devuelve las creadas.
func (uc *CategoryUseCase) SeedRoots(ctx context.Context) ([]dto.CategoryResponse, error) {
	created := make([]dto.CategoryResponse, 0, len(entity.RootCategories))
	for _, name := range entity.RootCategories {
		existing, err := uc.repo.GetBySlug(ctx, entity.Slugify(name))
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.IsRoot() {
			continue
		}
		resp, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: name})
		if err != nil {
			return nil, err
		}
		uc.log.Info().Str("category", resp.Name).Str("slug", resp.Slug).Msg("categoría raíz creada")
		created = append(created, *resp)
	}
	return created, nil
}

func (uc *CategoryUseCase) list(ctx context.Context, parentID *string) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListByParent(ctx, parentID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

func (uc *CategoryUseCase) get(ctx context.Context, id string) (*entity.Category, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return category, nil
}
