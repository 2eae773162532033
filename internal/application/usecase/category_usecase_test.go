package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/textile-market/internal/application/dto"
	"github.com/jhoicas/textile-market/internal/domain"
	"github.com/jhoicas/textile-market/internal/domain/entity"
)

func TestCategoryUseCase_SeedRootsIdempotente(t *testing.T) {
	f := newFixture(t)

	created, err := f.uc.Categories.SeedRoots(f.ctx)
	require.NoError(t, err)
	assert.Len(t, created, len(entity.RootCategories))

	again, err := f.uc.Categories.SeedRoots(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, again)

	roots, err := f.uc.Categories.ListRoots(f.ctx)
	require.NoError(t, err)
	assert.Len(t, roots, len(entity.RootCategories))

	yarn, err := f.uc.Categories.GetBySlug(f.ctx, "yarn-and-threads")
	require.NoError(t, err)
	assert.Equal(t, "Yarn & Threads", yarn.Name)
	assert.Nil(t, yarn.ParentID)
}

func TestCategoryUseCase_Subcategoria(t *testing.T) {
	f := newFixture(t)
	fabric, err := f.uc.Categories.Create(f.ctx, dto.CreateCategoryRequest{Name: "Fabric"})
	require.NoError(t, err)

	_, err = f.uc.Categories.Create(f.ctx, dto.CreateCategoryRequest{Name: "Cotton Poplin"})
	require.ErrorIs(t, err, domain.ErrConditionalRequired)
	requireFieldError(t, err, "parent_id")

	_, err = f.uc.Categories.Create(f.ctx, dto.CreateCategoryRequest{Name: "Home Textile", ParentID: strPtr(fabric.ID)})
	assert.ErrorIs(t, err, domain.ErrConditionalRequired, "una raíz no puede tener padre")

	child, err := f.uc.Categories.Create(f.ctx, dto.CreateCategoryRequest{Name: "Cotton Poplin", ParentID: strPtr(fabric.ID)})
	require.NoError(t, err)
	assert.Equal(t, "cotton-poplin", child.Slug)

	children, err := f.uc.Categories.ListChildren(f.ctx, fabric.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, child.ID, children[0].ID)
}

func TestCategoryUseCase_SlugInmutable(t *testing.T) {
	f := newFixture(t)
	fabric, err := f.uc.Categories.Create(f.ctx, dto.CreateCategoryRequest{Name: "Fabric"})
	require.NoError(t, err)

	_, err = f.uc.Categories.Create(f.ctx, dto.CreateCategoryRequest{Name: "Silk Satin", Slug: "silk", ParentID: strPtr(fabric.ID)})
	assert.ErrorIs(t, err, domain.ErrImmutableField, "el slug no se asigna a mano")

	child, err := f.uc.Categories.Create(f.ctx, dto.CreateCategoryRequest{Name: "Silk Satin", ParentID: strPtr(fabric.ID)})
	require.NoError(t, err)

	_, err = f.uc.Categories.Update(f.ctx, child.ID, dto.UpdateCategoryRequest{Slug: strPtr("satin")})
	require.ErrorIs(t, err, domain.ErrImmutableField)
	requireFieldError(t, err, "slug")

	same, err := f.uc.Categories.Update(f.ctx, child.ID, dto.UpdateCategoryRequest{Description: strPtr("brillante")})
	require.NoError(t, err)
	assert.Equal(t, "silk-satin", same.Slug, "sin cambio de nombre el slug se conserva")

	renamed, err := f.uc.Categories.Update(f.ctx, child.ID, dto.UpdateCategoryRequest{Name: strPtr("Crêpe Satin")})
	require.NoError(t, err)
	assert.Equal(t, "crepe-satin", renamed.Slug)

	got, err := f.uc.Categories.GetByID(f.ctx, child.ID)
	require.NoError(t, err)
	assert.Equal(t, "crepe-satin", got.Slug)
}

func TestCategoryUseCase_RenombrarConSlugCoherente(t *testing.T) {
	f := newFixture(t)
	c, err := f.uc.Categories.Create(f.ctx, dto.CreateCategoryRequest{Name: "Voile"})
	require.NoError(t, err)

	renamed, err := f.uc.Categories.Update(f.ctx, c.ID, dto.UpdateCategoryRequest{Name: strPtr("Poplin"), Slug: strPtr("poplin")})
	require.NoError(t, err)
	assert.Equal(t, "poplin", renamed.Slug)

	_, err = f.uc.Categories.Update(f.ctx, c.ID, dto.UpdateCategoryRequest{Name: strPtr("Batiste"), Slug: strPtr("poplin")})
	require.ErrorIs(t, err, domain.ErrImmutableField)
	requireFieldError(t, err, "slug")

	got, err := f.uc.Categories.GetByID(f.ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Poplin", got.Name)
}

func TestCategoryUseCase_NoEncontrada(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Categories.GetByID(f.ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.uc.Categories.GetBySlug(f.ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
