package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/textile-market/internal/application/dto"
	"github.com/jhoicas/textile-market/internal/domain"
)

func TestReviewUseCase_CreateEnlazaProducto(t *testing.T) {
	f := newFixture(t)
	p, err := f.uc.Products.Create(f.ctx, productRequest("company-1", "category-1"))
	require.NoError(t, err)

	r, err := f.uc.Reviews.Create(f.ctx, dto.CreateReviewRequest{Review: "Buena caída", Rating: 5, ProductID: p.ID, UserID: "buyer-1"})
	require.NoError(t, err)

	got, err := f.uc.Products.GetByID(f.ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{r.ID}, got.Reviews)

	list, err := f.uc.Reviews.ListByProduct(f.ctx, p.ID, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 5, list[0].Rating)
}

func TestReviewUseCase_Rating(t *testing.T) {
	f := newFixture(t)
	p, err := f.uc.Products.Create(f.ctx, productRequest("company-1", "category-1"))
	require.NoError(t, err)

	for _, rating := range []int{0, 6} {
		_, err := f.uc.Reviews.Create(f.ctx, dto.CreateReviewRequest{Review: "x", Rating: rating, ProductID: p.ID, UserID: "u"})
		requireFieldError(t, err, "rating")
	}
}

func TestReviewUseCase_ProductoInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Reviews.Create(f.ctx, dto.CreateReviewRequest{Review: "x", Rating: 3, ProductID: "missing", UserID: "u"})
	require.ErrorIs(t, err, domain.ErrNotFound)

	list, err := f.uc.Reviews.ListByProduct(f.ctx, "missing", dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, list, "la reseña no queda huérfana")
}
