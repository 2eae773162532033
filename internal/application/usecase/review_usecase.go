package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/textile-market/internal/application/dto"
	"github.com/jhoicas/textile-market/internal/domain/entity"
	"github.com/jhoicas/textile-market/internal/domain/repository"
	"github.com/jhoicas/textile-market/internal/domain/validation"
)

// ReviewUseCase casos de uso de reseñas de productos.
type ReviewUseCase struct {
	repo repository.ReviewRepository
	tx   ReviewTxRunner
}

// NewReviewUseCase construye el caso de uso.
func NewReviewUseCase(repo repository.ReviewRepository, tx ReviewTxRunner) *ReviewUseCase {
	return &ReviewUseCase{repo: repo, tx: tx}
}

// Create guarda la reseña y agrega su ID a la lista "review" del producto en una sola escritura.
// Devuelve domain.ErrNotFound si el producto no existe.
func (uc *ReviewUseCase) Create(ctx context.Context, in dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	review := &entity.Review{
		ID:        uuid.New().String(),
		Review:    strings.TrimSpace(in.Review),
		Rating:    in.Rating,
		ProductID: strings.TrimSpace(in.ProductID),
		UserID:    strings.TrimSpace(in.UserID),
	}
	if err := validation.Review(review); err != nil {
		return nil, err
	}
	err := uc.tx.RunReview(ctx, func(ctx context.Context, reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) error {
		if err := productRepo.AppendReview(ctx, review.ProductID, review.ID); err != nil {
			return err
		}
		return reviewRepo.Create(ctx, review)
	})
	if err != nil {
		return nil, err
	}
	return toReviewResponse(review), nil
}

// ListByProduct lista las reseñas de un producto.
func (uc *ReviewUseCase) ListByProduct(ctx context.Context, productID string, page dto.PageRequest) ([]dto.ReviewResponse, error) {
	page = page.Normalize()
	list, err := uc.repo.ListByProduct(ctx, productID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReviewResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReviewResponse(r))
	}
	return items, nil
}
