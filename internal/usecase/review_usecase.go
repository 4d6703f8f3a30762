package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"unitrade/internal/domain/entity"
	"unitrade/internal/domain/repository"
	"unitrade/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	listingRepo repository.ListingRepository
	accountRepo repository.AccountRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	listingRepo repository.ListingRepository,
	accountRepo repository.AccountRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		listingRepo: listingRepo,
		accountRepo: accountRepo,
	}
}

type CreateReviewInput struct {
	ListingID string
	Rating    int
	Content   string
}

// Create stores a review for a completed purchase. Only the bound buyer may
// review, once per listing; the seller's credit score is adjusted by the
// rating delta in the same store transaction.
func (uc *ReviewUseCase) Create(ctx context.Context, buyerID string, input CreateReviewInput) (*entity.Review, error) {
	listing, err := uc.listingRepo.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}
	if !listing.Completed() {
		return nil, errors.NotAvailable("listing has not been purchased")
	}
	if listing.BuyerID != buyerID {
		return nil, errors.Forbidden("only the buyer can review this listing", nil)
	}

	buyer, err := uc.accountRepo.GetByID(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		ID:        uuid.New().String(),
		SellerID:  listing.SellerID,
		BuyerID:   buyerID,
		BuyerName: buyer.Username,
		ListingID: listing.ID,
		Rating:    input.Rating,
		Content:   input.Content,
		CreatedAt: time.Now(),
	}
	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (uc *ReviewUseCase) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Review, error) {
	return uc.reviewRepo.ListBySeller(ctx, sellerID)
}
