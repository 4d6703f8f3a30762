package repository

import (
	"context"

	"unitrade/internal/domain/entity"
)

type ReviewRepository interface {
	// Create appends the review and applies the seller credit-score delta in
	// the same transaction.
	Create(ctx context.Context, review *entity.Review) error

	GetByBuyerAndListing(ctx context.Context, buyerID, listingID string) (*entity.Review, error)

	// ListBySeller returns the seller's reviews, newest first.
	ListBySeller(ctx context.Context, sellerID string) ([]*entity.Review, error)
}
