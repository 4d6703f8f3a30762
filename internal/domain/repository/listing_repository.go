package repository

import (
	"context"

	"unitrade/internal/domain/entity"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	Update(ctx context.Context, listing *entity.Listing) error

	// ListAll returns the full collection in insertion order.
	ListAll(ctx context.Context) ([]*entity.Listing, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*entity.Listing, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Listing, error)

	// Purchase transitions an active listing to sold and binds the buyer in
	// a single transaction. Fails with NOT_FOUND or NOT_AVAILABLE.
	Purchase(ctx context.Context, listingID, buyerID string) (*entity.Listing, error)

	// ConfirmReceipt transitions sold to received when buyerID matches the
	// bound buyer, crediting the seller's wallet by the listing price in the
	// same transaction.
	ConfirmReceipt(ctx context.Context, listingID, buyerID string) (*entity.Listing, error)

	IncrementViews(ctx context.Context, id string) error

	// SetStatus is the moderation override. The reason is recorded when the
	// listing is taken down.
	SetStatus(ctx context.Context, id string, status entity.ListingStatus, reason string) (*entity.Listing, error)
}
