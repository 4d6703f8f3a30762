package repository

import (
	"context"

	"unitrade/internal/domain/entity"
)

type AccountFilter struct {
	Search string
	Role   entity.Role
	Banned *bool
}

type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	GetByID(ctx context.Context, id string) (*entity.Account, error)
	GetByUsername(ctx context.Context, username string) (*entity.Account, error)
	Update(ctx context.Context, account *entity.Account) error
	List(ctx context.Context, filter AccountFilter, limit, offset int) ([]*entity.Account, int64, error)

	// ToggleWishlist flips membership of listingID in the account's wishlist
	// and returns the updated account. Applying it twice restores the
	// original set.
	ToggleWishlist(ctx context.Context, accountID, listingID string) (*entity.Account, error)

	// ToggleFollow flips membership of targetID in the follower's following
	// set and returns the updated account.
	ToggleFollow(ctx context.Context, followerID, targetID string) (*entity.Account, error)

	// DebitWallet withdraws amount from the account's wallet balance. The
	// balance never goes negative.
	DebitWallet(ctx context.Context, accountID string, amount float64) (*entity.Account, error)

	SetBanned(ctx context.Context, accountID string, banned bool) (*entity.Account, error)
}
