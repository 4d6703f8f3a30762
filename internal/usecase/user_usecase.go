package usecase

import (
	"context"

	"unitrade/internal/domain/entity"
	"unitrade/internal/domain/repository"
	"unitrade/pkg/errors"
	"unitrade/pkg/logger"
)

type UserUseCase struct {
	accountRepo repository.AccountRepository
	listingRepo repository.ListingRepository
	reviewRepo  repository.ReviewRepository
}

func NewUserUseCase(
	accountRepo repository.AccountRepository,
	listingRepo repository.ListingRepository,
	reviewRepo repository.ReviewRepository,
) *UserUseCase {
	return &UserUseCase{
		accountRepo: accountRepo,
		listingRepo: listingRepo,
		reviewRepo:  reviewRepo,
	}
}

func (uc *UserUseCase) GetAccount(ctx context.Context, id string) (*entity.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ToggleWishlist flips the listing's membership in the account's wishlist
// and returns the fresh account so the caller can refresh its cached copy.
func (uc *UserUseCase) ToggleWishlist(ctx context.Context, accountID, listingID string) (*entity.Account, error) {
	return uc.accountRepo.ToggleWishlist(ctx, accountID, listingID)
}

func (uc *UserUseCase) ToggleFollow(ctx context.Context, followerID, targetID string) (*entity.Account, error) {
	return uc.accountRepo.ToggleFollow(ctx, followerID, targetID)
}

type UpdateProfileInput struct {
	Bio    *string
	Avatar *string
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, accountID string, input UpdateProfileInput) (*entity.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if input.Bio != nil {
		account.Bio = *input.Bio
	}
	if input.Avatar != nil {
		account.Avatar = *input.Avatar
	}
	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

type WithdrawResult struct {
	NewBalance float64 `json:"newBalance"`
}

func (uc *UserUseCase) Withdraw(ctx context.Context, accountID string, amount float64, cardNumber string) (*WithdrawResult, error) {
	if amount <= 0 {
		return nil, errors.Validation("withdrawal amount must be positive")
	}
	if cardNumber == "" {
		return nil, errors.Validation("card number is required")
	}

	account, err := uc.accountRepo.DebitWallet(ctx, accountID, amount)
	if err != nil {
		return nil, err
	}
	logger.Info("Account %s withdrew %.2f", accountID, amount)
	return &WithdrawResult{NewBalance: account.WalletBalance}, nil
}

// ProfileData bundles everything the profile view needs in one response.
type ProfileData struct {
	Account   *entity.Account   `json:"account"`
	Selling   []*entity.Listing `json:"selling"`
	Purchased []*entity.Listing `json:"purchased"`
	Wishlist  []*entity.Listing `json:"wishlist"`
	Following []*entity.Account `json:"following"`
	Reviews   []*entity.Review  `json:"reviews"`
}

func (uc *UserUseCase) GetProfileData(ctx context.Context, accountID string) (*ProfileData, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	selling, err := uc.listingRepo.ListBySeller(ctx, accountID)
	if err != nil {
		return nil, err
	}
	purchased, err := uc.listingRepo.ListByBuyer(ctx, accountID)
	if err != nil {
		return nil, err
	}
	reviews, err := uc.reviewRepo.ListBySeller(ctx, accountID)
	if err != nil {
		return nil, err
	}

	// Wishlist entries and followed accounts that no longer resolve are
	// skipped rather than failing the whole profile.
	wishlist := make([]*entity.Listing, 0, len(account.Wishlist))
	for _, id := range account.Wishlist {
		listing, err := uc.listingRepo.GetByID(ctx, id)
		if err != nil {
			logger.Warn("Wishlist entry %s for account %s did not resolve: %v", id, accountID, err)
			continue
		}
		wishlist = append(wishlist, listing)
	}

	following := make([]*entity.Account, 0, len(account.Following))
	for _, id := range account.Following {
		followed, err := uc.accountRepo.GetByID(ctx, id)
		if err != nil {
			logger.Warn("Followed account %s for account %s did not resolve: %v", id, accountID, err)
			continue
		}
		following = append(following, followed)
	}

	return &ProfileData{
		Account:   account,
		Selling:   selling,
		Purchased: purchased,
		Wishlist:  wishlist,
		Following: following,
		Reviews:   reviews,
	}, nil
}
