package usecase

import (
	"context"
	"strings"

	"unitrade/internal/domain/entity"
	"unitrade/internal/domain/repository"
	"unitrade/pkg/errors"
	"unitrade/pkg/logger"
)

type AdminUseCase struct {
	accountRepo repository.AccountRepository
	listingRepo repository.ListingRepository
}

func NewAdminUseCase(
	accountRepo repository.AccountRepository,
	listingRepo repository.ListingRepository,
) *AdminUseCase {
	return &AdminUseCase{
		accountRepo: accountRepo,
		listingRepo: listingRepo,
	}
}

func (uc *AdminUseCase) ListAccounts(ctx context.Context, filter repository.AccountFilter, page, pageSize int) ([]*entity.Account, int64, error) {
	offset := (page - 1) * pageSize
	return uc.accountRepo.List(ctx, filter, pageSize, offset)
}

type AdminListingFilter struct {
	Search   string
	Status   entity.ListingStatus
	Category string
}

// ListListings is the moderation view: banned listings included, paginated
// over the filtered collection.
func (uc *AdminUseCase) ListListings(ctx context.Context, filter AdminListingFilter, page, pageSize int) ([]*entity.Listing, int64, error) {
	listings, err := uc.listingRepo.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	search := strings.ToLower(filter.Search)
	matched := make([]*entity.Listing, 0, len(listings))
	for _, l := range listings {
		if search != "" && !strings.Contains(strings.ToLower(l.Title), search) {
			continue
		}
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		if filter.Category != "" && l.Category != filter.Category {
			continue
		}
		matched = append(matched, l)
	}

	total := int64(len(matched))
	offset := (page - 1) * pageSize
	if offset >= len(matched) {
		return []*entity.Listing{}, total, nil
	}
	end := offset + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (uc *AdminUseCase) SetAccountBanned(ctx context.Context, accountID string, banned bool) (*entity.Account, error) {
	account, err := uc.accountRepo.SetBanned(ctx, accountID, banned)
	if err != nil {
		return nil, err
	}
	logger.Info("Account %s banned=%t", accountID, banned)
	return account, nil
}

// SetListingStatus is the moderation status overwrite. Taking a listing down
// requires a reason.
func (uc *AdminUseCase) SetListingStatus(ctx context.Context, listingID string, status entity.ListingStatus, reason string) (*entity.Listing, error) {
	if status == entity.ListingBanned && strings.TrimSpace(reason) == "" {
		return nil, errors.Validation("takedown reason is required")
	}
	listing, err := uc.listingRepo.SetStatus(ctx, listingID, status, reason)
	if err != nil {
		return nil, err
	}
	logger.Info("Listing %s status set to %s", listingID, status)
	return listing, nil
}
