package repository

import (
	"context"
	"strings"
	"time"

	"unitrade/internal/domain/entity"
	"unitrade/internal/domain/repository"
	"unitrade/pkg/errors"
)

type snapshotAccountRepository struct {
	store *SnapshotStore
}

func NewSnapshotAccountRepository(store *SnapshotStore) repository.AccountRepository {
	return &snapshotAccountRepository{store: store}
}

func (r *snapshotAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	return r.store.withWrite(ctx, func(d *storeData) error {
		for _, a := range d.Accounts {
			if strings.EqualFold(a.Username, account.Username) {
				return errors.DuplicateName(account.Username)
			}
		}
		d.Accounts = append(d.Accounts, cloneAccount(account))
		return nil
	})
}

func (r *snapshotAccountRepository) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	var out *entity.Account
	r.store.withRead(func(d *storeData) error {
		if a := r.store.findAccount(d, id); a != nil {
			out = cloneAccount(a)
		}
		return nil
	})
	if out == nil {
		return nil, errors.NotFound("account", nil)
	}
	return out, nil
}

func (r *snapshotAccountRepository) GetByUsername(ctx context.Context, username string) (*entity.Account, error) {
	// Case-insensitive, matching the uniqueness rule Create enforces.
	var out *entity.Account
	r.store.withRead(func(d *storeData) error {
		for _, a := range d.Accounts {
			if strings.EqualFold(a.Username, username) {
				out = cloneAccount(a)
				break
			}
		}
		return nil
	})
	if out == nil {
		return nil, errors.NotFound("account", nil)
	}
	return out, nil
}

func (r *snapshotAccountRepository) Update(ctx context.Context, account *entity.Account) error {
	return r.store.withWrite(ctx, func(d *storeData) error {
		for i, a := range d.Accounts {
			if a.ID == account.ID {
				updated := cloneAccount(account)
				updated.UpdatedAt = time.Now()
				d.Accounts[i] = updated
				return nil
			}
		}
		return errors.NotFound("account", nil)
	})
}

func (r *snapshotAccountRepository) List(ctx context.Context, filter repository.AccountFilter, limit, offset int) ([]*entity.Account, int64, error) {
	var matched []*entity.Account
	r.store.withRead(func(d *storeData) error {
		search := strings.ToLower(filter.Search)
		for _, a := range d.Accounts {
			if search != "" && !strings.Contains(strings.ToLower(a.Username), search) {
				continue
			}
			if filter.Role != "" && a.Role != filter.Role {
				continue
			}
			if filter.Banned != nil && a.Banned != *filter.Banned {
				continue
			}
			matched = append(matched, cloneAccount(a))
		}
		return nil
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return []*entity.Account{}, total, nil
	}
	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return matched[offset:end], total, nil
}

func (r *snapshotAccountRepository) ToggleWishlist(ctx context.Context, accountID, listingID string) (*entity.Account, error) {
	var out *entity.Account
	err := r.store.withWrite(ctx, func(d *storeData) error {
		a := r.store.findAccount(d, accountID)
		if a == nil {
			return errors.NotFound("account", nil)
		}
		a.Wishlist = toggleMembership(a.Wishlist, listingID)
		a.UpdatedAt = time.Now()
		out = cloneAccount(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *snapshotAccountRepository) ToggleFollow(ctx context.Context, followerID, targetID string) (*entity.Account, error) {
	var out *entity.Account
	err := r.store.withWrite(ctx, func(d *storeData) error {
		a := r.store.findAccount(d, followerID)
		if a == nil {
			return errors.NotFound("account", nil)
		}
		a.Following = toggleMembership(a.Following, targetID)
		a.UpdatedAt = time.Now()
		out = cloneAccount(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *snapshotAccountRepository) DebitWallet(ctx context.Context, accountID string, amount float64) (*entity.Account, error) {
	var out *entity.Account
	err := r.store.withWrite(ctx, func(d *storeData) error {
		a := r.store.findAccount(d, accountID)
		if a == nil {
			return errors.NotFound("account", nil)
		}
		if amount > a.WalletBalance {
			return errors.BadRequest("insufficient wallet balance", nil)
		}
		a.WalletBalance -= amount
		a.UpdatedAt = time.Now()
		out = cloneAccount(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *snapshotAccountRepository) SetBanned(ctx context.Context, accountID string, banned bool) (*entity.Account, error) {
	var out *entity.Account
	err := r.store.withWrite(ctx, func(d *storeData) error {
		a := r.store.findAccount(d, accountID)
		if a == nil {
			return errors.NotFound("account", nil)
		}
		a.Banned = banned
		a.UpdatedAt = time.Now()
		out = cloneAccount(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// toggleMembership removes id when present, appends it when absent. The set
// never holds duplicates.
func toggleMembership(set []string, id string) []string {
	for i, existing := range set {
		if existing == id {
			return append(set[:i], set[i+1:]...)
		}
	}
	return append(set, id)
}
