package repository

import (
	"context"
	"time"

	"unitrade/internal/domain/entity"
	"unitrade/internal/domain/repository"
	"unitrade/pkg/errors"
	"unitrade/pkg/logger"
)

type snapshotListingRepository struct {
	store *SnapshotStore
}

func NewSnapshotListingRepository(store *SnapshotStore) repository.ListingRepository {
	return &snapshotListingRepository{store: store}
}

func (r *snapshotListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	return r.store.withWrite(ctx, func(d *storeData) error {
		if r.store.findListing(d, listing.ID) != nil {
			return errors.Conflict("listing already exists")
		}
		d.Listings = append(d.Listings, cloneListing(listing))
		return nil
	})
}

func (r *snapshotListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	var out *entity.Listing
	r.store.withRead(func(d *storeData) error {
		if l := r.store.findListing(d, id); l != nil {
			out = cloneListing(l)
		}
		return nil
	})
	if out == nil {
		return nil, errors.NotFound("listing", nil)
	}
	return out, nil
}

func (r *snapshotListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	return r.store.withWrite(ctx, func(d *storeData) error {
		for i, l := range d.Listings {
			if l.ID == listing.ID {
				updated := cloneListing(listing)
				updated.UpdatedAt = time.Now()
				d.Listings[i] = updated
				return nil
			}
		}
		return errors.NotFound("listing", nil)
	})
}

func (r *snapshotListingRepository) ListAll(ctx context.Context) ([]*entity.Listing, error) {
	var out []*entity.Listing
	r.store.withRead(func(d *storeData) error {
		out = make([]*entity.Listing, 0, len(d.Listings))
		for _, l := range d.Listings {
			out = append(out, cloneListing(l))
		}
		return nil
	})
	return out, nil
}

func (r *snapshotListingRepository) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Listing, error) {
	var out []*entity.Listing
	r.store.withRead(func(d *storeData) error {
		for _, l := range d.Listings {
			if l.SellerID == sellerID {
				out = append(out, cloneListing(l))
			}
		}
		return nil
	})
	return out, nil
}

func (r *snapshotListingRepository) ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Listing, error) {
	var out []*entity.Listing
	r.store.withRead(func(d *storeData) error {
		for _, l := range d.Listings {
			if l.BuyerID == buyerID {
				out = append(out, cloneListing(l))
			}
		}
		return nil
	})
	return out, nil
}

func (r *snapshotListingRepository) Purchase(ctx context.Context, listingID, buyerID string) (*entity.Listing, error) {
	var out *entity.Listing
	err := r.store.withWrite(ctx, func(d *storeData) error {
		l := r.store.findListing(d, listingID)
		if l == nil {
			return errors.NotFound("listing", nil)
		}
		if l.Status != entity.ListingActive {
			return errors.NotAvailable("listing is not available for purchase")
		}
		l.Status = entity.ListingSold
		l.BuyerID = buyerID
		l.UpdatedAt = time.Now()
		out = cloneListing(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *snapshotListingRepository) ConfirmReceipt(ctx context.Context, listingID, buyerID string) (*entity.Listing, error) {
	var out *entity.Listing
	err := r.store.withWrite(ctx, func(d *storeData) error {
		l := r.store.findListing(d, listingID)
		if l == nil {
			return errors.NotFound("listing", nil)
		}
		if l.Status != entity.ListingSold {
			return errors.NotAvailable("listing is not awaiting receipt")
		}
		if l.BuyerID != buyerID {
			return errors.Forbidden("only the buyer can confirm receipt", nil)
		}
		l.Status = entity.ListingReceived
		l.UpdatedAt = time.Now()

		if seller := r.store.findAccount(d, l.SellerID); seller != nil {
			seller.WalletBalance += l.Price
			seller.UpdatedAt = time.Now()
		} else {
			logger.Warn("Seller %s missing, receipt for %s confirmed without wallet credit", l.SellerID, l.ID)
		}
		out = cloneListing(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *snapshotListingRepository) IncrementViews(ctx context.Context, id string) error {
	return r.store.withWrite(ctx, func(d *storeData) error {
		l := r.store.findListing(d, id)
		if l == nil {
			return errors.NotFound("listing", nil)
		}
		l.Views++
		return nil
	})
}

func (r *snapshotListingRepository) SetStatus(ctx context.Context, id string, status entity.ListingStatus, reason string) (*entity.Listing, error) {
	var out *entity.Listing
	err := r.store.withWrite(ctx, func(d *storeData) error {
		l := r.store.findListing(d, id)
		if l == nil {
			return errors.NotFound("listing", nil)
		}
		l.Status = status
		if status == entity.ListingBanned {
			l.TakedownReason = reason
		}
		l.UpdatedAt = time.Now()
		out = cloneListing(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
