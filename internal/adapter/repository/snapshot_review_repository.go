package repository

import (
	"context"
	"sort"
	"time"

	"unitrade/internal/domain/entity"
	"unitrade/internal/domain/repository"
	"unitrade/pkg/errors"
	"unitrade/pkg/logger"
)

type snapshotReviewRepository struct {
	store *SnapshotStore
}

func NewSnapshotReviewRepository(store *SnapshotStore) repository.ReviewRepository {
	return &snapshotReviewRepository{store: store}
}

func (r *snapshotReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return r.store.withWrite(ctx, func(d *storeData) error {
		for _, existing := range d.Reviews {
			if existing.BuyerID == review.BuyerID && existing.ListingID == review.ListingID {
				return errors.Conflict("review for this listing already exists")
			}
		}
		d.Reviews = append(d.Reviews, cloneReview(review))

		if seller := r.store.findAccount(d, review.SellerID); seller != nil {
			seller.CreditScore += entity.CreditDelta(review.Rating)
			seller.UpdatedAt = time.Now()
		} else {
			logger.Warn("Seller %s missing, review %s stored without credit adjustment", review.SellerID, review.ID)
		}
		return nil
	})
}

func (r *snapshotReviewRepository) GetByBuyerAndListing(ctx context.Context, buyerID, listingID string) (*entity.Review, error) {
	var out *entity.Review
	r.store.withRead(func(d *storeData) error {
		for _, rv := range d.Reviews {
			if rv.BuyerID == buyerID && rv.ListingID == listingID {
				out = cloneReview(rv)
				break
			}
		}
		return nil
	})
	if out == nil {
		return nil, errors.NotFound("review", nil)
	}
	return out, nil
}

func (r *snapshotReviewRepository) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Review, error) {
	var out []*entity.Review
	r.store.withRead(func(d *storeData) error {
		for _, rv := range d.Reviews {
			if rv.SellerID == sellerID {
				out = append(out, cloneReview(rv))
			}
		}
		return nil
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
