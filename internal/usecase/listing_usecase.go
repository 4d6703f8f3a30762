package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"unitrade/internal/catalog"
	"unitrade/internal/domain/entity"
	"unitrade/internal/domain/repository"
	"unitrade/pkg/logger"
)

const relatedLimit = 3

type ListingUseCase struct {
	listingRepo repository.ListingRepository
	accountRepo repository.AccountRepository
	messages    *MessageUseCase
}

func NewListingUseCase(
	listingRepo repository.ListingRepository,
	accountRepo repository.AccountRepository,
	messages *MessageUseCase,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		accountRepo: accountRepo,
		messages:    messages,
	}
}

type CreateListingInput struct {
	Title       string
	Price       float64
	Description string
	Category    string
	Image       string
	Tags        []string
}

func (uc *ListingUseCase) Create(ctx context.Context, sellerID string, input CreateListingInput) (*entity.Listing, error) {
	if _, err := uc.accountRepo.GetByID(ctx, sellerID); err != nil {
		return nil, err
	}

	now := time.Now()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(now.UnixNano())), 0)
	listing := &entity.Listing{
		ID:          ulid.MustNew(ulid.Timestamp(now), entropy).String(),
		SellerID:    sellerID,
		Title:       input.Title,
		Price:       input.Price,
		Description: input.Description,
		Category:    input.Category,
		Image:       input.Image,
		Status:      entity.ListingActive,
		Tags:        input.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}
	logger.Info("Account %s created listing %s", sellerID, listing.ID)
	return listing, nil
}

// ListingView is a catalog row with the seller summary the list view shows.
type ListingView struct {
	*entity.Listing
	SellerName   string `json:"seller_name,omitempty"`
	SellerAvatar string `json:"seller_avatar,omitempty"`
}

// List runs the catalog query over the full collection and decorates each
// row with seller display info. A seller that fails to resolve degrades to
// an empty summary instead of failing the list.
func (uc *ListingUseCase) List(ctx context.Context, params catalog.Params) ([]*ListingView, error) {
	listings, err := uc.listingRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	results := catalog.Query(listings, params)

	sellers := make(map[string]*entity.Account)
	views := make([]*ListingView, 0, len(results))
	for _, l := range results {
		view := &ListingView{Listing: l}
		seller, ok := sellers[l.SellerID]
		if !ok {
			seller, err = uc.accountRepo.GetByID(ctx, l.SellerID)
			if err != nil {
				logger.Warn("Seller %s for listing %s did not resolve: %v", l.SellerID, l.ID, err)
				seller = nil
			}
			sellers[l.SellerID] = seller
		}
		if seller != nil {
			view.SellerName = seller.Username
			view.SellerAvatar = seller.Avatar
		}
		views = append(views, view)
	}
	return views, nil
}

func (uc *ListingUseCase) Get(ctx context.Context, id string) (*entity.Listing, error) {
	return uc.listingRepo.GetByID(ctx, id)
}

// Related returns up to three other active listings in the same category.
func (uc *ListingUseCase) Related(ctx context.Context, category, excludeID string) ([]*entity.Listing, error) {
	listings, err := uc.listingRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Query(listings, catalog.Params{
		Category:      category,
		ExcludeID:     excludeID,
		HideCompleted: true,
		Limit:         relatedLimit,
	}), nil
}

func (uc *ListingUseCase) IncrementView(ctx context.Context, id string) error {
	return uc.listingRepo.IncrementViews(ctx, id)
}

func (uc *ListingUseCase) Purchase(ctx context.Context, listingID, buyerID string) (*entity.Listing, error) {
	listing, err := uc.listingRepo.Purchase(ctx, listingID, buyerID)
	if err != nil {
		return nil, err
	}
	logger.Info("Listing %s purchased by %s", listingID, buyerID)

	// Best-effort seller notification; the purchase already committed.
	notice := fmt.Sprintf("Your listing %q has been purchased.", listing.Title)
	if _, err := uc.messages.Send(ctx, buyerID, listing.SellerID, notice, entity.MessageSystem); err != nil {
		logger.Warn("Failed to notify seller %s of purchase: %v", listing.SellerID, err)
	}
	return listing, nil
}

func (uc *ListingUseCase) ConfirmReceipt(ctx context.Context, listingID, buyerID string) (*entity.Listing, error) {
	listing, err := uc.listingRepo.ConfirmReceipt(ctx, listingID, buyerID)
	if err != nil {
		return nil, err
	}
	logger.Info("Listing %s receipt confirmed, seller %s credited %.2f", listingID, listing.SellerID, listing.Price)

	notice := fmt.Sprintf("The buyer confirmed receipt of %q. $%.2f was credited to your wallet.", listing.Title, listing.Price)
	if _, err := uc.messages.Send(ctx, buyerID, listing.SellerID, notice, entity.MessageSystem); err != nil {
		logger.Warn("Failed to notify seller %s of receipt: %v", listing.SellerID, err)
	}
	return listing, nil
}
