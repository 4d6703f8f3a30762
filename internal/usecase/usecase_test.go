package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	adapterrepo "unitrade/internal/adapter/repository"
	"unitrade/internal/domain/entity"
	"unitrade/internal/domain/repository"
)

// testEnv wires the use cases over a blank snapshot store in a temp
// directory, the same composition main performs.
type testEnv struct {
	accounts repository.AccountRepository
	listings repository.ListingRepository
	messages repository.MessageRepository
	reviews  repository.ReviewRepository

	auth    *AuthUseCase
	user    *UserUseCase
	message *MessageUseCase
	listing *ListingUseCase
	review  *ReviewUseCase
	admin   *AdminUseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "accounts.json"), []byte("[]"), 0o600))

	store, err := adapterrepo.OpenSnapshotStore(dir)
	require.NoError(t, err)

	env := &testEnv{
		accounts: adapterrepo.NewSnapshotAccountRepository(store),
		listings: adapterrepo.NewSnapshotListingRepository(store),
		messages: adapterrepo.NewSnapshotMessageRepository(store),
		reviews:  adapterrepo.NewSnapshotReviewRepository(store),
	}
	env.auth = NewAuthUseCase(env.accounts, "test-secret", 3600)
	env.user = NewUserUseCase(env.accounts, env.listings, env.reviews)
	env.message = NewMessageUseCase(env.messages, env.accounts, nil)
	env.listing = NewListingUseCase(env.listings, env.accounts, env.message)
	env.review = NewReviewUseCase(env.reviews, env.listings, env.accounts)
	env.admin = NewAdminUseCase(env.accounts, env.listings)
	return env
}

func (e *testEnv) addAccount(t *testing.T, id, username string) *entity.Account {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	account := &entity.Account{
		ID:           id,
		Username:     username,
		PasswordHash: string(hash),
		Role:         entity.RoleStudent,
		CreditScore:  entity.DefaultCreditScore,
		Wishlist:     []string{},
		Following:    []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, e.accounts.Create(context.Background(), account))
	return account
}

func (e *testEnv) addListing(t *testing.T, id, sellerID string, price float64, category string) *entity.Listing {
	t.Helper()
	now := time.Now()
	listing := &entity.Listing{
		ID:        id,
		SellerID:  sellerID,
		Title:     "Listing " + id,
		Price:     price,
		Category:  category,
		Status:    entity.ListingActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, e.listings.Create(context.Background(), listing))
	return listing
}
