package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitrade/internal/domain/entity"
	domainrepo "unitrade/internal/domain/repository"
	"unitrade/pkg/errors"
)

// newTestStore opens a store over an empty temp directory without the demo
// seed, so each test starts from a blank dataset.
func newTestStore(t *testing.T) *SnapshotStore {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, accountsFile), []byte("[]"), 0o600))
	store, err := OpenSnapshotStore(dir)
	require.NoError(t, err)
	return store
}

func testAccount(id, username string) *entity.Account {
	now := time.Now()
	return &entity.Account{
		ID:          id,
		Username:    username,
		Role:        entity.RoleStudent,
		CreditScore: entity.DefaultCreditScore,
		Wishlist:    []string{},
		Following:   []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func testListing(id, sellerID string, price float64) *entity.Listing {
	now := time.Now()
	return &entity.Listing{
		ID:        id,
		SellerID:  sellerID,
		Title:     "Listing " + id,
		Price:     price,
		Category:  "Books",
		Status:    entity.ListingActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestOpenSnapshotStoreSeedsEmptyDir(t *testing.T) {
	dir := t.TempDir()
	store, err := OpenSnapshotStore(dir)
	require.NoError(t, err)

	repo := NewSnapshotAccountRepository(store)
	account, err := repo.GetByUsername(context.Background(), "student_alice")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStudent, account.Role)

	// All four snapshot files exist after the first flush.
	for _, f := range []string{accountsFile, listingsFile, messagesFile, reviewsFile} {
		_, err := os.Stat(filepath.Join(dir, f))
		assert.NoError(t, err, f)
	}
}

func TestSnapshotStoreReloadsPersistedData(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, accountsFile), []byte("[]"), 0o600))

	store, err := OpenSnapshotStore(dir)
	require.NoError(t, err)
	repo := NewSnapshotAccountRepository(store)
	a := testAccount("u1", "alice")
	a.PasswordHash = "$2a$10$somebcrypthashvalue"
	require.NoError(t, repo.Create(context.Background(), a))

	reopened, err := OpenSnapshotStore(dir)
	require.NoError(t, err)
	account, err := NewSnapshotAccountRepository(reopened).GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "alice", account.Username)
	// The response JSON hides the hash; the snapshot file must not.
	assert.Equal(t, "$2a$10$somebcrypthashvalue", account.PasswordHash)
}

func TestSeededPasswordHashSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	store, err := OpenSnapshotStore(dir)
	require.NoError(t, err)

	seeded, err := NewSnapshotAccountRepository(store).GetByUsername(context.Background(), "student_alice")
	require.NoError(t, err)
	require.NotEmpty(t, seeded.PasswordHash)

	reopened, err := OpenSnapshotStore(dir)
	require.NoError(t, err)
	account, err := NewSnapshotAccountRepository(reopened).GetByUsername(context.Background(), "student_alice")
	require.NoError(t, err)
	assert.Equal(t, seeded.PasswordHash, account.PasswordHash)
}

func TestAccountCreateRejectsDuplicateUsername(t *testing.T) {
	repo := NewSnapshotAccountRepository(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testAccount("u1", "alice")))

	err := repo.Create(ctx, testAccount("u2", "alice"))
	assert.True(t, errors.Is(err, "DUPLICATE_NAME"))

	// Usernames are unique regardless of case.
	err = repo.Create(ctx, testAccount("u3", "ALICE"))
	assert.True(t, errors.Is(err, "DUPLICATE_NAME"))
}

func TestGetByUsernameMatchesCaseInsensitively(t *testing.T) {
	repo := NewSnapshotAccountRepository(newTestStore(t))
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, testAccount("u1", "Alice")))

	// The name is reserved regardless of case, so the lookup must find it
	// regardless of case too.
	account, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "u1", account.ID)

	_, err = repo.GetByUsername(ctx, "bob")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestToggleWishlistIsAnInvolution(t *testing.T) {
	repo := NewSnapshotAccountRepository(newTestStore(t))
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, testAccount("u1", "alice")))

	account, err := repo.ToggleWishlist(ctx, "u1", "l1")
	require.NoError(t, err)
	assert.Equal(t, []string{"l1"}, account.Wishlist)

	account, err = repo.ToggleWishlist(ctx, "u1", "l1")
	require.NoError(t, err)
	assert.Empty(t, account.Wishlist)

	_, err = repo.ToggleWishlist(ctx, "missing", "l1")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestToggleFollowIsAnInvolution(t *testing.T) {
	repo := NewSnapshotAccountRepository(newTestStore(t))
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, testAccount("u1", "alice")))

	account, err := repo.ToggleFollow(ctx, "u1", "u2")
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, account.Following)

	account, err = repo.ToggleFollow(ctx, "u1", "u2")
	require.NoError(t, err)
	assert.Empty(t, account.Following)
}

func TestDebitWalletRejectsOverdraft(t *testing.T) {
	store := newTestStore(t)
	repo := NewSnapshotAccountRepository(store)
	ctx := context.Background()

	a := testAccount("u1", "alice")
	a.WalletBalance = 50
	require.NoError(t, repo.Create(ctx, a))

	account, err := repo.DebitWallet(ctx, "u1", 30)
	require.NoError(t, err)
	assert.Equal(t, 20.0, account.WalletBalance)

	_, err = repo.DebitWallet(ctx, "u1", 21)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	// A failed debit leaves the balance untouched.
	account, err = repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 20.0, account.WalletBalance)
}

func TestPurchaseMarksSoldAndBindsBuyer(t *testing.T) {
	store := newTestStore(t)
	listings := NewSnapshotListingRepository(store)
	ctx := context.Background()

	require.NoError(t, listings.Create(ctx, testListing("p1", "seller", 45)))

	listing, err := listings.Purchase(ctx, "p1", "buyer-b")
	require.NoError(t, err)
	assert.Equal(t, entity.ListingSold, listing.Status)
	assert.Equal(t, "buyer-b", listing.BuyerID)

	// A second purchase attempt fails and leaves the listing unchanged.
	_, err = listings.Purchase(ctx, "p1", "buyer-c")
	assert.True(t, errors.Is(err, "NOT_AVAILABLE"))

	listing, err = listings.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "buyer-b", listing.BuyerID)
	assert.Equal(t, entity.ListingSold, listing.Status)
}

func TestPurchaseMissingListing(t *testing.T) {
	listings := NewSnapshotListingRepository(newTestStore(t))
	_, err := listings.Purchase(context.Background(), "nope", "buyer")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestConfirmReceiptCreditsSellerWallet(t *testing.T) {
	store := newTestStore(t)
	accounts := NewSnapshotAccountRepository(store)
	listings := NewSnapshotListingRepository(store)
	ctx := context.Background()

	require.NoError(t, accounts.Create(ctx, testAccount("seller", "sally")))
	require.NoError(t, listings.Create(ctx, testListing("p1", "seller", 45)))

	_, err := listings.Purchase(ctx, "p1", "buyer")
	require.NoError(t, err)

	// Only the buyer bound at purchase may confirm.
	_, err = listings.ConfirmReceipt(ctx, "p1", "someone-else")
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	listing, err := listings.ConfirmReceipt(ctx, "p1", "buyer")
	require.NoError(t, err)
	assert.Equal(t, entity.ListingReceived, listing.Status)

	seller, err := accounts.GetByID(ctx, "seller")
	require.NoError(t, err)
	assert.Equal(t, 45.0, seller.WalletBalance)

	// Receipt is one-shot.
	_, err = listings.ConfirmReceipt(ctx, "p1", "buyer")
	assert.True(t, errors.Is(err, "NOT_AVAILABLE"))
}

func TestConfirmReceiptRequiresSoldStatus(t *testing.T) {
	store := newTestStore(t)
	listings := NewSnapshotListingRepository(store)
	ctx := context.Background()

	require.NoError(t, listings.Create(ctx, testListing("p1", "seller", 10)))

	_, err := listings.ConfirmReceipt(ctx, "p1", "buyer")
	assert.True(t, errors.Is(err, "NOT_AVAILABLE"))
}

func TestSetStatusRecordsTakedownReason(t *testing.T) {
	store := newTestStore(t)
	listings := NewSnapshotListingRepository(store)
	ctx := context.Background()

	require.NoError(t, listings.Create(ctx, testListing("p1", "seller", 10)))

	listing, err := listings.SetStatus(ctx, "p1", entity.ListingBanned, "prohibited item")
	require.NoError(t, err)
	assert.Equal(t, entity.ListingBanned, listing.Status)
	assert.Equal(t, "prohibited item", listing.TakedownReason)
}

func TestIncrementViews(t *testing.T) {
	store := newTestStore(t)
	listings := NewSnapshotListingRepository(store)
	ctx := context.Background()

	require.NoError(t, listings.Create(ctx, testListing("p1", "seller", 10)))
	require.NoError(t, listings.IncrementViews(ctx, "p1"))
	require.NoError(t, listings.IncrementViews(ctx, "p1"))

	listing, err := listings.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, listing.Views)
}

func TestReviewCreateAdjustsSellerCredit(t *testing.T) {
	store := newTestStore(t)
	accounts := NewSnapshotAccountRepository(store)
	reviews := NewSnapshotReviewRepository(store)
	ctx := context.Background()

	require.NoError(t, accounts.Create(ctx, testAccount("seller", "sally")))

	cases := []struct {
		rating int
		delta  int
	}{
		{5, 10},
		{4, 10},
		{3, 0},
		{2, -10},
		{1, -10},
	}
	score := entity.DefaultCreditScore
	for i, tc := range cases {
		err := reviews.Create(ctx, &entity.Review{
			ID:        "r" + string(rune('0'+i)),
			ListingID: "p" + string(rune('0'+i)),
			BuyerID:   "buyer",
			SellerID:  "seller",
			Rating:    tc.rating,
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)
		score += tc.delta

		seller, err := accounts.GetByID(ctx, "seller")
		require.NoError(t, err)
		assert.Equal(t, score, seller.CreditScore, "rating %d", tc.rating)
	}
}

func TestReviewCreateRejectsDuplicatePerBuyerListing(t *testing.T) {
	store := newTestStore(t)
	reviews := NewSnapshotReviewRepository(store)
	ctx := context.Background()

	first := &entity.Review{ID: "r1", ListingID: "p1", BuyerID: "buyer", SellerID: "seller", Rating: 5, CreatedAt: time.Now()}
	require.NoError(t, reviews.Create(ctx, first))

	dup := &entity.Review{ID: "r2", ListingID: "p1", BuyerID: "buyer", SellerID: "seller", Rating: 1, CreatedAt: time.Now()}
	err := reviews.Create(ctx, dup)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestReviewListBySellerNewestFirst(t *testing.T) {
	store := newTestStore(t)
	reviews := NewSnapshotReviewRepository(store)
	ctx := context.Background()

	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, reviews.Create(ctx, &entity.Review{ID: "r1", ListingID: "p1", BuyerID: "b1", SellerID: "seller", Rating: 4, CreatedAt: base}))
	require.NoError(t, reviews.Create(ctx, &entity.Review{ID: "r2", ListingID: "p2", BuyerID: "b2", SellerID: "seller", Rating: 3, CreatedAt: base.Add(time.Hour)}))

	got, err := reviews.ListBySeller(ctx, "seller")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "r2", got[0].ID)
	assert.Equal(t, "r1", got[1].ID)
}

func TestAccountListFilterAndPagination(t *testing.T) {
	store := newTestStore(t)
	repo := NewSnapshotAccountRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testAccount("u1", "alice")))
	require.NoError(t, repo.Create(ctx, testAccount("u2", "alina")))
	bob := testAccount("u3", "bob")
	require.NoError(t, repo.Create(ctx, bob))
	_, err := repo.SetBanned(ctx, "u3", true)
	require.NoError(t, err)

	accounts, total, err := repo.List(ctx, domainrepo.AccountFilter{Search: "ali"}, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, accounts, 1)
	assert.Equal(t, "alice", accounts[0].Username)

	banned := true
	accounts, total, err = repo.List(ctx, domainrepo.AccountFilter{Banned: &banned}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "bob", accounts[0].Username)
}
