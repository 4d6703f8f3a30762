package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"unitrade/internal/domain/entity"
	"unitrade/pkg/logger"
)

// Snapshot filenames, one ordered sequence per collection.
const (
	accountsFile = "accounts.json"
	listingsFile = "listings.json"
	messagesFile = "messages.json"
	reviewsFile  = "reviews.json"
)

type storeData struct {
	Accounts []*entity.Account
	Listings []*entity.Listing
	Messages []*entity.Message
	Reviews  []*entity.Review
}

// storedAccount is the on-disk shape of an account. The entity hides the
// password hash from JSON so it never leaks into API responses; the snapshot
// file must keep it or logins break after a restart.
type storedAccount struct {
	*entity.Account
	PasswordHash string `json:"password_hash"`
}

func toStoredAccounts(accounts []*entity.Account) []*storedAccount {
	out := make([]*storedAccount, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, &storedAccount{Account: a, PasswordHash: a.PasswordHash})
	}
	return out
}

func fromStoredAccounts(stored []*storedAccount) []*entity.Account {
	out := make([]*entity.Account, 0, len(stored))
	for _, sa := range stored {
		if sa.Account == nil {
			continue
		}
		sa.Account.PasswordHash = sa.PasswordHash
		out = append(out, sa.Account)
	}
	return out
}

// SnapshotStore holds the four collections in memory and rewrites all four
// snapshot files after every mutation. All mutations run under a single
// writer lock, so each mutate-then-flush sequence is atomic with respect to
// other callers.
type SnapshotStore struct {
	mu   sync.RWMutex
	dir  string
	data *storeData
}

func OpenSnapshotStore(dir string) (*SnapshotStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	s := &SnapshotStore{dir: dir, data: &storeData{}}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SnapshotStore) load() error {
	loaded := false
	read := func(file string, target interface{}) error {
		raw, err := os.ReadFile(filepath.Join(s.dir, file))
		if os.IsNotExist(err) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return err
		}
		loaded = true
		return nil
	}

	var stored []*storedAccount
	if err := read(accountsFile, &stored); err != nil {
		return err
	}
	s.data.Accounts = fromStoredAccounts(stored)
	for file, target := range map[string]interface{}{
		listingsFile: &s.data.Listings,
		messagesFile: &s.data.Messages,
		reviewsFile:  &s.data.Reviews,
	} {
		if err := read(file, target); err != nil {
			return err
		}
	}

	if !loaded {
		logger.Info("No snapshot files in %s, seeding demo data", s.dir)
		s.data = seedData()
	}
	return s.flushLocked()
}

func (s *SnapshotStore) flushLocked() error {
	for file, source := range map[string]interface{}{
		accountsFile: toStoredAccounts(s.data.Accounts),
		listingsFile: s.data.Listings,
		messagesFile: s.data.Messages,
		reviewsFile:  s.data.Reviews,
	} {
		raw, err := json.MarshalIndent(source, "", "  ")
		if err != nil {
			return err
		}
		path := filepath.Join(s.dir, file)
		tmp := path + ".tmp"
		if err := os.WriteFile(tmp, raw, 0o600); err != nil {
			return err
		}
		if err := os.Rename(tmp, path); err != nil {
			return err
		}
	}
	return nil
}

func (s *SnapshotStore) withWrite(ctx context.Context, fn func(*storeData) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	if err := fn(s.data); err != nil {
		return err
	}
	return s.flushLocked()
}

func (s *SnapshotStore) withRead(fn func(*storeData) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.data)
}

func (s *SnapshotStore) findAccount(d *storeData, id string) *entity.Account {
	for _, a := range d.Accounts {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (s *SnapshotStore) findListing(d *storeData, id string) *entity.Listing {
	for _, l := range d.Listings {
		if l.ID == id {
			return l
		}
	}
	return nil
}

func cloneAccount(a *entity.Account) *entity.Account {
	out := *a
	out.Wishlist = append([]string(nil), a.Wishlist...)
	out.Following = append([]string(nil), a.Following...)
	return &out
}

func cloneListing(l *entity.Listing) *entity.Listing {
	out := *l
	out.Tags = append([]string(nil), l.Tags...)
	return &out
}

func cloneMessage(m *entity.Message) *entity.Message {
	out := *m
	return &out
}

func cloneReview(r *entity.Review) *entity.Review {
	out := *r
	return &out
}
