package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"unitrade/internal/auth"
	"unitrade/internal/domain/entity"
	"unitrade/internal/domain/repository"
	"unitrade/pkg/errors"
	"unitrade/pkg/logger"
)

type AuthUseCase struct {
	accountRepo repository.AccountRepository
	jwtSecret   string
	jwtExpiry   time.Duration
}

func NewAuthUseCase(accountRepo repository.AccountRepository, jwtSecret string, jwtExpirySeconds int64) *AuthUseCase {
	return &AuthUseCase{
		accountRepo: accountRepo,
		jwtSecret:   jwtSecret,
		jwtExpiry:   time.Duration(jwtExpirySeconds) * time.Second,
	}
}

type AuthResult struct {
	Account *entity.Account `json:"account"`
	Token   string          `json:"token"`
}

func (uc *AuthUseCase) Register(ctx context.Context, username, password string) (*AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("failed to hash password", err)
	}

	now := time.Now()
	account := &entity.Account{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Avatar:       "https://picsum.photos/seed/" + username + "/100/100",
		Role:         entity.RoleStudent,
		CreditScore:  entity.DefaultCreditScore,
		Bio:          "New user",
		JoinDate:     now.Format("2006-01-02"),
		Wishlist:     []string{},
		Following:    []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	logger.Info("Registered account %s (%s)", account.ID, account.Username)

	return uc.withToken(account)
}

func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	account, err := uc.accountRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if account.Banned {
		return nil, errors.AccountBanned()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, errors.Unauthorized("invalid credentials", err)
	}

	return uc.withToken(account)
}

// CurrentAccount revalidates a restored session. Clients holding a persisted
// session snapshot call this at startup and discard the snapshot when it
// fails.
func (uc *AuthUseCase) CurrentAccount(ctx context.Context, accountID string) (*entity.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Banned {
		return nil, errors.AccountBanned()
	}
	return account, nil
}

func (uc *AuthUseCase) withToken(account *entity.Account) (*AuthResult, error) {
	token, err := auth.GenerateToken(account.ID, account.Role, uc.jwtSecret, uc.jwtExpiry)
	if err != nil {
		return nil, errors.Internal("failed to issue session token", err)
	}
	return &AuthResult{Account: account, Token: token}, nil
}
