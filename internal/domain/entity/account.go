package entity

import (
	"time"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Default values applied at registration.
const (
	DefaultCreditScore = 600
)

type Account struct {
	ID            string   `json:"id"`
	Username      string   `json:"username"`
	PasswordHash  string   `json:"-"`
	Avatar        string   `json:"avatar"`
	Role          Role     `json:"role"`
	CreditScore   int      `json:"credit_score"`
	Bio           string   `json:"bio"`
	Banned        bool     `json:"is_banned"`
	JoinDate      string   `json:"join_date"`
	Wishlist      []string `json:"wishlist"`
	Following     []string `json:"following"`
	WalletBalance float64  `json:"wallet_balance"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InWishlist reports whether listingID is in the account's wishlist.
func (a *Account) InWishlist(listingID string) bool {
	for _, id := range a.Wishlist {
		if id == listingID {
			return true
		}
	}
	return false
}

// IsFollowing reports whether the account follows targetID.
func (a *Account) IsFollowing(targetID string) bool {
	for _, id := range a.Following {
		if id == targetID {
			return true
		}
	}
	return false
}
