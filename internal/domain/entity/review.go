package entity

import (
	"time"
)

// Review is left by the buyer of a completed listing. Creating one adjusts
// the seller's credit score: +10 for rating >= 4, -10 for rating <= 2.
type Review struct {
	ID        string    `json:"id"`
	SellerID  string    `json:"seller_id"`
	BuyerID   string    `json:"buyer_id"`
	BuyerName string    `json:"buyer_name"`
	ListingID string    `json:"listing_id"`
	Rating    int       `json:"rating"` // 1-5
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CreditDelta is the credit-score adjustment a rating applies to the seller.
func CreditDelta(rating int) int {
	switch {
	case rating >= 4:
		return 10
	case rating <= 2:
		return -10
	default:
		return 0
	}
}
