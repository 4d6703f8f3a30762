package entity

import (
	"time"
)

type ListingStatus string

const (
	ListingActive   ListingStatus = "active"
	ListingSold     ListingStatus = "sold"
	ListingReceived ListingStatus = "received"
	ListingBanned   ListingStatus = "banned"
)

// Categories is the closed set of listing categories.
var Categories = []string{"Books", "Electronics", "Furniture", "Clothing", "Sports", "Others"}

type Listing struct {
	ID          string        `json:"id"`
	SellerID    string        `json:"seller_id"`
	Title       string        `json:"title"`
	Price       float64       `json:"price"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Image       string        `json:"image"`
	Status      ListingStatus `json:"status"`
	Views       int           `json:"view_count"`
	Tags        []string      `json:"tags"`

	// BuyerID is bound on purchase and retained permanently, even if the
	// status is later changed by moderation.
	BuyerID        string `json:"buyer_id,omitempty"`
	TakedownReason string `json:"takedown_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Completed reports whether the listing has been sold (and possibly received).
func (l *Listing) Completed() bool {
	return l.Status == ListingSold || l.Status == ListingReceived
}
