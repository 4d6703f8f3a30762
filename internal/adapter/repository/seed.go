package repository

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"unitrade/internal/domain/entity"
)

// seedData builds the demo fixture used when the snapshot directory is
// empty. All demo accounts share the password "unitrade".
func seedData() *storeData {
	hash, _ := bcrypt.GenerateFromPassword([]byte("unitrade"), bcrypt.DefaultCost)

	account := func(id, username string, role entity.Role, credit int, bio, joined string) *entity.Account {
		t, _ := time.Parse("2006-01-02", joined)
		return &entity.Account{
			ID:           id,
			Username:     username,
			PasswordHash: string(hash),
			Avatar:       "https://picsum.photos/seed/" + username + "/100/100",
			Role:         role,
			CreditScore:  credit,
			Bio:          bio,
			JoinDate:     joined,
			Wishlist:     []string{},
			Following:    []string{},
			CreatedAt:    t,
			UpdatedAt:    t,
		}
	}

	listing := func(id, sellerID, title string, price float64, desc, category, seed string, status entity.ListingStatus, views int, created string, tags []string, buyerID string) *entity.Listing {
		t, _ := time.Parse(time.RFC3339, created)
		return &entity.Listing{
			ID:          id,
			SellerID:    sellerID,
			Title:       title,
			Price:       price,
			Description: desc,
			Category:    category,
			Image:       "https://picsum.photos/seed/" + seed + "/400/300",
			Status:      status,
			Views:       views,
			Tags:        tags,
			BuyerID:     buyerID,
			CreatedAt:   t,
			UpdatedAt:   t,
		}
	}

	now := time.Now()

	return &storeData{
		Accounts: []*entity.Account{
			account("u1", "admin1", entity.RoleAdmin, 999, "Super Admin", "2023-01-01"),
			account("u2", "admin2", entity.RoleAdmin, 999, "Super Admin", "2023-01-02"),
			account("u3", "student_alice", entity.RoleStudent, 750, "CS Major, love reading.", "2023-09-01"),
			account("u4", "student_bob", entity.RoleStudent, 680, "Selling my old guitar.", "2023-09-05"),
			account("u5", "charlie_design", entity.RoleStudent, 820, "Graphic Design student.", "2023-09-10"),
		},
		Listings: []*entity.Listing{
			listing("p1", "u3", "Calculus Early Transcendentals", 45, "Used for one semester. Good condition.", "Books", "book", entity.ListingSold, 120, "2023-10-10T10:00:00Z", []string{"textbook", "math"}, "u4"),
			listing("p2", "u4", "Acoustic Guitar Yamaha", 150, "Great for beginners. Includes case.", "Others", "guitar", entity.ListingActive, 340, "2023-10-12T14:30:00Z", []string{"music", "instrument"}, ""),
			listing("p3", "u3", "IKEA Desk Lamp", 15, "White desk lamp, bulb included.", "Furniture", "lamp", entity.ListingActive, 45, "2023-10-15T09:15:00Z", []string{"home", "light"}, ""),
			listing("p4", "u4", "Sony WH-1000XM4", 200, "Noise cancelling headphones. Barely used.", "Electronics", "sony", entity.ListingSold, 800, "2023-10-01T11:20:00Z", []string{"tech", "audio"}, "u3"),
			listing("p5", "u5", "Logitech MX Master 3", 80, "Best mouse for productivity.", "Electronics", "mouse", entity.ListingActive, 210, "2023-10-20T16:00:00Z", []string{"tech", "computer"}, ""),
			listing("p6", "u5", "Wacom Intuos Tablet", 60, "Small size, perfect for digital art beginners.", "Electronics", "tablet", entity.ListingActive, 150, "2023-10-21T10:00:00Z", []string{"art", "design"}, ""),
			listing("p7", "u3", "Introduction to Algorithms", 55, "The CLRS book. Heavy but essential.", "Books", "algo", entity.ListingActive, 95, "2023-10-22T08:30:00Z", []string{"textbook", "cs"}, ""),
			listing("p8", "u4", "Nike Running Shoes (Size 10)", 40, "Worn twice, wrong size for me.", "Clothing", "shoes", entity.ListingActive, 300, "2023-10-23T12:00:00Z", []string{"fashion", "sports"}, ""),
			listing("p9", "u5", "Scientific Calculator", 12, "Casio fx-991EX.", "Electronics", "calc", entity.ListingActive, 130, "2023-11-03T11:30:00Z", []string{"school", "math"}, ""),
		},
		Messages: []*entity.Message{
			{
				ID:         "m1",
				SenderID:   "u4",
				ReceiverID: "u3",
				Content:    "Is the math book still available?",
				Kind:       entity.MessageChat,
				Read:       true,
				CreatedAt:  now.Add(-3 * time.Hour),
			},
			{
				ID:         "m2",
				SenderID:   "u3",
				ReceiverID: "u4",
				Content:    "Yes it is!",
				Kind:       entity.MessageChat,
				Read:       true,
				CreatedAt:  now.Add(-150 * time.Minute),
			},
		},
		Reviews: []*entity.Review{
			{
				ID:        "r1",
				SellerID:  "u3",
				BuyerID:   "u4",
				BuyerName: "student_bob",
				ListingID: "p1",
				Rating:    5,
				Content:   "Great seller! Item as described.",
				CreatedAt: now.Add(-48 * time.Hour),
			},
		},
	}
}
