package catalog

import "time"

// Review is a customer review of a product.
// Rating aggregation (product.rating, product.reviewCount) happens
// server-side; the storefront only reads and submits reviews.
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName,omitempty"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValidRating reports whether a rating is within the accepted 1..5 range
func ValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}
