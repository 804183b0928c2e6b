package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID   int64
	Name string
	Slug string
	Icon string
}

type Size struct {
	ID    int64
	Label string
}

type Product struct {
	ID         int64
	CategoryID int64
	Name       string
	Slug       string
	Thumbnail  string
	About      string
	Price      decimal.Decimal
	IsPopular  bool
	CreatedAt  time.Time

	// Sizes are ordered by size id.
	Sizes []Size
}

// HasSize reports whether sizeID is one of the declared sizes.
func HasSize(sizes []Size, sizeID int64) bool {
	for _, s := range sizes {
		if s.ID == sizeID {
			return true
		}
	}
	return false
}

type FrontPageData struct {
	Categories      []Category
	PopularProducts []Product
	NewProducts     []Product
}
