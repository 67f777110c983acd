package catalog

import "github.com/shopspring/decimal"

// Product represents a catalog product. Pricing lives on the variant
// (ProductItem), not on the product itself.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	CategoryID  int64  `json:"categoryId,omitempty"`
}

// ProductItem represents a purchasable variant of a product (a SKU with its
// own price and stock level)
type ProductItem struct {
	ID              int64           `json:"id"`
	ProductID       int64           `json:"productId"`
	SKU             string          `json:"sku,omitempty"`
	ImageURL        string          `json:"imageUrl,omitempty"`
	Price           decimal.Decimal `json:"price"`
	QuantityInStock int             `json:"quantityInStock"`
}

// InStock reports whether the variant has stock available
func (p ProductItem) InStock() bool {
	return p.QuantityInStock > 0
}

// HomeSection identifies one of the curated product listings on the home page
type HomeSection string

const (
	HomeSectionNew        HomeSection = "new"
	HomeSectionTrend      HomeSection = "trend"
	HomeSectionBestSeller HomeSection = "best-seller"
	HomeSectionFeatured   HomeSection = "featured"
)

// IsValid checks if the section is a known HomeSection
func (s HomeSection) IsValid() bool {
	switch s {
	case HomeSectionNew, HomeSectionTrend, HomeSectionBestSeller, HomeSectionFeatured:
		return true
	}
	return false
}
