package catalog

// Category represents a product category as served by the backend.
// Top-level categories have no parent.
type Category struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	ImageURL         string `json:"imageUrl,omitempty"`
	ParentCategoryID *int64 `json:"parentCategoryId,omitempty"`
}

// IsParent reports whether the category is a top-level category
func (c Category) IsParent() bool {
	return c.ParentCategoryID == nil
}
