package identity

// Address is a saved shipping address from the user's address book. The
// checkout form can be prefilled from the default one.
type Address struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	IsDefault bool   `json:"isDefault,omitempty"`
}
