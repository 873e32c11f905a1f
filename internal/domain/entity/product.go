package entity

// Product is a catalog record. SellerID is fixed at creation and is the
// identity every later mutation is authorized against.
type Product struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"` // Smallest currency unit.
	SellerID int    `json:"-"`
}

// NewProduct carries the caller-supplied fields of a product before it has
// an identity or an owner.
type NewProduct struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}
