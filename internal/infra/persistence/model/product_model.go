package model

// ProductModel mirrors the 'products' table. SellerID references accounts.id
// and is written once at creation; no mutation path touches it.
type ProductModel struct {
	ID       int    `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"type:varchar(255);not null"`
	Price    int    `gorm:"not null"`
	SellerID int    `gorm:"index;not null"`

	Seller *AccountModel `gorm:"foreignKey:SellerID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
