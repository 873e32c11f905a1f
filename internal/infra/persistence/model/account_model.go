// Package model holds the GORM persistence models mirroring the database schema.
package model

// AccountModel mirrors the 'accounts' table.
type AccountModel struct {
	ID       int    `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"type:varchar(255);unique;not null"`
	Password string `gorm:"type:varchar(255);not null"`
	Role     string `gorm:"type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
