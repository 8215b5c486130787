package models

// Product is a single inventory record. Deletion is a soft delete: the row
// stays in the table with IsDeleted set, and default reads exclude it.
type Product struct {
	ProductID   uint    `gorm:"primaryKey"`
	ProductName string  `gorm:"size:255;not null"`
	Quantity    int64   `gorm:"not null;default:0"`
	Price       float64 `gorm:"type:numeric(10,2);not null;default:0"`
	IsDeleted   bool    `gorm:"not null;default:false;index"`
}

func (Product) TableName() string {
	return "inventory"
}
