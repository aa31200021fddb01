package model

// Product is a catalog entry (a kind of product), distinct from a priced and
// stocked shelf item (StoreProduct).
type Product struct {
	ID              int     `gorm:"column:id_product;primaryKey;autoIncrement"`
	CategoryNumber  int     `gorm:"column:category_number;not null;index"`
	Name            string  `gorm:"column:product_name;size:50;not null;index"`
	Characteristics string  `gorm:"size:100;not null"`
	Manufacturer    *string `gorm:"size:50"`

	Category *Category `gorm:"foreignKey:CategoryNumber;constraint:OnDelete:RESTRICT"`
}

func (Product) TableName() string { return "product" }
