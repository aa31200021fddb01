package model

// Category classifies catalog products. Deletion is blocked while any
// product still references it.
type Category struct {
	Number int    `gorm:"column:category_number;primaryKey;autoIncrement"`
	Name   string `gorm:"column:category_name;size:50;not null"`
}

func (Category) TableName() string { return "category" }
