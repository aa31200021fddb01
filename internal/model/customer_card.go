package model

// CustomerCard is a loyalty card carrying a whole-percent discount (0–100).
// Card numbers are 'C' + 12 digits, generated server-side.
type CustomerCard struct {
	Number     string  `gorm:"column:card_number;primaryKey;size:13"`
	Surname    string  `gorm:"column:cust_surname;size:50;not null;index"`
	Name       string  `gorm:"column:cust_name;size:50;not null"`
	Patronymic *string `gorm:"column:cust_patronymic;size:50"`
	Phone      string  `gorm:"column:phone_number;size:13;not null"`
	City       *string `gorm:"size:50"`
	Street     *string `gorm:"size:50"`
	ZipCode    *string `gorm:"column:zip_code;size:9"`
	Percent    int     `gorm:"not null;check:percent >= 0 AND percent <= 100"`
}

func (CustomerCard) TableName() string { return "customer_card" }
