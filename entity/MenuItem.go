package entity

type MenuItem struct {
	ID          string `gorm:"primaryKey" json:"id"`
	VendorID    string `gorm:"index" json:"vendorId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	IsVeg       bool   `json:"isVeg"`
	IsAvailable bool   `json:"isAvailable"`
}
