package entity

type FoodVendor struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Categories   string `json:"categories"` // comma separated
	OpeningHours string `json:"openingHours"`
	Location     string `json:"location"`

	Menu []MenuItem `gorm:"foreignKey:VendorID" json:"-"`
}
