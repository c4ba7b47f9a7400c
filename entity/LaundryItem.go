package entity

// LaundryItem is an entry in the fixed laundry price list.
type LaundryItem struct {
	ID    string `gorm:"primaryKey" json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}
