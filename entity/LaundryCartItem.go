package entity

// LaundryCartItem is a laundry order line with a price snapshot, mirroring
// OrderItem for the laundry flow.
type LaundryCartItem struct {
	ID      uint   `gorm:"primaryKey" json:"-"`
	OrderID string `gorm:"index" json:"-"`

	ItemID   string `json:"itemId"` // laundry catalog id
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}
