package entity

// OrderItem is a food order line. Name and Price are snapshots taken when the
// item was added to the cart; later catalog changes do not touch them.
type OrderItem struct {
	ID      uint   `gorm:"primaryKey" json:"-"`
	OrderID string `gorm:"index" json:"-"`

	ItemID   string `json:"itemId"` // catalog menu item id
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}
