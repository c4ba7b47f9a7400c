package entity

import "time"

type OrderType string

const (
	OrderTypeFood    OrderType = "food"
	OrderTypeLaundry OrderType = "laundry"
)

// Order is the single canonical order shape: the ledger holds it in memory
// and the same struct is mirrored into the durable store.
type Order struct {
	ID         string `gorm:"primaryKey" json:"id"`
	UserID     string `gorm:"index" json:"userId"`
	UserName   string `json:"userName"`
	VendorID   string `gorm:"index" json:"vendorId"`
	VendorName string `json:"vendorName"`

	Items        []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	LaundryItems []LaundryCartItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"laundryItems,omitempty"`

	TotalAmount int64       `json:"totalAmount"`
	Status      OrderStatus `gorm:"index" json:"status"`
	OrderType   OrderType   `json:"orderType"`

	// PickupCode is generated once at creation and never regenerated. It is
	// shared information between vendor and student, so it is kept out of the
	// default JSON shape and exposed only where a view calls for it.
	PickupCode   string `json:"-"`
	DeliveryCode string `json:"-"`

	VolunteerID string `gorm:"index" json:"volunteerId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a deep copy so ledger snapshots cannot mutate the canonical
// record through shared slices.
func (o *Order) Clone() Order {
	cp := *o
	cp.Items = make([]OrderItem, len(o.Items))
	copy(cp.Items, o.Items)
	cp.LaundryItems = make([]LaundryCartItem, len(o.LaundryItems))
	copy(cp.LaundryItems, o.LaundryItems)
	return cp
}

// OrderDraft is an order's proposed content before the ledger assigns its
// id, codes and timestamp.
type OrderDraft struct {
	UserID       string
	UserName     string
	VendorID     string
	VendorName   string
	Items        []OrderItem
	LaundryItems []LaundryCartItem
	TotalAmount  int64
	Status       OrderStatus
	OrderType    OrderType
}
