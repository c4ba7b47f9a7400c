package entity

import "time"

const (
	DeliveryAccepted  = "accepted"
	DeliveryCompleted = "completed"
)

type DeliveryRequest struct {
	ID          string `gorm:"primaryKey" json:"id"` // uuid
	OrderID     string `gorm:"index" json:"orderId"`
	VolunteerID string `gorm:"index" json:"volunteerId"`
	Status      string `json:"status"` // accepted | completed

	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
