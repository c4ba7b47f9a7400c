package repository

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Niksiiii/BuConnect/entity"
)

// OrderRepository is the durable mirror of the ledger. Writes arrive
// fire-and-forget; reads serve the admin layer.
type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// SaveOrder persists a placed order with its lines in one transaction.
func (r *OrderRepository) SaveOrder(o entity.Order) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&o).Error
	})
	return errors.Wrap(err, "save order")
}

func (r *OrderRepository) UpdateStatus(orderID string, s entity.OrderStatus) error {
	err := r.DB.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("status", s).Error
	return errors.Wrap(err, "update order status")
}

// AdminOrderRow is the concrete shape of the admin order listing: order
// fields joined with the customer's stored profile for display.
type AdminOrderRow struct {
	ID           string             `json:"id"`
	CustomerName string             `json:"customerName"`
	Enrollment   string             `json:"enrollmentNumber,omitempty"`
	VendorName   string             `json:"vendorName"`
	Total        int64              `json:"total"`
	Status       entity.OrderStatus `json:"status"`
	OrderType    entity.OrderType   `json:"orderType"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListWithCustomers(limit int) ([]AdminOrderRow, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var rows []struct {
		ID         string
		UserName   string
		FullName   string
		Enrollment string
		VendorName string
		Total      int64
		Status     entity.OrderStatus
		OrderType  entity.OrderType
		CreatedAt  time.Time
	}
	err := r.DB.Table("orders AS o").
		Select("o.id, o.user_name, u.full_name, u.enrollment_number AS enrollment, o.vendor_name, o.total_amount AS total, o.status, o.order_type, o.created_at").
		Joins("LEFT JOIN users u ON u.id = o.user_id").
		Order("o.created_at DESC").Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}

	out := make([]AdminOrderRow, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.FullName)
		if name == "" {
			name = row.UserName
		}
		out = append(out, AdminOrderRow{
			ID:           row.ID,
			CustomerName: name,
			Enrollment:   row.Enrollment,
			VendorName:   row.VendorName,
			Total:        row.Total,
			Status:       row.Status,
			OrderType:    row.OrderType,
			CreatedAt:    row.CreatedAt,
		})
	}
	return out, nil
}

// Counts for the admin dashboard.
type AdminCounts struct {
	Orders    int64 `json:"orders"`
	Users     int64 `json:"users"`
	Delivered int64 `json:"delivered"`
}

func (r *OrderRepository) Counts() (AdminCounts, error) {
	var c AdminCounts
	if err := r.DB.Model(&entity.Order{}).Count(&c.Orders).Error; err != nil {
		return c, errors.Wrap(err, "count orders")
	}
	if err := r.DB.Model(&entity.User{}).Count(&c.Users).Error; err != nil {
		return c, errors.Wrap(err, "count users")
	}
	err := r.DB.Model(&entity.Order{}).
		Where("status = ?", entity.StatusDelivered).
		Count(&c.Delivered).Error
	return c, errors.Wrap(err, "count delivered")
}
