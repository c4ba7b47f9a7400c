package services

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Niksiiii/BuConnect/entity"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrStatusConflict    = errors.New("order status has changed")
	ErrBadDraft          = errors.New("draft items do not match order type")
	ErrAlreadyAssigned   = errors.New("order already has a volunteer")
)

// Ledger is the single source of truth for orders. It alone assigns ids,
// pickup codes and statuses; every view works on copies and routes mutations
// back through it.
type Ledger struct {
	mu     sync.Mutex
	orders map[string]*entity.Order
}

func NewLedger() *Ledger {
	return &Ledger{orders: make(map[string]*entity.Order)}
}

// CreateOrder materializes a draft: unique id, 4-digit pickup code, creation
// timestamp. The code is drawn once from [1000, 9999] and never regenerated.
func (l *Ledger) CreateOrder(d entity.OrderDraft) (entity.Order, error) {
	switch d.OrderType {
	case entity.OrderTypeFood:
		if len(d.Items) == 0 || len(d.LaundryItems) != 0 {
			return entity.Order{}, ErrBadDraft
		}
	case entity.OrderTypeLaundry:
		if len(d.LaundryItems) == 0 || len(d.Items) != 0 {
			return entity.Order{}, ErrBadDraft
		}
	default:
		return entity.Order{}, ErrBadDraft
	}

	status := d.Status
	if status == "" {
		status = entity.StatusPending
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	id := newOrderID()
	for _, taken := l.orders[id]; taken; _, taken = l.orders[id] {
		id = newOrderID()
	}

	code := fmt.Sprintf("%04d", 1000+rand.IntN(9000))
	o := &entity.Order{
		ID:           id,
		UserID:       d.UserID,
		UserName:     d.UserName,
		VendorID:     d.VendorID,
		VendorName:   d.VendorName,
		Items:        append([]entity.OrderItem(nil), d.Items...),
		LaundryItems: append([]entity.LaundryCartItem(nil), d.LaundryItems...),
		TotalAmount:  d.TotalAmount,
		Status:       status,
		OrderType:    d.OrderType,
		PickupCode:   code,
		DeliveryCode: code, // delivery flow re-validates the same code
		CreatedAt:    time.Now(),
	}
	l.orders[id] = o
	return o.Clone(), nil
}

// SetStatus overwrites the status unconditionally and is a silent no-op for
// unknown ids. Role-scoped flows use Transition instead; this remains the
// permissive escape hatch.
func (l *Ledger) SetStatus(orderID string, s entity.OrderStatus) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if o, ok := l.orders[orderID]; ok {
		o.Status = s
	}
}

// Transition moves an order from an expected current status to the requested
// one, rejecting anything outside the legal transition table.
func (l *Ledger) Transition(orderID string, from, to entity.OrderStatus) error {
	if !CanTransition(from, to) {
		return ErrIllegalTransition
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	o, ok := l.orders[orderID]
	if !ok {
		return ErrOrderNotFound
	}
	if o.Status != from {
		return ErrStatusConflict
	}
	o.Status = to
	return nil
}

// AssignVolunteer claims a ready order for delivery: sets the volunteer and
// moves the order out for delivery in one step.
func (l *Ledger) AssignVolunteer(orderID, volunteerID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	o, ok := l.orders[orderID]
	if !ok {
		return ErrOrderNotFound
	}
	if o.VolunteerID != "" {
		return ErrAlreadyAssigned
	}
	if o.Status != entity.StatusReady {
		return ErrStatusConflict
	}
	o.VolunteerID = volunteerID
	o.Status = entity.StatusOutForDelivery
	return nil
}

// Order returns a snapshot copy of one order.
func (l *Ledger) Order(orderID string) (entity.Order, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	o, ok := l.orders[orderID]
	if !ok {
		return entity.Order{}, false
	}
	return o.Clone(), true
}

// OrdersForUser returns copies of all orders owned by userID, in no
// particular order.
func (l *Ledger) OrdersForUser(userID string) []entity.Order {
	return l.filter(func(o *entity.Order) bool { return o.UserID == userID })
}

// OrdersForVendor returns copies of all orders addressed to vendorID.
func (l *Ledger) OrdersForVendor(vendorID string) []entity.Order {
	return l.filter(func(o *entity.Order) bool { return o.VendorID == vendorID })
}

func (l *Ledger) filter(keep func(*entity.Order) bool) []entity.Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]entity.Order, 0)
	for _, o := range l.orders {
		if keep(o) {
			out = append(out, o.Clone())
		}
	}
	return out
}

// VerifyCode reports whether candidate exactly equals the stored pickup code.
// Unknown ids verify as false, never as an error.
func (l *Ledger) VerifyCode(orderID, candidate string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	o, ok := l.orders[orderID]
	return ok && o.PickupCode == candidate
}

// VerifyDeliveryCode is the delivery-side check against the delivery code
// field.
func (l *Ledger) VerifyDeliveryCode(orderID, candidate string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	o, ok := l.orders[orderID]
	return ok && o.DeliveryCode == candidate
}

func newOrderID() string {
	return fmt.Sprintf("order-%d-%d", time.Now().UnixMilli(), rand.IntN(1000))
}
