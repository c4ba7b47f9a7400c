package services

import (
	"errors"
	"log"
	"regexp"
	"sort"

	"github.com/Niksiiii/BuConnect/entity"
)

var (
	ErrForbidden   = errors.New("forbidden")
	ErrNotReady    = errors.New("order is not ready for pickup")
	ErrInvalidCode = errors.New("please enter a valid 4-digit code")
)

var reCode = regexp.MustCompile(`^\d{4}$`)

// OrderArchive mirrors ledger writes into the durable store. All calls are
// fire-and-forget relative to the request that triggered them.
type OrderArchive interface {
	SaveOrder(o entity.Order) error
	UpdateStatus(orderID string, s entity.OrderStatus) error
}

// OrderService projects the ledger into role-scoped views and owns the
// durable mirror.
type OrderService struct {
	Ledger  *Ledger
	Archive OrderArchive
}

func NewOrderService(ledger *Ledger, archive OrderArchive) *OrderService {
	return &OrderService{Ledger: ledger, Archive: archive}
}

// Create commits a draft to the ledger and mirrors the result.
func (s *OrderService) Create(d entity.OrderDraft) (entity.Order, error) {
	o, err := s.Ledger.CreateOrder(d)
	if err != nil {
		return entity.Order{}, err
	}
	if s.Archive != nil {
		go func(o entity.Order) {
			if err := s.Archive.SaveOrder(o); err != nil {
				log.Println("⚠️ order mirror failed:", o.ID, err)
			}
		}(o)
	}
	return o, nil
}

func (s *OrderService) mirrorStatus(orderID string, st entity.OrderStatus) {
	if s.Archive == nil {
		return
	}
	go func() {
		if err := s.Archive.UpdateStatus(orderID, st); err != nil {
			log.Println("⚠️ status mirror failed:", orderID, err)
		}
	}()
}

// ===== Student view =====

// StudentOrders partitions a user's orders into active and completed,
// newest first.
func (s *OrderService) StudentOrders(userID string) (active, completed []entity.Order) {
	for _, o := range s.Ledger.OrdersForUser(userID) {
		if o.Status.Completed() {
			completed = append(completed, o)
		} else {
			active = append(active, o)
		}
	}
	sortNewestFirst(active)
	sortNewestFirst(completed)
	return active, completed
}

// VerifyPickup checks the student's code entry against the stored pickup
// code. A match on a ready order marks it delivered; a mismatch leaves the
// order untouched and reports false.
func (s *OrderService) VerifyPickup(userID, orderID, code string) (bool, error) {
	if !reCode.MatchString(code) {
		return false, ErrInvalidCode
	}
	o, ok := s.Ledger.Order(orderID)
	if !ok {
		return false, ErrOrderNotFound
	}
	if o.UserID != userID {
		return false, ErrForbidden
	}
	if o.Status != entity.StatusReady {
		return false, ErrNotReady
	}
	if !s.Ledger.VerifyCode(orderID, code) {
		return false, nil
	}
	if err := s.Ledger.Transition(orderID, entity.StatusReady, entity.StatusDelivered); err != nil {
		return false, err
	}
	s.mirrorStatus(orderID, entity.StatusDelivered)
	return true, nil
}

// ===== Vendor view =====

// VendorBuckets is the vendor queue, partitioned by how far along each order
// is. Completed includes ready orders so the vendor can still read the
// pickup code aloud.
type VendorBuckets struct {
	New        []entity.Order `json:"new"`
	Processing []entity.Order `json:"processing"`
	Completed  []entity.Order `json:"completed"`
}

func (s *OrderService) VendorOrders(vendorID string) VendorBuckets {
	var b VendorBuckets
	for _, o := range s.Ledger.OrdersForVendor(vendorID) {
		switch o.Status {
		case entity.StatusPending:
			b.New = append(b.New, o)
		case entity.StatusConfirmed, entity.StatusPreparing:
			b.Processing = append(b.Processing, o)
		default:
			b.Completed = append(b.Completed, o)
		}
	}
	sortNewestFirst(b.New)
	sortNewestFirst(b.Processing)
	sortNewestFirst(b.Completed)
	return b
}

func (s *OrderService) VendorAccept(vendorID, orderID string) error {
	return s.vendorTransition(vendorID, orderID, entity.StatusPending, entity.StatusConfirmed)
}

func (s *OrderService) VendorReject(vendorID, orderID string) error {
	return s.vendorTransition(vendorID, orderID, entity.StatusPending, entity.StatusCancelled)
}

func (s *OrderService) VendorStartPreparing(vendorID, orderID string) error {
	return s.vendorTransition(vendorID, orderID, entity.StatusConfirmed, entity.StatusPreparing)
}

func (s *OrderService) VendorMarkReady(vendorID, orderID string) error {
	return s.vendorTransition(vendorID, orderID, entity.StatusPreparing, entity.StatusReady)
}

func (s *OrderService) vendorTransition(vendorID, orderID string, from, to entity.OrderStatus) error {
	o, ok := s.Ledger.Order(orderID)
	if !ok {
		return ErrOrderNotFound
	}
	if o.VendorID != vendorID {
		return ErrForbidden
	}
	if err := s.Ledger.Transition(orderID, from, to); err != nil {
		return err
	}
	s.mirrorStatus(orderID, to)
	return nil
}

func sortNewestFirst(orders []entity.Order) {
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].ID > orders[j].ID
		}
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
