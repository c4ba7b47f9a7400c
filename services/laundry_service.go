package services

import (
	"errors"
	"sync"

	"github.com/Niksiiii/BuConnect/entity"
)

// MaxLaundryItems caps the aggregate quantity across all lines of one
// laundry order.
const MaxLaundryItems = 10

const (
	LaundryVendorID   = "laundry-service"
	LaundryVendorName = "Campus Laundry Service"
)

var ErrLaundryCapExceeded = errors.New("laundry bag is limited to 10 clothes")

// LaundrySource resolves ids from the fixed laundry price list.
type LaundrySource interface {
	LaundryItem(id string) (*entity.LaundryItem, error)
}

// LaundryCart is a snapshot of one user's laundry bag.
type LaundryCart struct {
	Items      []entity.LaundryCartItem `json:"items"`
	TotalItems int                      `json:"totalItems"`
	Total      int64                    `json:"total"`
}

// LaundryService mirrors CartService for the laundry flow, with the fixed
// vendor and the quantity cap.
type LaundryService struct {
	mu      sync.Mutex
	catalog LaundrySource
	orders  *OrderService
	carts   map[string][]entity.LaundryCartItem // userID → lines
}

func NewLaundryService(catalog LaundrySource, orders *OrderService) *LaundryService {
	return &LaundryService{
		catalog: catalog,
		orders:  orders,
		carts:   make(map[string][]entity.LaundryCartItem),
	}
}

func (s *LaundryService) Cart(userID string) LaundryCart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotLaundry(s.carts[userID])
}

// Add rejects any add that would push the bag past the cap, leaving the cart
// unchanged.
func (s *LaundryService) Add(userID, itemID string) error {
	item, err := s.catalog.LaundryItem(itemID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[userID]
	if countLaundry(lines) >= MaxLaundryItems {
		return ErrLaundryCapExceeded
	}
	for i := range lines {
		if lines[i].ItemID == itemID {
			lines[i].Quantity++
			s.carts[userID] = lines
			return nil
		}
	}
	s.carts[userID] = append(lines, entity.LaundryCartItem{
		ItemID:   item.ID,
		Type:     item.Name,
		Quantity: 1,
		Price:    item.Price,
	})
	return nil
}

func (s *LaundryService) Remove(userID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ItemID != itemID {
			continue
		}
		lines[i].Quantity--
		if lines[i].Quantity <= 0 {
			lines = append(lines[:i], lines[i+1:]...)
		}
		if len(lines) == 0 {
			delete(s.carts, userID)
		} else {
			s.carts[userID] = lines
		}
		return nil
	}
	return ErrItemNotInCart
}

func (s *LaundryService) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

func (s *LaundryService) PlaceOrder(user *entity.User) (entity.Order, error) {
	s.mu.Lock()
	lines := s.carts[user.ID]
	if len(lines) == 0 {
		s.mu.Unlock()
		return entity.Order{}, ErrEmptyCart
	}
	snap := snapshotLaundry(lines)
	s.mu.Unlock()

	o, err := s.orders.Create(entity.OrderDraft{
		UserID:       user.ID,
		UserName:     user.DisplayName(),
		VendorID:     LaundryVendorID,
		VendorName:   LaundryVendorName,
		LaundryItems: snap.Items,
		TotalAmount:  snap.Total,
		Status:       entity.StatusPending,
		OrderType:    entity.OrderTypeLaundry,
	})
	if err != nil {
		return entity.Order{}, err
	}
	s.Clear(user.ID)
	return o, nil
}

func snapshotLaundry(lines []entity.LaundryCartItem) LaundryCart {
	out := LaundryCart{Items: append([]entity.LaundryCartItem(nil), lines...)}
	for _, ln := range lines {
		out.TotalItems += ln.Quantity
		out.Total += ln.Price * int64(ln.Quantity)
	}
	if out.Items == nil {
		out.Items = []entity.LaundryCartItem{}
	}
	return out
}

func countLaundry(lines []entity.LaundryCartItem) int {
	n := 0
	for _, ln := range lines {
		n += ln.Quantity
	}
	return n
}
