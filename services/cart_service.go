package services

import (
	"errors"
	"sync"

	"github.com/Niksiiii/BuConnect/entity"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCartVendorMismatch = errors.New("cart has another vendor")
	ErrMenuMismatch       = errors.New("menu item not in this vendor")
	ErrItemUnavailable    = errors.New("item is not available")
	ErrItemNotInCart      = errors.New("item is not in the cart")
)

// MenuSource resolves catalog ids at add-time. The cart keeps name/price
// snapshots, so later catalog changes never reprice a cart line.
type MenuSource interface {
	MenuItem(id string) (*entity.MenuItem, error)
	Vendor(id string) (*entity.FoodVendor, error)
}

// FoodCart accumulates a draft food order for one vendor.
type FoodCart struct {
	VendorID   string             `json:"vendorId"`
	VendorName string             `json:"vendorName"`
	Items      []entity.OrderItem `json:"items"`
	Total      int64              `json:"total"`
}

func (c *FoodCart) total() int64 {
	var sum int64
	for _, it := range c.Items {
		sum += it.Price * int64(it.Quantity)
	}
	return sum
}

// CartService holds per-user food carts in memory and submits them to the
// ledger exactly once on place.
type CartService struct {
	mu     sync.Mutex
	menu   MenuSource
	orders *OrderService
	carts  map[string]*FoodCart // userID → cart
}

func NewCartService(menu MenuSource, orders *OrderService) *CartService {
	return &CartService{menu: menu, orders: orders, carts: make(map[string]*FoodCart)}
}

// Cart returns a snapshot of the user's cart, empty if none exists.
func (s *CartService) Cart(userID string) FoodCart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[userID]
	if !ok {
		return FoodCart{Items: []entity.OrderItem{}}
	}
	out := FoodCart{VendorID: c.VendorID, VendorName: c.VendorName, Total: c.total()}
	out.Items = append([]entity.OrderItem(nil), c.Items...)
	return out
}

// Add puts one unit of a catalog item into the cart, inserting a new line
// with a price snapshot or incrementing an existing one. One vendor per cart.
func (s *CartService) Add(userID, vendorID, itemID string) error {
	m, err := s.menu.MenuItem(itemID)
	if err != nil {
		return err
	}
	if m.VendorID != vendorID {
		return ErrMenuMismatch
	}
	if !m.IsAvailable {
		return ErrItemUnavailable
	}
	v, err := s.menu.Vendor(vendorID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[userID]
	if !ok {
		c = &FoodCart{VendorID: v.ID, VendorName: v.Name}
		s.carts[userID] = c
	}
	if c.VendorID != vendorID {
		return ErrCartVendorMismatch
	}
	for i := range c.Items {
		if c.Items[i].ItemID == itemID {
			c.Items[i].Quantity++
			return nil
		}
	}
	c.Items = append(c.Items, entity.OrderItem{
		ItemID:   m.ID,
		Name:     m.Name,
		Price:    m.Price,
		Quantity: 1,
	})
	return nil
}

// Remove takes one unit out of the cart, dropping the line when its quantity
// reaches zero and the cart when its last line goes.
func (s *CartService) Remove(userID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[userID]
	if !ok {
		return ErrItemNotInCart
	}
	for i := range c.Items {
		if c.Items[i].ItemID != itemID {
			continue
		}
		c.Items[i].Quantity--
		if c.Items[i].Quantity <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		}
		if len(c.Items) == 0 {
			delete(s.carts, userID)
		}
		return nil
	}
	return ErrItemNotInCart
}

func (s *CartService) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// PlaceOrder submits the cart to the ledger and clears it on success. The
// caller guarantees an authenticated user; an empty cart never reaches the
// ledger.
func (s *CartService) PlaceOrder(user *entity.User) (entity.Order, error) {
	s.mu.Lock()
	c, ok := s.carts[user.ID]
	if !ok || len(c.Items) == 0 {
		s.mu.Unlock()
		return entity.Order{}, ErrEmptyCart
	}
	draft := entity.OrderDraft{
		UserID:      user.ID,
		UserName:    user.DisplayName(),
		VendorID:    c.VendorID,
		VendorName:  c.VendorName,
		Items:       append([]entity.OrderItem(nil), c.Items...),
		TotalAmount: c.total(),
		Status:      entity.StatusPending,
		OrderType:   entity.OrderTypeFood,
	}
	s.mu.Unlock()

	o, err := s.orders.Create(draft)
	if err != nil {
		return entity.Order{}, err
	}
	s.Clear(user.ID)
	return o, nil
}
