package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Niksiiii/BuConnect/entity"
)

// stubCatalog serves both cart flows from fixed data.
type stubCatalog struct {
	items   map[string]entity.MenuItem
	vendors map[string]entity.FoodVendor
	laundry map[string]entity.LaundryItem
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{
		items: map[string]entity.MenuItem{
			"hs-1": {ID: "hs-1", VendorID: "hotspot", Name: "Veg Burger", Price: 70, IsAvailable: true},
			"hs-3": {ID: "hs-3", VendorID: "hotspot", Name: "French Fries", Price: 60, IsAvailable: true},
			"hs-9": {ID: "hs-9", VendorID: "hotspot", Name: "Off Menu", Price: 50, IsAvailable: false},
			"qu-1": {ID: "qu-1", VendorID: "quench", Name: "Fresh Fruit Juice", Price: 60, IsAvailable: true},
		},
		vendors: map[string]entity.FoodVendor{
			"hotspot": {ID: "hotspot", Name: "Hotspot"},
			"quench":  {ID: "quench", Name: "Quench"},
		},
		laundry: map[string]entity.LaundryItem{
			"shirt":        {ID: "shirt", Name: "Shirt", Price: 20},
			"tshirt":       {ID: "tshirt", Name: "T-shirt", Price: 15},
			"pant":         {ID: "pant", Name: "Pant", Price: 25},
			"lower":        {ID: "lower", Name: "Lower", Price: 20},
			"trouser":      {ID: "trouser", Name: "Trouser", Price: 25},
			"dupatta":      {ID: "dupatta", Name: "Dupatta", Price: 15},
			"kurti":        {ID: "kurti", Name: "Kurti", Price: 30},
			"bedsheet":     {ID: "bedsheet", Name: "Bedsheet", Price: 40},
			"pillow-cover": {ID: "pillow-cover", Name: "Pillow Cover", Price: 10},
		},
	}
}

func (s *stubCatalog) MenuItem(id string) (*entity.MenuItem, error) {
	if m, ok := s.items[id]; ok {
		return &m, nil
	}
	return nil, errors.New("menu item not found")
}

func (s *stubCatalog) Vendor(id string) (*entity.FoodVendor, error) {
	if v, ok := s.vendors[id]; ok {
		return &v, nil
	}
	return nil, errors.New("vendor not found")
}

func (s *stubCatalog) LaundryItem(id string) (*entity.LaundryItem, error) {
	if it, ok := s.laundry[id]; ok {
		return &it, nil
	}
	return nil, errors.New("laundry item not found")
}

func testStudent() *entity.User {
	return &entity.User{ID: "student-1", Role: entity.RoleStudent, FullName: "Priya Sharma"}
}

func TestFoodCartAddRemove(t *testing.T) {
	catalog := newStubCatalog()
	svc := NewCartService(catalog, NewOrderService(NewLedger(), nil))

	require.NoError(t, svc.Add("student-1", "hotspot", "hs-1"))
	require.NoError(t, svc.Add("student-1", "hotspot", "hs-1"))
	require.NoError(t, svc.Add("student-1", "hotspot", "hs-3"))

	cart := svc.Cart("student-1")
	require.Len(t, cart.Items, 2)
	require.Equal(t, 2, cart.Items[0].Quantity)
	require.Equal(t, int64(200), cart.Total)

	// removing decrements, then drops the line
	require.NoError(t, svc.Remove("student-1", "hs-1"))
	cart = svc.Cart("student-1")
	require.Equal(t, 1, cart.Items[0].Quantity)
	require.Equal(t, int64(130), cart.Total)

	require.NoError(t, svc.Remove("student-1", "hs-1"))
	cart = svc.Cart("student-1")
	require.Len(t, cart.Items, 1)
	require.Equal(t, "hs-3", cart.Items[0].ItemID)

	require.ErrorIs(t, svc.Remove("student-1", "hs-1"), ErrItemNotInCart)
}

func TestFoodCartSnapshotPricing(t *testing.T) {
	catalog := newStubCatalog()
	svc := NewCartService(catalog, NewOrderService(NewLedger(), nil))

	require.NoError(t, svc.Add("student-1", "hotspot", "hs-1"))

	// a later catalog price change never reprices the cart line
	m := catalog.items["hs-1"]
	m.Price = 999
	catalog.items["hs-1"] = m

	cart := svc.Cart("student-1")
	require.Equal(t, int64(70), cart.Items[0].Price)
	require.Equal(t, int64(70), cart.Total)
}

func TestFoodCartGuards(t *testing.T) {
	catalog := newStubCatalog()
	svc := NewCartService(catalog, NewOrderService(NewLedger(), nil))

	t.Run("one vendor per cart", func(t *testing.T) {
		require.NoError(t, svc.Add("student-1", "hotspot", "hs-1"))
		require.ErrorIs(t, svc.Add("student-1", "quench", "qu-1"), ErrCartVendorMismatch)
	})

	t.Run("item must belong to the claimed vendor", func(t *testing.T) {
		require.ErrorIs(t, svc.Add("student-2", "hotspot", "qu-1"), ErrMenuMismatch)
	})

	t.Run("unavailable items are rejected", func(t *testing.T) {
		require.ErrorIs(t, svc.Add("student-2", "hotspot", "hs-9"), ErrItemUnavailable)
	})

	t.Run("unknown items are rejected", func(t *testing.T) {
		require.Error(t, svc.Add("student-2", "hotspot", "nope"))
	})
}

func TestPlaceFoodOrder(t *testing.T) {
	catalog := newStubCatalog()
	orders := NewOrderService(NewLedger(), nil)
	svc := NewCartService(catalog, orders)
	user := testStudent()

	t.Run("empty cart never reaches the ledger", func(t *testing.T) {
		_, err := svc.PlaceOrder(user)
		require.ErrorIs(t, err, ErrEmptyCart)
		require.Empty(t, orders.Ledger.OrdersForUser(user.ID))
	})

	t.Run("submits once and clears the cart", func(t *testing.T) {
		require.NoError(t, svc.Add(user.ID, "hotspot", "hs-1"))
		require.NoError(t, svc.Add(user.ID, "hotspot", "hs-1"))
		require.NoError(t, svc.Add(user.ID, "hotspot", "hs-3"))

		o, err := svc.PlaceOrder(user)
		require.NoError(t, err)
		require.Equal(t, int64(200), o.TotalAmount)
		require.Equal(t, entity.StatusPending, o.Status)
		require.Equal(t, entity.OrderTypeFood, o.OrderType)
		require.Equal(t, "Priya Sharma", o.UserName)
		require.Equal(t, "Hotspot", o.VendorName)
		require.Len(t, o.Items, 2)
		require.Empty(t, o.LaundryItems)

		require.Empty(t, svc.Cart(user.ID).Items)
		require.Len(t, orders.Ledger.OrdersForUser(user.ID), 1)

		// placing again without re-filling fails
		_, err = svc.PlaceOrder(user)
		require.ErrorIs(t, err, ErrEmptyCart)
	})
}
