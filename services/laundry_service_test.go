package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Niksiiii/BuConnect/entity"
)

func TestLaundryCartCap(t *testing.T) {
	svc := NewLaundryService(newStubCatalog(), NewOrderService(NewLedger(), nil))

	// 6 shirts + 4 t-shirts fill the bag exactly
	for i := 0; i < 6; i++ {
		require.NoError(t, svc.Add("student-1", "shirt"))
	}
	for i := 0; i < 4; i++ {
		require.NoError(t, svc.Add("student-1", "tshirt"))
	}
	cart := svc.Cart("student-1")
	require.Equal(t, MaxLaundryItems, cart.TotalItems)

	// the 11th piece is rejected and the cart stays as it was
	require.ErrorIs(t, svc.Add("student-1", "pant"), ErrLaundryCapExceeded)
	require.ErrorIs(t, svc.Add("student-1", "shirt"), ErrLaundryCapExceeded)

	after := svc.Cart("student-1")
	require.Equal(t, cart.TotalItems, after.TotalItems)
	require.Equal(t, cart.Total, after.Total)
	require.Len(t, after.Items, 2)

	// removing one frees capacity again
	require.NoError(t, svc.Remove("student-1", "tshirt"))
	require.NoError(t, svc.Add("student-1", "pant"))
	require.Equal(t, MaxLaundryItems, svc.Cart("student-1").TotalItems)
}

func TestLaundryCartLines(t *testing.T) {
	svc := NewLaundryService(newStubCatalog(), NewOrderService(NewLedger(), nil))

	require.NoError(t, svc.Add("student-1", "bedsheet"))
	require.NoError(t, svc.Add("student-1", "bedsheet"))
	require.NoError(t, svc.Add("student-1", "pillow-cover"))

	cart := svc.Cart("student-1")
	require.Len(t, cart.Items, 2)
	require.Equal(t, 3, cart.TotalItems)
	require.Equal(t, int64(90), cart.Total)

	// the line drops when its last unit goes
	require.NoError(t, svc.Remove("student-1", "pillow-cover"))
	cart = svc.Cart("student-1")
	require.Len(t, cart.Items, 1)
	require.Equal(t, "bedsheet", cart.Items[0].ItemID)

	require.ErrorIs(t, svc.Remove("student-1", "pillow-cover"), ErrItemNotInCart)
	require.Error(t, svc.Add("student-1", "sofa-cover"))
}

func TestPlaceLaundryOrder(t *testing.T) {
	orders := NewOrderService(NewLedger(), nil)
	svc := NewLaundryService(newStubCatalog(), orders)
	user := testStudent()

	_, err := svc.PlaceOrder(user)
	require.ErrorIs(t, err, ErrEmptyCart)

	require.NoError(t, svc.Add(user.ID, "kurti"))
	require.NoError(t, svc.Add(user.ID, "dupatta"))

	o, err := svc.PlaceOrder(user)
	require.NoError(t, err)
	require.Equal(t, entity.OrderTypeLaundry, o.OrderType)
	require.Equal(t, LaundryVendorID, o.VendorID)
	require.Equal(t, LaundryVendorName, o.VendorName)
	require.Equal(t, int64(45), o.TotalAmount)
	require.Len(t, o.LaundryItems, 2)
	require.Empty(t, o.Items)
	require.Equal(t, entity.StatusPending, o.Status)

	require.Empty(t, svc.Cart(user.ID).Items)
	require.Len(t, orders.Ledger.OrdersForUser(user.ID), 1)
}
