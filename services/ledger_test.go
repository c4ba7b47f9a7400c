package services

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Niksiiii/BuConnect/entity"
)

func foodDraft(userID, vendorID string) entity.OrderDraft {
	return entity.OrderDraft{
		UserID:     userID,
		UserName:   "Student User",
		VendorID:   vendorID,
		VendorName: "Hotspot",
		Items: []entity.OrderItem{
			{ItemID: "hs-1", Name: "Veg Burger", Price: 70, Quantity: 2},
			{ItemID: "hs-3", Name: "French Fries", Price: 60, Quantity: 1},
		},
		TotalAmount: 200,
		Status:      entity.StatusPending,
		OrderType:   entity.OrderTypeFood,
	}
}

func TestLedgerCreateOrder(t *testing.T) {
	l := NewLedger()

	t.Run("materializes the draft", func(t *testing.T) {
		o, err := l.CreateOrder(foodDraft("student-1", "hotspot"))
		require.NoError(t, err)
		require.NotEmpty(t, o.ID)
		require.Equal(t, entity.StatusPending, o.Status)
		require.Equal(t, int64(200), o.TotalAmount)
		require.Len(t, o.Items, 2)
		require.False(t, o.CreatedAt.IsZero())
	})

	t.Run("pickup code is a 4-digit string in range, assigned once", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			o, err := l.CreateOrder(foodDraft("student-1", "hotspot"))
			require.NoError(t, err)
			require.Len(t, o.PickupCode, 4)
			n, err := strconv.Atoi(o.PickupCode)
			require.NoError(t, err)
			require.GreaterOrEqual(t, n, 1000)
			require.LessOrEqual(t, n, 9999)

			again, ok := l.Order(o.ID)
			require.True(t, ok)
			require.Equal(t, o.PickupCode, again.PickupCode)
		}
	})

	t.Run("ids are unique", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 500; i++ {
			o, err := l.CreateOrder(foodDraft("student-1", "hotspot"))
			require.NoError(t, err)
			require.False(t, seen[o.ID], "duplicate order id %s", o.ID)
			seen[o.ID] = true
		}
	})

	t.Run("rejects drafts whose items do not match the type", func(t *testing.T) {
		d := foodDraft("student-1", "hotspot")
		d.LaundryItems = []entity.LaundryCartItem{{ItemID: "shirt", Type: "Shirt", Quantity: 1, Price: 20}}
		_, err := l.CreateOrder(d)
		require.ErrorIs(t, err, ErrBadDraft)

		d = entity.OrderDraft{OrderType: entity.OrderTypeLaundry}
		_, err = l.CreateOrder(d)
		require.ErrorIs(t, err, ErrBadDraft)

		d = foodDraft("student-1", "hotspot")
		d.OrderType = "dryCleaning"
		_, err = l.CreateOrder(d)
		require.ErrorIs(t, err, ErrBadDraft)
	})
}

func TestLedgerVerifyCode(t *testing.T) {
	l := NewLedger()
	o, err := l.CreateOrder(foodDraft("student-1", "hotspot"))
	require.NoError(t, err)

	require.True(t, l.VerifyCode(o.ID, o.PickupCode))
	require.False(t, l.VerifyCode(o.ID, "0000"))
	require.False(t, l.VerifyCode(o.ID, " "+o.PickupCode), "codes compare exactly, no trimming")
	require.False(t, l.VerifyCode("order-missing", o.PickupCode))
}

func TestLedgerSetStatus(t *testing.T) {
	l := NewLedger()
	o, _ := l.CreateOrder(foodDraft("student-1", "hotspot"))

	l.SetStatus(o.ID, entity.StatusReady)
	got, ok := l.Order(o.ID)
	require.True(t, ok)
	require.Equal(t, entity.StatusReady, got.Status)

	// unknown id is a silent no-op
	l.SetStatus("order-missing", entity.StatusDelivered)
}

func TestLedgerTransition(t *testing.T) {
	l := NewLedger()

	t.Run("walks the legal chain", func(t *testing.T) {
		o, _ := l.CreateOrder(foodDraft("student-1", "hotspot"))
		require.NoError(t, l.Transition(o.ID, entity.StatusPending, entity.StatusConfirmed))
		require.NoError(t, l.Transition(o.ID, entity.StatusConfirmed, entity.StatusPreparing))
		require.NoError(t, l.Transition(o.ID, entity.StatusPreparing, entity.StatusReady))
		require.NoError(t, l.Transition(o.ID, entity.StatusReady, entity.StatusDelivered))
	})

	t.Run("rejects pairs outside the table", func(t *testing.T) {
		o, _ := l.CreateOrder(foodDraft("student-1", "hotspot"))
		require.ErrorIs(t, l.Transition(o.ID, entity.StatusPending, entity.StatusReady), ErrIllegalTransition)
		require.ErrorIs(t, l.Transition(o.ID, entity.StatusDelivered, entity.StatusPending), ErrIllegalTransition)
	})

	t.Run("rejects a stale expected status", func(t *testing.T) {
		o, _ := l.CreateOrder(foodDraft("student-1", "hotspot"))
		require.ErrorIs(t, l.Transition(o.ID, entity.StatusConfirmed, entity.StatusPreparing), ErrStatusConflict)
	})

	t.Run("reports missing orders", func(t *testing.T) {
		require.ErrorIs(t, l.Transition("order-missing", entity.StatusPending, entity.StatusConfirmed), ErrOrderNotFound)
	})
}

func TestLedgerFilters(t *testing.T) {
	l := NewLedger()

	var mine []string
	for i := 0; i < 20; i++ {
		user := fmt.Sprintf("student-%d", i%4)
		o, err := l.CreateOrder(foodDraft(user, "hotspot"))
		require.NoError(t, err)
		if user == "student-1" {
			mine = append(mine, o.ID)
		}
	}

	got := l.OrdersForUser("student-1")
	require.Len(t, got, len(mine))
	for _, o := range got {
		require.Equal(t, "student-1", o.UserID)
	}

	require.Len(t, l.OrdersForVendor("hotspot"), 20)
	require.Empty(t, l.OrdersForVendor("quench"))
	require.Empty(t, l.OrdersForUser("student-99"))
}

func TestLedgerAssignVolunteer(t *testing.T) {
	l := NewLedger()
	o, _ := l.CreateOrder(foodDraft("student-1", "hotspot"))

	require.ErrorIs(t, l.AssignVolunteer(o.ID, "student-2"), ErrStatusConflict)

	l.SetStatus(o.ID, entity.StatusReady)
	require.NoError(t, l.AssignVolunteer(o.ID, "student-2"))

	got, _ := l.Order(o.ID)
	require.Equal(t, "student-2", got.VolunteerID)
	require.Equal(t, entity.StatusOutForDelivery, got.Status)

	require.ErrorIs(t, l.AssignVolunteer(o.ID, "student-3"), ErrAlreadyAssigned)
	require.ErrorIs(t, l.AssignVolunteer("order-missing", "student-2"), ErrOrderNotFound)
}

func TestLedgerSnapshotsAreCopies(t *testing.T) {
	l := NewLedger()
	o, _ := l.CreateOrder(foodDraft("student-1", "hotspot"))

	snap, _ := l.Order(o.ID)
	snap.Items[0].Quantity = 99
	snap.Status = entity.StatusCancelled

	again, _ := l.Order(o.ID)
	require.Equal(t, 2, again.Items[0].Quantity)
	require.Equal(t, entity.StatusPending, again.Status)
}
