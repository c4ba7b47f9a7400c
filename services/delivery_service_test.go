package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Niksiiii/BuConnect/entity"
)

// memDeliveryStore keeps requests and points in memory, with per-call
// failures injectable.
type memDeliveryStore struct {
	mu       sync.Mutex
	requests map[string]entity.DeliveryRequest
	points   map[string]int64

	completeErr error
	pointsErr   error
}

func newMemDeliveryStore() *memDeliveryStore {
	return &memDeliveryStore{
		requests: make(map[string]entity.DeliveryRequest),
		points:   make(map[string]int64),
	}
}

func (m *memDeliveryStore) CreateRequest(r *entity.DeliveryRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[r.ID] = *r
	return nil
}

func (m *memDeliveryStore) CompleteRequest(id string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.completeErr != nil {
		return m.completeErr
	}
	r, ok := m.requests[id]
	if !ok {
		return errors.New("delivery request not found")
	}
	r.Status = entity.DeliveryCompleted
	r.CompletedAt = &at
	m.requests[id] = r
	return nil
}

func (m *memDeliveryStore) RequestsForVolunteer(volunteerID string) ([]entity.DeliveryRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.DeliveryRequest
	for _, r := range m.requests {
		if r.VolunteerID == volunteerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memDeliveryStore) AwardPoints(userID string, delta int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pointsErr != nil {
		return m.pointsErr
	}
	m.points[userID] += delta
	return nil
}

func (m *memDeliveryStore) Points(userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.points[userID], nil
}

// readyOrder materializes an order and walks it to ready.
func readyOrder(t *testing.T, ledger *Ledger) entity.Order {
	t.Helper()
	o, err := ledger.CreateOrder(foodDraft("student-1", "hotspot"))
	require.NoError(t, err)
	require.NoError(t, ledger.Transition(o.ID, entity.StatusPending, entity.StatusConfirmed))
	require.NoError(t, ledger.Transition(o.ID, entity.StatusConfirmed, entity.StatusPreparing))
	require.NoError(t, ledger.Transition(o.ID, entity.StatusPreparing, entity.StatusReady))
	return o
}

func TestDeliveryAvailable(t *testing.T) {
	ledger := NewLedger()
	svc := NewDeliveryService(NewOrderService(ledger, nil), newMemDeliveryStore())

	o := readyOrder(t, ledger)
	pending, err := ledger.CreateOrder(foodDraft("student-2", "quench"))
	require.NoError(t, err)

	ids := func() []string {
		var out []string
		for _, a := range svc.Available() {
			out = append(out, a.ID)
		}
		return out
	}

	require.Equal(t, []string{o.ID}, ids())
	require.NotContains(t, ids(), pending.ID)

	// a claimed order leaves the pool
	_, err = svc.Accept("student-9", o.ID)
	require.NoError(t, err)
	require.Empty(t, ids())
}

func TestDeliveryAccept(t *testing.T) {
	ledger := NewLedger()
	store := newMemDeliveryStore()
	svc := NewDeliveryService(NewOrderService(ledger, nil), store)
	o := readyOrder(t, ledger)

	req, err := svc.Accept("student-9", o.ID)
	require.NoError(t, err)
	require.NotEmpty(t, req.ID)
	require.Equal(t, o.ID, req.OrderID)
	require.Equal(t, entity.DeliveryAccepted, req.Status)

	got, ok := ledger.Order(o.ID)
	require.True(t, ok)
	require.Equal(t, entity.StatusOutForDelivery, got.Status)
	require.Equal(t, "student-9", got.VolunteerID)

	// a second claim on the same order loses
	_, err = svc.Accept("student-10", o.ID)
	require.ErrorIs(t, err, ErrAlreadyAssigned)

	_, err = svc.Accept("student-9", "order-missing")
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestDeliveryComplete(t *testing.T) {
	ledger := NewLedger()
	store := newMemDeliveryStore()
	svc := NewDeliveryService(NewOrderService(ledger, nil), store)

	o := readyOrder(t, ledger)
	req, err := svc.Accept("student-9", o.ID)
	require.NoError(t, err)

	t.Run("malformed code", func(t *testing.T) {
		_, err := svc.Complete("student-9", o.ID, req.ID, "12ab")
		require.ErrorIs(t, err, ErrInvalidCode)
	})

	t.Run("wrong volunteer", func(t *testing.T) {
		_, err := svc.Complete("student-10", o.ID, req.ID, o.DeliveryCode)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("wrong code leaves the order out for delivery", func(t *testing.T) {
		wrong := "0000"
		if o.DeliveryCode == wrong {
			wrong = "0001"
		}
		_, err := svc.Complete("student-9", o.ID, req.ID, wrong)
		require.ErrorIs(t, err, ErrCodeMismatch)

		got, ok := ledger.Order(o.ID)
		require.True(t, ok)
		require.Equal(t, entity.StatusOutForDelivery, got.Status)
	})

	t.Run("right code delivers, closes the request and credits points", func(t *testing.T) {
		out, err := svc.Complete("student-9", o.ID, req.ID, o.DeliveryCode)
		require.NoError(t, err)
		require.True(t, out.Delivered)
		require.False(t, out.Partial())
		require.Equal(t, int64(DeliveryPoints), out.PointsAwarded)

		got, ok := ledger.Order(o.ID)
		require.True(t, ok)
		require.Equal(t, entity.StatusDelivered, got.Status)

		stored := store.requests[req.ID]
		require.Equal(t, entity.DeliveryCompleted, stored.Status)
		require.NotNil(t, stored.CompletedAt)

		pts, err := svc.Points("student-9")
		require.NoError(t, err)
		require.Equal(t, int64(DeliveryPoints), pts)
	})

	t.Run("a delivered order cannot be completed twice", func(t *testing.T) {
		_, err := svc.Complete("student-9", o.ID, req.ID, o.DeliveryCode)
		require.ErrorIs(t, err, ErrStatusConflict)
	})
}

func TestDeliveryCompletePartialFailure(t *testing.T) {
	ledger := NewLedger()
	store := newMemDeliveryStore()
	store.pointsErr = errors.New("points table unavailable")
	svc := NewDeliveryService(NewOrderService(ledger, nil), store)

	o := readyOrder(t, ledger)
	req, err := svc.Accept("student-9", o.ID)
	require.NoError(t, err)

	// the delivery itself still lands even when crediting fails
	out, err := svc.Complete("student-9", o.ID, req.ID, o.DeliveryCode)
	require.NoError(t, err)
	require.True(t, out.Delivered)
	require.True(t, out.Partial())
	require.Error(t, out.PointsErr)
	require.NoError(t, out.RequestErr)
	require.Zero(t, out.PointsAwarded)

	got, ok := ledger.Order(o.ID)
	require.True(t, ok)
	require.Equal(t, entity.StatusDelivered, got.Status)
}

func TestDeliveryMine(t *testing.T) {
	ledger := NewLedger()
	store := newMemDeliveryStore()
	svc := NewDeliveryService(NewOrderService(ledger, nil), store)

	a := readyOrder(t, ledger)
	b := readyOrder(t, ledger)
	_, err := svc.Accept("student-9", a.ID)
	require.NoError(t, err)
	_, err = svc.Accept("student-10", b.ID)
	require.NoError(t, err)

	mine, err := svc.Mine("student-9")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, a.ID, mine[0].OrderID)
}
