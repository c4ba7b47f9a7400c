package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Niksiiii/BuConnect/entity"
)

// DeliveryPoints is credited to a volunteer per completed delivery.
const DeliveryPoints = 50

var ErrCodeMismatch = errors.New("invalid code")

// DeliveryStore is the durable side of the delivery flow: request rows and
// volunteer point totals.
type DeliveryStore interface {
	CreateRequest(r *entity.DeliveryRequest) error
	CompleteRequest(id string, at time.Time) error
	RequestsForVolunteer(volunteerID string) ([]entity.DeliveryRequest, error)
	AwardPoints(userID string, delta int64) error
	Points(userID string) (int64, error)
}

// DeliveryService runs the volunteer flow over the ledger plus the durable
// store.
type DeliveryService struct {
	Orders *OrderService
	Store  DeliveryStore
}

func NewDeliveryService(orders *OrderService, store DeliveryStore) *DeliveryService {
	return &DeliveryService{Orders: orders, Store: store}
}

// Available lists ready orders that no volunteer has claimed yet.
func (s *DeliveryService) Available() []entity.Order {
	out := s.Orders.Ledger.filter(func(o *entity.Order) bool {
		return o.Status == entity.StatusReady && o.VolunteerID == ""
	})
	sortNewestFirst(out)
	return out
}

// Accept claims an order for a volunteer. The ledger assignment is the
// authoritative step; the request row insert follows it and is not rolled
// back on failure.
func (s *DeliveryService) Accept(volunteerID, orderID string) (*entity.DeliveryRequest, error) {
	if err := s.Orders.Ledger.AssignVolunteer(orderID, volunteerID); err != nil {
		return nil, err
	}
	s.Orders.mirrorStatus(orderID, entity.StatusOutForDelivery)

	req := &entity.DeliveryRequest{
		ID:          uuid.NewString(),
		OrderID:     orderID,
		VolunteerID: volunteerID,
		Status:      entity.DeliveryAccepted,
		CreatedAt:   time.Now(),
	}
	if err := s.Store.CreateRequest(req); err != nil {
		return nil, err
	}
	return req, nil
}

// CompletionOutcome reports each durable step of a completed delivery
// separately, so a partial failure is visible instead of silently dropped.
type CompletionOutcome struct {
	Delivered     bool  `json:"delivered"`
	PointsAwarded int64 `json:"pointsAwarded"`

	RequestErr error `json:"-"`
	PointsErr  error `json:"-"`
}

func (o CompletionOutcome) Partial() bool {
	return o.RequestErr != nil || o.PointsErr != nil
}

// Complete re-validates the pickup code against the delivery code field,
// marks the order delivered, then closes the request row and credits points.
// The status transition is authoritative; the two durable steps are recorded
// in the outcome rather than aborting it.
func (s *DeliveryService) Complete(volunteerID, orderID, requestID, code string) (CompletionOutcome, error) {
	var out CompletionOutcome

	if !reCode.MatchString(code) {
		return out, ErrInvalidCode
	}
	o, ok := s.Orders.Ledger.Order(orderID)
	if !ok {
		return out, ErrOrderNotFound
	}
	if o.VolunteerID != volunteerID {
		return out, ErrForbidden
	}
	if !s.Orders.Ledger.VerifyDeliveryCode(orderID, code) {
		return out, ErrCodeMismatch
	}
	if err := s.Orders.Ledger.Transition(orderID, entity.StatusOutForDelivery, entity.StatusDelivered); err != nil {
		return out, err
	}
	out.Delivered = true
	s.Orders.mirrorStatus(orderID, entity.StatusDelivered)

	out.RequestErr = s.Store.CompleteRequest(requestID, time.Now())
	if out.PointsErr = s.Store.AwardPoints(volunteerID, DeliveryPoints); out.PointsErr == nil {
		out.PointsAwarded = DeliveryPoints
	}
	return out, nil
}

func (s *DeliveryService) Mine(volunteerID string) ([]entity.DeliveryRequest, error) {
	return s.Store.RequestsForVolunteer(volunteerID)
}

func (s *DeliveryService) Points(volunteerID string) (int64, error) {
	return s.Store.Points(volunteerID)
}
