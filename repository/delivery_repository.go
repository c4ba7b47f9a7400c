package repository

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Niksiiii/BuConnect/entity"
)

type DeliveryRepository struct {
	DB *gorm.DB
}

func NewDeliveryRepository(db *gorm.DB) *DeliveryRepository {
	return &DeliveryRepository{DB: db}
}

func (r *DeliveryRepository) CreateRequest(req *entity.DeliveryRequest) error {
	return errors.Wrap(r.DB.Create(req).Error, "create delivery request")
}

func (r *DeliveryRepository) CompleteRequest(id string, at time.Time) error {
	err := r.DB.Model(&entity.DeliveryRequest{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       entity.DeliveryCompleted,
			"completed_at": at,
		}).Error
	return errors.Wrap(err, "complete delivery request")
}

func (r *DeliveryRepository) RequestsForVolunteer(volunteerID string) ([]entity.DeliveryRequest, error) {
	var out []entity.DeliveryRequest
	err := r.DB.Where("volunteer_id = ?", volunteerID).
		Order("created_at DESC").
		Find(&out).Error
	return out, errors.Wrap(err, "list delivery requests")
}

// AwardPoints increments the volunteer's total, creating the row on first
// award.
func (r *DeliveryRepository) AwardPoints(userID string, delta int64) error {
	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{"points": gorm.Expr("points + ?", delta)}),
	}).Create(&entity.VolunteerPoints{UserID: userID, Points: delta}).Error
	return errors.Wrap(err, "award points")
}

func (r *DeliveryRepository) Points(userID string) (int64, error) {
	var vp entity.VolunteerPoints
	err := r.DB.First(&vp, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	return vp.Points, errors.Wrap(err, "get points")
}
