package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Niksiiii/BuConnect/entity"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// Save upserts by primary key. Repeated sign-ins for the same synthetic id
// overwrite the row, last write wins.
func (r *UserRepository) Save(u *entity.User) error {
	err := r.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(u).Error
	return errors.Wrap(err, "save user")
}

func (r *UserRepository) FindByID(id string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, "id = ?", id).Error; err != nil {
		return nil, errors.Wrap(err, "find user")
	}
	return &u, nil
}

func (r *UserRepository) All() ([]entity.User, error) {
	var out []entity.User
	if err := r.DB.Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	return out, nil
}
