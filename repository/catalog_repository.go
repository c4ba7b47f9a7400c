package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Niksiiii/BuConnect/entity"
)

// CatalogRepository reads the seeded reference data: food vendors, their
// menus, and the laundry price list. Nothing in the ordering flows writes
// through it.
type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

func (r *CatalogRepository) Vendors() ([]entity.FoodVendor, error) {
	var out []entity.FoodVendor
	err := r.DB.Find(&out).Error
	return out, errors.Wrap(err, "list vendors")
}

func (r *CatalogRepository) Vendor(id string) (*entity.FoodVendor, error) {
	var v entity.FoodVendor
	if err := r.DB.First(&v, "id = ?", id).Error; err != nil {
		return nil, errors.Wrap(err, "find vendor")
	}
	return &v, nil
}

func (r *CatalogRepository) MenuForVendor(vendorID string) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	err := r.DB.Where("vendor_id = ?", vendorID).Find(&out).Error
	return out, errors.Wrap(err, "list menu")
}

func (r *CatalogRepository) MenuItem(id string) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, "id = ?", id).Error; err != nil {
		return nil, errors.Wrap(err, "find menu item")
	}
	return &m, nil
}

func (r *CatalogRepository) LaundryItems() ([]entity.LaundryItem, error) {
	var out []entity.LaundryItem
	err := r.DB.Find(&out).Error
	return out, errors.Wrap(err, "list laundry items")
}

func (r *CatalogRepository) LaundryItem(id string) (*entity.LaundryItem, error) {
	var it entity.LaundryItem
	if err := r.DB.First(&it, "id = ?", id).Error; err != nil {
		return nil, errors.Wrap(err, "find laundry item")
	}
	return &it, nil
}
