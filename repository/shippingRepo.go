package repository

import (
	"github.com/AndewAksar/drf-ecommerce/models"
	"gorm.io/gorm"
)

type ShippingRepo struct {
	db *gorm.DB
}

func NewShippingRepo(db *gorm.DB) *ShippingRepo {
	return &ShippingRepo{db: db}
}

// FindByID is owner-scoped: an address belonging to another user is
// reported as absent.
func (r *ShippingRepo) FindByID(userID, id uint) (models.ShippingAddress, bool, error) {
	var address models.ShippingAddress
	found, err := findOne(r.db.Where("user_id = ? AND id = ?", userID, id), &address)
	return address, found, err
}

func (r *ShippingRepo) ListByOwner(userID uint) ([]models.ShippingAddress, error) {
	var addresses []models.ShippingAddress
	err := r.db.Where("user_id = ?", userID).Find(&addresses).Error
	return addresses, err
}

func (r *ShippingRepo) Create(address *models.ShippingAddress) error {
	return r.db.Create(address).Error
}

func (r *ShippingRepo) Save(address *models.ShippingAddress) error {
	return r.db.Save(address).Error
}

func (r *ShippingRepo) Delete(address *models.ShippingAddress) error {
	return r.db.Delete(address).Error
}
