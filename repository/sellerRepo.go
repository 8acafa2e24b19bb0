package repository

import (
	"github.com/AndewAksar/drf-ecommerce/models"
	"gorm.io/gorm"
)

type SellerRepo struct {
	db *gorm.DB
}

func NewSellerRepo(db *gorm.DB) *SellerRepo {
	return &SellerRepo{db: db}
}

// FindApprovedByUser is the seller gate lookup: the acting user must own
// an approved seller record.
func (r *SellerRepo) FindApprovedByUser(userID uint) (models.Seller, bool, error) {
	var seller models.Seller
	found, err := findOne(r.db.Where("user_id = ? AND is_approved = ?", userID, true), &seller)
	return seller, found, err
}

func (r *SellerRepo) FindByUser(userID uint) (models.Seller, bool, error) {
	var seller models.Seller
	found, err := findOne(r.db.Where("user_id = ?", userID), &seller)
	return seller, found, err
}

func (r *SellerRepo) FindBySlug(slug string) (models.Seller, bool, error) {
	var seller models.Seller
	found, err := findOne(r.db.Preload("User").Where("slug = ?", slug), &seller)
	return seller, found, err
}

// GetOrCreate returns the user's seller record, creating an unapproved
// one on first application. The created flag reports which happened.
func (r *SellerRepo) GetOrCreate(userID uint, businessName string) (models.Seller, bool, error) {
	seller, found, err := r.FindByUser(userID)
	if err != nil {
		return models.Seller{}, false, err
	}
	if found {
		return seller, false, nil
	}
	seller = models.Seller{UserID: userID, BusinessName: businessName}
	if err := r.db.Create(&seller).Error; err != nil {
		return models.Seller{}, false, err
	}
	return seller, true, nil
}
