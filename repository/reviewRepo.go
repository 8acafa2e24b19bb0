package repository

import (
	"errors"

	"github.com/AndewAksar/drf-ecommerce/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDuplicateReview is returned when the user already reviewed the
// product. The (user, product) unique index backstops the existence
// check under concurrent creations.
var ErrDuplicateReview = errors.New("you have already reviewed this product")

type ReviewRepo struct {
	db *gorm.DB
}

func NewReviewRepo(db *gorm.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

func (r *ReviewRepo) ExistsForUser(productID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Review{}).
		Where("product_id = ? AND user_id = ?", productID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepo) Create(review *models.Review) error {
	if err := r.db.Create(review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateReview
		}
		return err
	}
	return nil
}

func (r *ReviewRepo) FindByID(productID uint, id string) (models.Review, bool, error) {
	var review models.Review
	found, err := findOne(r.db.Preload("User").Where("product_id = ? AND id = ?", productID, id), &review)
	return review, found, err
}

func (r *ReviewRepo) ListByProduct(productID uint, page, limit int) ([]models.Review, int64, error) {
	var count int64
	if err := r.db.Model(&models.Review{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	var reviews []models.Review
	err := r.db.Preload("User").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&reviews).Error
	return reviews, count, err
}

// AverageRating is the arithmetic mean over the full review set for the
// product, 0 when there are none.
func (r *ReviewRepo) AverageRating(productID uint) (float64, error) {
	var average float64
	err := r.db.Model(&models.Review{}).
		Where("product_id = ?", productID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&average).Error
	return average, err
}

func (r *ReviewRepo) Save(review *models.Review) error {
	// A preloaded author must not be upserted along with the row.
	return r.db.Omit(clause.Associations).Save(review).Error
}

// Delete removes the row outright; the (user, product) slot frees up
// for a later review.
func (r *ReviewRepo) Delete(review *models.Review) error {
	return r.db.Delete(review).Error
}
