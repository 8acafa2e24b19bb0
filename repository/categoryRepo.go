package repository

import (
	"github.com/AndewAksar/drf-ecommerce/models"
	"gorm.io/gorm"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) All() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepo) FindBySlug(slug string) (models.Category, bool, error) {
	var category models.Category
	found, err := findOne(r.db.Where("slug = ?", slug), &category)
	return category, found, err
}

func (r *CategoryRepo) Create(category *models.Category) error {
	return r.db.Create(category).Error
}
