package repository

import (
	"github.com/AndewAksar/drf-ecommerce/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// ProductFilter narrows the catalog listing. Zero values mean "no filter".
type ProductFilter struct {
	Name  string
	Size  string
	Color string
	Page  int
	Limit int
}

func (r *ProductRepo) withRelations() *gorm.DB {
	return r.db.Preload("Category").Preload("Seller").Preload("Seller.User")
}

func (r *ProductRepo) List(filter ProductFilter) ([]models.Product, int64, error) {
	query := r.withRelations()
	countQuery := r.db.Model(&models.Product{})

	if filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+filter.Name+"%")
		countQuery = countQuery.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	// Sizes and colors are JSON arrays of strings; match the quoted value.
	if filter.Size != "" {
		query = query.Where("sizes LIKE ?", `%"`+filter.Size+`"%`)
		countQuery = countQuery.Where("sizes LIKE ?", `%"`+filter.Size+`"%`)
	}
	if filter.Color != "" {
		query = query.Where("colors LIKE ?", `%"`+filter.Color+`"%`)
		countQuery = countQuery.Where("colors LIKE ?", `%"`+filter.Color+`"%`)
	}

	var count int64
	if err := countQuery.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		query = query.Limit(filter.Limit).Offset(offset)
	}

	var products []models.Product
	err := query.Find(&products).Error
	return products, count, err
}

func (r *ProductRepo) FindBySlug(slug string) (models.Product, bool, error) {
	var product models.Product
	found, err := findOne(r.withRelations().Where("slug = ?", slug), &product)
	return product, found, err
}

func (r *ProductRepo) ByCategory(categoryID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.withRelations().Where("category_id = ?", categoryID).Find(&products).Error
	return products, err
}

func (r *ProductRepo) BySeller(sellerID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.withRelations().Where("seller_id = ?", sellerID).Find(&products).Error
	return products, err
}

func (r *ProductRepo) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *ProductRepo) Save(product *models.Product) error {
	// Preloaded category/seller must not be upserted along with the row.
	return r.db.Omit(clause.Associations).Save(product).Error
}

// Delete soft-deletes the product; existing order lines keep pointing at
// the row.
func (r *ProductRepo) Delete(product *models.Product) error {
	return r.db.Delete(product).Error
}
