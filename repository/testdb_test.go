package repository

import (
	"testing"

	"github.com/AndewAksar/drf-ecommerce/models"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Seller{},
		&models.Product{},
		&models.Review{},
		&models.ShippingAddress{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{FirstName: "Test", LastName: "User", Email: email, Role: "user", AccountActivated: true}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func seedSeller(t *testing.T, db *gorm.DB, userID uint, businessName string, approved bool) models.Seller {
	t.Helper()
	seller := models.Seller{UserID: userID, BusinessName: businessName, IsApproved: approved}
	require.NoError(t, db.Create(&seller).Error)
	return seller
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string, categoryID uint, sellerID *uint) models.Product {
	t.Helper()
	product := models.Product{
		Name:         name,
		Desc:         name + " description",
		PriceCurrent: decimal.RequireFromString(price),
		CategoryID:   categoryID,
		SellerID:     sellerID,
		InStock:      10,
		Image1:       "https://example.com/" + name + ".jpg",
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func seedShipping(t *testing.T, db *gorm.DB, userID uint) models.ShippingAddress {
	t.Helper()
	address := models.ShippingAddress{
		UserID:   userID,
		FullName: "Test User",
		Email:    "shipping@example.com",
		Phone:    "+10000000000",
		Address:  "1 Test Street",
		City:     "Testville",
		Country:  "Testland",
		Zipcode:  "00000",
	}
	require.NoError(t, db.Create(&address).Error)
	return address
}
