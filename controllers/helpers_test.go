package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/AndewAksar/drf-ecommerce/initializers"
	"github.com/AndewAksar/drf-ecommerce/models"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	initializers.DB = db
	return db
}

// asUser stands in for the auth middleware in handler tests.
func asUser(user models.User) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set("user", user)
		ctx.Next()
	}
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func createUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{FirstName: "Test", LastName: "User", Email: email, Role: "user", AccountActivated: true}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func createSeller(t *testing.T, db *gorm.DB, userID uint, businessName string, approved bool) models.Seller {
	t.Helper()
	seller := models.Seller{UserID: userID, BusinessName: businessName, IsApproved: approved}
	require.NoError(t, db.Create(&seller).Error)
	return seller
}

func createProduct(t *testing.T, db *gorm.DB, name, price string, categoryID uint, sellerID *uint) models.Product {
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

func createShipping(t *testing.T, db *gorm.DB, userID uint) models.ShippingAddress {
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
