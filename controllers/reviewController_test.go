package controllers

import (
	"net/http"
	"testing"

	"github.com/AndewAksar/drf-ecommerce/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func reviewRouter(user models.User) *gin.Engine {
	router := gin.New()
	router.GET("/product/:slug", GetProduct)
	router.GET("/product/:slug/reviews", GetReviews)
	router.POST("/product/:slug/review", asUser(user), CreateReview)
	router.GET("/product/:slug/review/:id", GetReview)
	router.PUT("/product/:slug/review/:id", asUser(user), UpdateReview)
	router.DELETE("/product/:slug/review/:id", asUser(user), DeleteReview)
	return router
}

func TestCreateReviewOncePerProduct(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "reviewer@example.com")
	category := createCategory(t, db, "Gadgets")
	createProduct(t, db, "Widget", "10.00", category.ID, nil)
	createProduct(t, db, "Gizmo", "2.50", category.ID, nil)
	router := reviewRouter(user)

	recorder := doJSON(t, router, http.MethodPost, "/product/widget/review", gin.H{"text": "Great", "rating": 5})
	require.Equal(t, http.StatusCreated, recorder.Code)
	review := decodeBody(t, recorder)["review"].(map[string]any)
	require.NotEmpty(t, review["id"])

	// Second review for the same product is rejected.
	recorder = doJSON(t, router, http.MethodPost, "/product/widget/review", gin.H{"text": "Changed my mind", "rating": 1})
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	// A different product is fine.
	recorder = doJSON(t, router, http.MethodPost, "/product/gizmo/review", gin.H{"text": "Okay", "rating": 3})
	require.Equal(t, http.StatusCreated, recorder.Code)
}

func TestCreateReviewValidation(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "reviewer@example.com")
	category := createCategory(t, db, "Gadgets")
	createProduct(t, db, "Widget", "10.00", category.ID, nil)
	router := reviewRouter(user)

	recorder := doJSON(t, router, http.MethodPost, "/product/no-such/review", gin.H{"text": "Great", "rating": 5})
	require.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = doJSON(t, router, http.MethodPost, "/product/widget/review", gin.H{"text": "Great", "rating": 6})
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doJSON(t, router, http.MethodPost, "/product/widget/review", gin.H{"rating": 4})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetReviewsAndAverage(t *testing.T) {
	db := setupTestDB(t)
	category := createCategory(t, db, "Gadgets")
	createProduct(t, db, "Widget", "10.00", category.ID, nil)
	router := reviewRouter(models.User{})

	// No reviews yet: the listing is 404 while the product detail still
	// reports a zero average.
	recorder := doJSON(t, router, http.MethodGet, "/product/widget/reviews", nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, "/product/widget", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.EqualValues(t, 0, decodeBody(t, recorder)["averageRating"])

	for i, rating := range []int{5, 3, 4} {
		user := createUser(t, db, string(rune('a'+i))+"@example.com")
		perUser := reviewRouter(user)
		resp := doJSON(t, perUser, http.MethodPost, "/product/widget/review", gin.H{"text": "r", "rating": rating})
		require.Equal(t, http.StatusCreated, resp.Code)
	}

	recorder = doJSON(t, router, http.MethodGet, "/product/widget/reviews", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	require.Len(t, body["reviews"].([]any), 3)
	require.InDelta(t, 4.0, body["averageRating"].(float64), 0.0001)

	recorder = doJSON(t, router, http.MethodGet, "/product/widget", nil)
	require.InDelta(t, 4.0, decodeBody(t, recorder)["averageRating"].(float64), 0.0001)
}

func TestUpdateReviewPartial(t *testing.T) {
	db := setupTestDB(t)
	author := createUser(t, db, "author@example.com")
	category := createCategory(t, db, "Gadgets")
	createProduct(t, db, "Widget", "10.00", category.ID, nil)
	router := reviewRouter(author)

	recorder := doJSON(t, router, http.MethodPost, "/product/widget/review", gin.H{"text": "Great", "rating": 5})
	require.Equal(t, http.StatusCreated, recorder.Code)
	reviewID := decodeBody(t, recorder)["review"].(map[string]any)["id"].(string)

	// Rating alone leaves the text in place.
	recorder = doJSON(t, router, http.MethodPut, "/product/widget/review/"+reviewID, gin.H{"rating": 2})
	require.Equal(t, http.StatusOK, recorder.Code)
	review := decodeBody(t, recorder)["review"].(map[string]any)
	require.EqualValues(t, 2, review["rating"])
	require.Equal(t, "Great", review["text"])

	// Text alone leaves the rating in place.
	recorder = doJSON(t, router, http.MethodPut, "/product/widget/review/"+reviewID, gin.H{"text": "Fine"})
	require.Equal(t, http.StatusOK, recorder.Code)
	review = decodeBody(t, recorder)["review"].(map[string]any)
	require.EqualValues(t, 2, review["rating"])
	require.Equal(t, "Fine", review["text"])

	// A supplied rating is still range-checked.
	recorder = doJSON(t, router, http.MethodPut, "/product/widget/review/"+reviewID, gin.H{"rating": 6})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetReviewsLimitClamped(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "reviewer@example.com")
	category := createCategory(t, db, "Gadgets")
	createProduct(t, db, "Widget", "10.00", category.ID, nil)

	recorder := doJSON(t, reviewRouter(user), http.MethodPost, "/product/widget/review", gin.H{"text": "Great", "rating": 5})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = doJSON(t, reviewRouter(user), http.MethodGet, "/product/widget/reviews?limit=0", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, decodeBody(t, recorder)["reviews"].([]any), 1)
}

func TestReviewAuthorOnly(t *testing.T) {
	db := setupTestDB(t)
	author := createUser(t, db, "author@example.com")
	other := createUser(t, db, "other@example.com")
	category := createCategory(t, db, "Gadgets")
	createProduct(t, db, "Widget", "10.00", category.ID, nil)

	recorder := doJSON(t, reviewRouter(author), http.MethodPost, "/product/widget/review", gin.H{"text": "Great", "rating": 5})
	require.Equal(t, http.StatusCreated, recorder.Code)
	reviewID := decodeBody(t, recorder)["review"].(map[string]any)["id"].(string)

	otherRouter := reviewRouter(other)

	recorder = doJSON(t, otherRouter, http.MethodPut, "/product/widget/review/"+reviewID, gin.H{"text": "Mine now", "rating": 1})
	require.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = doJSON(t, otherRouter, http.MethodDelete, "/product/widget/review/"+reviewID, nil)
	require.Equal(t, http.StatusForbidden, recorder.Code)

	// A missing review stays a plain 404 for everyone.
	recorder = doJSON(t, otherRouter, http.MethodDelete, "/product/widget/review/not-a-review", nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)

	authorRouter := reviewRouter(author)

	recorder = doJSON(t, authorRouter, http.MethodPut, "/product/widget/review/"+reviewID, gin.H{"text": "Still great", "rating": 4})
	require.Equal(t, http.StatusOK, recorder.Code)
	review := decodeBody(t, recorder)["review"].(map[string]any)
	require.EqualValues(t, 4, review["rating"])
	require.Equal(t, "Still great", review["text"])

	recorder = doJSON(t, authorRouter, http.MethodDelete, "/product/widget/review/"+reviewID, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, authorRouter, http.MethodGet, "/product/widget/review/"+reviewID, nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}
