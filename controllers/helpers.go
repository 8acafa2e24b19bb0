package controllers

import (
	"net/http"

	"github.com/AndewAksar/drf-ecommerce/models"
	"github.com/gin-gonic/gin"
)

const (
	msgInvalidInput          = "invalid input"
	msgInternalServerError   = "Internal server error"
	msgAccessDenied          = "Access is denied"
	msgProductNotFound       = "Product does not exist"
	msgCategoryNotFound      = "Category does not exist"
	msgSellerNotFound        = "Seller does not exist"
	msgOrderNotFound         = "This order does not exist"
	msgReviewNotFound        = "Review does not exist"
	msgShippingNotFound      = "No shipping address with that ID"
	msgEmptyCart             = "No Items in Cart"
	msgNoReviews             = "No reviews for this product"
	msgDuplicateReview       = "You have already reviewed this product"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// currentUser returns the acting user resolved by the auth middleware.
func currentUser(ctx *gin.Context) (models.User, bool) {
	value, exists := ctx.Get("user")
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}

// requireUser aborts with 401 when no acting user is present.
func requireUser(ctx *gin.Context) (models.User, bool) {
	user, ok := currentUser(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Authentication required")
	}
	return user, ok
}
