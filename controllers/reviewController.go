package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/AndewAksar/drf-ecommerce/initializers"
	"github.com/AndewAksar/drf-ecommerce/models"
	"github.com/AndewAksar/drf-ecommerce/repository"
	"github.com/gin-gonic/gin"
)

type reviewInput struct {
	Text   string `json:"text" binding:"required,max=1000"`
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
}

// Updates are partial; absent fields keep their value.
type reviewUpdateInput struct {
	Text   *string `json:"text" binding:"omitempty,max=1000"`
	Rating *int    `json:"rating" binding:"omitempty,min=1,max=5"`
}

func findProductOr404(ctx *gin.Context) (models.Product, bool) {
	product, found, err := repository.NewProductRepo(initializers.DB).FindBySlug(ctx.Param("slug"))
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return models.Product{}, false
	}
	if !found {
		sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
		return models.Product{}, false
	}
	return product, true
}

// CreateReview creates the user's review for a product, at most one per
// (user, product) pair.
func CreateReview(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	product, ok := findProductOr404(ctx)
	if !ok {
		return
	}

	var input reviewInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	reviews := repository.NewReviewRepo(initializers.DB)

	exists, err := reviews.ExistsForUser(product.ID, user.ID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if exists {
		sendErrorResponse(ctx, http.StatusBadRequest, msgDuplicateReview)
		return
	}

	review := models.Review{
		UserID:    user.ID,
		ProductID: product.ID,
		Rating:    input.Rating,
		Text:      input.Text,
	}
	if err := reviews.Create(&review); err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			sendErrorResponse(ctx, http.StatusBadRequest, msgDuplicateReview)
			return
		}
		log.Println("Review creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"review": review})
}

// GetReviews lists a product's reviews with the average over the full
// review set. A product with zero reviews responds 404.
func GetReviews(ctx *gin.Context) {
	product, ok := findProductOr404(ctx)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	repo := repository.NewReviewRepo(initializers.DB)

	reviews, count, err := repo.ListByProduct(product.ID, page, limit)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if count == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, msgNoReviews)
		return
	}

	average, err := repo.AverageRating(product.ID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"reviews":       reviews,
		"averageRating": average,
		"metadata": gin.H{
			"total": count,
			"page":  page,
			"limit": limit,
		},
	})
}

func findReviewOr404(ctx *gin.Context, productID uint) (models.Review, bool) {
	review, found, err := repository.NewReviewRepo(initializers.DB).FindByID(productID, ctx.Param("id"))
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return models.Review{}, false
	}
	if !found {
		sendErrorResponse(ctx, http.StatusNotFound, msgReviewNotFound)
		return models.Review{}, false
	}
	return review, true
}

func GetReview(ctx *gin.Context) {
	product, ok := findProductOr404(ctx)
	if !ok {
		return
	}
	review, ok := findReviewOr404(ctx, product.ID)
	if !ok {
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"review": review})
}

// UpdateReview partially overwrites rating and text, author only.
// Existence resolves before ownership so the 404 wording never leaks
// whether the review belongs to someone else.
func UpdateReview(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	product, ok := findProductOr404(ctx)
	if !ok {
		return
	}
	review, ok := findReviewOr404(ctx, product.ID)
	if !ok {
		return
	}
	if review.UserID != user.ID {
		sendErrorResponse(ctx, http.StatusForbidden, msgAccessDenied)
		return
	}

	var input reviewUpdateInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if input.Rating != nil {
		review.Rating = *input.Rating
	}
	if input.Text != nil {
		review.Text = *input.Text
	}
	if err := repository.NewReviewRepo(initializers.DB).Save(&review); err != nil {
		log.Println("Review update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"review": review})
}

func DeleteReview(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	product, ok := findProductOr404(ctx)
	if !ok {
		return
	}
	review, ok := findReviewOr404(ctx, product.ID)
	if !ok {
		return
	}
	if review.UserID != user.ID {
		sendErrorResponse(ctx, http.StatusForbidden, msgAccessDenied)
		return
	}

	if err := repository.NewReviewRepo(initializers.DB).Delete(&review); err != nil {
		log.Println("Review delete error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Review deleted"})
}
