package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/AndewAksar/drf-ecommerce/initializers"
	"github.com/AndewAksar/drf-ecommerce/repository"
	"github.com/gin-gonic/gin"
)

func GetProducts(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	filter := repository.ProductFilter{
		Name:  ctx.Query("name"),
		Size:  ctx.Query("size"),
		Color: ctx.Query("color"),
		Page:  page,
		Limit: limit,
	}

	products, count, err := repository.NewProductRepo(initializers.DB).List(filter)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch products")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"products": products,
		"metadata": gin.H{
			"total": count,
			"page":  page,
			"limit": limit,
		},
	})
}

func GetProduct(ctx *gin.Context) {
	product, found, err := repository.NewProductRepo(initializers.DB).FindBySlug(ctx.Param("slug"))
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if !found {
		sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
		return
	}

	// Average is 0 when the product has no reviews yet.
	average, err := repository.NewReviewRepo(initializers.DB).AverageRating(product.ID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"product":       product,
		"averageRating": average,
	})
}

func GetProductsBySeller(ctx *gin.Context) {
	seller, found, err := repository.NewSellerRepo(initializers.DB).FindBySlug(ctx.Param("slug"))
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if !found {
		sendErrorResponse(ctx, http.StatusNotFound, msgSellerNotFound)
		return
	}

	products, err := repository.NewProductRepo(initializers.DB).BySeller(seller.ID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"products": products})
}
