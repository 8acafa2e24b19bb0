package controllers

import (
	"log"
	"net/http"

	"github.com/AndewAksar/drf-ecommerce/initializers"
	"github.com/AndewAksar/drf-ecommerce/models"
	"github.com/AndewAksar/drf-ecommerce/repository"
	"github.com/gin-gonic/gin"
)

func GetCategories(ctx *gin.Context) {
	categories, err := repository.NewCategoryRepo(initializers.DB).All()
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"categories": categories})
}

func CreateCategory(ctx *gin.Context) {
	var input struct {
		Name  string `json:"name" binding:"required"`
		Image string `json:"image"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	category := models.Category{Name: input.Name, Image: input.Image}
	if err := repository.NewCategoryRepo(initializers.DB).Create(&category); err != nil {
		log.Println("Category creation error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to create category")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"category": category})
}

func GetProductsByCategory(ctx *gin.Context) {
	category, found, err := repository.NewCategoryRepo(initializers.DB).FindBySlug(ctx.Param("slug"))
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if !found {
		sendErrorResponse(ctx, http.StatusNotFound, msgCategoryNotFound)
		return
	}

	products, err := repository.NewProductRepo(initializers.DB).ByCategory(category.ID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"products": products})
}
