package controllers

import (
	"log"
	"net/http"

	"github.com/AndewAksar/drf-ecommerce/initializers"
	"github.com/AndewAksar/drf-ecommerce/repository"
	"github.com/gin-gonic/gin"
)

type toggleCartItemInput struct {
	Slug     string `json:"slug" binding:"required"`
	Quantity *int   `json:"quantity" binding:"required,gte=0"`
}

func GetCart(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	items, err := repository.NewOrderRepo(initializers.DB).CartLines(user.ID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"items": items})
}

// ToggleCartItem upserts the cart line for (user, product). Quantity 0
// removes the line; the response then carries item: null but keeps the
// status the upsert produced.
func ToggleCartItem(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var input toggleCartItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	product, found, err := repository.NewProductRepo(initializers.DB).FindBySlug(input.Slug)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if !found {
		sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
		return
	}

	item, created, err := repository.NewOrderRepo(initializers.DB).ToggleCartLine(user.ID, product, *input.Quantity)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to update cart")
		return
	}

	status := http.StatusOK
	message := "Item Updated in cart"
	if created {
		status = http.StatusCreated
		message = "Item Added to cart"
	}
	if item == nil {
		message = "Item Removed from cart"
	}

	sendJSONResponse(ctx, status, gin.H{"message": message, "item": item})
}
