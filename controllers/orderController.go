package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/AndewAksar/drf-ecommerce/initializers"
	"github.com/AndewAksar/drf-ecommerce/repository"
	"github.com/gin-gonic/gin"
)

type checkoutInput struct {
	ShippingID uint `json:"shippingId" binding:"required"`
}

// Checkout turns the user's cart lines into an order. The empty-cart
// check runs before shipping validation, so an empty cart always
// responds 404 regardless of the body.
func Checkout(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	orders := repository.NewOrderRepo(initializers.DB)

	items, err := orders.CartLines(user.ID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if len(items) == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, msgEmptyCart)
		return
	}

	var input checkoutInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	shipping, found, err := repository.NewShippingRepo(initializers.DB).FindByID(user.ID, input.ShippingID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if !found {
		sendErrorResponse(ctx, http.StatusNotFound, msgShippingNotFound)
		return
	}

	order, err := orders.Checkout(user.ID, shipping)
	if err != nil {
		if errors.Is(err, repository.ErrEmptyCart) {
			sendErrorResponse(ctx, http.StatusNotFound, msgEmptyCart)
			return
		}
		log.Println("Checkout error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Checkout Successful",
		"order":   order,
	})
}

func GetOrders(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	orders, err := repository.NewOrderRepo(initializers.DB).ListByOwner(user.ID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch orders")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

func GetOrderItems(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	repo := repository.NewOrderRepo(initializers.DB)
	order, found, err := repo.FindByTxRef(ctx.Param("tx_ref"))
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	// Another user's order is indistinguishable from a missing one.
	if !found || order.UserID != user.ID {
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	}

	items, err := repo.ItemsForOrder(order.ID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"items": items})
}
