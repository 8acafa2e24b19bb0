package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/AndewAksar/drf-ecommerce/initializers"
	"github.com/AndewAksar/drf-ecommerce/models"
	"github.com/AndewAksar/drf-ecommerce/repository"
	"github.com/gin-gonic/gin"
)

func GetShippingAddresses(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	addresses, err := repository.NewShippingRepo(initializers.DB).ListByOwner(user.ID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"shippingAddresses": addresses})
}

func CreateShippingAddress(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var address models.ShippingAddress
	if err := ctx.ShouldBindJSON(&address); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	address.ID = 0
	address.UserID = user.ID

	if err := repository.NewShippingRepo(initializers.DB).Create(&address); err != nil {
		log.Println("Shipping address creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"shippingAddress": address})
}

func findOwnAddressOr404(ctx *gin.Context, userID uint) (models.ShippingAddress, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid shipping address ID")
		return models.ShippingAddress{}, false
	}

	address, found, err := repository.NewShippingRepo(initializers.DB).FindByID(userID, uint(id))
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return models.ShippingAddress{}, false
	}
	if !found {
		sendErrorResponse(ctx, http.StatusNotFound, msgShippingNotFound)
		return models.ShippingAddress{}, false
	}
	return address, true
}

func GetShippingAddress(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	address, ok := findOwnAddressOr404(ctx, user.ID)
	if !ok {
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"shippingAddress": address})
}

func UpdateShippingAddress(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	address, ok := findOwnAddressOr404(ctx, user.ID)
	if !ok {
		return
	}

	var input models.ShippingAddress
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	address.FullName = input.FullName
	address.Email = input.Email
	address.Phone = input.Phone
	address.Address = input.Address
	address.City = input.City
	address.Country = input.Country
	address.Zipcode = input.Zipcode

	if err := repository.NewShippingRepo(initializers.DB).Save(&address); err != nil {
		log.Println("Shipping address update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"shippingAddress": address})
}

func DeleteShippingAddress(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	address, ok := findOwnAddressOr404(ctx, user.ID)
	if !ok {
		return
	}

	if err := repository.NewShippingRepo(initializers.DB).Delete(&address); err != nil {
		log.Println("Shipping address delete error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Shipping address deleted"})
}
