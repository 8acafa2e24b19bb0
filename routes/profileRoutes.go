package routes

import (
	"github.com/AndewAksar/drf-ecommerce/controllers"
	"github.com/AndewAksar/drf-ecommerce/middlewares"
	"github.com/gin-gonic/gin"
)

func ProfileRoutes(server *gin.Engine) {
	profile := server.Group("/profile", middlewares.RequireAuth())
	{
		profile.GET("/shipping_addresses", controllers.GetShippingAddresses)
		profile.POST("/shipping_addresses", controllers.CreateShippingAddress)
		profile.GET("/shipping_addresses/detail/:id", controllers.GetShippingAddress)
		profile.PUT("/shipping_addresses/detail/:id", controllers.UpdateShippingAddress)
		profile.DELETE("/shipping_addresses/detail/:id", controllers.DeleteShippingAddress)

		profile.GET("/orders", controllers.GetOrders)
		profile.GET("/orders/:tx_ref", controllers.GetOrderItems)
	}
}
