package routes

import (
	"github.com/AndewAksar/drf-ecommerce/controllers"
	"github.com/AndewAksar/drf-ecommerce/middlewares"
	"github.com/gin-gonic/gin"
)

func SellerRoutes(server *gin.Engine) {
	server.POST("/sellers", middlewares.RequireAuth(), controllers.ApplyForSeller)

	seller := server.Group("/seller", middlewares.RequireAuth())
	{
		seller.GET("/products", controllers.GetSellerProducts)
		seller.POST("/products", controllers.CreateSellerProduct)
		seller.PUT("/products/:slug", controllers.UpdateSellerProduct)
		seller.DELETE("/products/:slug", controllers.DeleteSellerProduct)
		seller.POST("/products/:slug/images", controllers.UploadProductImages)

		seller.GET("/orders", controllers.GetSellerOrders)
		seller.GET("/orders/:tx_ref", controllers.GetSellerOrderItems)
	}
}
