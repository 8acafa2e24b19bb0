package routes

import (
	"github.com/AndewAksar/drf-ecommerce/controllers"
	"github.com/AndewAksar/drf-ecommerce/middlewares"
	"github.com/gin-gonic/gin"
)

func ShopRoutes(server *gin.Engine) {
	server.GET("/categories", controllers.GetCategories)
	server.POST("/categories", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.CreateCategory)
	server.GET("/categories/:slug", controllers.GetProductsByCategory)

	server.GET("/products", controllers.GetProducts)
	server.GET("/products/:slug", controllers.GetProduct)
	server.GET("/sellers/:slug", controllers.GetProductsBySeller)

	server.GET("/cart", middlewares.RequireAuth(), controllers.GetCart)
	server.POST("/cart", middlewares.RequireAuth(), controllers.ToggleCartItem)
	server.POST("/checkout", middlewares.RequireAuth(), controllers.Checkout)
}
