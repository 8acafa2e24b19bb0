package routes

import (
	"github.com/AndewAksar/drf-ecommerce/controllers"
	"github.com/AndewAksar/drf-ecommerce/middlewares"
	"github.com/gin-gonic/gin"
)

func ReviewRoutes(server *gin.Engine) {
	server.GET("/product/:slug/reviews", controllers.GetReviews)
	server.POST("/product/:slug/review", middlewares.RequireAuth(), controllers.CreateReview)
	server.GET("/product/:slug/review/:id", controllers.GetReview)
	server.PUT("/product/:slug/review/:id", middlewares.RequireAuth(), controllers.UpdateReview)
	server.DELETE("/product/:slug/review/:id", middlewares.RequireAuth(), controllers.DeleteReview)
}
