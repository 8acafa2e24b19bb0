package routes

import (
	"github.com/AndewAksar/drf-ecommerce/controllers"
	"github.com/gin-gonic/gin"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
