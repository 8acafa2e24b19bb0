package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the shop API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account
- POST "/auth/verify-email/:activationToken" - Activate user account
- POST "/auth/forgot-password" - Request password reset
- POST "/auth/reset-password/:resetToken" - Reset user password

SHOP
- GET "/categories/" - Get all categories
- POST "/categories/" - Create a category (admin)
- GET "/categories/:slug/" - Get products by category
- GET "/products/" - Get all products (filter by name, size, color)
- GET "/products/:slug/" - Get product details with average rating
- GET "/sellers/:slug/" - Get a seller's products
- GET "/cart/" - Get cart items
- POST "/cart/" - Add/update/remove an item in cart (quantity 0 removes)
- POST "/checkout/" - Create an order from the cart

REVIEWS
- GET "/product/:slug/reviews/" - Get reviews with average rating
- POST "/product/:slug/review/" - Create a review
- GET/PUT/DELETE "/product/:slug/review/:id/" - Manage a review

PROFILE
- GET/POST "/profile/shipping_addresses/" - Manage shipping addresses
- GET/PUT/DELETE "/profile/shipping_addresses/detail/:id/" - Manage one address
- GET "/profile/orders/" - Get own orders
- GET "/profile/orders/:tx_ref/" - Get items of one order

SELLER
- POST "/sellers/" - Apply to become a seller
- GET/POST "/seller/products/" - Manage own products (approved sellers)
- PUT/DELETE "/seller/products/:slug/" - Update or delete a product
- POST "/seller/products/:slug/images/" - Upload product images
- GET "/seller/orders/" - Get orders containing own products
- GET "/seller/orders/:tx_ref/" - Get own items of one order`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
