package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Its-aman09/ecommerce/controllers/cart"
	productcontroller "github.com/Its-aman09/ecommerce/controllers/product"
	"github.com/Its-aman09/ecommerce/middleware"
)

// SetupStoreRoutes registers the public catalog and cart endpoints. The
// cart works for anonymous sessions as well as logged-in users.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/", productcontroller.Home(db))
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:slug", productcontroller.GetProductBySlug(db))
	r.GET("/products/:slug/reviews", productcontroller.GetReviews(db))
	r.POST("/products/:slug/reviews", middleware.RequireUser, productcontroller.CreateReview(db))

	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartControllers.GetCart(db))
		cartGroup.POST("/add/:product_id", cartControllers.AddToCart(db))
		cartGroup.POST("/update/:item_id", cartControllers.UpdateCartItem(db))
		cartGroup.POST("/remove/:item_id", cartControllers.RemoveCartItem(db))
	}
}
