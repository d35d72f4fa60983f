package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	accountControllers "github.com/Its-aman09/ecommerce/controllers/account"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", accountControllers.Register(db))
		authGroup.POST("/login", accountControllers.Login(db))
		authGroup.POST("/logout", accountControllers.Logout())
	}
}
