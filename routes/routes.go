package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Its-aman09/ecommerce/middleware"
	"github.com/Its-aman09/ecommerce/sms"
)

// SetupRoutes is the single entry-point that wires up the store, auth,
// order, OTP and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, sender sms.Sender) {
	// every request gets an identity (user or anonymous session) exactly once
	r.Use(middleware.ResolveIdentity)

	SetupAuthRoutes(r, db)
	SetupStoreRoutes(r, db)
	SetupOrderRoutes(r, db)
	SetupOTPRoutes(r, db, sender)
	SetupAdminRoutes(r, db)
}
