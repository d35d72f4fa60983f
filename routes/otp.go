package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	otpControllers "github.com/Its-aman09/ecommerce/controllers/otp"
	"github.com/Its-aman09/ecommerce/sms"
)

// SetupOTPRoutes registers the phone-verification flow backing "buy now".
func SetupOTPRoutes(r *gin.Engine, db *gorm.DB, sender sms.Sender) {
	r.POST("/send-otp", otpControllers.SendOTP(db, sender))
	r.POST("/verify-otp", otpControllers.VerifyOTP(db))
	r.POST("/buy-now/:product_id", otpControllers.BuyNow(db))
}
