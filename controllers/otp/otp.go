package otpControllers

import (
	"crypto/rand"
	"errors"
	"math/big"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Its-aman09/ecommerce/models"
	"github.com/Its-aman09/ecommerce/sms"
)

type sendOTPInput struct {
	Phone string `json:"phone" binding:"required"`
}

type verifyOTPInput struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"otp" binding:"required"`
}

// GenerateCode returns a uniformly random 6-digit code in
// [100000, 999999].
func GenerateCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(err)
	}
	return strconv.FormatInt(n.Int64()+100000, 10)
}

// POST /send-otp
// Persists a fresh OTP row and dispatches it by SMS. Fire-and-forget: no
// delivery confirmation is handled, and a provider failure surfaces as a
// gateway error with no retry.
func SendOTP(db *gorm.DB, sender sms.Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input sendOTPInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		otp := models.OTP{Phone: input.Phone, Code: GenerateCode()}
		if err := db.Create(&otp).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store OTP"})
			return
		}

		from := os.Getenv("TWILIO_PHONE_NUMBER")
		if err := sender.Send(from, input.Phone, "Your OTP is "+otp.Code); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send OTP"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "OTP sent", "phone": input.Phone})
	}
}

// POST /verify-otp
// Compares the submitted code against the most recently issued OTP for
// the phone. Older codes for the same phone never match; the latest one
// stays valid until a newer one replaces it.
func VerifyOTP(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input verifyOTPInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var otp models.OTP
		err := db.Where("phone = ?", input.Phone).
			Order("created_at DESC, id DESC").
			First(&otp).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP. Try again.", "phone": input.Phone})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch OTP"})
			return
		}

		if otp.Code != input.Code {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP. Try again.", "phone": input.Phone})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order confirmed", "phone": input.Phone})
	}
}

// POST /buy-now/:product_id
// Parks the product on the visitor's session and points the client at the
// OTP flow.
func BuyNow(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		c.SetCookie("buy_now_product", strconv.Itoa(int(product.ID)), 3600, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "Proceed to OTP verification", "next": "/send-otp"})
	}
}
