package receiptControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Its-aman09/ecommerce/middleware"
	"github.com/Its-aman09/ecommerce/models"
	"github.com/Its-aman09/ecommerce/pdfgen"
)

// GET /order/:id/receipt (auth required, owner-only)
// Fills the fixed receipt template from the order and forces a download.
func DownloadReceipt(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, _ := middleware.IdentityFromCtx(c)
		orderID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		var order models.Order
		if err := db.Where("id = ? AND user_id = ?", orderID, identity.UserID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		pdf, err := pdfgen.Receipt(pdfgen.ReceiptFields{
			Name:    order.FirstName + " " + order.LastName,
			Phone:   order.Phone,
			OrderID: "ORD" + strconv.Itoa(int(order.ID)),
			Amount:  order.TotalAmount.StringFixed(2),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render receipt"})
			return
		}

		c.Header("Content-Disposition", `attachment; filename="receipt.pdf"`)
		c.Data(http.StatusOK, "application/pdf", pdf)
	}
}
