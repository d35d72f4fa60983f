package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Its-aman09/ecommerce/models"
)

// GET /products/:slug
// Returns an available product with up to 4 related products from the
// same category.
func GetProductBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productSlug := c.Param("slug")

		var product models.Product
		if err := db.Preload("Category").
			Where("slug = ? AND available = ?", productSlug, true).
			First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		var related []models.Product
		if err := db.
			Where("category_id = ? AND available = ? AND id <> ?", product.CategoryID, true, product.ID).
			Limit(4).
			Find(&related).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch related products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"product": product, "related_products": related})
	}
}
