package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Its-aman09/ecommerce/models"
)

// PUT /admin/products/:slug
// Replaces the editable fields and re-derives the slug from the new name.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.Where("slug = ?", c.Param("slug")).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		price, err := parsePrice(c.PostForm("price"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		stock, err := strconv.Atoi(c.PostForm("stock"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
			return
		}
		categoryID, err := strconv.Atoi(c.PostForm("category_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
			return
		}

		product.Name = c.PostForm("name")
		product.CategoryID = uint(categoryID)
		product.Description = c.PostForm("description")
		product.Price = price
		product.Stock = stock
		product.Available = c.PostForm("available") == "on" || c.PostForm("available") == "true"
		if image := c.PostForm("image"); image != "" {
			product.Image = image
		}

		if err := SaveProduct(db, &product); err != nil {
			var validationErr *ValidationError
			if errors.As(err, &validationErr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": validationErr.Fields})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Product \"" + product.Name + "\" updated successfully!",
			"product": product,
		})
	}
}
