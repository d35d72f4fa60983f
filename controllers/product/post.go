package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Its-aman09/ecommerce/models"
)

// POST /admin/products
// Creates a product from form fields. Image handling is out of scope
// here: the form carries a URL produced by the upload collaborator.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		stockStr := c.PostForm("stock")
		categoryIDStr := c.PostForm("category_id")

		price, err := parsePrice(priceStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		stock := 0
		if stockStr != "" {
			if stock, err = strconv.Atoi(stockStr); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
		}
		categoryID := 0
		if categoryIDStr != "" {
			if categoryID, err = strconv.Atoi(categoryIDStr); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
		}

		product := models.Product{
			Name:        name,
			CategoryID:  uint(categoryID),
			Description: c.PostForm("description"),
			Price:       price,
			Stock:       stock,
			Available:   c.DefaultPostForm("available", "true") != "false",
			Image:       c.PostForm("image"),
		}

		if err := SaveProduct(db, &product); err != nil {
			var validationErr *ValidationError
			if errors.As(err, &validationErr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": validationErr.Fields})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Product \"" + product.Name + "\" created successfully!",
			"product": product,
		})
	}
}
