package cartControllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Its-aman09/ecommerce/auth"
	"github.com/Its-aman09/ecommerce/middleware"
	"github.com/Its-aman09/ecommerce/models"
)

type addToCartInput struct {
	Quantity int `json:"quantity"`
}

type updateCartInput struct {
	// Pointer so an explicit zero survives binding; zero deletes the item.
	Quantity *int `json:"quantity" binding:"required"`
}

// GetOrCreateCart resolves the single cart for an identity, creating it
// lazily on first access. Exactly one owner column is populated.
func GetOrCreateCart(db *gorm.DB, identity auth.Identity) (models.Cart, error) {
	var cart models.Cart
	query := db.Preload("Items.Product")
	if identity.Authenticated() {
		query = query.Where("user_id = ?", identity.UserID)
	} else {
		query = query.Where("session_key = ?", identity.SessionKey)
	}

	err := query.First(&cart).Error
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Cart{}, err
	}

	if identity.Authenticated() {
		userID := identity.UserID
		cart = models.Cart{UserID: &userID}
	} else {
		sessionKey := identity.SessionKey
		cart = models.Cart{SessionKey: &sessionKey}
	}
	if err := db.Create(&cart).Error; err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// POST /cart/add/:product_id
// An existing (cart, product) item is incremented; otherwise a new item
// is created. Defaults to one unit when no body is sent.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		// No body means one unit; a body that fails to decode is an error.
		var input addToCartInput
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		qty := input.Quantity
		if qty <= 0 {
			qty = 1
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

		identity, ok := middleware.IdentityFromCtx(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Identity not resolved"})
			return
		}
		cart, err := GetOrCreateCart(db, identity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve cart"})
			return
		}

		var item models.CartItem
		err = db.Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: qty}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		default:
			item.Quantity += qty
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": product.Name + " added to cart!", "item": item})
	}
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.IdentityFromCtx(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Identity not resolved"})
			return
		}
		cart, err := GetOrCreateCart(db, identity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"cart":        cart,
			"total_price": cart.TotalPrice(),
			"total_items": cart.TotalItems(),
		})
	}
}

// POST /cart/update/:item_id
// A positive quantity replaces the stored one; zero or less deletes the
// item, so quantities never persist at or below zero.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.Atoi(c.Param("item_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
			return
		}

		var input updateCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var item models.CartItem
		if err := db.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		if *input.Quantity > 0 {
			item.Quantity = *input.Quantity
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Cart updated!", "item": item})
			return
		}

		if err := db.Delete(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart!"})
	}
}

// POST /cart/remove/:item_id
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.Atoi(c.Param("item_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
			return
		}

		result := db.Delete(&models.CartItem{}, itemID)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart!"})
	}
}
