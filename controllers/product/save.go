package productcontroller

import (
	"errors"
	"fmt"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Its-aman09/ecommerce/models"
)

// ValidationError carries field-level messages for a rejected product
// save. Storage failures are returned as ordinary wrapped errors, so
// callers can tell the two cases apart with errors.As.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("product validation failed: %v", e.Fields)
}

// SaveProduct validates and persists a product, deriving its slug from
// the name. Returns *ValidationError for bad input, a wrapped storage
// error otherwise.
func SaveProduct(db *gorm.DB, product *models.Product) error {
	fields := make(map[string]string)
	if product.Name == "" {
		fields["name"] = "name is required"
	}
	if product.Price.IsNegative() {
		fields["price"] = "price must not be negative"
	}
	if product.Stock < 0 {
		fields["stock"] = "stock must not be negative"
	}
	if product.CategoryID != 0 {
		var category models.Category
		if err := db.First(&category, product.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				fields["category"] = "category does not exist"
			} else {
				return fmt.Errorf("save product: %w", err)
			}
		}
	} else {
		fields["category"] = "category is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	product.Slug = slug.Make(product.Name)
	if err := db.Save(product).Error; err != nil {
		return fmt.Errorf("save product: %w", err)
	}
	return nil
}

// parsePrice turns a decimal form value into a Decimal, rejecting junk.
func parsePrice(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, errors.New("price is required")
	}
	return decimal.NewFromString(s)
}
