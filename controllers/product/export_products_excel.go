package productcontroller

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/Its-aman09/ecommerce/models"
)

// GET /admin/products/export-excel
// Streams the whole catalog as an .xlsx download.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Order("id asc").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build spreadsheet"})
			return
		}

		header := sheet.AddRow()
		for _, title := range []string{"ID", "Name", "Slug", "Category", "Price", "Stock", "Available"} {
			header.AddCell().SetString(title)
		}

		for _, product := range products {
			row := sheet.AddRow()
			row.AddCell().SetString(strconv.Itoa(int(product.ID)))
			row.AddCell().SetString(product.Name)
			row.AddCell().SetString(product.Slug)
			row.AddCell().SetString(product.Category.Name)
			row.AddCell().SetString(product.Price.StringFixed(2))
			row.AddCell().SetString(strconv.Itoa(product.Stock))
			row.AddCell().SetString(strconv.FormatBool(product.Available))
		}

		var buf bytes.Buffer
		if err := file.Write(&buf); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write spreadsheet"})
			return
		}

		c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	}
}
