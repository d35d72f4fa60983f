package pdfgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptRendersPDF(t *testing.T) {
	pdf, err := Receipt(ReceiptFields{
		Name:    "Aman Kumar",
		Phone:   "9999999999",
		OrderID: "ORD123456",
		Amount:  "500.00",
	})
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
