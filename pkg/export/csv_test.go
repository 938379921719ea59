package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/electro-inventory/internal/domain/transaction"
)

func TestSalesCSV(t *testing.T) {
	now := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

	sales := []*transaction.Sale{
		{
			Reference:     "SALE-A1B2C3",
			Customer:      "",
			PaymentMethod: transaction.PaymentCash,
			Notes:         "entrega amanhã, pela manhã",
			TotalAmount:   900,
			CreatedAt:     time.Date(2025, time.March, 14, 16, 30, 0, 0, time.UTC),
			Items: []transaction.Item{
				{ProductName: "Osaka 10 Watt", Quantity: 5},
				{ProductName: "Havells 1.5mm", Quantity: 2},
			},
		},
	}

	filename, content := SalesCSV(sales, now)

	assert.Equal(t, "sales-export-2025-03-15.csv", filename)

	lines := strings.Split(content, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Invoice #,Date,Customer,Payment Method,Amount,Products,Notes", lines[0])
	assert.Equal(t, "SALE-A1B2C3,03/14/2025,Walk-in Customer,Cash,900.00,Osaka 10 Watt (5); Havells 1.5mm (2),entrega amanhã; pela manhã", lines[1])
}

func TestPurchasesCSV(t *testing.T) {
	now := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

	purchases := []*transaction.Purchase{
		{
			Reference:   "PO-XYZ123",
			Supplier:    "Acme, Ltda",
			TotalAmount: 1250.5,
			CreatedAt:   time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC),
			Items: []transaction.Item{
				{ProductName: "Usha 3 Blade", Quantity: 10},
			},
		},
	}

	filename, content := PurchasesCSV(purchases, now)

	assert.Equal(t, "purchases-export-2025-03-15.csv", filename)
	lines := strings.Split(content, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "PO-XYZ123,03/01/2025,Acme; Ltda,1250.50,Usha 3 Blade (10),", lines[1])
}

func TestBuild(t *testing.T) {
	t.Run("sem linhas produz apenas o cabeçalho", func(t *testing.T) {
		content := Build([]string{"A", "B"}, nil)

		assert.Equal(t, "A,B", content)
	})

	t.Run("células higienizadas não quebram colunas", func(t *testing.T) {
		cell := Sanitize("um, dois, três")

		assert.NotContains(t, cell, ",")
		assert.Equal(t, "um; dois; três", cell)
	})
}
