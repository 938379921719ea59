package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/electro-inventory/internal/domain/product"
	"github.com/hugohenrick/electro-inventory/internal/domain/transaction"
)

func catalogFixture() []*product.Product {
	return []*product.Product{
		{ID: "p1", Name: "Osaka 10 Watt", Active: true,
			Price: product.Price{PurchasePrice: 70, SellingPrice: 100},
			Stock: product.Stock{Quantity: 10, MinThreshold: 5}},
		{ID: "p2", Name: "Havells 1.5mm", Active: true,
			Price: product.Price{PurchasePrice: 800, SellingPrice: 1000},
			Stock: product.Stock{Quantity: 3, MinThreshold: 5}},
		{ID: "p3", Name: "Usha 3 Blade", Active: true,
			Price: product.Price{PurchasePrice: 1500, SellingPrice: 2000},
			Stock: product.Stock{Quantity: 0, MinThreshold: 2}},
		{ID: "p4", Name: "Descontinuado", Active: false,
			Price: product.Price{PurchasePrice: 1, SellingPrice: 2},
			Stock: product.Stock{Quantity: 99, MinThreshold: 1}},
	}
}

func TestBuildOverview(t *testing.T) {
	ov := BuildOverview(catalogFixture())

	assert.Equal(t, 3, ov.ProductCount)
	assert.Equal(t, 13, ov.TotalStockUnits)
	assert.Equal(t, 4000.0, ov.TotalStockValue)

	require.Len(t, ov.LowStock, 1)
	assert.Equal(t, "p2", ov.LowStock[0].ID)

	require.Len(t, ov.OutOfStock, 1)
	assert.Equal(t, "p3", ov.OutOfStock[0].ID)
}

func salesFixture() []*transaction.Sale {
	day1 := time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, time.March, 11, 15, 0, 0, 0, time.UTC)

	return []*transaction.Sale{
		{
			Reference: "SALE-1", CreatedAt: day1,
			Items: []transaction.Item{
				{ProductID: "p1", ProductName: "Osaka 10 Watt", Quantity: 5, Price: 100, Total: 500},
			},
		},
		{
			Reference: "SALE-2", CreatedAt: day1.Add(2 * time.Hour),
			Items: []transaction.Item{
				{ProductID: "p2", ProductName: "Havells 1.5mm", Quantity: 1, Price: 1000, Total: 1000},
			},
		},
		{
			Reference: "SALE-3", CreatedAt: day2,
			Items: []transaction.Item{
				{ProductID: "p1", ProductName: "Osaka 10 Watt", Quantity: 2, Price: 100, Total: 200},
			},
		},
	}
}

func TestProfitReport(t *testing.T) {
	catalog := map[string]*product.Product{}
	for _, p := range catalogFixture() {
		catalog[p.ID] = p
	}

	t.Run("baldes por dia em ordem cronológica", func(t *testing.T) {
		buckets := ProfitReport(salesFixture(), catalog, PeriodDay)

		require.Len(t, buckets, 2)
		assert.Equal(t, "2025-03-10", buckets[0].Label)
		assert.Equal(t, 1500.0, buckets[0].Revenue)
		assert.Equal(t, 1150.0, buckets[0].Cost) // 5*70 + 1*800
		assert.Equal(t, 350.0, buckets[0].Profit)

		assert.Equal(t, "2025-03-11", buckets[1].Label)
		assert.Equal(t, 200.0, buckets[1].Revenue)
		assert.Equal(t, 140.0, buckets[1].Cost)
	})

	t.Run("baldes por mês agregam tudo", func(t *testing.T) {
		buckets := ProfitReport(salesFixture(), catalog, PeriodMonth)

		require.Len(t, buckets, 1)
		assert.Equal(t, "Mar 2025", buckets[0].Label)
		assert.Equal(t, 1700.0, buckets[0].Revenue)
	})

	t.Run("produto fora do catálogo entra com custo zero", func(t *testing.T) {
		sales := []*transaction.Sale{{
			Reference: "SALE-X", CreatedAt: time.Now(),
			Items: []transaction.Item{
				{ProductID: "fantasma", Quantity: 3, Price: 10, Total: 30},
			},
		}}

		buckets := ProfitReport(sales, catalog, PeriodDay)

		require.Len(t, buckets, 1)
		assert.Equal(t, 30.0, buckets[0].Revenue)
		assert.Equal(t, 0.0, buckets[0].Cost)
		assert.Equal(t, 30.0, buckets[0].Profit)
	})
}

func TestTopSellers(t *testing.T) {
	t.Run("ordenado por quantidade com desempate por receita", func(t *testing.T) {
		top := TopSellers(salesFixture(), 0)

		require.Len(t, top, 2)
		assert.Equal(t, "p1", top[0].ProductID)
		assert.Equal(t, 7, top[0].Quantity)
		assert.Equal(t, 700.0, top[0].Revenue)
		assert.Equal(t, "p2", top[1].ProductID)
	})

	t.Run("limite corta a lista", func(t *testing.T) {
		top := TopSellers(salesFixture(), 1)

		require.Len(t, top, 1)
		assert.Equal(t, "p1", top[0].ProductID)
	})

	t.Run("sem vendas produz lista vazia", func(t *testing.T) {
		assert.Empty(t, TopSellers(nil, 5))
	})
}
