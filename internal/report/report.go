package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/hugohenrick/electro-inventory/internal/domain/product"
	"github.com/hugohenrick/electro-inventory/internal/domain/transaction"
)

// Overview resume o estado do inventário para o painel
type Overview struct {
	ProductCount    int                // Total de produtos ativos
	TotalStockUnits int                // Unidades em estoque
	TotalStockValue float64            // Valor do estoque a preço de venda
	LowStock        []*product.Product // Produtos abaixo do limite mínimo
	OutOfStock      []*product.Product // Produtos sem estoque
}

// BuildOverview calcula o resumo do inventário a partir do catálogo
func BuildOverview(products []*product.Product) Overview {
	ov := Overview{}
	for _, p := range products {
		if !p.Active {
			continue
		}
		ov.ProductCount++
		ov.TotalStockUnits += p.Stock.Quantity
		ov.TotalStockValue += p.StockValue()

		switch p.StockStatus() {
		case product.StockStatusLowStock:
			ov.LowStock = append(ov.LowStock, p)
		case product.StockStatusOutOfStock:
			ov.OutOfStock = append(ov.OutOfStock, p)
		}
	}
	return ov
}

// Period define a granularidade dos baldes do relatório
type Period string

const (
	PeriodDay   Period = "day"   // Baldes por dia
	PeriodWeek  Period = "week"  // Baldes por semana ISO
	PeriodMonth Period = "month" // Baldes por mês
)

// ProfitBucket agrega receita, custo e lucro de um período
type ProfitBucket struct {
	Label   string  // Rótulo do período (ex: 2025-03-14, 2025-W11, Mar 2025)
	Revenue float64 // Receita das vendas
	Cost    float64 // Custo dos itens a preço de compra
	Profit  float64 // Receita menos custo
}

func periodLabel(ts time.Time, period Period) string {
	switch period {
	case PeriodWeek:
		year, week := ts.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case PeriodMonth:
		return ts.Format("Jan 2006")
	default:
		return ts.Format("2006-01-02")
	}
}

// ProfitReport agrega as vendas em baldes por período. O custo de cada
// item vem do preço de compra no catálogo; itens de produtos fora do
// catálogo entram com custo zero. Os baldes saem em ordem cronológica.
func ProfitReport(sales []*transaction.Sale, catalog map[string]*product.Product, period Period) []ProfitBucket {
	type keyed struct {
		bucket ProfitBucket
		first  time.Time
	}

	buckets := make(map[string]*keyed)
	for _, s := range sales {
		label := periodLabel(s.CreatedAt, period)
		k, ok := buckets[label]
		if !ok {
			k = &keyed{bucket: ProfitBucket{Label: label}, first: s.CreatedAt}
			buckets[label] = k
		}
		if s.CreatedAt.Before(k.first) {
			k.first = s.CreatedAt
		}

		for _, it := range s.Items {
			k.bucket.Revenue += it.Total
			if p, ok := catalog[it.ProductID]; ok {
				k.bucket.Cost += p.Price.PurchasePrice * float64(it.Quantity)
			}
		}
	}

	out := make([]*keyed, 0, len(buckets))
	for _, k := range buckets {
		k.bucket.Profit = k.bucket.Revenue - k.bucket.Cost
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].first.Before(out[j].first) })

	result := make([]ProfitBucket, 0, len(out))
	for _, k := range out {
		result = append(result, k.bucket)
	}
	return result
}

// TopSeller agrega as vendas de um produto
type TopSeller struct {
	ProductID   string  // ID do Produto
	ProductName string  // Nome do Produto
	Quantity    int     // Unidades vendidas
	Revenue     float64 // Receita gerada
}

// TopSellers retorna os produtos mais vendidos por quantidade,
// desempatando pela receita, limitado a n entradas
func TopSellers(sales []*transaction.Sale, n int) []TopSeller {
	agg := make(map[string]*TopSeller)
	order := make([]string, 0)

	for _, s := range sales {
		for _, it := range s.Items {
			t, ok := agg[it.ProductID]
			if !ok {
				t = &TopSeller{ProductID: it.ProductID, ProductName: it.ProductName}
				agg[it.ProductID] = t
				order = append(order, it.ProductID)
			}
			t.Quantity += it.Quantity
			t.Revenue += it.Total
		}
	}

	out := make([]TopSeller, 0, len(order))
	for _, id := range order {
		out = append(out, *agg[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].Revenue > out[j].Revenue
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
