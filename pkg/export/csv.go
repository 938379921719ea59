package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/hugohenrick/electro-inventory/internal/domain/transaction"
)

// Build monta o conteúdo CSV juntando cabeçalho e linhas por vírgula.
// Células com vírgulas devem ser higienizadas antes com Sanitize.
func Build(headers []string, rows [][]string) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(headers, ","))
	for _, row := range rows {
		lines = append(lines, strings.Join(row, ","))
	}
	return strings.Join(lines, "\n")
}

// Sanitize troca vírgulas por ponto e vírgula para não quebrar as colunas
func Sanitize(value string) string {
	return strings.ReplaceAll(value, ",", ";")
}

// itemsSummary resume os itens como "Nome (quantidade)" separados por "; "
func itemsSummary(items []transaction.Item) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s (%d)", it.ProductName, it.Quantity))
	}
	return strings.Join(parts, "; ")
}

// SalesCSV gera o arquivo de exportação de vendas no formato usado
// pelo painel, com o nome sales-export-AAAA-MM-DD.csv
func SalesCSV(sales []*transaction.Sale, now time.Time) (filename, content string) {
	headers := []string{"Invoice #", "Date", "Customer", "Payment Method", "Amount", "Products", "Notes"}

	rows := make([][]string, 0, len(sales))
	for _, s := range sales {
		customer := s.Customer
		if customer == "" {
			customer = "Walk-in Customer"
		}
		rows = append(rows, []string{
			s.Reference,
			s.CreatedAt.Format("01/02/2006"),
			Sanitize(customer),
			string(s.PaymentMethod),
			fmt.Sprintf("%.2f", s.TotalAmount),
			Sanitize(itemsSummary(s.Items)),
			Sanitize(s.Notes),
		})
	}

	filename = fmt.Sprintf("sales-export-%s.csv", now.Format("2006-01-02"))
	return filename, Build(headers, rows)
}

// PurchasesCSV gera o arquivo de exportação de compras, com o nome
// purchases-export-AAAA-MM-DD.csv
func PurchasesCSV(purchases []*transaction.Purchase, now time.Time) (filename, content string) {
	headers := []string{"Order #", "Date", "Supplier", "Amount", "Products", "Notes"}

	rows := make([][]string, 0, len(purchases))
	for _, p := range purchases {
		rows = append(rows, []string{
			p.Reference,
			p.CreatedAt.Format("01/02/2006"),
			Sanitize(p.Supplier),
			fmt.Sprintf("%.2f", p.TotalAmount),
			Sanitize(itemsSummary(p.Items)),
			Sanitize(p.Notes),
		})
	}

	filename = fmt.Sprintf("purchases-export-%s.csv", now.Format("2006-01-02"))
	return filename, Build(headers, rows)
}
