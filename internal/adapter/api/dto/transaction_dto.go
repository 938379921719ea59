package dto

import (
	"github.com/hugohenrick/electro-inventory/internal/domain/transaction"
)

// TransactionItemRequest representa um item no corpo da transação
type TransactionItemRequest struct {
	ProductID   string  `json:"product" binding:"required" validate:"required"`
	ProductName string  `json:"productName"`
	ProductSKU  string  `json:"productSku"`
	Quantity    int     `json:"quantity" binding:"required,gte=1" validate:"required,gte=1"`
	Price       float64 `json:"price" binding:"gte=0" validate:"gte=0"`
	Discount    float64 `json:"discount" binding:"gte=0,lte=100" validate:"gte=0,lte=100"`
	Total       float64 `json:"total" binding:"gte=0" validate:"gte=0"`
}

// SaleRequest representa a requisição de registro de venda
type SaleRequest struct {
	Reference     string                   `json:"reference" binding:"required" validate:"required"`
	Customer      string                   `json:"customer"`
	PaymentMethod string                   `json:"paymentMethod" binding:"required,oneof=Cash Digital" validate:"required,oneof=Cash Digital"`
	Notes         string                   `json:"notes"`
	TotalAmount   float64                  `json:"totalAmount" binding:"gte=0" validate:"gte=0"`
	Items         []TransactionItemRequest `json:"products" binding:"required,min=1,dive" validate:"required,min=1,dive"`
}

// PurchaseRequest representa a requisição de registro de compra
type PurchaseRequest struct {
	Reference   string                   `json:"reference" binding:"required" validate:"required"`
	Supplier    string                   `json:"supplier" binding:"required" validate:"required"`
	Notes       string                   `json:"notes"`
	TotalAmount float64                  `json:"totalAmount" binding:"gte=0" validate:"gte=0"`
	Items       []TransactionItemRequest `json:"products" binding:"required,min=1,dive" validate:"required,min=1,dive"`
}

// SaleListResponse representa a resposta de listagem de vendas
type SaleListResponse struct {
	Sales []*transaction.Sale `json:"sales"`
	Total int                 `json:"total"`
}

// PurchaseListResponse representa a resposta de listagem de compras
type PurchaseListResponse struct {
	Purchases []*transaction.Purchase `json:"purchases"`
	Total     int                     `json:"total"`
}

func toItems(items []TransactionItemRequest) []transaction.Item {
	out := make([]transaction.Item, 0, len(items))
	for _, it := range items {
		out = append(out, transaction.Item{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			ProductSKU:  it.ProductSKU,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Discount:    it.Discount,
			Total:       it.Total,
		})
	}
	return out
}

// ToSale converte a requisição em uma entidade de venda
func (r *SaleRequest) ToSale() (*transaction.Sale, error) {
	return transaction.NewSale(
		r.Reference,
		r.Customer,
		transaction.PaymentMethod(r.PaymentMethod),
		r.Notes,
		toItems(r.Items),
	)
}

// ToPurchase converte a requisição em uma entidade de compra
func (r *PurchaseRequest) ToPurchase() (*transaction.Purchase, error) {
	return transaction.NewPurchase(
		r.Reference,
		r.Supplier,
		r.Notes,
		toItems(r.Items),
	)
}
