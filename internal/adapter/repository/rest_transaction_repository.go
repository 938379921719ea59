package repository

import (
	"context"
	"net/url"
	"strconv"

	"github.com/hugohenrick/electro-inventory/internal/adapter/api/dto"
	"github.com/hugohenrick/electro-inventory/internal/domain/transaction"
	"github.com/hugohenrick/electro-inventory/pkg/httpclient"
)

func transactionListPath(base string, filter transaction.ListFilter) string {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		query.Set("offset", strconv.Itoa(filter.Offset))
	}

	if encoded := query.Encode(); encoded != "" {
		return base + "?" + encoded
	}
	return base
}

func toItemRequests(items []transaction.Item) []dto.TransactionItemRequest {
	out := make([]dto.TransactionItemRequest, 0, len(items))
	for _, it := range items {
		out = append(out, dto.TransactionItemRequest{
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

// RestSaleRepository implementa transaction.SaleRepository sobre a API REST
type RestSaleRepository struct {
	client *httpclient.Client
}

// NewRestSaleRepository cria uma nova instância de RestSaleRepository
func NewRestSaleRepository(client *httpclient.Client) *RestSaleRepository {
	return &RestSaleRepository{client: client}
}

// Create registra uma nova venda via API
func (r *RestSaleRepository) Create(ctx context.Context, s *transaction.Sale) error {
	req := dto.SaleRequest{
		Reference:     s.Reference,
		Customer:      s.Customer,
		PaymentMethod: string(s.PaymentMethod),
		Notes:         s.Notes,
		TotalAmount:   s.TotalAmount,
		Items:         toItemRequests(s.Items),
	}

	var created transaction.Sale
	if err := r.client.Post(ctx, "/inventory/sales", req, &created); err != nil {
		return err
	}
	*s = created
	return nil
}

// FindByID busca uma venda pelo ID via API
func (r *RestSaleRepository) FindByID(ctx context.Context, id string) (*transaction.Sale, error) {
	var s transaction.Sale
	if err := r.client.Get(ctx, "/inventory/sales/"+id, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// List lista as vendas via API, da mais recente para a mais antiga
func (r *RestSaleRepository) List(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Sale, error) {
	var resp dto.SaleListResponse
	if err := r.client.Get(ctx, transactionListPath("/inventory/sales", filter), &resp); err != nil {
		return nil, err
	}
	return resp.Sales, nil
}

// Delete remove uma venda via API
func (r *RestSaleRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, "/inventory/sales/"+id)
}

// RestPurchaseRepository implementa transaction.PurchaseRepository sobre a API REST
type RestPurchaseRepository struct {
	client *httpclient.Client
}

// NewRestPurchaseRepository cria uma nova instância de RestPurchaseRepository
func NewRestPurchaseRepository(client *httpclient.Client) *RestPurchaseRepository {
	return &RestPurchaseRepository{client: client}
}

// Create registra uma nova compra via API
func (r *RestPurchaseRepository) Create(ctx context.Context, p *transaction.Purchase) error {
	req := dto.PurchaseRequest{
		Reference:   p.Reference,
		Supplier:    p.Supplier,
		Notes:       p.Notes,
		TotalAmount: p.TotalAmount,
		Items:       toItemRequests(p.Items),
	}

	var created transaction.Purchase
	if err := r.client.Post(ctx, "/inventory/purchases", req, &created); err != nil {
		return err
	}
	*p = created
	return nil
}

// FindByID busca uma compra pelo ID via API
func (r *RestPurchaseRepository) FindByID(ctx context.Context, id string) (*transaction.Purchase, error) {
	var p transaction.Purchase
	if err := r.client.Get(ctx, "/inventory/purchases/"+id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// List lista as compras via API, da mais recente para a mais antiga
func (r *RestPurchaseRepository) List(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Purchase, error) {
	var resp dto.PurchaseListResponse
	if err := r.client.Get(ctx, transactionListPath("/inventory/purchases", filter), &resp); err != nil {
		return nil, err
	}
	return resp.Purchases, nil
}

// Delete remove uma compra via API
func (r *RestPurchaseRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, "/inventory/purchases/"+id)
}
