package repository

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/hugohenrick/electro-inventory/internal/adapter/api/dto"
	"github.com/hugohenrick/electro-inventory/internal/domain/product"
	"github.com/hugohenrick/electro-inventory/pkg/httpclient"
)

// listCacheTTL é a vida útil do cache transitório de listagens,
// o equivalente ao cache de página do painel
const listCacheTTL = 30 * time.Second

// RestProductRepository implementa product.Repository sobre a API REST
type RestProductRepository struct {
	client *httpclient.Client
	cache  *gocache.Cache
}

// NewRestProductRepository cria uma nova instância de RestProductRepository
func NewRestProductRepository(client *httpclient.Client) *RestProductRepository {
	return &RestProductRepository{
		client: client,
		cache:  gocache.New(listCacheTTL, time.Minute),
	}
}

func productListKey(filter product.ListFilter) string {
	return fmt.Sprintf("products|%s|%s|%d|%d", filter.Search, filter.Category, filter.Limit, filter.Offset)
}

func productListPath(filter product.ListFilter) string {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		query.Set("offset", strconv.Itoa(filter.Offset))
	}

	path := "/products"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}
	return path
}

func toProductRequest(p *product.Product) dto.ProductRequest {
	active := p.Active
	return dto.ProductRequest{
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		CategoryID:  p.Category.ID,
		Brand:       p.Brand,
		Variant:     p.Variant,
		Price: dto.PriceRequest{
			PurchasePrice:  p.Price.PurchasePrice,
			SellingPrice:   p.Price.SellingPrice,
			CompareAtPrice: p.Price.CompareAtPrice,
		},
		Stock: dto.StockRequest{
			Quantity:     p.Stock.Quantity,
			MinThreshold: p.Stock.MinThreshold,
		},
		Supplier: p.Supplier,
		ImageURL: p.ImageURL,
		Active:   &active,
	}
}

// Create cria um novo produto via API
func (r *RestProductRepository) Create(ctx context.Context, p *product.Product) error {
	var created product.Product
	if err := r.client.Post(ctx, "/products", toProductRequest(p), &created); err != nil {
		return err
	}
	*p = created
	r.cache.Flush()
	return nil
}

// FindByID busca um produto pelo ID via API
func (r *RestProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	var p product.Product
	if err := r.client.Get(ctx, "/products/"+id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// List lista os produtos via API, com cache transitório por filtro
func (r *RestProductRepository) List(ctx context.Context, filter product.ListFilter) ([]*product.Product, error) {
	key := productListKey(filter)
	if cached, ok := r.cache.Get(key); ok {
		return cached.([]*product.Product), nil
	}

	var resp dto.ProductListResponse
	if err := r.client.Get(ctx, productListPath(filter), &resp); err != nil {
		return nil, err
	}

	r.cache.Set(key, resp.Products, gocache.DefaultExpiration)
	return resp.Products, nil
}

// Update atualiza um produto via API
func (r *RestProductRepository) Update(ctx context.Context, p *product.Product) error {
	var updated product.Product
	if err := r.client.Put(ctx, "/products/"+p.ID, toProductRequest(p), &updated); err != nil {
		return err
	}
	*p = updated
	r.cache.Flush()
	return nil
}

// Delete remove um produto via API
func (r *RestProductRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, "/products/"+id); err != nil {
		return err
	}
	r.cache.Flush()
	return nil
}

// AdjustStock aplica um delta de estoque lendo e regravando o produto.
// A API não expõe um endpoint dedicado de ajuste de estoque.
func (r *RestProductRepository) AdjustStock(ctx context.Context, id string, delta int) error {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := p.AdjustStock(delta); err != nil {
		return err
	}
	return r.Update(ctx, p)
}
