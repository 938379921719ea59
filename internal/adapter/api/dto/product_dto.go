package dto

import (
	"github.com/hugohenrick/electro-inventory/internal/domain/product"
)

// PriceRequest representa os preços no corpo da requisição
type PriceRequest struct {
	PurchasePrice  float64  `json:"purchasePrice" binding:"gte=0" validate:"gte=0"`
	SellingPrice   float64  `json:"sellingPrice" binding:"gte=0" validate:"gte=0"`
	CompareAtPrice *float64 `json:"compareAtPrice,omitempty" binding:"omitempty,gte=0" validate:"omitempty,gte=0"`
}

// StockRequest representa o estoque no corpo da requisição
type StockRequest struct {
	Quantity     int `json:"quantity" binding:"gte=0" validate:"gte=0"`
	MinThreshold int `json:"minThreshold" binding:"gte=0" validate:"gte=0"`
}

// ProductRequest representa a requisição de criação/edição de produto
type ProductRequest struct {
	SKU         string       `json:"sku" binding:"required" validate:"required"`
	Name        string       `json:"name" binding:"required" validate:"required"`
	Description string       `json:"description"`
	CategoryID  string       `json:"categoryId"`
	Brand       string       `json:"brand"`
	Variant     string       `json:"variant"`
	Price       PriceRequest `json:"price" binding:"required"`
	Stock       StockRequest `json:"stock" binding:"required"`
	Supplier    string       `json:"supplier"`
	ImageURL    string       `json:"imageUrl"`
	Active      *bool        `json:"active,omitempty"`
}

// ProductListResponse representa a resposta de listagem de produtos
type ProductListResponse struct {
	Products []*product.Product `json:"products"`
	Total    int                `json:"total"`
}

// ToProduct converte a requisição em uma entidade de produto
func (r *ProductRequest) ToProduct() (*product.Product, error) {
	p, err := product.NewProduct(r.SKU, r.Name, r.Brand, product.Price{
		PurchasePrice:  r.Price.PurchasePrice,
		SellingPrice:   r.Price.SellingPrice,
		CompareAtPrice: r.Price.CompareAtPrice,
	}, product.Stock{
		Quantity:     r.Stock.Quantity,
		MinThreshold: r.Stock.MinThreshold,
	})
	if err != nil {
		return nil, err
	}

	p.Description = r.Description
	p.Variant = r.Variant
	p.Supplier = r.Supplier
	p.ImageURL = r.ImageURL
	if r.CategoryID != "" {
		p.Category = product.CategoryRef{ID: r.CategoryID}
	}
	if r.Active != nil {
		p.Active = *r.Active
	}
	return p, nil
}
