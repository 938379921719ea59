package product

import (
	"errors"
	"time"
)

var (
	ErrEmptyName    = errors.New("nome não pode ser vazio")
	ErrEmptySKU     = errors.New("SKU não pode ser vazio")
	ErrInvalidPrice = errors.New("preço não pode ser negativo")
	ErrInvalidStock = errors.New("quantidade em estoque não pode ser negativa")
	ErrNotFound     = errors.New("produto não encontrado")
)

// StockStatus representa a situação de estoque do produto
type StockStatus string

const (
	StockStatusInStock    StockStatus = "in-stock"     // Em estoque
	StockStatusLowStock   StockStatus = "low-stock"    // Estoque baixo
	StockStatusOutOfStock StockStatus = "out-of-stock" // Sem estoque
)

// Price representa os preços do produto
type Price struct {
	PurchasePrice  float64  `json:"purchasePrice"`            // Preço de Compra
	SellingPrice   float64  `json:"sellingPrice"`             // Preço de Venda
	CompareAtPrice *float64 `json:"compareAtPrice,omitempty"` // Preço de Comparação (opcional)
}

// Stock representa o estoque do produto
type Stock struct {
	Quantity     int `json:"quantity"`     // Quantidade disponível
	MinThreshold int `json:"minThreshold"` // Limite mínimo antes do alerta de estoque baixo
}

// CategoryRef é a referência resumida da categoria do produto
type CategoryRef struct {
	ID   string `json:"_id"`  // ID da Categoria
	Name string `json:"name"` // Nome da Categoria
}

// Product representa um produto do catálogo
type Product struct {
	ID          string      `json:"_id"`                   // ID do Produto
	SKU         string      `json:"sku"`                   // Código SKU
	Name        string      `json:"name"`                  // Nome
	Description string      `json:"description,omitempty"` // Descrição
	Category    CategoryRef `json:"category"`              // Categoria
	Brand       string      `json:"brand"`                 // Marca
	Variant     string      `json:"variant,omitempty"`     // Variante (ex: 10 Watt)
	Price       Price       `json:"price"`                 // Preços
	Stock       Stock       `json:"stock"`                 // Estoque
	Supplier    string      `json:"supplier,omitempty"`    // Fornecedor
	ImageURL    string      `json:"imageUrl,omitempty"`    // URL da Imagem
	Active      bool        `json:"active"`                // Produto ativo
	CreatedAt   time.Time   `json:"createdAt"`             // Data de Criação
	UpdatedAt   time.Time   `json:"updatedAt"`             // Data de Atualização
}

// NewProduct cria um novo produto com os campos obrigatórios
func NewProduct(sku, name, brand string, price Price, stock Stock) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if sku == "" {
		return nil, ErrEmptySKU
	}
	if price.PurchasePrice < 0 || price.SellingPrice < 0 {
		return nil, ErrInvalidPrice
	}
	if stock.Quantity < 0 {
		return nil, ErrInvalidStock
	}

	now := time.Now()
	return &Product{
		SKU:       sku,
		Name:      name,
		Brand:     brand,
		Price:     price,
		Stock:     stock,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// StockStatus retorna a situação de estoque conforme o limite configurado
func (p *Product) StockStatus() StockStatus {
	switch {
	case p.Stock.Quantity <= 0:
		return StockStatusOutOfStock
	case p.Stock.Quantity < p.Stock.MinThreshold:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

// StockValue retorna o valor do estoque a preço de venda
func (p *Product) StockValue() float64 {
	return p.Price.SellingPrice * float64(p.Stock.Quantity)
}

// AdjustStock aplica um delta na quantidade em estoque
func (p *Product) AdjustStock(delta int) error {
	if p.Stock.Quantity+delta < 0 {
		return ErrInvalidStock
	}
	p.Stock.Quantity += delta
	p.UpdatedAt = time.Now()
	return nil
}

// Update atualiza os dados editáveis do produto
func (p *Product) Update(name, description, brand, variant, supplier, imageURL string, price Price, stock Stock, active bool) error {
	if name == "" {
		return ErrEmptyName
	}
	if price.PurchasePrice < 0 || price.SellingPrice < 0 {
		return ErrInvalidPrice
	}
	if stock.Quantity < 0 {
		return ErrInvalidStock
	}

	p.Name = name
	p.Description = description
	p.Brand = brand
	p.Variant = variant
	p.Supplier = supplier
	p.ImageURL = imageURL
	p.Price = price
	p.Stock = stock
	p.Active = active
	p.UpdatedAt = time.Now()
	return nil
}
