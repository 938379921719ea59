package transaction

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/hugohenrick/electro-inventory/internal/domain/product"
)

var (
	ErrOutOfStock      = errors.New("produto sem estoque")
	ErrMaxStock        = errors.New("quantidade máxima em estoque atingida")
	ErrLineNotFound    = errors.New("item não encontrado no carrinho")
	ErrInvalidDiscount = errors.New("desconto deve estar entre 0 e 100")
	ErrNegativePrice   = errors.New("preço não pode ser negativo")
)

// Line representa uma linha do carrinho de venda
type Line struct {
	ProductID   string  // ID do Produto
	ProductName string  // Nome do Produto
	ProductSKU  string  // SKU do Produto
	Price       float64 // Preço unitário (pode ser sobrescrito manualmente)
	Quantity    int     // Quantidade, sempre em [1, MaxQuantity]
	Discount    float64 // Desconto em percentual [0,100]
	MaxQuantity int     // Limite dado pelo estoque disponível do produto
	Total       float64 // Total da linha, recalculado a cada mutação
}

// Cart mantém as linhas de uma venda em andamento no ponto de venda.
// Todas as operações são síncronas sobre estado em memória.
type Cart struct {
	lines          []*Line
	globalDiscount float64
}

// NewCart cria um carrinho vazio
func NewCart() *Cart {
	return &Cart{}
}

// recompute recalcula o total da linha:
// total = preço * quantidade * (1 - desconto/100)
func (l *Line) recompute() {
	price := decimal.NewFromFloat(l.Price)
	qty := decimal.NewFromInt(int64(l.Quantity))
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(l.Discount).Div(decimal.NewFromInt(100)))
	l.Total, _ = price.Mul(qty).Mul(factor).Float64()
}

func (c *Cart) find(productID string) *Line {
	for _, l := range c.lines {
		if l.ProductID == productID {
			return l
		}
	}
	return nil
}

// AddProduct adiciona um produto ao carrinho. Se o produto já está
// presente, incrementa a quantidade em 1 limitado ao estoque; no limite
// a quantidade não muda e ErrMaxStock é retornado para aviso ao usuário.
// Produto sem estoque é rejeitado com ErrOutOfStock.
func (c *Cart) AddProduct(p *product.Product) error {
	if line := c.find(p.ID); line != nil {
		if line.Quantity >= line.MaxQuantity {
			return ErrMaxStock
		}
		line.Quantity++
		line.recompute()
		return nil
	}

	if p.Stock.Quantity <= 0 {
		return ErrOutOfStock
	}

	line := &Line{
		ProductID:   p.ID,
		ProductName: p.Name,
		ProductSKU:  p.SKU,
		Price:       p.Price.SellingPrice,
		Quantity:    1,
		MaxQuantity: p.Stock.Quantity,
	}
	line.recompute()
	c.lines = append(c.lines, line)
	return nil
}

// AdjustQuantity aplica um delta na quantidade da linha,
// limitado ao intervalo [1, MaxQuantity]
func (c *Cart) AdjustQuantity(productID string, delta int) error {
	line := c.find(productID)
	if line == nil {
		return ErrLineNotFound
	}

	qty := line.Quantity + delta
	if qty < 1 {
		qty = 1
	}
	if qty > line.MaxQuantity {
		qty = line.MaxQuantity
	}
	line.Quantity = qty
	line.recompute()
	return nil
}

// SetPrice sobrescreve manualmente o preço unitário da linha
func (c *Cart) SetPrice(productID string, price float64) error {
	line := c.find(productID)
	if line == nil {
		return ErrLineNotFound
	}
	if price < 0 {
		return ErrNegativePrice
	}
	line.Price = price
	line.recompute()
	return nil
}

// SetDiscount define o percentual de desconto da linha
func (c *Cart) SetDiscount(productID string, discount float64) error {
	line := c.find(productID)
	if line == nil {
		return ErrLineNotFound
	}
	if discount < 0 || discount > 100 {
		return ErrInvalidDiscount
	}
	line.Discount = discount
	line.recompute()
	return nil
}

// Remove retira a linha do carrinho; remover a última linha é permitido
func (c *Cart) Remove(productID string) {
	for i, l := range c.lines {
		if l.ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Lines retorna uma cópia das linhas na ordem de inserção
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, *l)
	}
	return out
}

// Len retorna a quantidade de linhas do carrinho
func (c *Cart) Len() int {
	return len(c.lines)
}

// Subtotal é a soma dos totais das linhas
func (c *Cart) Subtotal() float64 {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(decimal.NewFromFloat(l.Total))
	}
	out, _ := sum.Float64()
	return out
}

// GrandTotal é o subtotal menos o desconto global da venda
func (c *Cart) GrandTotal() float64 {
	out, _ := decimal.NewFromFloat(c.Subtotal()).Sub(decimal.NewFromFloat(c.globalDiscount)).Float64()
	return out
}

// CanSubmit indica se o carrinho pode ser submetido: ao menos uma
// linha válida (quantidade e preço positivos)
func (c *Cart) CanSubmit() bool {
	for _, l := range c.lines {
		if l.Quantity >= 1 && l.Price > 0 {
			return true
		}
	}
	return false
}

// Items converte as linhas do carrinho nos itens da transação
func (c *Cart) Items() []Item {
	items := make([]Item, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, Item{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			ProductSKU:  l.ProductSKU,
			Quantity:    l.Quantity,
			Price:       l.Price,
			Discount:    l.Discount,
			Total:       l.Total,
		})
	}
	return items
}
