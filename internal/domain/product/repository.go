package product

import (
	"context"
)

// ListFilter define os filtros de listagem de produtos
type ListFilter struct {
	Search   string // Busca por nome, SKU ou marca
	Category string // ID da categoria
	Limit    int    // Quantidade máxima de itens
	Offset   int    // Deslocamento para paginação
}

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// List lista os produtos conforme o filtro
	List(ctx context.Context, filter ListFilter) ([]*Product, error)

	// Update atualiza os dados de um produto existente
	Update(ctx context.Context, p *Product) error

	// Delete remove um produto
	Delete(ctx context.Context, id string) error

	// AdjustStock aplica um delta na quantidade em estoque do produto
	AdjustStock(ctx context.Context, id string, delta int) error
}
