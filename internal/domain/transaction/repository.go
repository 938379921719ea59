package transaction

import (
	"context"
)

// ListFilter define os filtros de listagem de transações
type ListFilter struct {
	Search string // Busca por referência ou contraparte
	Limit  int    // Quantidade máxima de itens
	Offset int    // Deslocamento para paginação
}

// SaleRepository define a interface para operações de repositório de vendas
type SaleRepository interface {
	// Create registra uma nova venda
	Create(ctx context.Context, s *Sale) error

	// FindByID busca uma venda pelo ID
	FindByID(ctx context.Context, id string) (*Sale, error)

	// List lista as vendas conforme o filtro, da mais recente para a mais antiga
	List(ctx context.Context, filter ListFilter) ([]*Sale, error)

	// Delete remove uma venda
	Delete(ctx context.Context, id string) error
}

// PurchaseRepository define a interface para operações de repositório de compras
type PurchaseRepository interface {
	// Create registra uma nova compra
	Create(ctx context.Context, p *Purchase) error

	// FindByID busca uma compra pelo ID
	FindByID(ctx context.Context, id string) (*Purchase, error)

	// List lista as compras conforme o filtro, da mais recente para a mais antiga
	List(ctx context.Context, filter ListFilter) ([]*Purchase, error)

	// Delete remove uma compra
	Delete(ctx context.Context, id string) error
}
