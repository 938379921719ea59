package repository

import (
	"context"

	"github.com/hugohenrick/electro-inventory/internal/domain/product"
	"github.com/hugohenrick/electro-inventory/pkg/fetch"
)

// ProductSearch executa buscas sobrepostas de produtos descartando as
// respostas que chegarem fora de ordem. É o consumidor típico de um
// campo de busca com digitação rápida.
type ProductSearch struct {
	repo   product.Repository
	latest *fetch.Latest[[]*product.Product]
}

// NewProductSearch cria uma nova instância de ProductSearch
func NewProductSearch(repo product.Repository) *ProductSearch {
	return &ProductSearch{
		repo:   repo,
		latest: fetch.NewLatest[[]*product.Product](),
	}
}

// Query busca os produtos pelo filtro e entrega o resultado em deliver
// apenas se nenhuma busca mais recente tiver sido iniciada
func (s *ProductSearch) Query(ctx context.Context, filter product.ListFilter, deliver func([]*product.Product, error)) {
	s.latest.Do(ctx, func(ctx context.Context) ([]*product.Product, error) {
		return s.repo.List(ctx, filter)
	}, deliver)
}
