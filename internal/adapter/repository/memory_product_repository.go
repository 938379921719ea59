package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hugohenrick/electro-inventory/internal/domain/product"
)

// MemoryProductRepository implementa product.Repository em memória,
// para o servidor de desenvolvimento e para os testes
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]*product.Product
}

// NewMemoryProductRepository cria uma nova instância de MemoryProductRepository
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[string]*product.Product),
	}
}

// Create cria um novo produto
func (r *MemoryProductRepository) Create(ctx context.Context, p *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	copied := *p
	r.products[p.ID] = &copied
	return nil
}

// FindByID busca um produto pelo ID
func (r *MemoryProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func matchesSearch(p *product.Product, search string) bool {
	if search == "" {
		return true
	}
	search = strings.ToLower(search)
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.SKU), search) ||
		strings.Contains(strings.ToLower(p.Brand), search)
}

// List lista os produtos conforme o filtro, ordenados por nome
func (r *MemoryProductRepository) List(ctx context.Context, filter product.ListFilter) ([]*product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*product.Product, 0, len(r.products))
	for _, p := range r.products {
		if !matchesSearch(p, filter.Search) {
			continue
		}
		if filter.Category != "" && p.Category.ID != filter.Category {
			continue
		}
		copied := *p
		out = append(out, &copied)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return paginate(out, filter.Limit, filter.Offset), nil
}

// Update atualiza os dados de um produto existente
func (r *MemoryProductRepository) Update(ctx context.Context, p *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.ID]; !ok {
		return product.ErrNotFound
	}
	p.UpdatedAt = time.Now()
	copied := *p
	r.products[p.ID] = &copied
	return nil
}

// Delete remove um produto
func (r *MemoryProductRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return product.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

// AdjustStock aplica um delta na quantidade em estoque do produto
func (r *MemoryProductRepository) AdjustStock(ctx context.Context, id string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return product.ErrNotFound
	}
	return p.AdjustStock(delta)
}

// paginate aplica limit/offset sobre a lista já ordenada
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
