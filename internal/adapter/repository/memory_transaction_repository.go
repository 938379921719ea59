package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/hugohenrick/electro-inventory/internal/domain/transaction"
)

// MemorySaleRepository implementa transaction.SaleRepository em memória
type MemorySaleRepository struct {
	mu    sync.RWMutex
	sales map[string]*transaction.Sale
}

// NewMemorySaleRepository cria uma nova instância de MemorySaleRepository
func NewMemorySaleRepository() *MemorySaleRepository {
	return &MemorySaleRepository{sales: make(map[string]*transaction.Sale)}
}

// Create registra uma nova venda
func (r *MemorySaleRepository) Create(ctx context.Context, s *transaction.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	copied := *s
	r.sales[s.ID] = &copied
	return nil
}

// FindByID busca uma venda pelo ID
func (r *MemorySaleRepository) FindByID(ctx context.Context, id string) (*transaction.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sales[id]
	if !ok {
		return nil, transaction.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

// List lista as vendas conforme o filtro, da mais recente para a mais antiga
func (r *MemorySaleRepository) List(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*transaction.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		if filter.Search != "" {
			search := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(s.Reference), search) &&
				!strings.Contains(strings.ToLower(s.Customer), search) {
				continue
			}
		}
		copied := *s
		out = append(out, &copied)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return paginate(out, filter.Limit, filter.Offset), nil
}

// Delete remove uma venda
func (r *MemorySaleRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sales[id]; !ok {
		return transaction.ErrNotFound
	}
	delete(r.sales, id)
	return nil
}

// MemoryPurchaseRepository implementa transaction.PurchaseRepository em memória
type MemoryPurchaseRepository struct {
	mu        sync.RWMutex
	purchases map[string]*transaction.Purchase
}

// NewMemoryPurchaseRepository cria uma nova instância de MemoryPurchaseRepository
func NewMemoryPurchaseRepository() *MemoryPurchaseRepository {
	return &MemoryPurchaseRepository{purchases: make(map[string]*transaction.Purchase)}
}

// Create registra uma nova compra
func (r *MemoryPurchaseRepository) Create(ctx context.Context, p *transaction.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	copied := *p
	r.purchases[p.ID] = &copied
	return nil
}

// FindByID busca uma compra pelo ID
func (r *MemoryPurchaseRepository) FindByID(ctx context.Context, id string) (*transaction.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.purchases[id]
	if !ok {
		return nil, transaction.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

// List lista as compras conforme o filtro, da mais recente para a mais antiga
func (r *MemoryPurchaseRepository) List(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*transaction.Purchase, 0, len(r.purchases))
	for _, p := range r.purchases {
		if filter.Search != "" {
			search := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(p.Reference), search) &&
				!strings.Contains(strings.ToLower(p.Supplier), search) {
				continue
			}
		}
		copied := *p
		out = append(out, &copied)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return paginate(out, filter.Limit, filter.Offset), nil
}

// Delete remove uma compra
func (r *MemoryPurchaseRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.purchases[id]; !ok {
		return transaction.ErrNotFound
	}
	delete(r.purchases, id)
	return nil
}
