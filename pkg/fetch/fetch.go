package fetch

import (
	"context"
	"sync"
)

// Latest descarta respostas obsoletas de buscas sobrepostas: cada
// chamada a Do recebe uma geração e somente a conclusão da geração
// mais recente é entregue. Resolve a corrida de digitação rápida em
// campos de busca, onde respostas fora de ordem sobrescreviam o
// estado mais novo.
type Latest[T any] struct {
	mu  sync.Mutex
	gen uint64
}

// NewLatest cria um novo guarda de buscas
func NewLatest[T any]() *Latest[T] {
	return &Latest[T]{}
}

// Do executa fn e entrega o resultado em deliver apenas se nenhuma
// chamada mais recente tiver sido iniciada nesse intervalo. O erro de
// uma chamada obsoleta também é descartado.
func (l *Latest[T]) Do(ctx context.Context, fn func(ctx context.Context) (T, error), deliver func(T, error)) {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.mu.Unlock()

	result, err := fn(ctx)

	l.mu.Lock()
	stale := gen != l.gen
	l.mu.Unlock()

	if stale {
		return
	}
	deliver(result, err)
}

// Generation retorna a geração corrente (para inspeção em testes)
func (l *Latest[T]) Generation() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen
}
