package notification

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("notificação não encontrada")
)

// Type representa o tipo da notificação
type Type string

const (
	TypeLowStock Type = "low-stock" // Alerta de estoque baixo
	TypeSale     Type = "sale"      // Venda registrada
	TypePurchase Type = "purchase"  // Compra registrada
	TypeSystem   Type = "system"    // Aviso do sistema
	TypeInfo     Type = "info"      // Dica ou informação
)

// Types lista os tipos válidos de notificação
var Types = []Type{TypeLowStock, TypeSale, TypePurchase, TypeSystem, TypeInfo}

// Notification representa uma notificação exibida ao usuário
type Notification struct {
	ID        string    `json:"id"`        // ID da Notificação
	Type      Type      `json:"type"`      // Tipo
	Title     string    `json:"title"`     // Título
	Message   string    `json:"message"`   // Mensagem
	Timestamp time.Time `json:"timestamp"` // Data e hora do evento
	Read      bool      `json:"read"`      // Indica se já foi lida
}

// Repository define a interface para a fonte de notificações.
// A implementação atual é um gerador local de dados de exemplo;
// uma fonte REST pode substituí-la sem mudança nos consumidores.
type Repository interface {
	// List retorna as notificações da mais recente para a mais antiga
	List() []*Notification

	// UnreadCount conta as notificações não lidas
	UnreadCount() int

	// MarkRead marca uma notificação como lida
	MarkRead(id string) error

	// MarkAllRead marca todas as notificações como lidas
	MarkAllRead()
}
