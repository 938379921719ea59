package notification

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"
)

var titles = map[Type]string{
	TypeLowStock: "Low Stock Alert",
	TypeSale:     "Sale Completed",
	TypePurchase: "Purchase Received",
	TypeSystem:   "System Update",
	TypeInfo:     "Did You Know?",
}

var messages = map[Type][]string{
	TypeLowStock: {
		"Osaka 10 Watt bulbs are running low. Only 4 left in stock.",
		"Havells 1.5mm copper wire is below the stock threshold.",
		"Usha 3 Blade ceiling fans are almost out of stock.",
	},
	TypeSale: {
		"Sale SALE-4F2A91 was recorded successfully.",
		"A new sale of 5 items has been completed.",
		"Walk-in customer purchase registered.",
	},
	TypePurchase: {
		"Purchase order PO-88AC10 has been received.",
		"Stock replenishment from supplier completed.",
	},
	TypeSystem: {
		"Security update: password requirements have been updated.",
		"Performance improvements have been applied.",
		"Database backup completed successfully.",
	},
	TypeInfo: {
		"Did you know you can export inventory reports to CSV?",
		"Set up automatic stock alerts to never run out of inventory.",
		"You can customize your dashboard widgets.",
	},
}

// MockRepository gera e mantém em memória notificações de exemplo.
// Os endpoints reais de notificação ainda não existem no backend, então
// a fonte local é o comportamento atual.
type MockRepository struct {
	mu            sync.Mutex
	notifications []*Notification
}

// NewMockRepository gera n notificações distribuídas pelos últimos 30
// dias, com a semente informada para tornar a geração reprodutível.
// Notificações com mais de 2 dias já nascem lidas e o resultado é
// ordenado da mais recente para a mais antiga.
func NewMockRepository(n int, seed int64, now time.Time) *MockRepository {
	rng := rand.New(rand.NewSource(seed))
	notifications := make([]*Notification, 0, n)

	for i := 0; i < n; i++ {
		typ := Types[rng.Intn(len(Types))]
		msgs := messages[typ]

		daysAgo := rng.Intn(30)
		ts := now.AddDate(0, 0, -daysAgo).
			Add(-time.Duration(rng.Intn(24)) * time.Hour).
			Add(-time.Duration(rng.Intn(60)) * time.Minute)

		notifications = append(notifications, &Notification{
			ID:        fmt.Sprintf("notification-%d", i+1),
			Type:      typ,
			Title:     titles[typ],
			Message:   msgs[rng.Intn(len(msgs))],
			Timestamp: ts,
			Read:      daysAgo > 2,
		})
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].Timestamp.After(notifications[j].Timestamp)
	})

	return &MockRepository{notifications: notifications}
}

// List retorna as notificações da mais recente para a mais antiga
func (r *MockRepository) List() []*Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

// UnreadCount conta as notificações não lidas
func (r *MockRepository) UnreadCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, n := range r.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkRead marca uma notificação como lida
func (r *MockRepository) MarkRead(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.notifications {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return ErrNotFound
}

// MarkAllRead marca todas as notificações como lidas
func (r *MockRepository) MarkAllRead() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.notifications {
		n.Read = true
	}
}
