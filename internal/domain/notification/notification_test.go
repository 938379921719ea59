package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByDate(t *testing.T) {
	now := time.Date(2025, time.March, 15, 18, 0, 0, 0, time.UTC)

	t.Run("baldes Today, Yesterday e data curta", func(t *testing.T) {
		input := []*Notification{
			{ID: "1", Timestamp: now.Add(-1 * time.Hour)},
			{ID: "2", Timestamp: now.Add(-3 * time.Hour)},
			{ID: "3", Timestamp: now.AddDate(0, 0, -1)},
			{ID: "4", Timestamp: now.AddDate(0, 0, -5)},
		}

		groups := GroupByDate(input, now)

		require.Len(t, groups, 3)
		assert.Equal(t, "Today", groups[0].Label)
		assert.Len(t, groups[0].Notifications, 2)
		assert.Equal(t, "Yesterday", groups[1].Label)
		assert.Equal(t, "Mar 10", groups[2].Label)
	})

	t.Run("ordem de entrada preservada dentro do balde", func(t *testing.T) {
		input := []*Notification{
			{ID: "a", Timestamp: now.Add(-1 * time.Hour)},
			{ID: "b", Timestamp: now.Add(-2 * time.Hour)},
		}

		groups := GroupByDate(input, now)

		require.Len(t, groups, 1)
		assert.Equal(t, "a", groups[0].Notifications[0].ID)
		assert.Equal(t, "b", groups[0].Notifications[1].ID)
	})

	t.Run("entrada vazia produz zero baldes", func(t *testing.T) {
		assert.Empty(t, GroupByDate(nil, now))
	})
}

func TestMockRepository(t *testing.T) {
	now := time.Date(2025, time.March, 15, 18, 0, 0, 0, time.UTC)

	t.Run("gera n notificações ordenadas da mais recente", func(t *testing.T) {
		repo := NewMockRepository(100, 42, now)

		list := repo.List()
		require.Len(t, list, 100)
		for i := 1; i < len(list); i++ {
			assert.False(t, list[i].Timestamp.After(list[i-1].Timestamp))
		}
	})

	t.Run("geração é reprodutível para a mesma semente", func(t *testing.T) {
		a := NewMockRepository(20, 7, now).List()
		b := NewMockRepository(20, 7, now).List()

		require.Len(t, b, len(a))
		for i := range a {
			assert.Equal(t, a[i].Message, b[i].Message)
			assert.Equal(t, a[i].Timestamp, b[i].Timestamp)
		}
	})

	t.Run("notificações com mais de 2 dias nascem lidas", func(t *testing.T) {
		repo := NewMockRepository(100, 42, now)

		cutoff := now.AddDate(0, 0, -3)
		for _, n := range repo.List() {
			if n.Timestamp.Before(cutoff) {
				assert.True(t, n.Read, "notificação %s de %s deveria estar lida", n.ID, n.Timestamp)
			}
		}
	})

	t.Run("marcar como lida atualiza a contagem", func(t *testing.T) {
		repo := NewMockRepository(50, 42, now)

		before := repo.UnreadCount()
		require.Greater(t, before, 0)

		var unread *Notification
		for _, n := range repo.List() {
			if !n.Read {
				unread = n
				break
			}
		}
		require.NotNil(t, unread)

		require.NoError(t, repo.MarkRead(unread.ID))
		assert.Equal(t, before-1, repo.UnreadCount())

		repo.MarkAllRead()
		assert.Equal(t, 0, repo.UnreadCount())
	})

	t.Run("marcar id inexistente retorna erro", func(t *testing.T) {
		repo := NewMockRepository(5, 42, now)

		assert.ErrorIs(t, repo.MarkRead("nope"), ErrNotFound)
	})
}
