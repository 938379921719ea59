package notification

import (
	"time"
)

// Group é um balde de notificações de um mesmo dia
type Group struct {
	Label         string          // Today, Yesterday ou "Jan 2"
	Notifications []*Notification // Notificações do balde, mais recentes primeiro
}

// dateLabel devolve o rótulo do balde para a data da notificação
func dateLabel(ts, now time.Time) string {
	y1, m1, d1 := ts.Date()
	y2, m2, d2 := now.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}

	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y1 == y3 && m1 == m3 && d1 == d3 {
		return "Yesterday"
	}

	return ts.Format("Jan 2")
}

// GroupByDate agrupa as notificações por dia (Today, Yesterday e depois
// rótulos de data curta), preservando a ordem de entrada dentro de cada
// balde. Os baldes saem na ordem do primeiro elemento encontrado, que
// para uma entrada ordenada por data é do mais recente para o mais antigo.
func GroupByDate(notifications []*Notification, now time.Time) []Group {
	groups := make([]Group, 0)
	index := make(map[string]int)

	for _, n := range notifications {
		label := dateLabel(n.Timestamp, now)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, Group{Label: label})
		}
		groups[i].Notifications = append(groups[i].Notifications, n)
	}

	return groups
}
