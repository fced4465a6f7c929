package rules

import (
	"github.com/spec-kit/ticket-simulator/internal/domain"
	"github.com/spec-kit/ticket-simulator/internal/repository"
)

// CalculatedPriority derives a ticket's effective priority at the given
// instant from its milestone timeline. Tickets outside any milestone, or in a
// blocked one, keep their stored base priority. Within one day of the due
// date the priority is forced to CRITICAL; otherwise it escalates one step
// for every three days since the milestone was created.
func CalculatedPriority(s *repository.Store, t *domain.Ticket, now string) domain.TicketPriority {
	m := s.FindMilestoneForTicket(t.ID)
	if m == nil || IsBlocked(s, m) {
		return t.BusinessPriority
	}

	if domain.DaysBetween(now, m.DueDate) <= 1 {
		return domain.TicketPriorityCritical
	}

	steps := domain.DaysBetween(m.CreatedAt, now) / 3
	p := t.BusinessPriority
	for i := 0; i < steps; i++ {
		p = p.Next()
	}
	return p
}
