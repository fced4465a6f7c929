package rules

import (
	"github.com/spec-kit/ticket-simulator/internal/domain"
	"github.com/spec-kit/ticket-simulator/internal/repository"
)

// IsFinished reports whether every ticket in the milestone is CLOSED. An
// empty milestone is vacuously finished and unblocks its dependents
// immediately.
func IsFinished(s *repository.Store, m *domain.Milestone) bool {
	for _, id := range m.Tickets {
		t := s.FindTicket(id)
		if t != nil && t.Status != domain.TicketStatusClosed {
			return false
		}
	}
	return true
}

// IsBlocked reports whether some other, unfinished milestone lists m in its
// blocking set. Blocking suppresses both priority escalation and assignment.
func IsBlocked(s *repository.Store, m *domain.Milestone) bool {
	for _, other := range s.Milestones() {
		if other == m {
			continue
		}
		for _, name := range other.BlockingFor {
			if name == m.Name && !IsFinished(s, other) {
				return true
			}
		}
	}
	return false
}

// testingWindowDays is the inclusive length of a testing phase.
const testingWindowDays = 12

// InTestingWindow reports whether the given date falls inside either active
// testing window: the one anchored at the first reported ticket, or the one
// anchored at the most recent explicit phase start.
func InTestingWindow(s *repository.Store, now string) bool {
	return inWindow(s.AppStartDate(), now) || inWindow(s.TestingPhaseStart(), now)
}

func inWindow(start, now string) bool {
	if start == "" {
		return false
	}
	days := domain.DaysBetween(start, now)
	return days >= 0 && days < testingWindowDays
}
