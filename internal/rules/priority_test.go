package rules

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/spec-kit/ticket-simulator/internal/domain"
	"github.com/spec-kit/ticket-simulator/internal/repository"
)

func storeWithMilestone(createdAt, dueDate string, base domain.TicketPriority) (*repository.Store, *domain.Ticket) {
	s := repository.NewStore()
	t := &domain.Ticket{
		Type:             domain.TicketTypeBug,
		Title:            "login broken",
		BusinessPriority: base,
		Status:           domain.TicketStatusOpen,
		CreatedAt:        createdAt,
	}
	s.AddTicket(t)
	s.AddMilestone(&domain.Milestone{
		Name:      "m1",
		DueDate:   dueDate,
		Tickets:   []int{t.ID},
		CreatedAt: createdAt,
	})
	return s, t
}

func TestCalculatedPriorityEscalation(t *testing.T) {
	tests := []struct {
		name string
		now  string
		want domain.TicketPriority
	}{
		{"day zero keeps base", "2024-01-01", domain.TicketPriorityLow},
		{"under three days keeps base", "2024-01-03", domain.TicketPriorityLow},
		{"one step after three days", "2024-01-04", domain.TicketPriorityMedium},
		{"two steps after six days", "2024-01-07", domain.TicketPriorityHigh},
		{"three steps after nine days", "2024-01-10", domain.TicketPriorityCritical},
		{"clamped at critical", "2024-01-13", domain.TicketPriorityCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ticket := storeWithMilestone("2024-01-01", "2024-02-01", domain.TicketPriorityLow)
			if got := CalculatedPriority(s, ticket, tt.now); got != tt.want {
				t.Errorf("CalculatedPriority(now=%s) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestCalculatedPriorityDueDateOverride(t *testing.T) {
	s, ticket := storeWithMilestone("2024-01-01", "2024-01-05", domain.TicketPriorityLow)

	// one day before due: forced CRITICAL regardless of escalation steps
	if got := CalculatedPriority(s, ticket, "2024-01-04"); got != domain.TicketPriorityCritical {
		t.Errorf("day before due = %v, want CRITICAL", got)
	}
	if got := CalculatedPriority(s, ticket, "2024-01-05"); got != domain.TicketPriorityCritical {
		t.Errorf("due date = %v, want CRITICAL", got)
	}
}

func TestCalculatedPriorityWithoutMilestone(t *testing.T) {
	s := repository.NewStore()
	ticket := &domain.Ticket{BusinessPriority: domain.TicketPriorityMedium, CreatedAt: "2024-01-01"}
	s.AddTicket(ticket)

	if got := CalculatedPriority(s, ticket, "2024-03-01"); got != domain.TicketPriorityMedium {
		t.Errorf("no milestone = %v, want base MEDIUM", got)
	}
}

func TestCalculatedPriorityBlockedMilestoneKeepsBase(t *testing.T) {
	s, ticket := storeWithMilestone("2024-01-01", "2024-01-05", domain.TicketPriorityLow)

	blocker := &domain.Ticket{Status: domain.TicketStatusOpen, CreatedAt: "2024-01-01"}
	s.AddTicket(blocker)
	s.AddMilestone(&domain.Milestone{
		Name:        "m0",
		BlockingFor: []string{"m1"},
		DueDate:     "2024-01-03",
		Tickets:     []int{blocker.ID},
		CreatedAt:   "2024-01-01",
	})

	if got := CalculatedPriority(s, ticket, "2024-01-04"); got != domain.TicketPriorityLow {
		t.Errorf("blocked milestone = %v, want base LOW", got)
	}
}

func TestCalculatedPriorityNeverBelowBase(t *testing.T) {
	priorities := []domain.TicketPriority{
		domain.TicketPriorityLow,
		domain.TicketPriorityMedium,
		domain.TicketPriorityHigh,
		domain.TicketPriorityCritical,
	}
	rapid.Check(t, func(rt *rapid.T) {
		base := priorities[rapid.IntRange(0, 3).Draw(rt, "base")]
		elapsed := rapid.IntRange(0, 40).Draw(rt, "elapsed")
		dueOffset := rapid.IntRange(2, 60).Draw(rt, "dueOffset")

		created := domain.ParseDay("2024-01-01")
		now := created.AddDate(0, 0, elapsed).Format(domain.DayLayout)
		due := domain.ParseDay(now).AddDate(0, 0, dueOffset).Format(domain.DayLayout)

		s, ticket := storeWithMilestone("2024-01-01", due, base)
		got := CalculatedPriority(s, ticket, now)
		if got.Rank() < base.Rank() {
			rt.Fatalf("calculated priority %v below base %v", got, base)
		}
	})
}
