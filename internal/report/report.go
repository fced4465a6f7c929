// Package report computes the analytical aggregates over store state. Each
// report is a plain function returning a typed record; the engine selects one
// by command name.
package report

import (
	"github.com/spec-kit/ticket-simulator/internal/domain"
	"github.com/spec-kit/ticket-simulator/internal/repository"
)

// TypeCounts tallies tickets per type. Every key is always emitted.
type TypeCounts struct {
	Bug            int `json:"BUG"`
	FeatureRequest int `json:"FEATURE_REQUEST"`
	UIFeedback     int `json:"UI_FEEDBACK"`
}

func (c *TypeCounts) add(t domain.TicketType) {
	switch t {
	case domain.TicketTypeBug:
		c.Bug++
	case domain.TicketTypeFeatureRequest:
		c.FeatureRequest++
	case domain.TicketTypeUIFeedback:
		c.UIFeedback++
	}
}

// PriorityCounts tallies tickets per stored base priority.
type PriorityCounts struct {
	Low      int `json:"LOW"`
	Medium   int `json:"MEDIUM"`
	High     int `json:"HIGH"`
	Critical int `json:"CRITICAL"`
}

func (c *PriorityCounts) add(p domain.TicketPriority) {
	switch p {
	case domain.TicketPriorityLow:
		c.Low++
	case domain.TicketPriorityMedium:
		c.Medium++
	case domain.TicketPriorityHigh:
		c.High++
	case domain.TicketPriorityCritical:
		c.Critical++
	}
}

// TypeAverages carries one per-type average, rounded to two decimals.
type TypeAverages struct {
	Bug            float64 `json:"BUG"`
	FeatureRequest float64 `json:"FEATURE_REQUEST"`
	UIFeedback     float64 `json:"UI_FEEDBACK"`
}

// activeTickets returns the OPEN and IN_PROGRESS tickets.
func activeTickets(s *repository.Store) []*domain.Ticket {
	var out []*domain.Ticket
	for _, t := range s.Tickets() {
		if t.Status == domain.TicketStatusOpen || t.Status == domain.TicketStatusInProgress {
			out = append(out, t)
		}
	}
	return out
}

// settledTickets returns the RESOLVED and CLOSED tickets.
func settledTickets(s *repository.Store) []*domain.Ticket {
	var out []*domain.Ticket
	for _, t := range s.Tickets() {
		if t.Status == domain.TicketStatusResolved || t.Status == domain.TicketStatusClosed {
			out = append(out, t)
		}
	}
	return out
}

func average(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}
