package report

import (
	"github.com/spec-kit/ticket-simulator/internal/domain"
	"github.com/spec-kit/ticket-simulator/internal/repository"
)

// ImpactReport aggregates customer impact over OPEN and IN_PROGRESS tickets.
type ImpactReport struct {
	TotalTickets         int            `json:"totalTickets"`
	TicketsByType        TypeCounts     `json:"ticketsByType"`
	TicketsByPriority    PriorityCounts `json:"ticketsByPriority"`
	CustomerImpactByType TypeAverages   `json:"customerImpactByType"`
}

// CustomerImpact averages the normalized impact score per ticket type,
// reporting 0 for types with no active tickets.
func CustomerImpact(s *repository.Store) ImpactReport {
	var rep ImpactReport
	scores := map[domain.TicketType][]float64{}

	for _, t := range activeTickets(s) {
		rep.TotalTickets++
		rep.TicketsByType.add(t.Type)
		rep.TicketsByPriority.add(t.BusinessPriority)
		scores[t.Type] = append(scores[t.Type], impactScore(t))
	}

	rep.CustomerImpactByType = TypeAverages{
		Bug:            round2(average(scores[domain.TicketTypeBug])),
		FeatureRequest: round2(average(scores[domain.TicketTypeFeatureRequest])),
		UIFeedback:     round2(average(scores[domain.TicketTypeUIFeedback])),
	}
	return rep
}

func impactScore(t *domain.Ticket) float64 {
	switch t.Type {
	case domain.TicketTypeBug:
		// max frequency*priority*severity = 48
		raw := float64(frequencyValue(t.Frequency) * priorityValue(t.BusinessPriority) * severityValue(t.Severity))
		return raw * 100 / 48
	case domain.TicketTypeFeatureRequest:
		// max value*demand = 100
		raw := float64(businessValue(t.BusinessValue) * demandValue(t.CustomerDemand))
		return raw * 100 / 100
	case domain.TicketTypeUIFeedback:
		// max value*usability = 100
		raw := float64(businessValue(t.BusinessValue) * t.UsabilityScore)
		return raw * 100 / 100
	default:
		return 0
	}
}
