package report

import (
	"github.com/spec-kit/ticket-simulator/internal/domain"
	"github.com/spec-kit/ticket-simulator/internal/repository"
)

// EfficiencyReport aggregates resolution efficiency over RESOLVED and CLOSED
// tickets.
type EfficiencyReport struct {
	TotalTickets      int            `json:"totalTickets"`
	TicketsByType     TypeCounts     `json:"ticketsByType"`
	TicketsByPriority PriorityCounts `json:"ticketsByPriority"`
	EfficiencyByType  TypeAverages   `json:"efficiencyByType"`
}

// ResolutionEfficiency scores each settled ticket against its type's cap,
// normalizes to 0-100 and averages per type.
func ResolutionEfficiency(s *repository.Store) EfficiencyReport {
	var rep EfficiencyReport
	scores := map[domain.TicketType][]float64{}

	for _, t := range settledTickets(s) {
		rep.TotalTickets++
		rep.TicketsByType.add(t.Type)
		rep.TicketsByPriority.add(t.BusinessPriority)

		days := resolutionDays(t.AssignedAt, t.SolvedAt)
		var score, limit float64
		switch t.Type {
		case domain.TicketTypeBug:
			score = float64(frequencyValue(t.Frequency)+severityValue(t.Severity)) * 10 / days
			limit = 70
		case domain.TicketTypeFeatureRequest:
			score = float64(businessValue(t.BusinessValue)+demandValue(t.CustomerDemand)) / days
			limit = 20
		case domain.TicketTypeUIFeedback:
			score = float64(t.UsabilityScore+businessValue(t.BusinessValue)) / days
			limit = 20
		default:
			continue
		}
		scores[t.Type] = append(scores[t.Type], score*100/limit)
	}

	rep.EfficiencyByType = TypeAverages{
		Bug:            round2(average(scores[domain.TicketTypeBug])),
		FeatureRequest: round2(average(scores[domain.TicketTypeFeatureRequest])),
		UIFeedback:     round2(average(scores[domain.TicketTypeUIFeedback])),
	}
	return rep
}

// resolutionDays is the inclusive day span between assignment and solving,
// never less than one. Missing dates count as a single day.
func resolutionDays(assignedAt, solvedAt string) float64 {
	if assignedAt == "" || solvedAt == "" {
		return 1
	}
	days := domain.DaysBetween(assignedAt, solvedAt) + 1
	if days < 1 {
		return 1
	}
	return float64(days)
}
