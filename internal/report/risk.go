package report

import (
	"github.com/spec-kit/ticket-simulator/internal/domain"
	"github.com/spec-kit/ticket-simulator/internal/repository"
)

// Risk bucket labels.
const (
	RiskNegligible  = "NEGLIGIBLE"
	RiskModerate    = "MODERATE"
	RiskSignificant = "SIGNIFICANT"
	RiskMajor       = "MAJOR"
)

// RiskLabels carries the bucketed risk per ticket type.
type RiskLabels struct {
	Bug            string `json:"BUG"`
	FeatureRequest string `json:"FEATURE_REQUEST"`
	UIFeedback     string `json:"UI_FEEDBACK"`
}

// RiskReport aggregates risk over OPEN and IN_PROGRESS tickets.
type RiskReport struct {
	TotalTickets      int            `json:"totalTickets"`
	TicketsByType     TypeCounts     `json:"ticketsByType"`
	TicketsByPriority PriorityCounts `json:"ticketsByPriority"`
	RiskByType        RiskLabels     `json:"riskByType"`
}

// Risk scores every active ticket with its type-specific formula, averages
// per type and buckets the averages into labels.
func Risk(s *repository.Store) RiskReport {
	var rep RiskReport
	scores := map[domain.TicketType][]float64{}

	for _, t := range activeTickets(s) {
		rep.TotalTickets++
		rep.TicketsByType.add(t.Type)
		rep.TicketsByPriority.add(t.BusinessPriority)
		scores[t.Type] = append(scores[t.Type], riskScore(t))
	}

	rep.RiskByType = RiskLabels{
		Bug:            riskLabel(average(scores[domain.TicketTypeBug])),
		FeatureRequest: riskLabel(average(scores[domain.TicketTypeFeatureRequest])),
		UIFeedback:     riskLabel(average(scores[domain.TicketTypeUIFeedback])),
	}
	return rep
}

func riskScore(t *domain.Ticket) float64 {
	switch t.Type {
	case domain.TicketTypeBug:
		// max frequency*severity = 12
		raw := float64(frequencyValue(t.Frequency) * severityValue(t.Severity))
		return raw * 100 / 12
	case domain.TicketTypeFeatureRequest:
		// max value+demand = 20
		raw := float64(businessValue(t.BusinessValue) + demandValue(t.CustomerDemand))
		return raw * 100 / 20
	case domain.TicketTypeUIFeedback:
		// max (11-usability)*value = 100
		raw := float64((11 - t.UsabilityScore) * businessValue(t.BusinessValue))
		return raw * 100 / 100
	default:
		return 0
	}
}

func riskLabel(score float64) string {
	switch {
	case score < 25:
		return RiskNegligible
	case score < 50:
		return RiskModerate
	case score < 75:
		return RiskSignificant
	default:
		return RiskMajor
	}
}
