package report

import "github.com/spec-kit/ticket-simulator/internal/repository"

// App stability verdicts.
const (
	StabilityStable          = "STABLE"
	StabilityPartiallyStable = "PARTIALLY STABLE"
	StabilityUnstable        = "UNSTABLE"
)

// StabilityReport combines the risk and customer-impact views of the open
// ticket backlog into a single verdict.
type StabilityReport struct {
	TotalOpenTickets      int            `json:"totalOpenTickets"`
	OpenTicketsByType     TypeCounts     `json:"openTicketsByType"`
	OpenTicketsByPriority PriorityCounts `json:"openTicketsByPriority"`
	RiskByType            RiskLabels     `json:"riskByType"`
	ImpactByType          TypeAverages   `json:"impactByType"`
	AppStability          string         `json:"appStability"`
}

// Stability evaluates the app's overall health. A STABLE verdict marks the
// run closed; the flag is informational and commands keep executing.
func Stability(s *repository.Store) StabilityReport {
	risk := Risk(s)
	impact := CustomerImpact(s)

	rep := StabilityReport{
		TotalOpenTickets:      risk.TotalTickets,
		OpenTicketsByType:     risk.TicketsByType,
		OpenTicketsByPriority: risk.TicketsByPriority,
		RiskByType:            risk.RiskByType,
		ImpactByType:          impact.CustomerImpactByType,
		AppStability:          stabilityVerdict(risk, impact),
	}
	if rep.AppStability == StabilityStable {
		s.Close()
	}
	return rep
}

func stabilityVerdict(risk RiskReport, impact ImpactReport) string {
	if risk.TotalTickets == 0 {
		return StabilityStable
	}
	labels := []string{risk.RiskByType.Bug, risk.RiskByType.FeatureRequest, risk.RiskByType.UIFeedback}
	for _, l := range labels {
		if l == RiskSignificant || l == RiskMajor {
			return StabilityUnstable
		}
	}
	allNegligible := true
	for _, l := range labels {
		if l != RiskNegligible {
			allNegligible = false
		}
	}
	impacts := []float64{
		impact.CustomerImpactByType.Bug,
		impact.CustomerImpactByType.FeatureRequest,
		impact.CustomerImpactByType.UIFeedback,
	}
	lowImpact := true
	for _, v := range impacts {
		if v >= 50 {
			lowImpact = false
		}
	}
	if allNegligible && lowImpact {
		return StabilityStable
	}
	return StabilityPartiallyStable
}
