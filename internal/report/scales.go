package report

import (
	"math"

	"github.com/spec-kit/ticket-simulator/internal/domain"
)

// Attribute scales shared by every report formula. Unknown values score 0 so
// a malformed ticket drags averages down instead of failing the run.

func severityValue(s string) int {
	switch s {
	case "MINOR":
		return 1
	case "MODERATE":
		return 2
	case "SEVERE":
		return 3
	default:
		return 0
	}
}

func frequencyValue(f string) int {
	switch f {
	case "RARE":
		return 1
	case "OCCASIONAL":
		return 2
	case "FREQUENT":
		return 3
	case "ALWAYS":
		return 4
	default:
		return 0
	}
}

func businessValue(v string) int {
	switch v {
	case "S":
		return 1
	case "M":
		return 3
	case "L":
		return 6
	case "XL":
		return 10
	default:
		return 0
	}
}

func demandValue(d string) int {
	switch d {
	case "LOW":
		return 1
	case "MEDIUM":
		return 3
	case "HIGH":
		return 6
	case "VERY_HIGH":
		return 10
	default:
		return 0
	}
}

func priorityValue(p domain.TicketPriority) int {
	switch p {
	case domain.TicketPriorityLow:
		return 1
	case domain.TicketPriorityMedium:
		return 2
	case domain.TicketPriorityHigh:
		return 3
	case domain.TicketPriorityCritical:
		return 4
	default:
		return 0
	}
}

// round2 rounds to two decimals, the precision every report emits.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
