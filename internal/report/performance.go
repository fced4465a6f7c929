package report

import (
	"math"
	"sort"

	"github.com/spec-kit/ticket-simulator/internal/domain"
	"github.com/spec-kit/ticket-simulator/internal/repository"
	"github.com/spec-kit/ticket-simulator/internal/rules"
)

// PerformanceEntry is one subordinate developer's monthly scorecard.
type PerformanceEntry struct {
	Username              string           `json:"username"`
	ClosedTickets         int              `json:"closedTickets"`
	AverageResolutionTime float64          `json:"averageResolutionTime"`
	PerformanceScore      float64          `json:"performanceScore"`
	Seniority             domain.Seniority `json:"seniority"`
}

// Performance scores the manager's subordinate developers over the tickets
// they closed in the calendar month before the command date. Entries are
// sorted by username.
func Performance(s *repository.Store, manager *domain.User, timestamp string) []PerformanceEntry {
	entries := []PerformanceEntry{}

	var devs []*domain.User
	for _, name := range manager.Subordinates {
		if u := s.FindUser(name); u != nil && u.Role == domain.RoleDeveloper {
			devs = append(devs, u)
		}
	}
	sort.Slice(devs, func(i, j int) bool { return devs[i].Username < devs[j].Username })

	year, month := previousMonth(timestamp)

	for _, dev := range devs {
		var closed []*domain.Ticket
		for _, t := range s.Tickets() {
			if t.Status == domain.TicketStatusClosed && t.AssignedTo == dev.Username && closedInMonth(t, year, month) {
				closed = append(closed, t)
			}
		}

		avg := averageResolutionTime(closed)
		entries = append(entries, PerformanceEntry{
			Username:              dev.Username,
			ClosedTickets:         len(closed),
			AverageResolutionTime: round2(avg),
			PerformanceScore:      round2(performanceScore(s, dev, closed, avg)),
			Seniority:             dev.Seniority,
		})
	}
	return entries
}

func previousMonth(timestamp string) (int, int) {
	d := domain.ParseDay(timestamp).AddDate(0, -1, 0)
	return d.Year(), int(d.Month())
}

func closedInMonth(t *domain.Ticket, year, month int) bool {
	if t.ClosedAt == "" {
		return false
	}
	d := domain.ParseDay(t.ClosedAt)
	return d.Year() == year && int(d.Month()) == month
}

// averageResolutionTime is the mean inclusive day span from assignment to
// solving; tickets missing either date contribute zero days but still count
// in the denominator.
func averageResolutionTime(tickets []*domain.Ticket) float64 {
	if len(tickets) == 0 {
		return 0
	}
	total := 0.0
	for _, t := range tickets {
		if t.AssignedAt != "" && t.SolvedAt != "" {
			total += float64(domain.DaysBetween(t.AssignedAt, t.SolvedAt) + 1)
		}
	}
	return total / float64(len(tickets))
}

func performanceScore(s *repository.Store, dev *domain.User, closed []*domain.Ticket, avgResTime float64) float64 {
	if len(closed) == 0 {
		return 0
	}
	n := float64(len(closed))
	switch dev.Seniority {
	case domain.SeniorityJunior:
		return math.Max(0, 0.5*n-diversityFactor(closed)) + 5
	case domain.SeniorityMid:
		high := float64(highPriorityCount(s, closed))
		return math.Max(0, 0.5*n+0.7*high-0.3*avgResTime) + 15
	case domain.SenioritySenior:
		high := float64(highPriorityCount(s, closed))
		return math.Max(0, 0.5*n+1.0*high-0.5*avgResTime) + 30
	default:
		return 0
	}
}

// diversityFactor penalizes juniors who close only one kind of ticket: the
// standard deviation of the per-type closed counts divided by their mean.
func diversityFactor(closed []*domain.Ticket) float64 {
	var counts TypeCounts
	for _, t := range closed {
		counts.add(t.Type)
	}
	vals := []float64{float64(counts.Bug), float64(counts.FeatureRequest), float64(counts.UIFeedback)}

	mean := (vals[0] + vals[1] + vals[2]) / 3
	if mean == 0 {
		return 0
	}
	variance := 0.0
	for _, v := range vals {
		variance += (v - mean) * (v - mean)
	}
	variance /= 3
	return math.Sqrt(variance) / mean
}

// highPriorityCount counts tickets whose calculated priority at their
// solving date was HIGH or CRITICAL.
func highPriorityCount(s *repository.Store, tickets []*domain.Ticket) int {
	count := 0
	for _, t := range tickets {
		p := rules.CalculatedPriority(s, t, t.SolvedAt)
		if p == domain.TicketPriorityHigh || p == domain.TicketPriorityCritical {
			count++
		}
	}
	return count
}
