// Package search implements the ticket and developer queries behind the
// search command. Each query is a plain function over the store; visibility
// depends on the requester's role.
package search

import (
	"sort"
	"strings"

	"github.com/spec-kit/ticket-simulator/internal/api/dto"
	"github.com/spec-kit/ticket-simulator/internal/domain"
	"github.com/spec-kit/ticket-simulator/internal/repository"
	"github.com/spec-kit/ticket-simulator/internal/rules"
)

// Tickets runs a TICKET search for the given requester. Filters apply on top
// of role-based visibility: reporters see only their own tickets, developers
// only OPEN tickets inside milestones they are assigned to, managers (and
// unknown requesters) everything. Results are sorted by creation date, then
// ID.
func Tickets(s *repository.Store, username string, f dto.SearchFilters, now string) []dto.TicketSearchResult {
	user := s.FindUser(username)

	var tickets []*domain.Ticket
	for _, t := range s.Tickets() {
		if visibleTo(s, t, user) {
			tickets = append(tickets, t)
		}
	}

	if f.Type != nil {
		tickets = keep(tickets, func(t *domain.Ticket) bool {
			return string(t.Type) == *f.Type
		})
	}
	if f.BusinessPriority != nil {
		tickets = keep(tickets, func(t *domain.Ticket) bool {
			return string(t.BusinessPriority) == *f.BusinessPriority
		})
	}
	if f.CreatedAfter != nil {
		tickets = keep(tickets, func(t *domain.Ticket) bool {
			return t.CreatedAt > *f.CreatedAfter
		})
	}

	keywords := lowercase(f.Keywords)
	if len(keywords) > 0 {
		tickets = keep(tickets, func(t *domain.Ticket) bool {
			return len(matchingWords(t, keywords)) > 0
		})
	}

	if f.AvailableForAssignment && user != nil && user.Role == domain.RoleDeveloper {
		tickets = keep(tickets, func(t *domain.Ticket) bool {
			return availableForAssignment(s, t, user, now)
		})
	}

	sort.Slice(tickets, func(i, j int) bool {
		if tickets[i].CreatedAt != tickets[j].CreatedAt {
			return tickets[i].CreatedAt < tickets[j].CreatedAt
		}
		return tickets[i].ID < tickets[j].ID
	})

	results := []dto.TicketSearchResult{}
	for _, t := range tickets {
		r := dto.TicketSearchResult{
			ID:               t.ID,
			Type:             t.Type,
			Title:            t.Title,
			BusinessPriority: t.BusinessPriority,
			Status:           t.Status,
			CreatedAt:        t.CreatedAt,
			SolvedAt:         t.SolvedAt,
			ReportedBy:       t.ReportedBy,
		}
		if len(keywords) > 0 {
			words := matchingWords(t, keywords)
			sort.Strings(words)
			r.MatchingWords = words
		}
		results = append(results, r)
	}
	return results
}

func visibleTo(s *repository.Store, t *domain.Ticket, user *domain.User) bool {
	if user == nil {
		return true
	}
	switch user.Role {
	case domain.RoleReporter:
		return t.ReportedBy == user.Username
	case domain.RoleDeveloper:
		if t.Status != domain.TicketStatusOpen {
			return false
		}
		m := s.FindMilestoneForTicket(t.ID)
		return m != nil && contains(m.AssignedDevs, user.Username)
	default:
		return true
	}
}

// availableForAssignment mirrors the assignTicket eligibility checks without
// producing errors: the ticket must be OPEN and unassigned, the developer
// must satisfy both eligibility gates at the current calculated priority, and
// the ticket's milestone must not be blocked.
func availableForAssignment(s *repository.Store, t *domain.Ticket, dev *domain.User, now string) bool {
	if t.Status != domain.TicketStatusOpen || t.AssignedTo != "" {
		return false
	}
	if !rules.HasExpertise(rules.RequiredExpertise(t.ExpertiseArea), dev.ExpertiseArea) {
		return false
	}
	p := rules.CalculatedPriority(s, t, now)
	if !rules.HasSeniority(rules.RequiredSeniorities(t.Type, p), dev.Seniority) {
		return false
	}
	m := s.FindMilestoneForTicket(t.ID)
	return m == nil || !rules.IsBlocked(s, m)
}

func matchingWords(t *domain.Ticket, keywords []string) []string {
	content := strings.ToLower(t.Title + " " + t.Description)
	var words []string
	for _, kw := range keywords {
		if strings.Contains(content, kw) {
			words = append(words, kw)
		}
	}
	return words
}

func lowercase(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

func keep(in []*domain.Ticket, pred func(*domain.Ticket) bool) []*domain.Ticket {
	var out []*domain.Ticket
	for _, t := range in {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
