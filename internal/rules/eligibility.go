package rules

import (
	"github.com/spec-kit/ticket-simulator/internal/domain"
)

// RequiredExpertise maps a ticket's required-specialization tag to the set of
// developer expertise areas allowed to take it. Unknown or empty tags fall
// back to FULLSTACK only.
func RequiredExpertise(area string) []domain.Expertise {
	switch domain.Expertise(area) {
	case domain.ExpertiseFrontend:
		return []domain.Expertise{domain.ExpertiseFrontend, domain.ExpertiseFullstack, domain.ExpertiseDesign}
	case domain.ExpertiseBackend:
		return []domain.Expertise{domain.ExpertiseBackend, domain.ExpertiseFullstack}
	case domain.ExpertiseDevops:
		return []domain.Expertise{domain.ExpertiseDevops, domain.ExpertiseFullstack}
	case domain.ExpertiseDesign:
		return []domain.Expertise{domain.ExpertiseDesign, domain.ExpertiseFrontend, domain.ExpertiseFullstack}
	case domain.ExpertiseDB:
		return []domain.Expertise{domain.ExpertiseBackend, domain.ExpertiseDB, domain.ExpertiseFullstack}
	default:
		return []domain.Expertise{domain.ExpertiseFullstack}
	}
}

// RequiredSeniorities maps a (ticket type, calculated priority) pair to the
// seniority levels allowed to take the ticket. Feature requests never go to
// juniors.
func RequiredSeniorities(t domain.TicketType, p domain.TicketPriority) []domain.Seniority {
	if t == domain.TicketTypeFeatureRequest {
		if p == domain.TicketPriorityCritical {
			return []domain.Seniority{domain.SenioritySenior}
		}
		return []domain.Seniority{domain.SeniorityMid, domain.SenioritySenior}
	}
	switch p {
	case domain.TicketPriorityCritical:
		return []domain.Seniority{domain.SenioritySenior}
	case domain.TicketPriorityHigh:
		return []domain.Seniority{domain.SeniorityMid, domain.SenioritySenior}
	default:
		return []domain.Seniority{domain.SeniorityJunior, domain.SeniorityMid, domain.SenioritySenior}
	}
}

// HasExpertise reports whether the developer's expertise is in the set.
func HasExpertise(set []domain.Expertise, e domain.Expertise) bool {
	for _, x := range set {
		if x == e {
			return true
		}
	}
	return false
}

// HasSeniority reports whether the developer's seniority is in the set.
func HasSeniority(set []domain.Seniority, s domain.Seniority) bool {
	for _, x := range set {
		if x == s {
			return true
		}
	}
	return false
}
