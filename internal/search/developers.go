package search

import (
	"github.com/spec-kit/ticket-simulator/internal/api/dto"
	"github.com/spec-kit/ticket-simulator/internal/domain"
	"github.com/spec-kit/ticket-simulator/internal/repository"
)

// Developers runs a DEVELOPER search over the roster, filtering by expertise
// area and seniority when given. Results keep roster order.
func Developers(s *repository.Store, f dto.SearchFilters) []dto.DeveloperSearchResult {
	results := []dto.DeveloperSearchResult{}
	for _, u := range s.Users() {
		if u.Role != domain.RoleDeveloper {
			continue
		}
		if f.ExpertiseArea != nil && string(u.ExpertiseArea) != *f.ExpertiseArea {
			continue
		}
		if f.Seniority != nil && string(u.Seniority) != *f.Seniority {
			continue
		}
		results = append(results, dto.DeveloperSearchResult{
			Username:         u.Username,
			ExpertiseArea:    u.ExpertiseArea,
			Seniority:        u.Seniority,
			PerformanceScore: u.PerformanceScore,
			HireDate:         u.HireDate,
		})
	}
	return results
}
