package search

import (
	"reflect"
	"testing"

	"github.com/spec-kit/ticket-simulator/internal/api/dto"
	"github.com/spec-kit/ticket-simulator/internal/domain"
	"github.com/spec-kit/ticket-simulator/internal/repository"
)

func searchFixture() *repository.Store {
	s := repository.NewStore()
	s.SetUsers([]*domain.User{
		{Username: "alice", Role: domain.RoleReporter},
		{Username: "bob", Role: domain.RoleReporter},
		{Username: "dana", Role: domain.RoleDeveloper, ExpertiseArea: domain.ExpertiseFullstack, Seniority: domain.SenioritySenior},
		{Username: "erik", Role: domain.RoleDeveloper, ExpertiseArea: domain.ExpertiseFrontend, Seniority: domain.SeniorityJunior},
		{Username: "mia", Role: domain.RoleManager},
	})

	s.AddTicket(&domain.Ticket{ // id 0
		Type:             domain.TicketTypeBug,
		Title:            "Login crash",
		Description:      "crash on submit",
		BusinessPriority: domain.TicketPriorityHigh,
		Status:           domain.TicketStatusOpen,
		ReportedBy:       "alice",
		CreatedAt:        "2024-01-02",
	})
	s.AddTicket(&domain.Ticket{ // id 1
		Type:             domain.TicketTypeFeatureRequest,
		Title:            "Dark mode",
		Description:      "theme support",
		BusinessPriority: domain.TicketPriorityLow,
		Status:           domain.TicketStatusOpen,
		ReportedBy:       "bob",
		CreatedAt:        "2024-01-01",
	})
	s.AddMilestone(&domain.Milestone{
		Name:         "m1",
		DueDate:      "2024-03-01",
		Tickets:      []int{0},
		AssignedDevs: []string{"dana"},
		CreatedAt:    "2024-01-01",
	})
	return s
}

func TestTicketsReporterSeesOnlyOwn(t *testing.T) {
	s := searchFixture()
	results := Tickets(s, "alice", dto.SearchFilters{}, "2024-01-03")
	if len(results) != 1 || results[0].ID != 0 {
		t.Fatalf("results = %+v, want only ticket 0", results)
	}
}

func TestTicketsManagerSeesAllSorted(t *testing.T) {
	s := searchFixture()
	results := Tickets(s, "mia", dto.SearchFilters{}, "2024-01-03")
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	// creation date ascending: dark mode (01-01) before login crash (01-02)
	if results[0].ID != 1 || results[1].ID != 0 {
		t.Errorf("order = [%d, %d], want [1, 0]", results[0].ID, results[1].ID)
	}
}

func TestTicketsDeveloperSeesOpenMilestoneTickets(t *testing.T) {
	s := searchFixture()

	results := Tickets(s, "dana", dto.SearchFilters{}, "2024-01-03")
	if len(results) != 1 || results[0].ID != 0 {
		t.Fatalf("dana results = %+v, want only milestone ticket 0", results)
	}

	// erik is not on any milestone
	if results := Tickets(s, "erik", dto.SearchFilters{}, "2024-01-03"); len(results) != 0 {
		t.Errorf("erik results = %+v, want none", results)
	}
}

func TestTicketsFilters(t *testing.T) {
	s := searchFixture()

	bug := "BUG"
	results := Tickets(s, "mia", dto.SearchFilters{Type: &bug}, "2024-01-03")
	if len(results) != 1 || results[0].Type != domain.TicketTypeBug {
		t.Errorf("type filter = %+v", results)
	}

	after := "2024-01-01"
	results = Tickets(s, "mia", dto.SearchFilters{CreatedAfter: &after}, "2024-01-03")
	if len(results) != 1 || results[0].ID != 0 {
		t.Errorf("createdAfter filter = %+v, want strictly later ticket only", results)
	}
}

func TestTicketsKeywordsMatchSorted(t *testing.T) {
	s := searchFixture()
	results := Tickets(s, "mia", dto.SearchFilters{Keywords: []string{"Submit", "crash", "missing"}}, "2024-01-03")
	if len(results) != 1 {
		t.Fatalf("results = %+v, want one keyword match", results)
	}
	want := []string{"crash", "submit"}
	if !reflect.DeepEqual(results[0].MatchingWords, want) {
		t.Errorf("MatchingWords = %v, want %v", results[0].MatchingWords, want)
	}
}

func TestTicketsAvailableForAssignment(t *testing.T) {
	s := searchFixture()
	results := Tickets(s, "dana", dto.SearchFilters{AvailableForAssignment: true}, "2024-01-03")
	if len(results) != 1 || results[0].ID != 0 {
		t.Fatalf("dana available = %+v, want ticket 0", results)
	}

	// once assigned the ticket is no longer available
	s.FindTicket(0).AssignedTo = "dana"
	if results := Tickets(s, "dana", dto.SearchFilters{AvailableForAssignment: true}, "2024-01-03"); len(results) != 0 {
		t.Errorf("assigned ticket still reported available: %+v", results)
	}
}

func TestDevelopersFilters(t *testing.T) {
	s := searchFixture()

	all := Developers(s, dto.SearchFilters{})
	if len(all) != 2 {
		t.Fatalf("all developers = %d, want 2", len(all))
	}

	senior := "SENIOR"
	results := Developers(s, dto.SearchFilters{Seniority: &senior})
	if len(results) != 1 || results[0].Username != "dana" {
		t.Errorf("seniority filter = %+v, want dana", results)
	}

	frontend := "FRONTEND"
	results = Developers(s, dto.SearchFilters{ExpertiseArea: &frontend})
	if len(results) != 1 || results[0].Username != "erik" {
		t.Errorf("expertise filter = %+v, want erik", results)
	}
}
