package dto

import (
	"github.com/spec-kit/ticket-simulator/internal/domain"
)

// ErrorRecord is the flat shape every failed command produces.
type ErrorRecord struct {
	Command   string `json:"command"`
	Username  string `json:"username"`
	Timestamp string `json:"timestamp"`
	Error     string `json:"error"`
}

// TicketView is the full ticket projection used by viewTickets. The
// businessPriority field carries the calculated priority at the viewing
// timestamp, not the stored base value.
type TicketView struct {
	ID               int                   `json:"id"`
	Type             domain.TicketType     `json:"type"`
	Title            string                `json:"title"`
	BusinessPriority domain.TicketPriority `json:"businessPriority"`
	Status           domain.TicketStatus   `json:"status"`
	ReportedBy       string                `json:"reportedBy"`
	AssignedTo       string                `json:"assignedTo"`
	CreatedAt        string                `json:"createdAt"`
	AssignedAt       string                `json:"assignedAt"`
	SolvedAt         string                `json:"solvedAt"`
	ClosedAt         string                `json:"closedAt"`
	Comments         []domain.Comment      `json:"comments"`
}

// TicketsRecord is the viewTickets output.
type TicketsRecord struct {
	Command   string       `json:"command"`
	Username  string       `json:"username"`
	Timestamp string       `json:"timestamp"`
	Tickets   []TicketView `json:"tickets"`
}

// AssignedTicketView is the trimmed projection used by viewAssignedTickets.
type AssignedTicketView struct {
	ID               int                   `json:"id"`
	Type             domain.TicketType     `json:"type"`
	Title            string                `json:"title"`
	BusinessPriority domain.TicketPriority `json:"businessPriority"`
	Status           domain.TicketStatus   `json:"status"`
	ReportedBy       string                `json:"reportedBy"`
	CreatedAt        string                `json:"createdAt"`
	AssignedAt       string                `json:"assignedAt"`
	Comments         []domain.Comment      `json:"comments"`
}

// AssignedTicketsRecord is the viewAssignedTickets output.
type AssignedTicketsRecord struct {
	Command         string               `json:"command"`
	Username        string               `json:"username"`
	Timestamp       string               `json:"timestamp"`
	AssignedTickets []AssignedTicketView `json:"assignedTickets"`
}

// DevRepartition lists the tickets a developer holds within a milestone.
type DevRepartition struct {
	Developer       string `json:"developer"`
	AssignedTickets []int  `json:"assignedTickets"`
}

// MilestoneView is one entry of the viewMilestones output.
type MilestoneView struct {
	Name                 string           `json:"name"`
	BlockingFor          []string         `json:"blockingFor"`
	DueDate              string           `json:"dueDate"`
	Tickets              []int            `json:"tickets"`
	AssignedDevs         []string         `json:"assignedDevs"`
	CreatedAt            string           `json:"createdAt"`
	CreatedBy            string           `json:"createdBy"`
	OpenTickets          []int            `json:"openTickets"`
	ClosedTickets        []int            `json:"closedTickets"`
	CompletionPercentage float64          `json:"completionPercentage"`
	DaysUntilDue         int              `json:"daysUntilDue"`
	OverdueBy            int              `json:"overdueBy"`
	IsBlocked            bool             `json:"isBlocked"`
	Status               string           `json:"status"`
	Repartition          []DevRepartition `json:"repartition"`
}

// MilestonesRecord is the viewMilestones output.
type MilestonesRecord struct {
	Command    string          `json:"command"`
	Username   string          `json:"username"`
	Timestamp  string          `json:"timestamp"`
	Milestones []MilestoneView `json:"milestones"`
}

// TicketHistoryEntry is one ticket's slice of the viewTicketHistory output.
type TicketHistoryEntry struct {
	ID       int                 `json:"id"`
	Title    string              `json:"title"`
	Status   domain.TicketStatus `json:"status"`
	Actions  []domain.Action     `json:"actions"`
	Comments []domain.Comment    `json:"comments"`
}

// TicketHistoryRecord is the viewTicketHistory output.
type TicketHistoryRecord struct {
	Command       string               `json:"command"`
	Username      string               `json:"username"`
	Timestamp     string               `json:"timestamp"`
	TicketHistory []TicketHistoryEntry `json:"ticketHistory"`
}

// NotificationsRecord is the viewNotifications output; building it drains
// the user's mailbox.
type NotificationsRecord struct {
	Command       string   `json:"command"`
	Username      string   `json:"username"`
	Timestamp     string   `json:"timestamp"`
	Notifications []string `json:"notifications"`
}

// TicketSearchResult is one TICKET search hit. MatchingWords is present only
// when the query carried keywords.
type TicketSearchResult struct {
	ID               int                   `json:"id"`
	Type             domain.TicketType     `json:"type"`
	Title            string                `json:"title"`
	BusinessPriority domain.TicketPriority `json:"businessPriority"`
	Status           domain.TicketStatus   `json:"status"`
	CreatedAt        string                `json:"createdAt"`
	SolvedAt         string                `json:"solvedAt"`
	ReportedBy       string                `json:"reportedBy"`
	MatchingWords    []string              `json:"matchingWords,omitempty"`
}

// DeveloperSearchResult is one DEVELOPER search hit.
type DeveloperSearchResult struct {
	Username         string           `json:"username"`
	ExpertiseArea    domain.Expertise `json:"expertiseArea"`
	Seniority        domain.Seniority `json:"seniority"`
	PerformanceScore float64          `json:"performanceScore"`
	HireDate         string           `json:"hireDate"`
}

// SearchRecord is the search output. Results holds either ticket or
// developer hits depending on SearchType.
type SearchRecord struct {
	Command    string `json:"command"`
	Username   string `json:"username"`
	Timestamp  string `json:"timestamp"`
	SearchType string `json:"searchType"`
	Results    any    `json:"results"`
}

// ReportRecord wraps any generated report.
type ReportRecord struct {
	Command   string `json:"command"`
	Username  string `json:"username"`
	Timestamp string `json:"timestamp"`
	Report    any    `json:"report"`
}
