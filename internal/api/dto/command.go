package dto

import "encoding/json"

// Command is the envelope shared by every input record. Command-specific
// payloads stay raw until the matching handler decodes them: reportTicket
// parameters may arrive nested under params or inline on the envelope, and
// createMilestone fields are always inline.
type Command struct {
	Command   string `json:"command"`
	Username  string `json:"username"`
	Timestamp string `json:"timestamp"`

	TicketID int    `json:"ticketID"`
	Comment  string `json:"comment"`

	Params  json.RawMessage `json:"params"`
	Filters json.RawMessage `json:"filters"`

	// createMilestone
	Name         string   `json:"name"`
	DueDate      string   `json:"dueDate"`
	Tickets      []int    `json:"tickets"`
	AssignedDevs []string `json:"assignedDevs"`
	BlockingFor  []string `json:"blockingFor"`

	// Raw holds the undecoded envelope for handlers that read inline
	// ticket fields.
	Raw json.RawMessage `json:"-"`
}

// SearchFilters carries the optional search criteria. Pointer fields
// distinguish an absent filter from an empty one.
type SearchFilters struct {
	SearchType             string   `json:"searchType"`
	Type                   *string  `json:"type"`
	BusinessPriority       *string  `json:"businessPriority"`
	CreatedAfter           *string  `json:"createdAfter"`
	Keywords               []string `json:"keywords"`
	AvailableForAssignment bool     `json:"availableForAssignment"`
	ExpertiseArea          *string  `json:"expertiseArea"`
	Seniority              *string  `json:"seniority"`
}
