package domain

// TicketType discriminates ticket variants.
type TicketType string

const (
	TicketTypeBug            TicketType = "BUG"
	TicketTypeFeatureRequest TicketType = "FEATURE_REQUEST"
	TicketTypeUIFeedback     TicketType = "UI_FEEDBACK"
)

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusResolved   TicketStatus = "RESOLVED"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

// TicketPriority enumerates business urgency, ordered LOW through CRITICAL.
type TicketPriority string

const (
	TicketPriorityLow      TicketPriority = "LOW"
	TicketPriorityMedium   TicketPriority = "MEDIUM"
	TicketPriorityHigh     TicketPriority = "HIGH"
	TicketPriorityCritical TicketPriority = "CRITICAL"
)

// Next returns the successor priority, clamped at CRITICAL.
func (p TicketPriority) Next() TicketPriority {
	switch p {
	case TicketPriorityLow:
		return TicketPriorityMedium
	case TicketPriorityMedium:
		return TicketPriorityHigh
	default:
		return TicketPriorityCritical
	}
}

// Rank orders priorities for sorting; unknown values rank lowest.
func (p TicketPriority) Rank() int {
	switch p {
	case TicketPriorityLow:
		return 1
	case TicketPriorityMedium:
		return 2
	case TicketPriorityHigh:
		return 3
	case TicketPriorityCritical:
		return 4
	default:
		return 0
	}
}

// Comment is a dated remark attached to a ticket.
type Comment struct {
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

// Ticket is the aggregate for reported issues. Shared fields are always
// populated; variant fields are meaningful only for the matching Type and
// feed the report formulas. The json tags mirror the command payload keys.
type Ticket struct {
	ID               int            `json:"-"`
	Type             TicketType     `json:"type"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	BusinessPriority TicketPriority `json:"businessPriority"`
	Status           TicketStatus   `json:"-"`
	ExpertiseArea    string         `json:"expertiseArea"`
	ReportedBy       string         `json:"-"`
	AssignedTo       string         `json:"-"`
	CreatedAt        string         `json:"-"`
	AssignedAt       string         `json:"-"`
	SolvedAt         string         `json:"-"`
	ClosedAt         string         `json:"-"`
	Comments         []Comment      `json:"-"`
	Actions          []Action       `json:"-"`

	// BUG
	ExpectedBehavior string `json:"expectedBehavior,omitempty"`
	ActualBehavior   string `json:"actualBehavior,omitempty"`
	Frequency        string `json:"frequency,omitempty"`
	Severity         string `json:"severity,omitempty"`
	Environment      string `json:"environment,omitempty"`
	ErrorCode        *int   `json:"errorCode,omitempty"`

	// FEATURE_REQUEST and UI_FEEDBACK
	BusinessValue  string `json:"businessValue,omitempty"`
	CustomerDemand string `json:"customerDemand,omitempty"`

	// UI_FEEDBACK
	UIElementID    string `json:"uiElementId,omitempty"`
	UsabilityScore int    `json:"usabilityScore,omitempty"`
	ScreenshotURL  string `json:"screenshotUrl,omitempty"`
	SuggestedFix   string `json:"suggestedFix,omitempty"`
}

// AddAction appends an entry to the ticket's history log. Entries are never
// mutated or removed once appended.
func (t *Ticket) AddAction(a Action) {
	t.Actions = append(t.Actions, a)
}
