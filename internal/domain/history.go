package domain

// ActionKind enumerates history entry kinds.
type ActionKind string

const (
	ActionAssigned         ActionKind = "ASSIGNED"
	ActionDeassigned       ActionKind = "DE-ASSIGNED"
	ActionStatusChanged    ActionKind = "STATUS_CHANGED"
	ActionAddedToMilestone ActionKind = "ADDED_TO_MILESTONE"
)

// Action is one append-only ticket history entry. From/To are set for
// STATUS_CHANGED entries, Milestone for ADDED_TO_MILESTONE entries.
type Action struct {
	Action    ActionKind `json:"action"`
	From      string     `json:"from,omitempty"`
	To        string     `json:"to,omitempty"`
	Milestone string     `json:"milestone,omitempty"`
	By        string     `json:"by"`
	Timestamp string     `json:"timestamp"`
}
