package domain

// Milestone groups tickets under a due date. Milestones are created by
// managers and never mutated afterwards; their progress is derived from the
// contained tickets' statuses. BlockingFor names milestones this one blocks
// until all of its own tickets are closed.
type Milestone struct {
	Name         string   `json:"name"`
	BlockingFor  []string `json:"blockingFor"`
	DueDate      string   `json:"dueDate"`
	Tickets      []int    `json:"tickets"`
	AssignedDevs []string `json:"assignedDevs"`
	CreatedAt    string   `json:"createdAt"`
	CreatedBy    string   `json:"createdBy"`
}

// Contains reports whether the milestone lists the given ticket ID.
func (m *Milestone) Contains(ticketID int) bool {
	for _, id := range m.Tickets {
		if id == ticketID {
			return true
		}
	}
	return false
}
