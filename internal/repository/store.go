package repository

import (
	"github.com/spec-kit/ticket-simulator/internal/domain"
)

// Store owns all canonical state for one simulation run: the user roster,
// tickets, milestones, the sequential ticket ID counter and the testing-phase
// anchors. It is not safe for concurrent use; each run gets its own instance
// (or an explicit Reset between batches).
type Store struct {
	users      []*domain.User
	tickets    []*domain.Ticket
	milestones []*domain.Milestone

	ticketIDCounter   int
	appStartDate      string
	testingPhaseStart string
	closed            bool
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Reset clears every collection, the ID counter and the time windows so a new
// batch starts from a clean slate.
func (s *Store) Reset() {
	s.users = nil
	s.tickets = nil
	s.milestones = nil
	s.ticketIDCounter = 0
	s.appStartDate = ""
	s.testingPhaseStart = ""
	s.closed = false
}

// SetUsers installs the roster for this run.
func (s *Store) SetUsers(users []*domain.User) {
	s.users = users
}

// Users returns the full roster.
func (s *Store) Users() []*domain.User {
	return s.users
}

// FindUser returns the user with the given username, or nil.
func (s *Store) FindUser(username string) *domain.User {
	for _, u := range s.users {
		if u.Username == username {
			return u
		}
	}
	return nil
}

// AddTicket assigns the next sequential ID to the ticket and stores it.
// IDs start at 0 and are never reused within a store lifetime.
func (s *Store) AddTicket(t *domain.Ticket) {
	t.ID = s.ticketIDCounter
	s.ticketIDCounter++
	s.tickets = append(s.tickets, t)
}

// Tickets returns all tickets in creation order.
func (s *Store) Tickets() []*domain.Ticket {
	return s.tickets
}

// FindTicket returns the ticket with the given ID, or nil.
func (s *Store) FindTicket(id int) *domain.Ticket {
	for _, t := range s.tickets {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// AddMilestone stores a milestone.
func (s *Store) AddMilestone(m *domain.Milestone) {
	s.milestones = append(s.milestones, m)
}

// Milestones returns all milestones in creation order.
func (s *Store) Milestones() []*domain.Milestone {
	return s.milestones
}

// FindMilestoneForTicket returns the first milestone containing the ticket
// ID, or nil. A ticket belongs to at most one milestone.
func (s *Store) FindMilestoneForTicket(ticketID int) *domain.Milestone {
	for _, m := range s.milestones {
		if m.Contains(ticketID) {
			return m
		}
	}
	return nil
}

// AppStartDate returns the date of the first reported ticket, or empty.
func (s *Store) AppStartDate() string {
	return s.appStartDate
}

// SetAppStartDate anchors the initial testing window. Only the first call
// per run has effect.
func (s *Store) SetAppStartDate(date string) {
	if s.appStartDate == "" {
		s.appStartDate = date
	}
}

// StartTestingPhase anchors a new explicit testing window at the given date.
func (s *Store) StartTestingPhase(date string) {
	s.testingPhaseStart = date
}

// TestingPhaseStart returns the most recent explicit testing-phase anchor,
// or empty.
func (s *Store) TestingPhaseStart() string {
	return s.testingPhaseStart
}

// Close marks the run as closed. The flag is informational; command
// processing continues regardless.
func (s *Store) Close() {
	s.closed = true
}

// Closed reports whether the run has been marked closed.
func (s *Store) Closed() bool {
	return s.closed
}
