package engine

import (
	"math"
	"sort"

	"github.com/spec-kit/ticket-simulator/internal/api/dto"
	"github.com/spec-kit/ticket-simulator/internal/domain"
	"github.com/spec-kit/ticket-simulator/internal/rules"
	"github.com/spec-kit/ticket-simulator/pkg/util"
)

// viewTickets lists tickets visible to the user: managers see all, reporters
// their own, developers none. The projected businessPriority is the
// calculated priority at the viewing timestamp.
func (e *Engine) viewTickets(cmd *dto.Command) (any, *util.CommandError) {
	user := e.store.FindUser(cmd.Username)
	if user == nil {
		return nil, nil
	}

	var tickets []*domain.Ticket
	switch user.Role {
	case domain.RoleManager:
		tickets = append(tickets, e.store.Tickets()...)
	case domain.RoleReporter:
		for _, t := range e.store.Tickets() {
			if t.ReportedBy == cmd.Username {
				tickets = append(tickets, t)
			}
		}
	}

	sortByCreation(tickets)

	views := []dto.TicketView{}
	for _, t := range tickets {
		views = append(views, dto.TicketView{
			ID:               t.ID,
			Type:             t.Type,
			Title:            t.Title,
			BusinessPriority: rules.CalculatedPriority(e.store, t, cmd.Timestamp),
			Status:           t.Status,
			ReportedBy:       t.ReportedBy,
			AssignedTo:       t.AssignedTo,
			CreatedAt:        t.CreatedAt,
			AssignedAt:       t.AssignedAt,
			SolvedAt:         t.SolvedAt,
			ClosedAt:         t.ClosedAt,
			Comments:         commentsOrEmpty(t),
		})
	}

	return dto.TicketsRecord{
		Command:   cmd.Command,
		Username:  cmd.Username,
		Timestamp: cmd.Timestamp,
		Tickets:   views,
	}, nil
}

// viewAssignedTickets lists the developer's current tickets, most urgent
// first: calculated priority descending, then creation date, then ID.
func (e *Engine) viewAssignedTickets(cmd *dto.Command) (any, *util.CommandError) {
	var tickets []*domain.Ticket
	for _, t := range e.store.Tickets() {
		if t.AssignedTo == cmd.Username {
			tickets = append(tickets, t)
		}
	}

	priorities := map[int]domain.TicketPriority{}
	for _, t := range tickets {
		priorities[t.ID] = rules.CalculatedPriority(e.store, t, cmd.Timestamp)
	}
	sort.Slice(tickets, func(i, j int) bool {
		pi, pj := priorities[tickets[i].ID].Rank(), priorities[tickets[j].ID].Rank()
		if pi != pj {
			return pi > pj
		}
		if tickets[i].CreatedAt != tickets[j].CreatedAt {
			return tickets[i].CreatedAt < tickets[j].CreatedAt
		}
		return tickets[i].ID < tickets[j].ID
	})

	views := []dto.AssignedTicketView{}
	for _, t := range tickets {
		views = append(views, dto.AssignedTicketView{
			ID:               t.ID,
			Type:             t.Type,
			Title:            t.Title,
			BusinessPriority: priorities[t.ID],
			Status:           t.Status,
			ReportedBy:       t.ReportedBy,
			CreatedAt:        t.CreatedAt,
			AssignedAt:       t.AssignedAt,
			Comments:         commentsOrEmpty(t),
		})
	}

	return dto.AssignedTicketsRecord{
		Command:         cmd.Command,
		Username:        cmd.Username,
		Timestamp:       cmd.Timestamp,
		AssignedTickets: views,
	}, nil
}

// viewMilestones lists milestones the user relates to: managers the ones
// they created, everyone else the ones they are assigned to. Sorted by due
// date, then name.
func (e *Engine) viewMilestones(cmd *dto.Command) (any, *util.CommandError) {
	user := e.store.FindUser(cmd.Username)
	if user == nil {
		return nil, nil
	}

	var milestones []*domain.Milestone
	for _, m := range e.store.Milestones() {
		if user.Role == domain.RoleManager {
			if m.CreatedBy == cmd.Username {
				milestones = append(milestones, m)
			}
		} else if containsString(m.AssignedDevs, cmd.Username) {
			milestones = append(milestones, m)
		}
	}

	sort.Slice(milestones, func(i, j int) bool {
		if milestones[i].DueDate != milestones[j].DueDate {
			return milestones[i].DueDate < milestones[j].DueDate
		}
		return milestones[i].Name < milestones[j].Name
	})

	views := []dto.MilestoneView{}
	for _, m := range milestones {
		views = append(views, e.milestoneView(m, cmd.Timestamp))
	}

	return dto.MilestonesRecord{
		Command:    cmd.Command,
		Username:   cmd.Username,
		Timestamp:  cmd.Timestamp,
		Milestones: views,
	}, nil
}

func (e *Engine) milestoneView(m *domain.Milestone, now string) dto.MilestoneView {
	open := []int{}
	closed := []int{}
	for _, id := range m.Tickets {
		t := e.store.FindTicket(id)
		if t == nil {
			continue
		}
		if t.Status == domain.TicketStatusClosed {
			closed = append(closed, id)
		} else {
			open = append(open, id)
		}
	}

	completion := 0.0
	if total := len(open) + len(closed); total > 0 {
		completion = math.Round(float64(len(closed))/float64(total)*100*100) / 100
	}

	diff := domain.DaysBetween(now, m.DueDate)
	daysUntilDue := diff + 1
	if daysUntilDue < 0 {
		daysUntilDue = 0
	}
	overdueBy := -diff - 1
	if overdueBy < 0 {
		overdueBy = 0
	}

	repartition := []dto.DevRepartition{}
	for _, dev := range m.AssignedDevs {
		devTickets := []int{}
		for _, id := range m.Tickets {
			if t := e.store.FindTicket(id); t != nil && t.AssignedTo == dev {
				devTickets = append(devTickets, id)
			}
		}
		repartition = append(repartition, dto.DevRepartition{
			Developer:       dev,
			AssignedTickets: devTickets,
		})
	}

	return dto.MilestoneView{
		Name:                 m.Name,
		BlockingFor:          m.BlockingFor,
		DueDate:              m.DueDate,
		Tickets:              m.Tickets,
		AssignedDevs:         m.AssignedDevs,
		CreatedAt:            m.CreatedAt,
		CreatedBy:            m.CreatedBy,
		OpenTickets:          open,
		ClosedTickets:        closed,
		CompletionPercentage: completion,
		DaysUntilDue:         daysUntilDue,
		OverdueBy:            overdueBy,
		IsBlocked:            rules.IsBlocked(e.store, m),
		Status:               "ACTIVE",
		Repartition:          repartition,
	}
}

// viewTicketHistory lists full action and comment logs for every ticket the
// user reported, currently holds, or ever acted on.
func (e *Engine) viewTicketHistory(cmd *dto.Command) (any, *util.CommandError) {
	entries := []dto.TicketHistoryEntry{}
	for _, t := range e.store.Tickets() {
		if !relevantTo(t, cmd.Username) {
			continue
		}
		entries = append(entries, dto.TicketHistoryEntry{
			ID:       t.ID,
			Title:    t.Title,
			Status:   t.Status,
			Actions:  actionsOrEmpty(t),
			Comments: commentsOrEmpty(t),
		})
	}

	return dto.TicketHistoryRecord{
		Command:       cmd.Command,
		Username:      cmd.Username,
		Timestamp:     cmd.Timestamp,
		TicketHistory: entries,
	}, nil
}

func relevantTo(t *domain.Ticket, username string) bool {
	if t.ReportedBy == username || t.AssignedTo == username {
		return true
	}
	for _, a := range t.Actions {
		if a.By == username {
			return true
		}
	}
	return false
}

// viewNotifications drains and returns the user's mailbox.
func (e *Engine) viewNotifications(cmd *dto.Command) (any, *util.CommandError) {
	user := e.store.FindUser(cmd.Username)
	if user == nil {
		return nil, nil
	}
	return dto.NotificationsRecord{
		Command:       cmd.Command,
		Username:      cmd.Username,
		Timestamp:     cmd.Timestamp,
		Notifications: user.DrainNotifications(),
	}, nil
}

func sortByCreation(tickets []*domain.Ticket) {
	sort.Slice(tickets, func(i, j int) bool {
		if tickets[i].CreatedAt != tickets[j].CreatedAt {
			return tickets[i].CreatedAt < tickets[j].CreatedAt
		}
		return tickets[i].ID < tickets[j].ID
	})
}

func commentsOrEmpty(t *domain.Ticket) []domain.Comment {
	if t.Comments == nil {
		return []domain.Comment{}
	}
	return t.Comments
}

func actionsOrEmpty(t *domain.Ticket) []domain.Action {
	if t.Actions == nil {
		return []domain.Action{}
	}
	return t.Actions
}
