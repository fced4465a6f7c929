package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spec-kit/ticket-simulator/internal/api/dto"
	"github.com/spec-kit/ticket-simulator/internal/domain"
	"github.com/spec-kit/ticket-simulator/internal/rules"
	"github.com/spec-kit/ticket-simulator/pkg/util"
)

// assignTicket lets a developer take an OPEN ticket from one of their
// milestones. Validation order matters: ticket existence, expertise,
// seniority at the current calculated priority, status, milestone membership,
// milestone blocking. A non-developer actor is a silent no-op.
func (e *Engine) assignTicket(cmd *dto.Command) (any, *util.CommandError) {
	t := e.store.FindTicket(cmd.TicketID)
	if t == nil {
		return nil, util.NewNotFound("Ticket %d not found.", cmd.TicketID)
	}

	user := e.store.FindUser(cmd.Username)
	if user == nil || user.Role != domain.RoleDeveloper {
		return nil, nil
	}

	reqExp := rules.RequiredExpertise(t.ExpertiseArea)
	if !rules.HasExpertise(reqExp, user.ExpertiseArea) {
		return nil, util.NewValidationFailed(
			"Developer %s cannot assign ticket %d due to expertise area. Required: %s; Current: %s.",
			cmd.Username, cmd.TicketID, joinSortedExpertise(reqExp), user.ExpertiseArea)
	}

	currentPriority := rules.CalculatedPriority(e.store, t, cmd.Timestamp)
	reqSen := rules.RequiredSeniorities(t.Type, currentPriority)
	if !rules.HasSeniority(reqSen, user.Seniority) {
		return nil, util.NewValidationFailed(
			"Developer %s cannot assign ticket %d due to seniority level. Required: %s; Current: %s.",
			cmd.Username, cmd.TicketID, joinSortedSeniorities(reqSen), user.Seniority)
	}

	if t.Status != domain.TicketStatusOpen {
		return nil, util.NewStateConflict("Only OPEN tickets can be assigned.")
	}

	m := e.store.FindMilestoneForTicket(t.ID)
	if m == nil || !containsString(m.AssignedDevs, cmd.Username) {
		name := "Unknown"
		if m != nil {
			name = m.Name
		}
		return nil, util.NewValidationFailed("Developer %s is not assigned to milestone %s.", cmd.Username, name)
	}
	if rules.IsBlocked(e.store, m) {
		return nil, util.NewStateConflict("Cannot assign ticket %d from blocked milestone %s.", t.ID, m.Name)
	}

	oldStatus := t.Status
	t.Status = domain.TicketStatusInProgress
	t.AssignedTo = cmd.Username
	t.AssignedAt = cmd.Timestamp
	t.AddAction(domain.Action{
		Action:    domain.ActionAssigned,
		By:        cmd.Username,
		Timestamp: cmd.Timestamp,
	})
	t.AddAction(domain.Action{
		Action:    domain.ActionStatusChanged,
		From:      string(oldStatus),
		To:        string(t.Status),
		By:        cmd.Username,
		Timestamp: cmd.Timestamp,
	})

	user.Notify(fmt.Sprintf("Ticket %d has been assigned to you.", t.ID))
	return nil, nil
}

// undoAssignTicket returns an IN_PROGRESS ticket to the pool.
func (e *Engine) undoAssignTicket(cmd *dto.Command) (any, *util.CommandError) {
	t := e.store.FindTicket(cmd.TicketID)
	if t == nil {
		return nil, nil
	}
	if t.Status != domain.TicketStatusInProgress {
		return nil, util.NewStateConflict("The ticket must be in IN_PROGRESS state to be de-assigned.")
	}

	t.AddAction(domain.Action{
		Action:    domain.ActionDeassigned,
		By:        cmd.Username,
		Timestamp: cmd.Timestamp,
	})
	t.Status = domain.TicketStatusOpen
	t.AssignedTo = ""
	t.AssignedAt = ""
	return nil, nil
}

func joinSortedExpertise(set []domain.Expertise) string {
	names := make([]string, len(set))
	for i, e := range set {
		names[i] = string(e)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func joinSortedSeniorities(set []domain.Seniority) string {
	names := make([]string, len(set))
	for i, s := range set {
		names[i] = string(s)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
