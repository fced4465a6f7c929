package engine

import (
	"fmt"

	"github.com/spec-kit/ticket-simulator/internal/api/dto"
	"github.com/spec-kit/ticket-simulator/internal/domain"
	"github.com/spec-kit/ticket-simulator/internal/rules"
	"github.com/spec-kit/ticket-simulator/pkg/util"
)

// createMilestone registers a milestone over not-yet-grouped tickets,
// stamps the contained tickets' history and notifies the assigned
// developers. An unknown actor proceeds; a known non-manager is rejected.
func (e *Engine) createMilestone(cmd *dto.Command) (any, *util.CommandError) {
	user := e.store.FindUser(cmd.Username)
	if user != nil && user.Role != domain.RoleManager {
		return nil, util.NewPermissionDenied(
			"The user does not have permission to execute this command: required role MANAGER; user role %s.",
			user.Role)
	}

	m := &domain.Milestone{
		Name:         cmd.Name,
		BlockingFor:  cmd.BlockingFor,
		DueDate:      cmd.DueDate,
		Tickets:      cmd.Tickets,
		AssignedDevs: cmd.AssignedDevs,
		CreatedAt:    cmd.Timestamp,
		CreatedBy:    cmd.Username,
	}

	for _, id := range m.Tickets {
		if existing := e.store.FindMilestoneForTicket(id); existing != nil {
			return nil, util.NewStateConflict("Tickets %d already assigned to milestone %s.", id, existing.Name)
		}
	}

	e.store.AddMilestone(m)

	for _, id := range m.Tickets {
		if t := e.store.FindTicket(id); t != nil {
			t.AddAction(domain.Action{
				Action:    domain.ActionAddedToMilestone,
				Milestone: m.Name,
				By:        cmd.Username,
				Timestamp: cmd.Timestamp,
			})
		}
	}
	for _, dev := range m.AssignedDevs {
		if u := e.store.FindUser(dev); u != nil {
			u.Notify(fmt.Sprintf("You have been assigned to milestone %s.", m.Name))
		}
	}
	return nil, nil
}

// startTestingPhase opens a fresh reporting window. Non-managers are skipped
// silently; unfinished milestones block the new phase.
func (e *Engine) startTestingPhase(cmd *dto.Command) (any, *util.CommandError) {
	user := e.store.FindUser(cmd.Username)
	if user == nil || user.Role != domain.RoleManager {
		return nil, nil
	}
	for _, m := range e.store.Milestones() {
		if !rules.IsFinished(e.store, m) {
			return nil, util.NewStateConflict("Cannot start a new testing phase while there are active milestones.")
		}
	}
	e.store.StartTestingPhase(cmd.Timestamp)
	return nil, nil
}
