package engine

import (
	"github.com/spec-kit/ticket-simulator/internal/api/dto"
	"github.com/spec-kit/ticket-simulator/internal/domain"
	"github.com/spec-kit/ticket-simulator/pkg/util"
)

// changeStatus advances the assignee's ticket one lifecycle step:
// IN_PROGRESS to RESOLVED, RESOLVED to CLOSED. Other states are no-ops; a
// CLOSED ticket is skipped silently.
func (e *Engine) changeStatus(cmd *dto.Command) (any, *util.CommandError) {
	t := e.store.FindTicket(cmd.TicketID)
	if t == nil {
		return nil, nil
	}
	if t.Status == domain.TicketStatusClosed {
		return nil, nil
	}
	if t.AssignedTo != cmd.Username {
		return nil, util.NewPermissionDenied("Ticket %d is not assigned to developer %s.", cmd.TicketID, cmd.Username)
	}

	oldStatus := t.Status
	switch oldStatus {
	case domain.TicketStatusInProgress:
		t.Status = domain.TicketStatusResolved
		t.SolvedAt = cmd.Timestamp
	case domain.TicketStatusResolved:
		t.Status = domain.TicketStatusClosed
		t.ClosedAt = cmd.Timestamp
	default:
		return nil, nil
	}

	t.AddAction(domain.Action{
		Action:    domain.ActionStatusChanged,
		From:      string(oldStatus),
		To:        string(t.Status),
		By:        cmd.Username,
		Timestamp: cmd.Timestamp,
	})
	return nil, nil
}

// undoChangeStatus steps the assignee's ticket one state back. Stepping out
// of IN_PROGRESS de-assigns the developer instead of recording a status
// change.
func (e *Engine) undoChangeStatus(cmd *dto.Command) (any, *util.CommandError) {
	t := e.store.FindTicket(cmd.TicketID)
	if t == nil {
		return nil, nil
	}
	if t.AssignedTo != cmd.Username {
		return nil, util.NewPermissionDenied("Ticket %d is not assigned to developer %s.", cmd.TicketID, cmd.Username)
	}

	oldStatus := t.Status
	switch oldStatus {
	case domain.TicketStatusClosed:
		t.Status = domain.TicketStatusResolved
		t.ClosedAt = ""
	case domain.TicketStatusResolved:
		t.Status = domain.TicketStatusInProgress
		t.SolvedAt = ""
	case domain.TicketStatusInProgress:
		t.Status = domain.TicketStatusOpen
		t.AssignedTo = ""
		t.AssignedAt = ""
		t.AddAction(domain.Action{
			Action:    domain.ActionDeassigned,
			By:        cmd.Username,
			Timestamp: cmd.Timestamp,
		})
		return nil, nil
	default:
		return nil, nil
	}

	t.AddAction(domain.Action{
		Action:    domain.ActionStatusChanged,
		From:      string(oldStatus),
		To:        string(t.Status),
		By:        cmd.Username,
		Timestamp: cmd.Timestamp,
	})
	return nil, nil
}
