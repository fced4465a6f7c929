package engine

import (
	"fmt"

	"github.com/spec-kit/ticket-simulator/internal/api/dto"
	"github.com/spec-kit/ticket-simulator/internal/domain"
	"github.com/spec-kit/ticket-simulator/pkg/util"
)

// addComment attaches a comment and notifies the counterpart: the assignee
// when a reporter comments, the reporter when a developer comments.
// Validation order: anonymity, length, then role-specific rules.
func (e *Engine) addComment(cmd *dto.Command) (any, *util.CommandError) {
	t := e.store.FindTicket(cmd.TicketID)
	if t == nil {
		return nil, nil
	}
	user := e.store.FindUser(cmd.Username)
	if user == nil {
		return nil, nil
	}

	if t.ReportedBy == "" {
		return nil, util.NewValidationFailed("Comments are not allowed on anonymous tickets.")
	}
	if len(cmd.Comment) < 10 {
		return nil, util.NewValidationFailed("Comment must be at least 10 characters long.")
	}

	switch user.Role {
	case domain.RoleReporter:
		if t.Status == domain.TicketStatusClosed {
			return nil, util.NewStateConflict("Reporters cannot comment on CLOSED tickets.")
		}
		if t.ReportedBy != cmd.Username {
			return nil, util.NewPermissionDenied("Reporter %s cannot comment on ticket %d.", cmd.Username, cmd.TicketID)
		}
	case domain.RoleDeveloper:
		if t.AssignedTo != cmd.Username {
			return nil, util.NewPermissionDenied("Ticket %d is not assigned to the developer %s.", cmd.TicketID, cmd.Username)
		}
	}

	t.Comments = append(t.Comments, domain.Comment{
		Author:    cmd.Username,
		Content:   cmd.Comment,
		CreatedAt: cmd.Timestamp,
	})

	target := t.AssignedTo
	if user.Role == domain.RoleDeveloper {
		target = t.ReportedBy
	}
	if target != "" {
		if counterpart := e.store.FindUser(target); counterpart != nil {
			counterpart.Notify(fmt.Sprintf("New comment on ticket %d", t.ID))
		}
	}
	return nil, nil
}

// undoAddComment removes the author's most recent comment, scanning from the
// end. No comment by the author is a silent no-op.
func (e *Engine) undoAddComment(cmd *dto.Command) (any, *util.CommandError) {
	t := e.store.FindTicket(cmd.TicketID)
	if t == nil {
		return nil, nil
	}
	if t.ReportedBy == "" {
		return nil, util.NewValidationFailed("Cannot remove comment from an anonymous ticket.")
	}

	for i := len(t.Comments) - 1; i >= 0; i-- {
		if t.Comments[i].Author == cmd.Username {
			t.Comments = append(t.Comments[:i], t.Comments[i+1:]...)
			return nil, nil
		}
	}
	return nil, nil
}
