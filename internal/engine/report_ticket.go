package engine

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-simulator/internal/api/dto"
	"github.com/spec-kit/ticket-simulator/internal/domain"
	"github.com/spec-kit/ticket-simulator/internal/rules"
	"github.com/spec-kit/ticket-simulator/pkg/util"
)

// reportTicket creates a ticket from the command payload. The very first
// reportTicket anchors the app start date, before any validation, so even a
// rejected report opens the initial testing window.
func (e *Engine) reportTicket(cmd *dto.Command) (any, *util.CommandError) {
	e.store.SetAppStartDate(cmd.Timestamp)

	user := e.store.FindUser(cmd.Username)
	if user == nil {
		return nil, util.NewNotFound("The user %s does not exist.", cmd.Username)
	}
	if user.Role != domain.RoleReporter {
		return nil, util.NewPermissionDenied(
			"The user %s does not have permission to execute this command: required role REPORTER; user role %s",
			cmd.Username, user.Role)
	}
	if !rules.InTestingWindow(e.store, cmd.Timestamp) {
		return nil, util.NewStateConflict("Tickets can only be reported during testing phases.")
	}

	// Ticket fields arrive either nested under params or inline on the
	// envelope.
	payload := cmd.Raw
	if len(cmd.Params) > 0 {
		payload = cmd.Params
	}

	var ticket domain.Ticket
	if err := json.Unmarshal(payload, &ticket); err != nil {
		e.logger.Warn("skipping unreadable ticket payload", zap.Error(err))
		return nil, nil
	}

	// The reporter is the payload's own username key; its absence marks the
	// ticket anonymous.
	var reporter struct {
		Username string `json:"username"`
	}
	_ = json.Unmarshal(payload, &reporter)
	ticket.ReportedBy = reporter.Username

	if ticket.ReportedBy == "" {
		if ticket.Type != domain.TicketTypeBug {
			return nil, util.NewValidationFailed("Anonymous reports are only allowed for tickets of type BUG.")
		}
		ticket.BusinessPriority = domain.TicketPriorityLow
	}

	ticket.Status = domain.TicketStatusOpen
	ticket.CreatedAt = cmd.Timestamp
	ticket.Comments = []domain.Comment{}
	ticket.Actions = []domain.Action{}
	e.store.AddTicket(&ticket)
	return nil, nil
}
