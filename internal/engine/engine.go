// Package engine replays command batches against a store. Commands are
// dispatched by name; each handler either mutates state, emits an output
// record, or rejects the command with a flat error record. Unknown command
// names are skipped.
package engine

import (
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-simulator/internal/api/dto"
	"github.com/spec-kit/ticket-simulator/internal/domain"
	"github.com/spec-kit/ticket-simulator/internal/observability"
	"github.com/spec-kit/ticket-simulator/internal/repository"
	"github.com/spec-kit/ticket-simulator/pkg/util"
)

// handlerFunc executes one command. A non-nil record is appended to the
// output; a non-nil error becomes a flat error record instead.
type handlerFunc func(cmd *dto.Command) (any, *util.CommandError)

// Dependencies bundles what the engine needs to run.
type Dependencies struct {
	Store   *repository.Store
	Logger  *zap.Logger
	Metrics *observability.Metrics
}

// Engine replays command batches deterministically: same roster and same
// command sequence produce the same output sequence.
type Engine struct {
	store    *repository.Store
	logger   *zap.Logger
	metrics  *observability.Metrics
	handlers map[string]handlerFunc
}

// New constructs an engine around the given store.
func New(deps Dependencies) *Engine {
	e := &Engine{
		store:   deps.Store,
		logger:  deps.Logger,
		metrics: deps.Metrics,
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	e.handlers = map[string]handlerFunc{
		"reportTicket":                       e.reportTicket,
		"viewTickets":                        e.viewTickets,
		"createMilestone":                    e.createMilestone,
		"viewMilestones":                     e.viewMilestones,
		"assignTicket":                       e.assignTicket,
		"undoAssignTicket":                   e.undoAssignTicket,
		"addComment":                         e.addComment,
		"undoAddComment":                     e.undoAddComment,
		"viewAssignedTickets":                e.viewAssignedTickets,
		"changeStatus":                       e.changeStatus,
		"undoChangeStatus":                   e.undoChangeStatus,
		"viewTicketHistory":                  e.viewTicketHistory,
		"viewNotifications":                  e.viewNotifications,
		"search":                             e.search,
		"startTestingPhase":                  e.startTestingPhase,
		"generateTicketRiskReport":           e.generateTicketRiskReport,
		"generateCustomerImpactReport":       e.generateCustomerImpactReport,
		"generateResolutionEfficiencyReport": e.generateResolutionEfficiencyReport,
		"generatePerformanceReport":          e.generatePerformanceReport,
		"appStabilityReport":                 e.appStabilityReport,
		"lostInvestors":                      e.lostInvestors,
	}
	return e
}

// Run replays the batch in order and returns the output records. Malformed
// envelopes and unknown command names are logged and skipped.
func (e *Engine) Run(commands []json.RawMessage) []any {
	log := e.logger.With(zap.String("run_id", uuid.NewString()))
	outputs := []any{}

	for i, raw := range commands {
		var cmd dto.Command
		if err := json.Unmarshal(raw, &cmd); err != nil {
			log.Warn("skipping malformed command", zap.Int("index", i), zap.Error(err))
			continue
		}
		cmd.Raw = raw

		handler, ok := e.handlers[cmd.Command]
		if !ok {
			log.Debug("skipping unknown command", zap.String("command", cmd.Command))
			continue
		}

		record, cmdErr := handler(&cmd)
		e.metrics.RecordCommand(cmd.Command, cmdErr != nil)

		if cmdErr != nil {
			log.Debug("command rejected",
				zap.String("command", cmd.Command),
				zap.String("username", cmd.Username),
				zap.String("kind", string(cmdErr.Kind)),
				zap.String("reason", cmdErr.Message))
			outputs = append(outputs, dto.ErrorRecord{
				Command:   cmd.Command,
				Username:  cmd.Username,
				Timestamp: cmd.Timestamp,
				Error:     cmdErr.Message,
			})
			continue
		}
		if record != nil {
			outputs = append(outputs, record)
		}
	}
	return outputs
}

func roleName(user *domain.User) string {
	if user == nil {
		return "null"
	}
	return string(user.Role)
}

// managerRequired is the uniform denial for manager-only commands. The
// message omits the username on purpose.
func managerRequired(user *domain.User) *util.CommandError {
	return util.NewPermissionDenied(
		"The user does not have permission to execute this command: required role MANAGER; user role %s.",
		roleName(user))
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
