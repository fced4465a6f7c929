package engine

import (
	"github.com/spec-kit/ticket-simulator/internal/api/dto"
	"github.com/spec-kit/ticket-simulator/internal/domain"
	"github.com/spec-kit/ticket-simulator/internal/report"
	"github.com/spec-kit/ticket-simulator/pkg/util"
)

// generateTicketRiskReport is manager-only; an unknown user gets a distinct
// not-found error rather than the permission denial.
func (e *Engine) generateTicketRiskReport(cmd *dto.Command) (any, *util.CommandError) {
	user := e.store.FindUser(cmd.Username)
	if user == nil {
		return nil, util.NewNotFound("User not found.")
	}
	if user.Role != domain.RoleManager {
		return nil, managerRequired(user)
	}
	return e.reportRecord(cmd, report.Risk(e.store)), nil
}

func (e *Engine) generateCustomerImpactReport(cmd *dto.Command) (any, *util.CommandError) {
	user := e.store.FindUser(cmd.Username)
	if user == nil || user.Role != domain.RoleManager {
		return nil, managerRequired(user)
	}
	return e.reportRecord(cmd, report.CustomerImpact(e.store)), nil
}

func (e *Engine) generateResolutionEfficiencyReport(cmd *dto.Command) (any, *util.CommandError) {
	user := e.store.FindUser(cmd.Username)
	if user == nil || user.Role != domain.RoleManager {
		return nil, managerRequired(user)
	}
	return e.reportRecord(cmd, report.ResolutionEfficiency(e.store)), nil
}

// generatePerformanceReport scores the manager's subordinate developers over
// the previous calendar month.
func (e *Engine) generatePerformanceReport(cmd *dto.Command) (any, *util.CommandError) {
	user := e.store.FindUser(cmd.Username)
	if user == nil || user.Role != domain.RoleManager {
		return nil, managerRequired(user)
	}
	return e.reportRecord(cmd, report.Performance(e.store, user, cmd.Timestamp)), nil
}

// appStabilityReport renders the combined risk and impact verdict. A STABLE
// verdict marks the run closed.
func (e *Engine) appStabilityReport(cmd *dto.Command) (any, *util.CommandError) {
	user := e.store.FindUser(cmd.Username)
	if user == nil || user.Role != domain.RoleManager {
		return nil, managerRequired(user)
	}
	return e.reportRecord(cmd, report.Stability(e.store)), nil
}

// lostInvestors ends the run with no output.
func (e *Engine) lostInvestors(cmd *dto.Command) (any, *util.CommandError) {
	e.store.Close()
	return nil, nil
}

func (e *Engine) reportRecord(cmd *dto.Command, body any) dto.ReportRecord {
	return dto.ReportRecord{
		Command:   cmd.Command,
		Username:  cmd.Username,
		Timestamp: cmd.Timestamp,
		Report:    body,
	}
}
