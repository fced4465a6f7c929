package rules

import (
	"testing"

	"github.com/spec-kit/ticket-simulator/internal/domain"
)

func TestRequiredExpertise(t *testing.T) {
	tests := []struct {
		area string
		want []domain.Expertise
	}{
		{"FRONTEND", []domain.Expertise{domain.ExpertiseFrontend, domain.ExpertiseFullstack, domain.ExpertiseDesign}},
		{"BACKEND", []domain.Expertise{domain.ExpertiseBackend, domain.ExpertiseFullstack}},
		{"DEVOPS", []domain.Expertise{domain.ExpertiseDevops, domain.ExpertiseFullstack}},
		{"DESIGN", []domain.Expertise{domain.ExpertiseDesign, domain.ExpertiseFrontend, domain.ExpertiseFullstack}},
		{"DB", []domain.Expertise{domain.ExpertiseBackend, domain.ExpertiseDB, domain.ExpertiseFullstack}},
		{"", []domain.Expertise{domain.ExpertiseFullstack}},
		{"UNKNOWN", []domain.Expertise{domain.ExpertiseFullstack}},
	}
	for _, tt := range tests {
		got := RequiredExpertise(tt.area)
		if len(got) != len(tt.want) {
			t.Errorf("RequiredExpertise(%q) = %v, want %v", tt.area, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("RequiredExpertise(%q)[%d] = %v, want %v", tt.area, i, got[i], tt.want[i])
			}
		}
	}
}

func TestRequiredSeniorities(t *testing.T) {
	tests := []struct {
		name     string
		ticket   domain.TicketType
		priority domain.TicketPriority
		want     []domain.Seniority
	}{
		{"critical feature", domain.TicketTypeFeatureRequest, domain.TicketPriorityCritical, []domain.Seniority{domain.SenioritySenior}},
		{"low feature skips juniors", domain.TicketTypeFeatureRequest, domain.TicketPriorityLow, []domain.Seniority{domain.SeniorityMid, domain.SenioritySenior}},
		{"critical bug", domain.TicketTypeBug, domain.TicketPriorityCritical, []domain.Seniority{domain.SenioritySenior}},
		{"high bug", domain.TicketTypeBug, domain.TicketPriorityHigh, []domain.Seniority{domain.SeniorityMid, domain.SenioritySenior}},
		{"medium ui", domain.TicketTypeUIFeedback, domain.TicketPriorityMedium, []domain.Seniority{domain.SeniorityJunior, domain.SeniorityMid, domain.SenioritySenior}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RequiredSeniorities(tt.ticket, tt.priority)
			if len(got) != len(tt.want) {
				t.Fatalf("RequiredSeniorities(%v, %v) = %v, want %v", tt.ticket, tt.priority, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("RequiredSeniorities(%v, %v)[%d] = %v, want %v", tt.ticket, tt.priority, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestHasExpertise(t *testing.T) {
	set := RequiredExpertise("BACKEND")
	if !HasExpertise(set, domain.ExpertiseFullstack) {
		t.Error("FULLSTACK should satisfy BACKEND tickets")
	}
	if HasExpertise(set, domain.ExpertiseFrontend) {
		t.Error("FRONTEND should not satisfy BACKEND tickets")
	}
}

func TestHasSeniority(t *testing.T) {
	set := RequiredSeniorities(domain.TicketTypeBug, domain.TicketPriorityHigh)
	if HasSeniority(set, domain.SeniorityJunior) {
		t.Error("JUNIOR should not take HIGH priority bugs")
	}
	if !HasSeniority(set, domain.SenioritySenior) {
		t.Error("SENIOR should take HIGH priority bugs")
	}
}
