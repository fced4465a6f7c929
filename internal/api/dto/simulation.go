package dto

import (
	"encoding/json"

	"github.com/spec-kit/ticket-simulator/internal/domain"
)

// SimulationRequest is the POST /simulations body: a roster plus the command
// batch to replay against a fresh store.
type SimulationRequest struct {
	Users    []*domain.User    `json:"users"`
	Commands []json.RawMessage `json:"commands"`
}

// SimulationResponse wraps the replay output records.
type SimulationResponse struct {
	Output []any `json:"output"`
}
