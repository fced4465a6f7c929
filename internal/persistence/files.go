// Package persistence reads simulation inputs and writes replay outputs as
// JSON files.
package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spec-kit/ticket-simulator/internal/domain"
)

// LoadUsers reads the roster file. A missing file yields an empty roster, so
// a run without seeded users still replays (every user lookup misses).
func LoadUsers(path string) ([]*domain.User, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read users file: %w", err)
	}
	var users []*domain.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parse users file: %w", err)
	}
	return users, nil
}

// LoadCommands reads the input batch, keeping each command envelope raw for
// the engine to decode.
func LoadCommands(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read commands file: %w", err)
	}
	var commands []json.RawMessage
	if err := json.Unmarshal(data, &commands); err != nil {
		return nil, fmt.Errorf("parse commands file: %w", err)
	}
	return commands, nil
}

// WriteOutput writes the replay records as a pretty-printed JSON array,
// creating parent directories as needed.
func WriteOutput(path string, outputs []any) error {
	if outputs == nil {
		outputs = []any{}
	}
	data, err := json.MarshalIndent(outputs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}
