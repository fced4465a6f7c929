package engine

import (
	"encoding/json"

	"github.com/spec-kit/ticket-simulator/internal/api/dto"
	"github.com/spec-kit/ticket-simulator/internal/search"
	"github.com/spec-kit/ticket-simulator/pkg/util"
)

// search dispatches to the ticket or developer query by searchType,
// defaulting to TICKET.
func (e *Engine) search(cmd *dto.Command) (any, *util.CommandError) {
	var filters dto.SearchFilters
	if len(cmd.Filters) > 0 {
		if err := json.Unmarshal(cmd.Filters, &filters); err != nil {
			return nil, nil
		}
	}

	searchType := filters.SearchType
	if searchType == "" {
		searchType = "TICKET"
	}

	var results any
	if searchType == "DEVELOPER" {
		results = search.Developers(e.store, filters)
	} else {
		results = search.Tickets(e.store, cmd.Username, filters, cmd.Timestamp)
	}

	return dto.SearchRecord{
		Command:    cmd.Command,
		Username:   cmd.Username,
		Timestamp:  cmd.Timestamp,
		SearchType: searchType,
		Results:    results,
	}, nil
}
