package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-simulator/internal/api/dto"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	h := NewSimulationsHandler(nil, nil)
	app.Post("/simulations", h.Run)
	return app
}

func TestSimulationsRunReplaysBatch(t *testing.T) {
	app := newTestApp()
	body := `{
		"users": [
			{"username":"bob","role":"REPORTER"},
			{"username":"mia","role":"MANAGER"}
		],
		"commands": [
			{"command":"reportTicket","username":"bob","timestamp":"2024-01-01","params":{"username":"bob","type":"BUG","title":"Login crash"}},
			{"command":"viewTickets","username":"mia","timestamp":"2024-01-02"}
		]
	}`

	req := httptest.NewRequest("POST", "/simulations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	var out struct {
		Output []json.RawMessage `json:"output"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out.Output) != 1 {
		t.Fatalf("output = %d records, want 1", len(out.Output))
	}

	var rec dto.TicketsRecord
	if err := json.Unmarshal(out.Output[0], &rec); err != nil {
		t.Fatal(err)
	}
	if rec.Command != "viewTickets" || len(rec.Tickets) != 1 || rec.Tickets[0].Title != "Login crash" {
		t.Errorf("record = %+v", rec)
	}
}

func TestSimulationsRunIsolatesRequests(t *testing.T) {
	app := newTestApp()
	body := `{
		"users": [{"username":"bob","role":"REPORTER"},{"username":"mia","role":"MANAGER"}],
		"commands": [
			{"command":"reportTicket","username":"bob","timestamp":"2024-01-01","params":{"username":"bob","type":"BUG","title":"first"}},
			{"command":"viewTickets","username":"mia","timestamp":"2024-01-02"}
		]
	}`

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/simulations", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		raw, _ := io.ReadAll(resp.Body)
		var out struct {
			Output []struct {
				Tickets []struct {
					ID int `json:"id"`
				} `json:"tickets"`
			} `json:"output"`
		}
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatal(err)
		}
		// a fresh store per request: the ticket counter restarts at 0
		if len(out.Output) != 1 || len(out.Output[0].Tickets) != 1 || out.Output[0].Tickets[0].ID != 0 {
			t.Errorf("request %d output = %+v", i, out.Output)
		}
	}
}

func TestSimulationsRunRejectsBadPayload(t *testing.T) {
	app := newTestApp()
	req := httptest.NewRequest("POST", "/simulations", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHealthLive(t *testing.T) {
	app := fiber.New()
	h := NewHealthHandler("ticket-simulator", "1.0.0")
	app.Get("/health/live", h.Live)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/live", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	raw, _ := io.ReadAll(resp.Body)
	var body map[string]string
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "alive" || body["service"] != "ticket-simulator" {
		t.Errorf("body = %+v", body)
	}
}
