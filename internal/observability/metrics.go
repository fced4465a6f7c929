package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters for replayed commands and HTTP
// traffic. A nil receiver is a no-op so callers never have to guard.
type Metrics struct {
	mu            sync.Mutex
	commandCount  map[string]int64
	commandErrors map[string]int64
	requestCount  map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		commandCount:  make(map[string]int64),
		commandErrors: make(map[string]int64),
		requestCount:  make(map[string]int64),
	}
}

// RecordCommand increments the replay counter for one command, and the error
// counter when the command was rejected.
func (m *Metrics) RecordCommand(name string, errored bool) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commandCount[name]++
	if errored {
		m.commandErrors[name]++
	}
}

// CommandCount returns how many times the command has been replayed.
func (m *Metrics) CommandCount(name string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commandCount[name]
}

// CommandErrors returns how many replays of the command were rejected.
func (m *Metrics) CommandErrors(name string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commandErrors[name]
}

// RecordRequest increments counters for HTTP requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + strconv.Itoa(status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
}
