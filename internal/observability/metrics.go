package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics counts outbound backend calls and their failure codes in memory.
type Metrics struct {
	mu           sync.Mutex
	callCount    map[string]int64
	failureCount map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		callCount:    make(map[string]int64),
		failureCount: make(map[string]int64),
	}
}

// RecordCall increments the counter for a completed backend call. Status 0
// means no response was received.
func (m *Metrics) RecordCall(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + strconv.Itoa(status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount[key]++
}

// RecordFailure increments the counter for a classified failure code.
func (m *Metrics) RecordFailure(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failureCount[key]++
}

// Snapshot copies the counters for the debug endpoint.
func (m *Metrics) Snapshot() (calls, failures map[string]int64) {
	calls = make(map[string]int64)
	failures = make(map[string]int64)
	if m == nil {
		return calls, failures
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range m.callCount {
		calls[k] = v
	}
	for k, v := range m.failureCount {
		failures[k] = v
	}
	return calls, failures
}
