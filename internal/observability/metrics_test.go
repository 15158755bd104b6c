package observability

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/api/v1/tickets", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/api/v1/tickets", "GET", 200, 30*time.Millisecond)
	m.RecordError("/api/v1/tickets/:id", "GET", "NOT_FOUND")

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.TotalRequests)
	assert.Equal(t, int64(1), snap.TotalErrors)
	assert.Equal(t, 20*time.Millisecond, snap.AvgLatency)
	assert.Equal(t, int64(2), snap.Requests["/api/v1/tickets|GET|200"])
	assert.Equal(t, int64(1), snap.Errors["/api/v1/tickets/:id|GET|NOT_FOUND"])

	snap.Requests["/api/v1/tickets|GET|200"] = 99
	assert.Equal(t, int64(2), m.Snapshot().Requests["/api/v1/tickets|GET|200"])
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	assert.Zero(t, m.Snapshot().TotalRequests)
}

func TestMetricsConcurrent(t *testing.T) {
	m := NewMetrics()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.RecordRequest("/health", "GET", 200, time.Millisecond)
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(50), m.Snapshot().TotalRequests)
}
