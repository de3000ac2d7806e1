package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveCountsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe("GET", "/api/v1/requests", "200", 25*time.Millisecond)
	m.Observe("GET", "/api/v1/requests", "200", 40*time.Millisecond)
	m.Observe("POST", "/api/v1/requests", "201", 100*time.Millisecond)

	if got := testutil.CollectAndCount(reg, "http_requests_total"); got != 2 {
		t.Fatalf("expected 2 label combinations, got %d", got)
	}
}

func TestObserveOnNilMetricsIsNoop(t *testing.T) {
	var m *HTTPMetrics
	m.Observe("GET", "/x", "200", time.Millisecond)

	empty := NewHTTPMetrics(nil)
	empty.Observe("GET", "/x", "200", time.Millisecond)
}
