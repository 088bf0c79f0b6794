package client

import (
	"net/http"
	"sort"
	"sync"
)

// CoverageHit is one observed (method, route, status) combination.
type CoverageHit struct {
	Method     string `json:"method"`
	Route      string `json:"route"`
	StatusCode int    `json:"statusCode"`
	Count      int    `json:"count"`
}

type coverageKey struct {
	method string
	route  string
	status int
}

// CoverageTracker counts which endpoints of a service were called and with
// which status codes they answered. It is safe for concurrent use.
type CoverageTracker struct {
	service string

	mu   sync.Mutex
	hits map[coverageKey]int
}

// NewCoverageTracker creates a tracker for the named service.
func NewCoverageTracker(service string) *CoverageTracker {
	return &CoverageTracker{service: service, hits: make(map[coverageKey]int)}
}

// Service returns the key of the tracked service.
func (t *CoverageTracker) Service() string {
	return t.service
}

// Record counts one call.
func (t *CoverageTracker) Record(method, route string, status int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hits[coverageKey{method: method, route: route, status: status}]++
}

// Report returns all hits sorted by route, method and status.
func (t *CoverageTracker) Report() []CoverageHit {
	t.mu.Lock()
	report := make([]CoverageHit, 0, len(t.hits))
	for k, n := range t.hits {
		report = append(report, CoverageHit{Method: k.method, Route: k.route, StatusCode: k.status, Count: n})
	}
	t.mu.Unlock()

	sort.Slice(report, func(i, j int) bool {
		a, b := report[i], report[j]
		if a.Route != b.Route {
			return a.Route < b.Route
		}
		if a.Method != b.Method {
			return a.Method < b.Method
		}
		return a.StatusCode < b.StatusCode
	})
	return report
}

// Reset forgets all hits.
func (t *CoverageTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hits = make(map[coverageKey]int)
}

// Middleware records the route template of each completed request. Requests
// sent without a template are recorded under their literal path.
func (t *CoverageTracker) Middleware() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			resp, err := next.RoundTrip(req)
			if err != nil {
				return resp, err
			}
			route := RouteFromContext(req.Context())
			if route == "" {
				route = req.URL.Path
			}
			t.Record(req.Method, route, resp.StatusCode)
			return resp, nil
		})
	}
}
