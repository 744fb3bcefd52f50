package planner

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "planner_client",
			Name:      "api_requests_total",
			Help:      "Backend API requests by method and status code.",
		},
		[]string{"method", "code"},
	)

	apiFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "planner_client",
			Name:      "api_request_failures_total",
			Help:      "Backend API requests that failed at the transport level.",
		},
		[]string{"method"},
	)
)

// metricsTransport counts every backend request. Installed as the outermost
// transport wrapper so retries are counted individually.
type metricsTransport struct{ base http.RoundTripper }

func (mt *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := mt.base.RoundTrip(req)
	if err != nil {
		apiFailuresTotal.WithLabelValues(req.Method).Inc()
		return nil, err
	}
	apiRequestsTotal.WithLabelValues(req.Method, strconv.Itoa(resp.StatusCode)).Inc()
	return resp, nil
}
