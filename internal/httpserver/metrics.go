// internal/httpserver/metrics.go
//
// Prometheus instruments exposed on /metrics. Each Server owns its own
// registry so tests can build several servers side by side.

package httpserver

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/robalobadob/wordle-solver/internal/solver"
)

type metrics struct {
	reg      *prometheus.Registry
	solves   *prometheus.CounterVec
	attempts prometheus.Histogram
	guesses  prometheus.Counter
}

func newMetrics() *metrics {
	m := &metrics{
		reg: prometheus.NewRegistry(),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordle_solves_total",
			Help: "Solver runs by outcome (solved, unsolved, exhausted).",
		}, []string{"outcome"}),
		attempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordle_solve_attempts",
			Help:    "Guesses used per solver run.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		guesses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordle_guesses_total",
			Help: "Guesses applied to interactive sessions.",
		}),
	}
	m.reg.MustRegister(m.solves, m.attempts, m.guesses)
	return m
}

func (m *metrics) observe(res solver.Result, exhausted bool) {
	outcome := "unsolved"
	switch {
	case exhausted:
		outcome = "exhausted"
	case res.Solved:
		outcome = "solved"
	}
	m.solves.WithLabelValues(outcome).Inc()
	m.attempts.Observe(float64(res.Attempts))
}

func (m *metrics) handler() http.Handler {
	h := promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
	// drop the JSON default from jsonContentType
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Del("Content-Type")
		h.ServeHTTP(w, r)
	})
}
