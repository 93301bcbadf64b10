// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

const CHECK_TIMEOUT = 5 * time.Second

type Checker interface {
	HealthCheck(ctx context.Context) error
}

type Report struct {
	Healthy bool              `json:"healthy"`
	Checks  map[string]string `json:"checks"`
}

type result struct {
	name string
	err  error
}

// Check runs every named check concurrently and reports the failing ones
func Check(ctx context.Context, checks map[string]Checker) Report {
	p := pool.NewWithResults[result]().WithMaxGoroutines(max(len(checks), 1))
	for name, checker := range checks {
		p.Go(func() result {
			return result{name: name, err: checker.HealthCheck(ctx)}
		})
	}

	report := Report{Healthy: true, Checks: make(map[string]string)}
	for _, r := range p.Wait() {
		if r.err != nil {
			report.Healthy = false
			report.Checks[r.name] = r.err.Error()
			continue
		}
		report.Checks[r.name] = "ok"
	}
	return report
}

// Handler serves the aggregated health report, 503 when any check fails
func Handler(checks map[string]Checker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), CHECK_TIMEOUT)
		defer cancel()

		report := Check(ctx, checks)
		w.Header().Set("Content-Type", "application/json")
		if !report.Healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(report)
	})
}

// StartHealthEndpoint starts /health endpoint on provided port that reports
// the state of the provided checks
func StartHealthEndpoint(port uint16, checks map[string]Checker) {
	mux := http.NewServeMux()
	mux.Handle("/health", Handler(checks))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	log.Info().Msgf("Starting /health endpoint on port %d", port)
	err := srv.ListenAndServe()
	if err != nil {
		log.Err(err).Msgf("Failed starting health server")
		return
	}
}
