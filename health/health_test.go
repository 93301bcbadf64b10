package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sprintertech/bridge-orchestrator/health"
	"github.com/stretchr/testify/suite"
)

type checkFunc func(ctx context.Context) error

func (f checkFunc) HealthCheck(ctx context.Context) error {
	return f(ctx)
}

var (
	healthy   = checkFunc(func(ctx context.Context) error { return nil })
	unhealthy = checkFunc(func(ctx context.Context) error { return errors.New("connection refused") })
)

type HealthTestSuite struct {
	suite.Suite
}

func TestRunHealthTestSuite(t *testing.T) {
	suite.Run(t, new(HealthTestSuite))
}

func (s *HealthTestSuite) Test_Check_AllHealthy() {
	report := health.Check(context.Background(), map[string]health.Checker{
		"1":  healthy,
		"10": healthy,
	})

	s.True(report.Healthy)
	s.Equal(map[string]string{"1": "ok", "10": "ok"}, report.Checks)
}

func (s *HealthTestSuite) Test_Check_NoChecks() {
	report := health.Check(context.Background(), map[string]health.Checker{})

	s.True(report.Healthy)
}

func (s *HealthTestSuite) Test_Handler_Unhealthy() {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)

	health.Handler(map[string]health.Checker{
		"1":   healthy,
		"137": unhealthy,
	}).ServeHTTP(recorder, req)

	s.Equal(http.StatusServiceUnavailable, recorder.Code)
	var report health.Report
	s.Nil(json.NewDecoder(recorder.Body).Decode(&report))
	s.False(report.Healthy)
	s.Equal("connection refused", report.Checks["137"])
	s.Equal("ok", report.Checks["1"])
}

func (s *HealthTestSuite) Test_Handler_Healthy() {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)

	health.Handler(map[string]health.Checker{"1": healthy}).ServeHTTP(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)
}
