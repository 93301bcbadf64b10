package handlers_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sprintertech/bridge-orchestrator/api/handlers"
	mock_handlers "github.com/sprintertech/bridge-orchestrator/api/handlers/mock"
	"github.com/sprintertech/bridge-orchestrator/chains"
	"github.com/sprintertech/bridge-orchestrator/tracker"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const TX_HASH = "0x8f2f2a5e3f0e1b4a3cb7d2d6d7a3b2f5c1e0f9a8b7c6d5e4f3a2b1c0d9e8f7a6"

type TrackingHandlerTestSuite struct {
	suite.Suite

	tracker *mock_handlers.MockTrackingService
	handler *handlers.TrackingHandler
}

func TestRunTrackingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TrackingHandlerTestSuite))
}

func (s *TrackingHandlerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.tracker = mock_handlers.NewMockTrackingService(ctrl)
	s.handler = handlers.NewTrackingHandler(s.tracker)
}

func (s *TrackingHandlerTestSuite) Test_HandleTrack_InvalidChain() {
	req := httptest.NewRequest(http.MethodPost, "/v1/chains/x/tracking", bytes.NewReader([]byte(`{}`)))
	req = mux.SetURLVars(req, map[string]string{
		"chainId": "x",
	})
	recorder := httptest.NewRecorder()

	s.handler.HandleTrack(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *TrackingHandlerTestSuite) Test_HandleTrack_MissingHash() {
	req := httptest.NewRequest(http.MethodPost, "/v1/chains/1/tracking", bytes.NewReader([]byte(`{"confirmations":3}`)))
	req = mux.SetURLVars(req, map[string]string{
		"chainId": "1",
	})
	recorder := httptest.NewRecorder()

	s.handler.HandleTrack(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *TrackingHandlerTestSuite) Test_HandleTrack_Errors() {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "invalid hash", err: tracker.ErrInvalidTransactionHash, code: http.StatusBadRequest},
		{name: "unsupported network", err: tracker.ErrUnsupportedNetwork, code: http.StatusBadRequest},
		{name: "duplicate", err: tracker.ErrDuplicateTracking, code: http.StatusConflict},
		{name: "limit", err: tracker.ErrTrackingLimitExceeded, code: http.StatusTooManyRequests},
		{name: "unknown", err: context.DeadlineExceeded, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.tracker.EXPECT().TrackConfirmations(gomock.Any(), TX_HASH, gomock.Any()).Return(nil, tt.err)
			req := httptest.NewRequest(http.MethodPost, "/v1/chains/1/tracking", bytes.NewReader([]byte(`{"txHash":"`+TX_HASH+`"}`)))
			req = mux.SetURLVars(req, map[string]string{
				"chainId": "1",
			})
			recorder := httptest.NewRecorder()

			s.handler.HandleTrack(recorder, req)

			s.Equal(tt.code, recorder.Code)
		})
	}
}

func (s *TrackingHandlerTestSuite) Test_HandleTrack_Success() {
	s.tracker.EXPECT().TrackConfirmations(gomock.Any(), TX_HASH, tracker.Options{
		Network:       chains.Polygon,
		Confirmations: 64,
		TimeoutBlocks: 500,
	}).Return(&tracker.Status{
		TrackingID: "tracking",
		State:      tracker.StatePending,
	}, nil)
	req := httptest.NewRequest(
		http.MethodPost,
		"/v1/chains/137/tracking",
		bytes.NewReader([]byte(`{"txHash":"`+TX_HASH+`","confirmations":64,"timeoutBlocks":500}`)),
	)
	req = mux.SetURLVars(req, map[string]string{
		"chainId": "137",
	})
	recorder := httptest.NewRecorder()

	s.handler.HandleTrack(recorder, req)

	s.Equal(http.StatusCreated, recorder.Code)
	s.Contains(recorder.Body.String(), "\"trackingId\":\"tracking\"")
}

func (s *TrackingHandlerTestSuite) Test_HandleStatus_NotTracked() {
	s.tracker.EXPECT().GetConfirmationStatus(TX_HASH).Return(nil, tracker.ErrNotTracked)
	req := httptest.NewRequest(http.MethodGet, "/v1/tracking/"+TX_HASH, nil)
	req = mux.SetURLVars(req, map[string]string{
		"txHash": TX_HASH,
	})
	recorder := httptest.NewRecorder()

	s.handler.HandleStatus(recorder, req)

	s.Equal(http.StatusNotFound, recorder.Code)
}

func (s *TrackingHandlerTestSuite) Test_HandleStatus_Success() {
	s.tracker.EXPECT().GetConfirmationStatus(TX_HASH).Return(&tracker.Status{
		Confirmations: 3,
	}, nil)
	req := httptest.NewRequest(http.MethodGet, "/v1/tracking/"+TX_HASH, nil)
	req = mux.SetURLVars(req, map[string]string{
		"txHash": TX_HASH,
	})
	recorder := httptest.NewRecorder()

	s.handler.HandleStatus(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), "\"confirmations\":3")
}

func (s *TrackingHandlerTestSuite) Test_HandleStop() {
	s.tracker.EXPECT().StopTracking(gomock.Any(), TX_HASH).Return(nil)
	req := httptest.NewRequest(http.MethodDelete, "/v1/tracking/"+TX_HASH, nil)
	req = mux.SetURLVars(req, map[string]string{
		"txHash": TX_HASH,
	})
	recorder := httptest.NewRecorder()

	s.handler.HandleStop(recorder, req)

	s.Equal(http.StatusNoContent, recorder.Code)
}

func (s *TrackingHandlerTestSuite) Test_HandleAnalytics() {
	s.tracker.EXPECT().GetAnalytics().Return(tracker.Analytics{Active: 2})
	req := httptest.NewRequest(http.MethodGet, "/v1/tracking/analytics", nil)
	recorder := httptest.NewRecorder()

	s.handler.HandleAnalytics(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), "\"active\":2")
}
