package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sprintertech/bridge-orchestrator/chains"
	"github.com/sprintertech/bridge-orchestrator/tracker"
)

type TrackingService interface {
	TrackConfirmations(ctx context.Context, txHash string, opts tracker.Options) (*tracker.Status, error)
	StopTracking(ctx context.Context, txHash string) error
	GetConfirmationStatus(txHash string) (*tracker.Status, error)
	GetAnalytics() tracker.Analytics
}

type TrackingBody struct {
	TxHash        string `json:"txHash"`
	Confirmations uint64 `json:"confirmations"`
	TimeoutBlocks uint64 `json:"timeoutBlocks"`
}

type TrackingHandler struct {
	tracker TrackingService
}

func NewTrackingHandler(tracker TrackingService) *TrackingHandler {
	return &TrackingHandler{
		tracker: tracker,
	}
}

// HandleTrack starts confirmation tracking of a transaction on the chain
func (h *TrackingHandler) HandleTrack(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	chainID, err := chains.ParseChainID(vars["chainId"])
	if err != nil {
		JSONError(w, fmt.Errorf("field 'chainId' invalid"), http.StatusBadRequest)
		return
	}

	b := &TrackingBody{}
	err = json.NewDecoder(r.Body).Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}
	if b.TxHash == "" {
		JSONError(w, fmt.Errorf("invalid request body: missing field 'txHash'"), http.StatusBadRequest)
		return
	}

	status, err := h.tracker.TrackConfirmations(r.Context(), b.TxHash, tracker.Options{
		Network:       chainID,
		Confirmations: b.Confirmations,
		TimeoutBlocks: b.TimeoutBlocks,
	})
	if err != nil {
		JSONError(w, err, trackingErrorCode(err))
		return
	}

	JSONResponse(w, status, http.StatusCreated)
}

func (h *TrackingHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	status, err := h.tracker.GetConfirmationStatus(vars["txHash"])
	if err != nil {
		JSONError(w, err, trackingErrorCode(err))
		return
	}

	JSONResponse(w, status, http.StatusOK)
}

func (h *TrackingHandler) HandleStop(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	err := h.tracker.StopTracking(r.Context(), vars["txHash"])
	if err != nil {
		JSONError(w, err, trackingErrorCode(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TrackingHandler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	JSONResponse(w, h.tracker.GetAnalytics(), http.StatusOK)
}

func trackingErrorCode(err error) int {
	switch {
	case errors.Is(err, tracker.ErrInvalidTransactionHash), errors.Is(err, tracker.ErrUnsupportedNetwork):
		return http.StatusBadRequest
	case errors.Is(err, tracker.ErrNotTracked):
		return http.StatusNotFound
	case errors.Is(err, tracker.ErrDuplicateTracking):
		return http.StatusConflict
	case errors.Is(err, tracker.ErrTrackingLimitExceeded):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
