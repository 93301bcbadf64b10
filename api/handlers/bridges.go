package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sprintertech/bridge-orchestrator/bridge"
	"github.com/sprintertech/bridge-orchestrator/chains"
)

type BridgeService interface {
	ExecuteBridge(ctx context.Context, params bridge.Params) (*bridge.Result, error)
	GetTransactionStatus(ctx context.Context, transactionID string) (*bridge.TransactionStatus, error)
	GetBridgeHistory(filter bridge.HistoryFilter) []bridge.Transfer
	GetBridgeStats() bridge.Stats
}

type BridgeBody struct {
	Protocol      string  `json:"protocol"`
	FromChain     uint64  `json:"fromChain"`
	ToChain       uint64  `json:"toChain"`
	Token         string  `json:"token"`
	Amount        *BigInt `json:"amount"`
	Recipient     string  `json:"recipient"`
	Confirmations uint64  `json:"confirmations"`
	Nonce         *uint64 `json:"nonce"`
}

type BridgeHandler struct {
	service BridgeService
}

func NewBridgeHandler(service BridgeService) *BridgeHandler {
	return &BridgeHandler{
		service: service,
	}
}

// HandleExecute executes the bridge and returns the submission result
func (h *BridgeHandler) HandleExecute(w http.ResponseWriter, r *http.Request) {
	b := &BridgeBody{}
	d := json.NewDecoder(r.Body)
	err := d.Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	err = h.validate(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	// a disconnecting client must not cancel a submitted transfer
	result, err := h.service.ExecuteBridge(context.WithoutCancel(r.Context()), bridge.Params{
		Protocol:      b.Protocol,
		FromChain:     chains.ChainID(b.FromChain),
		ToChain:       chains.ChainID(b.ToChain),
		Token:         b.Token,
		Amount:        b.Amount.Int,
		Recipient:     b.Recipient,
		Confirmations: b.Confirmations,
		Nonce:         b.Nonce,
	})
	if err != nil {
		JSONError(w, err, bridgeErrorCode(err))
		return
	}

	JSONResponse(w, result, http.StatusAccepted)
}

// HandleStatus returns the status of a bridge by transaction id
func (h *BridgeHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, ok := vars["transactionId"]
	if !ok || id == "" {
		JSONError(w, fmt.Errorf("missing 'transactionId'"), http.StatusBadRequest)
		return
	}

	status, err := h.service.GetTransactionStatus(r.Context(), id)
	if err != nil {
		JSONError(w, err, bridgeErrorCode(err))
		return
	}

	JSONResponse(w, status, http.StatusOK)
}

// HandleHistory lists bridges newest first filtered by state, protocol,
// chain and limit
func (h *BridgeHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := bridge.HistoryFilter{
		State:    bridge.State(query.Get("state")),
		Protocol: query.Get("protocol"),
	}

	if query.Has("chain") {
		chainID, err := chains.ParseChainID(query.Get("chain"))
		if err != nil {
			JSONError(w, fmt.Errorf("field 'chain' invalid"), http.StatusBadRequest)
			return
		}
		filter.Chain = chainID
	}

	limit, err := parseLimit(query.Get("limit"))
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}
	filter.Limit = limit

	JSONResponse(w, h.service.GetBridgeHistory(filter), http.StatusOK)
}

func (h *BridgeHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	JSONResponse(w, h.service.GetBridgeStats(), http.StatusOK)
}

func (h *BridgeHandler) validate(b *BridgeBody) error {
	if b.FromChain == 0 {
		return fmt.Errorf("missing field 'fromChain'")
	}

	if b.ToChain == 0 {
		return fmt.Errorf("missing field 'toChain'")
	}

	if b.Token == "" {
		return fmt.Errorf("missing field 'token'")
	}

	if b.Amount == nil {
		return fmt.Errorf("missing field 'amount'")
	}

	if b.Recipient == "" {
		return fmt.Errorf("missing field 'recipient'")
	}

	return nil
}

func bridgeErrorCode(err error) int {
	var validationErr *bridge.ValidationError
	var executionErr *bridge.ExecutionError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, bridge.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, bridge.ErrShuttingDown):
		return http.StatusServiceUnavailable
	case errors.As(err, &executionErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
