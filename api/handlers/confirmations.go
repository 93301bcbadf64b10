package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sprintertech/bridge-orchestrator/chains"
)

type ChainConfirmations struct {
	Thresholds           chains.Thresholds `json:"thresholds"`
	DefaultConfirmations uint64            `json:"defaultConfirmations"`
	ByValue              map[uint64]uint64 `json:"byValue"`
}

type ConfirmationsHandler struct {
	confirmationsByChain map[chains.ChainID]ChainConfirmations
}

func NewConfirmationsHandler(confirmationsByChain map[chains.ChainID]ChainConfirmations) *ConfirmationsHandler {
	return &ConfirmationsHandler{
		confirmationsByChain: confirmationsByChain,
	}
}

// HandleRequest returns the confirmation policy of the requested chain
func (h *ConfirmationsHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	chainID, err := chains.ParseChainID(vars["chainId"])
	if err != nil {
		JSONError(w, fmt.Errorf("invalid chainId"), http.StatusBadRequest)
		return
	}

	confirmations, ok := h.confirmationsByChain[chainID]
	if !ok {
		JSONError(w, fmt.Errorf("no confirmations for chainID: %d", chainID), http.StatusNotFound)
		return
	}

	JSONResponse(w, confirmations, http.StatusOK)
}
