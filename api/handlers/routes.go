package handlers

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strconv"

	"github.com/sprintertech/bridge-orchestrator/bridge"
	"github.com/sprintertech/bridge-orchestrator/chains"
	"github.com/sprintertech/bridge-orchestrator/route"
)

type RouteQuoter interface {
	GetBridgeRoute(ctx context.Context, from, to chains.ChainID, token string, amount *big.Int) (*bridge.RouteQuote, error)
}

type RouteComparer interface {
	GetRouteComparison(
		ctx context.Context,
		from, to chains.ChainID,
		token string,
		amount *big.Int,
		criteria *route.Criteria,
	) (*route.Comparison, error)
}

type RouteHandler struct {
	quoter   RouteQuoter
	comparer RouteComparer
}

func NewRouteHandler(quoter RouteQuoter, comparer RouteComparer) *RouteHandler {
	return &RouteHandler{
		quoter:   quoter,
		comparer: comparer,
	}
}

// HandleRoute returns the best route and ranked alternatives for the transfer
func (h *RouteHandler) HandleRoute(w http.ResponseWriter, r *http.Request) {
	q, err := parseTransferQuery(r.URL.Query())
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request: %s", err), http.StatusBadRequest)
		return
	}

	quote, err := h.quoter.GetBridgeRoute(r.Context(), q.from, q.to, q.token, q.amount)
	if err != nil {
		JSONError(w, err, routeErrorCode(err))
		return
	}

	JSONResponse(w, quote, http.StatusOK)
}

// HandleComparison annotates every route against the optimal, fastest and
// cheapest route under optional cost, speed and reliability weights
func (h *RouteHandler) HandleComparison(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q, err := parseTransferQuery(query)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request: %s", err), http.StatusBadRequest)
		return
	}

	var criteria *route.Criteria
	if query.Has("cost") || query.Has("speed") || query.Has("reliability") {
		criteria = &route.Criteria{}
		for name, weight := range map[string]*float64{
			"cost":        &criteria.Cost,
			"speed":       &criteria.Speed,
			"reliability": &criteria.Reliability,
		} {
			if !query.Has(name) {
				continue
			}
			*weight, err = strconv.ParseFloat(query.Get(name), 64)
			if err != nil {
				JSONError(w, fmt.Errorf("invalid request: field '%s' invalid", name), http.StatusBadRequest)
				return
			}
		}
	}

	comparison, err := h.comparer.GetRouteComparison(r.Context(), q.from, q.to, q.token, q.amount, criteria)
	if err != nil {
		JSONError(w, err, routeErrorCode(err))
		return
	}

	JSONResponse(w, comparison, http.StatusOK)
}

func routeErrorCode(err error) int {
	var validationErr *bridge.ValidationError
	switch {
	case errors.As(err, &validationErr), errors.Is(err, route.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, route.ErrNoRouteFound), errors.Is(err, route.ErrAmountNotSupported):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
