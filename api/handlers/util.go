package handlers

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sprintertech/bridge-orchestrator/chains"
)

type BigInt struct {
	*big.Int
}

func (b *BigInt) UnmarshalJSON(data []byte) error {
	if b.Int == nil {
		b.Int = new(big.Int)
	}

	s := strings.Trim(string(data), "\"")
	_, ok := b.SetString(s, 10)
	if !ok {
		return fmt.Errorf("failed to parse big.Int from %s", s)
	}

	return nil
}

func (b *BigInt) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("\"%s\"", b.String())), nil
}

func JSONError(w http.ResponseWriter, err error, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	type errorResponse struct {
		Code   int    `json:"code"`
		Reason string `json:"reason"`
	}
	resp := errorResponse{
		Reason: err.Error(),
		Code:   code,
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func JSONResponse(w http.ResponseWriter, v interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type transferQuery struct {
	from   chains.ChainID
	to     chains.ChainID
	token  string
	amount *big.Int
}

// parseTransferQuery reads the from, to, token and amount query parameters
func parseTransferQuery(q url.Values) (*transferQuery, error) {
	from, err := chains.ParseChainID(q.Get("from"))
	if err != nil {
		return nil, fmt.Errorf("field 'from' invalid")
	}
	to, err := chains.ParseChainID(q.Get("to"))
	if err != nil {
		return nil, fmt.Errorf("field 'to' invalid")
	}
	token := q.Get("token")
	if token == "" {
		return nil, fmt.Errorf("missing field 'token'")
	}
	amount, ok := new(big.Int).SetString(q.Get("amount"), 10)
	if !ok {
		return nil, fmt.Errorf("field 'amount' invalid")
	}

	return &transferQuery{
		from:   from,
		to:     to,
		token:  token,
		amount: amount,
	}, nil
}

func parseLimit(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(value)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("field 'limit' invalid")
	}
	return limit, nil
}
