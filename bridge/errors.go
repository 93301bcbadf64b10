package bridge

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/cenkalti/backoff/v4"

	"github.com/sprintertech/bridge-orchestrator/protocol"
	"github.com/sprintertech/bridge-orchestrator/route"
)

var (
	ErrNotFound          = errors.New("transaction not found")
	ErrProtocolExecution = errors.New("protocol execution failed")
	ErrNetwork           = errors.New("network error")
	ErrTimeout           = errors.New("bridge attempt timed out")
	ErrShuttingDown      = errors.New("orchestrator is shutting down")
	ErrCancelled         = errors.New("bridge cancelled")
)

// ValidationError reports a malformed request or a rejected validator verdict
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ExecutionError is returned once every bridge attempt failed
type ExecutionError struct {
	TransactionID string
	Protocol      string
	Attempts      int
	Err           error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("bridge %s via %s failed after %d attempts: %s", e.TransactionID, e.Protocol, e.Attempts, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// classify maps adapter errors to the orchestrator error taxonomy
func classify(ctx context.Context, err error) error {
	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	return fmt.Errorf("%w: %w", ErrProtocolExecution, err)
}

func retryable(err error) bool {
	var validationErr *ValidationError
	var permanent *backoff.PermanentError
	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &permanent),
		errors.Is(err, route.ErrNoRouteFound),
		errors.Is(err, route.ErrAmountNotSupported),
		errors.Is(err, route.ErrInvalidRequest),
		errors.Is(err, protocol.ErrUnknownProtocol),
		errors.Is(err, protocol.ErrNoAdapter),
		errors.Is(err, ErrShuttingDown),
		errors.Is(err, context.Canceled):
		return false
	default:
		return true
	}
}
