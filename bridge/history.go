package bridge

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sprintertech/bridge-orchestrator/tracker"
)

// handleEvent advances transfers from tracker events
func (o *Orchestrator) handleEvent(e tracker.Event) {
	// lru lookups reorder entries and need the write lock
	o.lock.Lock()
	value, ok := o.hashes.Get(e.TxHash.Hex())
	o.lock.Unlock()
	if !ok {
		return
	}
	id := value.(string)

	var state State
	var err error
	switch e.Type {
	case tracker.EventConfirmed:
		state = StateCompleted
	case tracker.EventFailed, tracker.EventDropped, tracker.EventTimeout:
		state = StateFailed
		err = fmt.Errorf("%s: %s", e.Type, e.Reason)
	}

	o.update(context.Background(), id, func(t *Transfer) {
		if t.State.Terminal() {
			return
		}
		t.TrackingID = e.TrackingID
		switch e.Type {
		case tracker.EventConfirmationUpdate, tracker.EventThresholdReached:
			if t.State == StateSubmitted {
				t.State = StateConfirming
			}
		case tracker.EventConfirmationRollback, tracker.EventReorgSuspected, tracker.EventMajorReorg:
			t.ReorgAffected = true
		}
	})

	if state != "" {
		if err != nil {
			log.Warn().Str("transactionID", id).Msgf("Tracking reported %s", err)
		}
		o.finish(id, state, err, 0)
	}
}

// GetBridgeHistory returns the matching transfers newest first
func (o *Orchestrator) GetBridgeHistory(filter HistoryFilter) []Transfer {
	o.lock.RLock()
	defer o.lock.RUnlock()

	transfers := make([]Transfer, 0)
	for i := len(o.history) - 1; i >= 0; i-- {
		t, ok := o.transfers[o.history[i]]
		if !ok {
			continue
		}
		if filter.State != "" && t.State != filter.State {
			continue
		}
		if filter.Protocol != "" && !strings.EqualFold(t.Protocol, filter.Protocol) {
			continue
		}
		if filter.Chain != 0 && t.FromChain != filter.Chain && t.ToChain != filter.Chain {
			continue
		}

		transfers = append(transfers, *t)
		if filter.Limit > 0 && len(transfers) == filter.Limit {
			break
		}
	}
	return transfers
}

// GetBridgeStats aggregates outcomes over the retained history
func (o *Orchestrator) GetBridgeStats() Stats {
	o.lock.RLock()
	defer o.lock.RUnlock()

	stats := Stats{Protocols: make(map[string]ProtocolStats)}
	var total time.Duration
	var finished int
	for _, id := range o.history {
		t, ok := o.transfers[id]
		if !ok {
			continue
		}

		stats.Total++
		p := stats.Protocols[t.Protocol]
		p.Total++
		switch t.State {
		case StateCompleted:
			stats.Completed++
			p.Completed++
			total += t.CompletedAt.Sub(t.CreatedAt)
			finished++
		case StateFailed:
			stats.Failed++
			p.Failed++
		case StateCancelled:
			stats.Cancelled++
		default:
			stats.InProgress++
		}
		stats.Protocols[t.Protocol] = p
	}

	stats.SuccessRate = ratio(stats.Completed, stats.Completed+stats.Failed)
	if finished > 0 {
		stats.AverageDuration = total / time.Duration(finished)
	}
	for id, p := range stats.Protocols {
		p.SuccessRate = ratio(p.Completed, p.Completed+p.Failed)
		prior := 0.0
		if c, ok := o.registry.Capability(id); ok {
			prior = c.Reliability
		}
		p.Reliability = o.reliability.ratio(id, prior)
		stats.Protocols[id] = p
	}
	return stats
}

// ExecutionCount returns the number of accepted bridge executions
func (o *Orchestrator) ExecutionCount() int64 {
	return o.executions.Load()
}

func ratio(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}

func sortByCreation(transfers []*Transfer) {
	slices.SortStableFunc(transfers, func(a, b *Transfer) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
}

func rankRoutes(routes []RankedRoute) {
	slices.SortStableFunc(routes, func(a, b RankedRoute) int {
		switch {
		case a.FinalScore > b.FinalScore:
			return -1
		case a.FinalScore < b.FinalScore:
			return 1
		case a.EstimatedTime != b.EstimatedTime:
			return cmp.Compare(a.EstimatedTime, b.EstimatedTime)
		default:
			return strings.Compare(a.ID(), b.ID())
		}
	})
}
