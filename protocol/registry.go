package protocol

import (
	"fmt"
	"slices"
	"sync"
)

type entry struct {
	capability Capability
	adapter    Adapter
}

// Registry maps protocol ids to their capability and adapter
type Registry struct {
	lock      sync.RWMutex
	protocols map[string]entry
}

func NewRegistry() *Registry {
	return &Registry{
		protocols: make(map[string]entry),
	}
}

// Register adds the protocol. The adapter can be nil for protocols only
// used for route estimation.
func (r *Registry) Register(c Capability, adapter Adapter) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.protocols[c.ID]; ok {
		return fmt.Errorf("protocol %s already registered", c.ID)
	}

	if adapter != nil {
		for _, id := range adapter.SupportedChains() {
			if !c.Supports(id) {
				return fmt.Errorf("adapter of protocol %s supports unconfigured chain %s", c.ID, id)
			}
		}
	}

	r.protocols[c.ID] = entry{
		capability: c,
		adapter:    adapter,
	}
	return nil
}

func (r *Registry) Adapter(id string) (Adapter, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	e, ok := r.protocols[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProtocol, id)
	}
	if e.adapter == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoAdapter, id)
	}
	return e.adapter, nil
}

func (r *Registry) Capability(id string) (Capability, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	e, ok := r.protocols[id]
	return e.capability, ok
}

// Capabilities returns every registered capability ordered by id
func (r *Registry) Capabilities() []Capability {
	r.lock.RLock()
	defer r.lock.RUnlock()

	capabilities := make([]Capability, 0, len(r.protocols))
	for _, e := range r.protocols {
		capabilities = append(capabilities, e.capability)
	}
	slices.SortFunc(capabilities, func(a, b Capability) int {
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	return capabilities
}

func (r *Registry) IDs() []string {
	capabilities := r.Capabilities()
	ids := make([]string, len(capabilities))
	for i, c := range capabilities {
		ids[i] = c.ID
	}
	return ids
}

// Healthy reports the health of the protocol adapter. Adapters not
// implementing HealthReporter are considered healthy.
func (r *Registry) Healthy(id string) bool {
	r.lock.RLock()
	e, ok := r.protocols[id]
	r.lock.RUnlock()
	if !ok {
		return false
	}

	reporter, ok := e.adapter.(HealthReporter)
	if !ok {
		return true
	}
	return reporter.Healthy()
}
