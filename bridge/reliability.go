package bridge

import "sync"

const RELIABILITY_WINDOW = 100

type window struct {
	outcomes  []bool
	next      int
	size      int
	successes int
}

func (w *window) add(success bool) {
	if w.size == len(w.outcomes) {
		if w.outcomes[w.next] {
			w.successes--
		}
	} else {
		w.size++
	}

	w.outcomes[w.next] = success
	if success {
		w.successes++
	}
	w.next = (w.next + 1) % len(w.outcomes)
}

// reliability keeps a rolling success ratio of the most recent executions
// per protocol
type reliability struct {
	lock    sync.Mutex
	windows map[string]*window
	size    int
}

func newReliability(size int) *reliability {
	return &reliability{
		windows: make(map[string]*window),
		size:    size,
	}
}

func (r *reliability) record(protocolID string, success bool) {
	if protocolID == "" || protocolID == AUTO {
		return
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	w, ok := r.windows[protocolID]
	if !ok {
		w = &window{outcomes: make([]bool, r.size)}
		r.windows[protocolID] = w
	}
	w.add(success)
}

// ratio returns the observed success ratio or prior without observations
func (r *reliability) ratio(protocolID string, prior float64) float64 {
	r.lock.Lock()
	defer r.lock.Unlock()

	w, ok := r.windows[protocolID]
	if !ok || w.size == 0 {
		return prior
	}
	return float64(w.successes) / float64(w.size)
}
