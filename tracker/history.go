package tracker

const HISTORY_SIZE = 64

// history keeps the most recent snapshots of a record
type history struct {
	buf  []Snapshot
	next int
	full bool
}

func newHistory(size int) *history {
	return &history{
		buf: make([]Snapshot, size),
	}
}

func (h *history) add(s Snapshot) {
	h.buf[h.next] = s
	h.next = (h.next + 1) % len(h.buf)
	if h.next == 0 {
		h.full = true
	}
}

// snapshots returns the stored snapshots from oldest to newest
func (h *history) snapshots() []Snapshot {
	if !h.full {
		return append([]Snapshot(nil), h.buf[:h.next]...)
	}

	out := make([]Snapshot, 0, len(h.buf))
	out = append(out, h.buf[h.next:]...)
	return append(out, h.buf[:h.next]...)
}
