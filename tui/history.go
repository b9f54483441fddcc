package tui

// History keeps submitted commands for Up/Down recall. Whatever was typed
// when recall started is kept as a draft and comes back on the way down.
type History struct {
	entries []string
	limit   int
	cursor  int // len(entries) while not navigating
	draft   string
}

// NewHistory creates a history holding at most limit commands.
func NewHistory(limit int) *History {
	return &History{
		entries: make([]string, 0, limit),
		limit:   limit,
	}
}

// Push records a submitted command and ends any navigation. Consecutive
// duplicates are stored once.
func (h *History) Push(cmd string) {
	if n := len(h.entries); n == 0 || h.entries[n-1] != cmd {
		h.entries = append(h.entries, cmd)
		if len(h.entries) > h.limit {
			h.entries = h.entries[len(h.entries)-h.limit:]
		}
	}
	h.Reset()
}

// Prev steps to the previous (older) entry. current is the input line,
// saved as the draft when navigation starts. At the oldest entry it stays
// put. Returns false if there is no history.
func (h *History) Prev(current string) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if !h.navigating() {
		h.draft = current
	}
	if h.cursor > 0 {
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next steps to the next (newer) entry, ending with the saved draft.
// Returns false when not navigating.
func (h *History) Next() (string, bool) {
	if !h.navigating() {
		return "", false
	}
	h.cursor++
	if h.cursor == len(h.entries) {
		return h.draft, true
	}
	return h.entries[h.cursor], true
}

// Reset ends navigation and drops the draft.
func (h *History) Reset() {
	h.cursor = len(h.entries)
	h.draft = ""
}

// Len returns the number of stored commands.
func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) navigating() bool {
	return h.cursor < len(h.entries)
}
