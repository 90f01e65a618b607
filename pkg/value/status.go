package value

import (
	"strconv"
	"strings"
)

// StatusLabels are the default workflow states, indexed by their digit.
var StatusLabels = [10]string{
	"Idea",
	"Proposed",
	"Approved",
	"Planned",
	"In Work",
	"Held",
	"Completed",
	"Pending Recurs",
	"Canceled",
	"Closed",
}

// doneAt is the first status index that counts as finished.
const doneAt = 6

// Status is a workflow state such as "4 - In Work" or just "Completed".
type Status struct {
	raw   string
	index int
	known bool
}

// NewStatus resolves raw by its leading digit or, failing that, by label.
func NewStatus(raw string) Status {
	s := Status{raw: raw}
	text := strings.TrimSpace(raw)
	if text == "" {
		return s
	}
	if n, err := strconv.Atoi(text[:1]); err == nil {
		s.index, s.known = n, true
		return s
	}
	for i, label := range StatusLabels {
		if strings.EqualFold(text, label) {
			s.index, s.known = i, true
			break
		}
	}
	return s
}

func (s Status) Kind() Kind     { return KindStatus }
func (s Status) String() string { return s.raw }
func (s Status) IsEmpty() bool  { return strings.TrimSpace(s.raw) == "" }
func (Status) sealed()          {}

// Index returns the status digit and whether the text was recognised.
func (s Status) Index() (int, bool) { return s.index, s.known }

// Label returns the display label for the status.
func (s Status) Label() string {
	if !s.known {
		return strings.TrimSpace(s.raw)
	}
	return StatusLabels[s.index]
}

// Done reports whether the status is Completed or later.
func (s Status) Done() bool {
	return s.known && s.index >= doneAt
}

func (s Status) SortKey() string {
	if !s.known {
		return "~" + strings.ToLower(strings.TrimSpace(s.raw))
	}
	return strconv.Itoa(s.index)
}
