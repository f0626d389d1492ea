package domain

import "go.uber.org/multierr"

// OutcomeStatus classifies the result of one item's download attempt.
type OutcomeStatus int

const (
	// StatusDownloaded means the payload was fully streamed to disk.
	StatusDownloaded OutcomeStatus = iota
	// StatusSkipped means the title filter rejected the item; no I/O occurred.
	StatusSkipped
	// StatusFailed means the item failed at some stage; Err holds the cause.
	StatusFailed
)

// String returns the status name for logging.
func (s OutcomeStatus) String() string {
	switch s {
	case StatusDownloaded:
		return "downloaded"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of one worker invocation. Outcomes are independent;
// a failed outcome never affects a sibling's execution.
type Outcome struct {
	Item         Item
	Status       OutcomeStatus
	Filename     string
	BytesWritten int64
	Err          error
}

// RunResult aggregates all per-item outcomes of one full pass. It is never
// persisted; it exists only to report the pass.
type RunResult struct {
	Outcomes []Outcome
}

// Downloaded returns the number of fully transferred items.
func (r *RunResult) Downloaded() int { return r.count(StatusDownloaded) }

// Skipped returns the number of filter-rejected items.
func (r *RunResult) Skipped() int { return r.count(StatusSkipped) }

// Failed returns the number of failed items.
func (r *RunResult) Failed() int { return r.count(StatusFailed) }

func (r *RunResult) count(s OutcomeStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == s {
			n++
		}
	}
	return n
}

// Err combines the errors of all failed outcomes. A nil result means every
// item either downloaded or was skipped. Individual failures never fail the
// run as a whole; this is reporting only.
func (r *RunResult) Err() error {
	var err error
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			err = multierr.Append(err, o.Err)
		}
	}
	return err
}
