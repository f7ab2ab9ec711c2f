package search

import "github.com/google/uuid"

// newRunID mints a fresh identifier for one start()..dispose()-or-next-
// start() cycle, used to correlate emitted events and metrics series
// across a run.
func newRunID() string {
	return uuid.NewString()
}
