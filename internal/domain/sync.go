package domain

// SyncLogEntry is one append-only audit record of a sync attempt. An entry is
// written before its item batch, so after a crash it may overstate what was
// persisted but never understate it.
type SyncLogEntry struct {
	ID         int64  `db:"id" json:"id"`
	Username   string `db:"username" json:"username"`
	LoggedAt   int64  `db:"logged_at" json:"last_logged"` // unix milliseconds
	NumEntries int    `db:"num_entries" json:"num_entries"`
}

// SyncResult reports the outcome of one full or incremental sync.
type SyncResult struct {
	Username string
	Inserted int
	// NothingToSync is set when the delta planner found no new items; in
	// that case no log entry and no items were written.
	NothingToSync bool
}

// Message renders the result the way API callers expect it.
func (r *SyncResult) Message() string {
	if r.NothingToSync {
		return "Nothing to update"
	}
	return "Insert success"
}
