package domain

// FetchOptions controls a saved-items fetch against the platform.
type FetchOptions struct {
	// Limit caps how many newest items are returned; zero or negative
	// means the entire history.
	Limit int
	// AbsolutePermalinks rewrites platform-relative permalinks onto the
	// public site origin. Full syncs keep them relative, incremental
	// syncs request absolute ones.
	AbsolutePermalinks bool
}

// SyncEvent is published after a sync commits, for downstream consumers.
type SyncEvent struct {
	Username string `json:"username"`
	Mode     string `json:"mode"`
	Inserted int    `json:"inserted"`
	LoggedAt int64  `json:"logged_at"`
}

const (
	SyncModeFull        = "full"
	SyncModeIncremental = "incremental"
)
