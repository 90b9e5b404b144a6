package domain

// SavedItem is one saved post pulled from the platform, normalized for storage.
type SavedItem struct {
	ID        int64  `db:"id" json:"id"`
	Category  string `db:"category" json:"subreddit"` // subreddit the item was saved from
	Title     string `db:"title" json:"title"`
	SourceURL string `db:"source_url" json:"url"`
	// Permalink may be absolute or platform-relative depending on which
	// sync mode produced it.
	Permalink string `db:"permalink" json:"permalink"`
	// Thumbnail carries the platform's raw value, including non-URL
	// sentinels like "self" and "default" meaning no thumbnail exists.
	Thumbnail string `db:"thumbnail" json:"thumbnail"`
}
