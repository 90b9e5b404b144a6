package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/waljunye/redsync/internal/domain"
)

// Conn is one checked-out connection. Both tables are append-only from this
// service's point of view; no update or delete paths exist.
type Conn struct {
	conn *sqlx.Conn
}

// AppendLog inserts one immutable sync log entry and returns its id.
func (c *Conn) AppendLog(ctx context.Context, entry domain.SyncLogEntry) (int64, error) {
	query := `
		INSERT INTO sync_logs (username, logged_at, num_entries)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := c.conn.QueryRowxContext(ctx, query, entry.Username, entry.LoggedAt, entry.NumEntries).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%w: append sync log: %v", domain.ErrStoreUnavailable, err)
	}
	return id, nil
}

// MostRecentLog returns the newest entry for a user by insertion order, or
// nil when the user has never synced.
func (c *Conn) MostRecentLog(ctx context.Context, username string) (*domain.SyncLogEntry, error) {
	var entry domain.SyncLogEntry
	query := `
		SELECT id, username, logged_at, num_entries
		FROM sync_logs
		WHERE username = $1
		ORDER BY id DESC
		LIMIT 1`

	err := c.conn.GetContext(ctx, &entry, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: most recent log: %v", domain.ErrStoreUnavailable, err)
	}
	return &entry, nil
}

// BulkAppendItems inserts a batch of saved items in one statement. An empty
// batch is a no-op reporting zero, not an error.
func (c *Conn) BulkAppendItems(ctx context.Context, items []domain.SavedItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO saved_items (category, title, source_url, permalink, thumbnail) VALUES ")
	args := make([]interface{}, 0, len(items)*5)

	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := 0; j < 5; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(i*5 + j + 1))
		}
		sb.WriteString(")")
		args = append(args, item.Category, item.Title, item.SourceURL, item.Permalink, item.Thumbnail)
	}

	res, err := c.conn.ExecContext(ctx, sb.String(), args...)
	if err != nil {
		return 0, fmt.Errorf("%w: bulk append items: %v", domain.ErrStoreUnavailable, err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: bulk append items: %v", domain.ErrStoreUnavailable, err)
	}
	return int(inserted), nil
}

// ItemsByCategory returns items for one category, most recently inserted
// first.
func (c *Conn) ItemsByCategory(ctx context.Context, category string) ([]domain.SavedItem, error) {
	query := `
		SELECT id, category, title, source_url, permalink, thumbnail
		FROM saved_items
		WHERE category = $1
		ORDER BY id DESC`

	var items []domain.SavedItem
	if err := c.conn.SelectContext(ctx, &items, query, category); err != nil {
		return nil, fmt.Errorf("%w: items by category: %v", domain.ErrStoreUnavailable, err)
	}
	return items, nil
}

// Release returns the connection to the pool. Safe to call exactly once per
// Acquire.
func (c *Conn) Release() error {
	return c.conn.Close()
}
