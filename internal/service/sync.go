package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/waljunye/redsync/internal/domain"
)

// SyncService orchestrates full and incremental syncs of a user's saved
// items, plus the read paths over the sync log and item store.
type SyncService struct {
	sessions  SessionFactory
	store     Store
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time
}

func NewSyncService(sessions SessionFactory, store Store, publisher Publisher, logger *slog.Logger) *SyncService {
	return &SyncService{
		sessions:  sessions,
		store:     store,
		publisher: publisher,
		logger:    logger.With("component", "sync"),
		now:       time.Now,
	}
}

// FullSync fetches the user's entire saved history and commits it. An empty
// remote history still logs a zero-entry sync and reports zero inserted.
func (s *SyncService) FullSync(ctx context.Context, accessToken, username string) (*domain.SyncResult, error) {
	session := s.sessions.Session(accessToken)

	items, err := session.SavedItems(ctx, domain.FetchOptions{})
	if err != nil {
		return nil, fmt.Errorf("fetch saved items: %w", err)
	}

	s.logger.Info("full sync fetched", "username", username, "count", len(items))

	conn, err := s.store.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire store connection: %w", err)
	}
	defer s.release(conn)

	return s.commit(ctx, conn, username, domain.SyncModeFull, items, len(items))
}

// IncrementalSync fetches only items newer than the most recent log entry.
// The caller-supplied desiredLimit and lastLoggedTotal are accepted for
// contract compatibility but the authoritative figures are recomputed here:
// the delta comes from a fresh platform count against the stored log.
func (s *SyncService) IncrementalSync(ctx context.Context, accessToken, username string, desiredLimit, lastLoggedTotal int) (*domain.SyncResult, error) {
	session := s.sessions.Session(accessToken)

	trueTotal, err := session.SavedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("count saved items: %w", err)
	}

	conn, err := s.store.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire store connection: %w", err)
	}
	defer s.release(conn)

	lastLogged := 0
	if last, err := conn.MostRecentLog(ctx, username); err != nil {
		return nil, fmt.Errorf("look up most recent log: %w", err)
	} else if last != nil {
		lastLogged = last.NumEntries
	}
	if lastLoggedTotal != lastLogged {
		s.logger.Warn("caller-supplied last logged total differs from log",
			"username", username,
			"supplied", lastLoggedTotal,
			"logged", lastLogged,
		)
	}

	plan := PlanDelta(trueTotal, lastLogged)
	if plan.Action == PlanNothing {
		s.logger.Info("nothing to sync", "username", username, "true_total", trueTotal)
		return &domain.SyncResult{Username: username, NothingToSync: true}, nil
	}

	opts := domain.FetchOptions{AbsolutePermalinks: true}
	if plan.Action == PlanFetch {
		opts.Limit = plan.Limit
	}
	if desiredLimit != 0 && desiredLimit != opts.Limit {
		s.logger.Warn("caller-supplied limit differs from planned delta",
			"username", username,
			"supplied", desiredLimit,
			"planned", opts.Limit,
		)
	}

	items, err := session.SavedItems(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch saved items: %w", err)
	}

	s.logger.Info("incremental sync fetched",
		"username", username,
		"count", len(items),
		"true_total", trueTotal,
		"last_logged", lastLogged,
	)

	return s.commit(ctx, conn, username, domain.SyncModeIncremental, items, lastLogged+len(items))
}

// commit applies log-first ordering: the audit entry is durable before the
// item batch, so a crash in between can only overstate what was persisted.
func (s *SyncService) commit(ctx context.Context, conn StoreConn, username, mode string, items []domain.SavedItem, numEntries int) (*domain.SyncResult, error) {
	entry := domain.SyncLogEntry{
		Username:   username,
		LoggedAt:   s.now().UnixMilli(),
		NumEntries: numEntries,
	}

	logID, err := conn.AppendLog(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("append sync log: %w", err)
	}

	inserted, err := conn.BulkAppendItems(ctx, items)
	if err != nil {
		// The log entry above already persisted; partial success still
		// surfaces as a failure to the caller.
		return nil, fmt.Errorf("bulk append items: %w", err)
	}

	s.logger.Info("sync committed",
		"username", username,
		"mode", mode,
		"log_id", logID,
		"inserted", inserted,
	)

	if s.publisher != nil {
		event := domain.SyncEvent{
			Username: username,
			Mode:     mode,
			Inserted: inserted,
			LoggedAt: entry.LoggedAt,
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("publish sync event", "error", err)
		}
	}

	return &domain.SyncResult{Username: username, Inserted: inserted}, nil
}

// TrueTotal reports the current size of the user's saved history on the
// platform.
func (s *SyncService) TrueTotal(ctx context.Context, accessToken string) (int, error) {
	return s.sessions.Session(accessToken).SavedCount(ctx)
}

// Identity resolves the display name behind a token.
func (s *SyncService) Identity(ctx context.Context, accessToken string) (string, error) {
	return s.sessions.Session(accessToken).Identity(ctx)
}

// Categories lists the distinct categories across the live saved history,
// first-seen order.
func (s *SyncService) Categories(ctx context.Context, accessToken string) ([]string, error) {
	items, err := s.sessions.Session(accessToken).SavedItems(ctx, domain.FetchOptions{})
	if err != nil {
		return nil, fmt.Errorf("fetch saved items: %w", err)
	}

	seen := make(map[string]struct{}, len(items))
	var categories []string
	for _, item := range items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		categories = append(categories, item.Category)
	}
	return categories, nil
}

// LastLog returns the most recent sync log entry for a user, or nil when the
// user has never synced.
func (s *SyncService) LastLog(ctx context.Context, username string) (*domain.SyncLogEntry, error) {
	conn, err := s.store.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire store connection: %w", err)
	}
	defer s.release(conn)

	return conn.MostRecentLog(ctx, username)
}

// ItemsByCategory returns stored items for one category, most recently
// inserted first.
func (s *SyncService) ItemsByCategory(ctx context.Context, category string) ([]domain.SavedItem, error) {
	conn, err := s.store.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire store connection: %w", err)
	}
	defer s.release(conn)

	return conn.ItemsByCategory(ctx, category)
}

func (s *SyncService) release(conn StoreConn) {
	if err := conn.Release(); err != nil {
		s.logger.Warn("release store connection", "error", err)
	}
}
