package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/waljunye/redsync/internal/domain"
)

// Session performs platform calls on behalf of one bearer token.
type Session interface {
	Identity(ctx context.Context) (string, error)
	SavedItems(ctx context.Context, opts domain.FetchOptions) ([]domain.SavedItem, error)
	SavedCount(ctx context.Context) (int, error)
}

// SessionFactory binds an access token into a Session. Construction never
// touches the network; a bad token only surfaces on the first call.
type SessionFactory interface {
	Session(accessToken string) Session
}

// Store hands out scoped per-request connections to durable storage.
type Store interface {
	Acquire(ctx context.Context) (StoreConn, error)
}

// StoreConn is one checked-out connection. Callers must Release it on every
// exit path; operations are individually atomic but carry no cross-operation
// transaction.
type StoreConn interface {
	AppendLog(ctx context.Context, entry domain.SyncLogEntry) (int64, error)
	MostRecentLog(ctx context.Context, username string) (*domain.SyncLogEntry, error)
	BulkAppendItems(ctx context.Context, items []domain.SavedItem) (int, error)
	ItemsByCategory(ctx context.Context, category string) ([]domain.SavedItem, error)
	Release() error
}

// Publisher emits sync-completed events. A nil Publisher disables publishing.
type Publisher interface {
	Publish(ctx context.Context, event domain.SyncEvent) error
	Close() error
}
