package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/waljunye/redsync/internal/domain"
)

// Pool hands out scoped per-request connections from the shared database
// pool. Each request checks out exactly one connection and releases it on
// every exit path; connections are never shared across requests.
type Pool struct {
	db *sqlx.DB
}

func NewPool(db *sqlx.DB) *Pool {
	return &Pool{db: db}
}

// Acquire checks out one connection for the duration of a request.
func (p *Pool) Acquire(ctx context.Context) (*Conn, error) {
	conn, err := p.db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: checkout connection: %v", domain.ErrStoreUnavailable, err)
	}
	return &Conn{conn: conn}, nil
}

func (p *Pool) Close() error {
	return p.db.Close()
}
