//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/waljunye/redsync/internal/domain"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *tcpostgres.PostgresContainer
	db        *sqlx.DB
	pool      *Pool
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := tcpostgres.Run(s.ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("test_db"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		tcpostgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_sync_logs.up.sql"),
			filepath.Join(migrationsPath, "002_create_saved_items.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
	s.pool = NewPool(db)
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) TearDownTest() {
	_, err := s.db.ExecContext(s.ctx, "TRUNCATE sync_logs, saved_items RESTART IDENTITY")
	s.Require().NoError(err)
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) acquire() *Conn {
	conn, err := s.pool.Acquire(s.ctx)
	s.Require().NoError(err)
	return conn
}

func (s *PostgresIntegrationSuite) TestAppendLogAndMostRecent() {
	conn := s.acquire()
	defer conn.Release()

	first, err := conn.AppendLog(s.ctx, domain.SyncLogEntry{
		Username:   "kim",
		LoggedAt:   time.Now().UnixMilli(),
		NumEntries: 40,
	})
	s.Require().NoError(err)

	second, err := conn.AppendLog(s.ctx, domain.SyncLogEntry{
		Username:   "kim",
		LoggedAt:   time.Now().UnixMilli(),
		NumEntries: 47,
	})
	s.Require().NoError(err)
	s.Greater(second, first)

	_, err = conn.AppendLog(s.ctx, domain.SyncLogEntry{
		Username:   "other",
		LoggedAt:   time.Now().UnixMilli(),
		NumEntries: 3,
	})
	s.Require().NoError(err)

	latest, err := conn.MostRecentLog(s.ctx, "kim")
	s.Require().NoError(err)
	s.Require().NotNil(latest)
	s.Equal(second, latest.ID)
	s.Equal(47, latest.NumEntries)
}

func (s *PostgresIntegrationSuite) TestMostRecentLogAbsent() {
	conn := s.acquire()
	defer conn.Release()

	entry, err := conn.MostRecentLog(s.ctx, "never-synced")
	s.Require().NoError(err)
	s.Nil(entry)
}

func (s *PostgresIntegrationSuite) TestBulkAppendEmptyIsNoOp() {
	conn := s.acquire()
	defer conn.Release()

	inserted, err := conn.BulkAppendItems(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal(0, inserted)

	var count int
	s.Require().NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM saved_items"))
	s.Equal(0, count)
}

func (s *PostgresIntegrationSuite) TestBulkAppendAndByCategory() {
	conn := s.acquire()
	defer conn.Release()

	batch := []domain.SavedItem{
		{Category: "golang", Title: "oldest go post", SourceURL: "https://example.com/1", Permalink: "/r/golang/1", Thumbnail: "self"},
		{Category: "rust", Title: "rust post", SourceURL: "https://example.com/2", Permalink: "/r/rust/2", Thumbnail: "default"},
		{Category: "golang", Title: "newest go post", SourceURL: "https://example.com/3", Permalink: "/r/golang/3", Thumbnail: ""},
	}

	inserted, err := conn.BulkAppendItems(s.ctx, batch)
	s.Require().NoError(err)
	s.Equal(3, inserted)

	items, err := conn.ItemsByCategory(s.ctx, "golang")
	s.Require().NoError(err)
	s.Require().Len(items, 2)

	// Most recently inserted first.
	s.Equal("newest go post", items[0].Title)
	s.Equal("oldest go post", items[1].Title)
	for _, item := range items {
		s.Equal("golang", item.Category)
	}
}

// The store keeps no uniqueness constraint; appending the same batch twice
// persists full duplicates.
func (s *PostgresIntegrationSuite) TestRepeatedBatchDuplicates() {
	conn := s.acquire()
	defer conn.Release()

	batch := []domain.SavedItem{
		{Category: "golang", Title: "post", SourceURL: "https://example.com/1", Permalink: "/r/golang/1", Thumbnail: "self"},
	}

	_, err := conn.BulkAppendItems(s.ctx, batch)
	s.Require().NoError(err)
	_, err = conn.BulkAppendItems(s.ctx, batch)
	s.Require().NoError(err)

	items, err := conn.ItemsByCategory(s.ctx, "golang")
	s.Require().NoError(err)
	s.Len(items, 2)
}

func (s *PostgresIntegrationSuite) TestConcurrentCheckouts() {
	first := s.acquire()
	second := s.acquire()
	defer first.Release()
	defer second.Release()

	_, err := first.AppendLog(s.ctx, domain.SyncLogEntry{Username: "a", LoggedAt: 1, NumEntries: 1})
	s.Require().NoError(err)
	_, err = second.AppendLog(s.ctx, domain.SyncLogEntry{Username: "b", LoggedAt: 2, NumEntries: 2})
	s.Require().NoError(err)

	latest, err := first.MostRecentLog(s.ctx, "b")
	s.Require().NoError(err)
	s.Require().NotNil(latest)
	s.Equal(2, latest.NumEntries)
}
