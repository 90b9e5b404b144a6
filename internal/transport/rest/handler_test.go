package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waljunye/redsync/internal/domain"
	"github.com/waljunye/redsync/internal/transport/rest"
)

type stubSyncer struct {
	fullSync        func(token, username string) (*domain.SyncResult, error)
	incrementalSync func(token, username string, limit, lastLogged int) (*domain.SyncResult, error)
	trueTotal       func(token string) (int, error)
	lastLog         func(username string) (*domain.SyncLogEntry, error)
	itemsByCategory func(category string) ([]domain.SavedItem, error)
}

func (s *stubSyncer) FullSync(_ context.Context, token, username string) (*domain.SyncResult, error) {
	return s.fullSync(token, username)
}

func (s *stubSyncer) IncrementalSync(_ context.Context, token, username string, limit, lastLogged int) (*domain.SyncResult, error) {
	return s.incrementalSync(token, username, limit, lastLogged)
}

func (s *stubSyncer) TrueTotal(_ context.Context, token string) (int, error) {
	return s.trueTotal(token)
}

func (s *stubSyncer) Identity(_ context.Context, token string) (string, error) {
	return "kim", nil
}

func (s *stubSyncer) Categories(_ context.Context, token string) ([]string, error) {
	return []string{"golang", "rust"}, nil
}

func (s *stubSyncer) LastLog(_ context.Context, username string) (*domain.SyncLogEntry, error) {
	return s.lastLog(username)
}

func (s *stubSyncer) ItemsByCategory(_ context.Context, category string) ([]domain.SavedItem, error) {
	return s.itemsByCategory(category)
}

type stubAuthorizer struct{}

func (stubAuthorizer) AuthURL() (string, string, error) {
	return "https://www.reddit.com/api/v1/authorize?state=abc", "abc", nil
}

func (stubAuthorizer) Exchange(_ context.Context, code string) (string, error) {
	if code == "bad" {
		return "", domain.ErrAuth
	}
	return "tok-" + code, nil
}

func newServer(t *testing.T, syncer *stubSyncer) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	handler := rest.NewHandler(syncer, stubAuthorizer{}, logger)
	server := httptest.NewServer(handler.Routes())
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestAuthURL(t *testing.T) {
	server := newServer(t, &stubSyncer{})

	resp, err := http.Get(server.URL + "/auth/url")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[map[string]string](t, resp)
	assert.Contains(t, body["authUrl"], "authorize")
	assert.Equal(t, "abc", body["state"])
}

func TestExchangeCode(t *testing.T) {
	server := newServer(t, &stubSyncer{})

	resp := postJSON(t, server.URL+"/api/ccd", map[string]string{"code": "xyz"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "tok-xyz", body["token"])
}

func TestExchangeCodeRejected(t *testing.T) {
	server := newServer(t, &stubSyncer{})

	resp := postJSON(t, server.URL+"/api/ccd", map[string]string{"code": "bad"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestFullSync(t *testing.T) {
	syncer := &stubSyncer{
		fullSync: func(token, username string) (*domain.SyncResult, error) {
			assert.Equal(t, "tok", token)
			assert.Equal(t, "kim", username)
			return &domain.SyncResult{Username: username, Inserted: 42}, nil
		},
	}
	server := newServer(t, syncer)

	resp := postJSON(t, server.URL+"/api/saved", map[string]any{"token": "tok", "name": "kim"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "Insert success", body["message"])
	assert.Equal(t, float64(42), body["inserted"])
}

func TestIncrementalSyncNothingToUpdate(t *testing.T) {
	syncer := &stubSyncer{
		incrementalSync: func(token, username string, limit, lastLogged int) (*domain.SyncResult, error) {
			assert.Equal(t, 7, limit)
			assert.Equal(t, 40, lastLogged)
			return &domain.SyncResult{Username: username, NothingToSync: true}, nil
		},
	}
	server := newServer(t, syncer)

	resp := postJSON(t, server.URL+"/api/smol", map[string]any{
		"token":           "tok",
		"name":            "kim",
		"limit":           7,
		"lastLoggedTotal": 40,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "Nothing to update", body["message"])
	assert.Equal(t, float64(0), body["inserted"])
}

func TestSyncErrorsMapToStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"auth", domain.ErrAuth, http.StatusUnauthorized},
		{"store", domain.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{"upstream", domain.ErrUpstream, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			syncer := &stubSyncer{
				fullSync: func(token, username string) (*domain.SyncResult, error) {
					return nil, tt.err
				},
			}
			server := newServer(t, syncer)

			resp := postJSON(t, server.URL+"/api/saved", map[string]any{"token": "tok", "name": "kim"})
			assert.Equal(t, tt.status, resp.StatusCode)

			body := decodeBody[map[string]string](t, resp)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestTotalSaved(t *testing.T) {
	syncer := &stubSyncer{
		trueTotal: func(token string) (int, error) { return 47, nil },
	}
	server := newServer(t, syncer)

	resp := postJSON(t, server.URL+"/api/totalSaved", map[string]string{"token": "tok"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[map[string]int](t, resp)
	assert.Equal(t, 47, body["totalSaved"])
}

func TestCheckLogsAbsent(t *testing.T) {
	syncer := &stubSyncer{
		lastLog: func(username string) (*domain.SyncLogEntry, error) { return nil, nil },
	}
	server := newServer(t, syncer)

	resp := postJSON(t, server.URL+"/api/checkLogs", map[string]string{"name": "kim"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[map[string]*domain.SyncLogEntry](t, resp)
	assert.Nil(t, body["logCheck"])
}

func TestGetSaved(t *testing.T) {
	syncer := &stubSyncer{
		itemsByCategory: func(category string) ([]domain.SavedItem, error) {
			assert.Equal(t, "golang", category)
			return []domain.SavedItem{{Category: "golang", Title: "post"}}, nil
		},
	}
	server := newServer(t, syncer)

	resp := postJSON(t, server.URL+"/api/getSaved", map[string]string{"subreddit": "golang"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[map[string][]domain.SavedItem](t, resp)
	require.Len(t, body["savedArr"], 1)
	assert.Equal(t, "post", body["savedArr"][0].Title)
}

func TestGetSavedEmpty(t *testing.T) {
	syncer := &stubSyncer{
		itemsByCategory: func(category string) ([]domain.SavedItem, error) { return nil, nil },
	}
	server := newServer(t, syncer)

	resp := postJSON(t, server.URL+"/api/getSaved", map[string]string{"subreddit": "empty"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[map[string][]domain.SavedItem](t, resp)
	items, ok := body["savedArr"]
	require.True(t, ok)
	assert.Empty(t, items)
}
