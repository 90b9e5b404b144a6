package reddit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/waljunye/redsync/internal/domain"
)

// permalinkBase prefixes platform-relative permalinks when absolute ones are
// requested.
const permalinkBase = "https://www.reddit.com"

// maxPageSize is the largest listing page Reddit serves per round-trip.
const maxPageSize = 100

// Config holds Reddit API client configuration.
type Config struct {
	BaseURL        string
	UserAgent      string
	PageSize       int
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client talks to the Reddit OAuth API. It holds no credentials itself;
// Session binds it to one bearer token.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	userAgent      string
	pageSize       int
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a Reddit API client.
func New(cfg Config, logger *slog.Logger) *Client {
	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		userAgent:      cfg.UserAgent,
		pageSize:       pageSize,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "reddit"),
	}
}

// Session binds the client to one short-lived bearer token. Sessions are
// cheap per-request values; the token is never refreshed here.
func (c *Client) Session(accessToken string) *Session {
	return &Session{client: c, token: accessToken}
}

// Session performs API calls on behalf of the token's owner.
type Session struct {
	client *Client
	token  string
}

// Identity returns the display name of the token's owner.
func (s *Session) Identity(ctx context.Context) (string, error) {
	var account Account
	if err := s.get(ctx, s.client.baseURL+"/api/v1/me", &account); err != nil {
		return "", fmt.Errorf("fetch identity: %w", err)
	}
	return account.Name, nil
}

// SavedItems retrieves the user's saved posts, newest first, paging through
// the listing until the limit or the end of history is reached.
func (s *Session) SavedItems(ctx context.Context, opts domain.FetchOptions) ([]domain.SavedItem, error) {
	username, err := s.Identity(ctx)
	if err != nil {
		return nil, err
	}

	var items []domain.SavedItem
	after := ""
	for {
		pageSize := s.client.pageSize
		if opts.Limit > 0 {
			if remaining := opts.Limit - len(items); remaining < pageSize {
				pageSize = remaining
			}
		}

		listing, err := s.fetchPage(ctx, username, pageSize, after)
		if err != nil {
			return nil, fmt.Errorf("fetch saved items after %q: %w", after, err)
		}

		for _, thing := range listing.Data.Children {
			items = append(items, transform(thing, opts.AbsolutePermalinks))
		}

		s.client.logger.Debug("fetched saved page",
			"username", username,
			"page_items", len(listing.Data.Children),
			"total", len(items),
		)

		if listing.Data.After == "" || len(listing.Data.Children) == 0 {
			break
		}
		if opts.Limit > 0 && len(items) >= opts.Limit {
			break
		}
		after = listing.Data.After
	}

	if opts.Limit > 0 && len(items) > opts.Limit {
		items = items[:opts.Limit]
	}
	return items, nil
}

// SavedCount returns the size of the user's entire saved history. The
// platform exposes no cheaper count capability than a full listing walk.
func (s *Session) SavedCount(ctx context.Context) (int, error) {
	items, err := s.SavedItems(ctx, domain.FetchOptions{})
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func (s *Session) fetchPage(ctx context.Context, username string, pageSize int, after string) (*Listing, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(pageSize))
	query.Set("raw_json", "1")
	if after != "" {
		query.Set("after", after)
	}
	endpoint := fmt.Sprintf("%s/user/%s/saved?%s", s.client.baseURL, url.PathEscape(username), query.Encode())

	var listing Listing
	var err error

	for attempt := 1; attempt <= s.client.maxAttempts; attempt++ {
		err = s.get(ctx, endpoint, &listing)
		if err == nil {
			return &listing, nil
		}

		// Auth rejections never recover within a token's lifetime.
		if errors.Is(err, domain.ErrAuth) || attempt == s.client.maxAttempts {
			break
		}

		backoff := s.client.calculateBackoff(attempt)
		s.client.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, err
}

func (s *Session) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", s.client.userAgent)
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.client.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: execute request: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: platform returned %d", domain.ErrAuth, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: unexpected status %d", domain.ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrUpstream, err)
	}
	return nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}

func transform(thing Thing, absolutePermalinks bool) domain.SavedItem {
	permalink := thing.Data.Permalink
	if absolutePermalinks && permalink != "" {
		permalink = permalinkBase + permalink
	}
	return domain.SavedItem{
		Category:  thing.Data.Subreddit,
		Title:     thing.Data.Title,
		SourceURL: thing.Data.URL,
		Permalink: permalink,
		Thumbnail: thing.Data.Thumbnail,
	}
}
