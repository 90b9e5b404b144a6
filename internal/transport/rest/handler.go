package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/waljunye/redsync/internal/domain"
)

// Syncer is the slice of the sync service the transport needs.
type Syncer interface {
	FullSync(ctx context.Context, accessToken, username string) (*domain.SyncResult, error)
	IncrementalSync(ctx context.Context, accessToken, username string, desiredLimit, lastLoggedTotal int) (*domain.SyncResult, error)
	TrueTotal(ctx context.Context, accessToken string) (int, error)
	Identity(ctx context.Context, accessToken string) (string, error)
	Categories(ctx context.Context, accessToken string) ([]string, error)
	LastLog(ctx context.Context, username string) (*domain.SyncLogEntry, error)
	ItemsByCategory(ctx context.Context, category string) ([]domain.SavedItem, error)
}

// Authorizer issues consent URLs and exchanges authorization codes.
type Authorizer interface {
	AuthURL() (authURL, state string, err error)
	Exchange(ctx context.Context, code string) (accessToken string, err error)
}

type Handler struct {
	syncer     Syncer
	authorizer Authorizer
	logger     *slog.Logger
}

func NewHandler(syncer Syncer, authorizer Authorizer, logger *slog.Logger) *Handler {
	return &Handler{
		syncer:     syncer,
		authorizer: authorizer,
		logger:     logger.With("component", "rest"),
	}
}

// Routes mounts the API surface on a fresh mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/url", h.authURL)
	mux.HandleFunc("POST /api/ccd", h.exchangeCode)
	mux.HandleFunc("POST /api/getme", h.identity)
	mux.HandleFunc("POST /api/cats", h.categories)
	mux.HandleFunc("POST /api/totalSaved", h.totalSaved)
	mux.HandleFunc("POST /api/saved", h.fullSync)
	mux.HandleFunc("POST /api/smol", h.incrementalSync)
	mux.HandleFunc("POST /api/checkLogs", h.checkLogs)
	mux.HandleFunc("POST /api/getSaved", h.itemsByCategory)
	return mux
}

type tokenRequest struct {
	Token string `json:"token"`
}

type syncRequest struct {
	Token           string `json:"token"`
	Name            string `json:"name"`
	Limit           int    `json:"limit"`
	LastLoggedTotal int    `json:"lastLoggedTotal"`
}

type syncResponse struct {
	Message  string `json:"message"`
	Inserted int    `json:"inserted"`
}

func (h *Handler) authURL(w http.ResponseWriter, r *http.Request) {
	authURL, state, err := h.authorizer.AuthURL()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"authUrl": authURL,
		"state":   state,
	})
}

func (h *Handler) exchangeCode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	token, err := h.authorizer.Exchange(r.Context(), req.Code)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) identity(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if !h.decode(w, r, &req) {
		return
	}
	name, err := h.syncer.Identity(r.Context(), req.Token)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"name": name})
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if !h.decode(w, r, &req) {
		return
	}
	categories, err := h.syncer.Categories(r.Context(), req.Token)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	h.writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) totalSaved(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if !h.decode(w, r, &req) {
		return
	}
	total, err := h.syncer.TrueTotal(r.Context(), req.Token)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int{"totalSaved": total})
}

func (h *Handler) fullSync(w http.ResponseWriter, r *http.Request) {
	var req syncRequest
	if !h.decode(w, r, &req) {
		return
	}
	// A client disconnect must not abandon a half-applied sync; the
	// fetch and both writes run to completion regardless.
	result, err := h.syncer.FullSync(context.WithoutCancel(r.Context()), req.Token, req.Name)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, syncResponse{
		Message:  result.Message(),
		Inserted: result.Inserted,
	})
}

func (h *Handler) incrementalSync(w http.ResponseWriter, r *http.Request) {
	var req syncRequest
	if !h.decode(w, r, &req) {
		return
	}
	result, err := h.syncer.IncrementalSync(context.WithoutCancel(r.Context()), req.Token, req.Name, req.Limit, req.LastLoggedTotal)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, syncResponse{
		Message:  result.Message(),
		Inserted: result.Inserted,
	})
}

func (h *Handler) checkLogs(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	entry, err := h.syncer.LastLog(r.Context(), req.Name)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]*domain.SyncLogEntry{"logCheck": entry})
}

func (h *Handler) itemsByCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Subreddit string `json:"subreddit"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	items, err := h.syncer.ItemsByCategory(r.Context(), req.Subreddit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if items == nil {
		items = []domain.SavedItem{}
	}
	h.writeJSON(w, http.StatusOK, map[string][]domain.SavedItem{"savedArr": items})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	return true
}

// writeError maps the domain failure classes onto status codes. Every
// failure produces a terminal response; nothing is swallowed.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrAuth):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrUpstream):
		status = http.StatusBadGateway
	}

	h.logger.Error("request failed", "status", status, "error", err)
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response", "error", err)
	}
}
