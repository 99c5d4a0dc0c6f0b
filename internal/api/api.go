// Package api implements the HTTP surface of the lost & found backend: image
// upload, AI moderation, value evaluation, claim review, search and image
// description, plus the admin review endpoints.
//
// Every AI-assisted endpoint carries a deterministic fallback so that an
// upstream model outage never blocks a legitimate user action. The one
// deliberate exception is claim review, which fails closed into a
// human-review state instead of auto-approving a claim it could not check.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/marvinridge/lostfound/internal/auth"
	"github.com/marvinridge/lostfound/internal/config"
	"github.com/marvinridge/lostfound/internal/llm"
	"github.com/marvinridge/lostfound/internal/media"
	"github.com/marvinridge/lostfound/internal/store"
)

const serviceName = "Marvin Ridge Lost & Found Backend"

// maxBodySize is the maximum HTTP body size for JSON endpoints. Image upload
// uses its own, larger bound.
const maxBodySize = 64 * 1024

// SearchRateLimiter guards POST /api/ai-search (30 req/60s per IP).
var SearchRateLimiter = NewRateLimiter(30, 60*time.Second)

// providerGroq serves text endpoints (moderation, search, value, claims) and
// the vision describe endpoint; providerOpenAI serves image moderation.
const (
	providerGroq   = "groq"
	providerOpenAI = "openai"
)

type API struct {
	store    store.Store
	items    *store.Items
	claims   *store.Claims
	llm      *llm.Client
	uploader media.Uploader
	auth     *auth.Auth
	ai       config.AIConfig
	authCfg  config.AuthConfig
}

func New(s store.Store, llmClient *llm.Client, uploader media.Uploader, a *auth.Auth, ai config.AIConfig, authCfg config.AuthConfig) *API {
	return &API{
		store:    s,
		items:    store.NewItems(s),
		claims:   store.NewClaims(s),
		llm:      llmClient,
		uploader: uploader,
		auth:     a,
		ai:       ai,
		authCfg:  authCfg,
	}
}

func (a *API) RegisterRoutes(mux *http.ServeMux) {
	// Status
	mux.HandleFunc("GET /api/health", a.handleHealth)
	mux.HandleFunc("GET /api/ai-status", a.handleAIStatus)

	// Media
	mux.HandleFunc("POST /api/upload-image", a.handleUploadImage)

	// Moderation & evaluation
	mux.HandleFunc("POST /api/moderate-content", a.handleModerateContent)
	mux.HandleFunc("POST /api/moderate-image", a.handleModerateImage)
	mux.HandleFunc("POST /api/evaluate-value", a.handleEvaluateValue)

	// Claims
	mux.HandleFunc("POST /api/ai-review-claim", a.handleReviewClaim)

	// Search & vision
	mux.HandleFunc("POST /api/ai-search", RateLimitMiddleware(SearchRateLimiter, a.handleSearch))
	mux.HandleFunc("POST /api/describe-image", a.handleDescribeImage)

	// Admin review surface
	mux.HandleFunc("POST /api/admin/login", a.handleAdminLogin)
	mux.HandleFunc("POST /api/admin/items/{id}/decision", a.handleItemDecision)
	mux.HandleFunc("POST /api/admin/claims/{id}/decision", a.handleClaimDecision)
}

// aiReady reports whether the AI path may be attempted for the named
// provider. When it returns false the handler uses its documented fallback.
func (a *API) aiReady(provider string) bool {
	return a.ai.Enabled && a.llm != nil && a.llm.HasProvider(provider)
}

// --- Status ---

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	jsonResp(w, http.StatusOK, map[string]any{
		"status":       "healthy",
		"ai_enabled":   a.ai.Enabled,
		"service":      serviceName,
		"search_model": a.ai.SearchModel,
		"vision_model": a.ai.VisionModel,
	})
}

func (a *API) handleAIStatus(w http.ResponseWriter, r *http.Request) {
	jsonResp(w, http.StatusOK, map[string]bool{"ai_enabled": a.ai.Enabled})
}

// --- Helpers ---

func decodeBody(w http.ResponseWriter, r *http.Request, dst any, limit int64) bool {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func jsonResp(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
