package api

import (
	"log/slog"
	"net/http"

	"github.com/marvinridge/lostfound/internal/auth"
	"github.com/marvinridge/lostfound/internal/store"
)

// The admin surface closes the human-review loop: low-confidence claim
// verdicts and pending listings land here for a decision.

func (a *API) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &req, maxBodySize) {
		return
	}

	if a.authCfg.AdminUser == "" || a.authCfg.AdminHash == "" {
		jsonError(w, "admin access not configured", http.StatusServiceUnavailable)
		return
	}
	if req.Username != a.authCfg.AdminUser || !auth.CheckPassword(a.authCfg.AdminHash, req.Password) {
		jsonError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := a.auth.GenerateToken(req.Username, auth.RoleAdmin)
	if err != nil {
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	jsonResp(w, http.StatusOK, map[string]string{"token": token})
}

// requireAdmin extracts and checks the admin JWT, writing the error response
// itself when the caller is not an admin.
func (a *API) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	claims := a.auth.ExtractClaims(r)
	if claims == nil {
		jsonError(w, "authentication required", http.StatusUnauthorized)
		return false
	}
	if claims.Role != auth.RoleAdmin {
		jsonError(w, "forbidden", http.StatusForbidden)
		return false
	}
	return true
}

func (a *API) handleItemDecision(w http.ResponseWriter, r *http.Request) {
	if !a.requireAdmin(w, r) {
		return
	}
	id := r.PathValue("id")
	if id == "" {
		jsonError(w, "id is required", http.StatusBadRequest)
		return
	}

	var req struct {
		Approved bool `json:"approved"`
	}
	if !decodeBody(w, r, &req, maxBodySize) {
		return
	}

	if _, err := a.items.Get(r.Context(), id); err != nil {
		if err == store.ErrNotFound {
			jsonError(w, "item not found", http.StatusNotFound)
			return
		}
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	status := store.StatusRejected
	if req.Approved {
		status = store.StatusApproved
	}
	if err := a.items.SetStatus(r.Context(), id, status); err != nil {
		slog.Error("updating item status", "error", err)
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	jsonResp(w, http.StatusOK, map[string]string{"id": id, "status": status})
}

func (a *API) handleClaimDecision(w http.ResponseWriter, r *http.Request) {
	if !a.requireAdmin(w, r) {
		return
	}
	id := r.PathValue("id")
	if id == "" {
		jsonError(w, "id is required", http.StatusBadRequest)
		return
	}

	var req struct {
		Approved bool   `json:"approved"`
		Note     string `json:"note"`
	}
	if !decodeBody(w, r, &req, maxBodySize) {
		return
	}

	if _, err := a.claims.Get(r.Context(), id); err != nil {
		if err == store.ErrNotFound {
			jsonError(w, "claim not found", http.StatusNotFound)
			return
		}
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	status := store.StatusRejected
	if req.Approved {
		status = store.StatusApproved
	}
	if err := a.claims.Resolve(r.Context(), id, status, req.Note); err != nil {
		slog.Error("resolving claim", "error", err)
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	jsonResp(w, http.StatusOK, map[string]string{"id": id, "status": status})
}
