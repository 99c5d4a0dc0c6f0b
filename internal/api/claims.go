package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/marvinridge/lostfound/internal/llm"
	"github.com/marvinridge/lostfound/internal/store"
	"github.com/marvinridge/lostfound/internal/verdict"
)

// adminReviewThreshold is the confidence floor below which a claim always
// goes to a human, regardless of the approved flag.
const adminReviewThreshold = 70

const claimReviewPrompt = `You are reviewing ownership claims for a high school lost and found.
A student claims an item is theirs. Compare their claim against the item listing.
Approve only when the claimed details genuinely match the listing.
Vague claims that merely restate the listing's public title deserve low confidence.

Respond ONLY with:
APPROVED: true or false
CONFIDENCE: integer 0-100
REASON: brief explanation (one sentence)`

type claimReviewResponse struct {
	Approved         bool   `json:"approved"`
	Reason           string `json:"reason"`
	Confidence       int    `json:"confidence"`
	NeedsAdminReview bool   `json:"needsAdminReview"`
}

// handleReviewClaim reviews an ownership claim against its item. Unlike the
// moderation endpoints this fails closed: if the AI path is unavailable the
// claim stays PENDING for an admin instead of being auto-approved. A missing
// item or claim is a hard 404 and writes nothing.
func (a *API) handleReviewClaim(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID  string `json:"item_id"`
		ClaimID string `json:"claim_id"`
	}
	if !decodeBody(w, r, &req, maxBodySize) {
		return
	}
	if req.ItemID == "" || req.ClaimID == "" {
		jsonError(w, "item_id and claim_id are required", http.StatusBadRequest)
		return
	}

	item, err := a.items.Get(r.Context(), req.ItemID)
	if err != nil {
		if err == store.ErrNotFound {
			jsonError(w, "item not found", http.StatusNotFound)
			return
		}
		slog.Error("loading item for claim review", "error", err)
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	claim, err := a.claims.Get(r.Context(), req.ClaimID)
	if err != nil {
		if err == store.ErrNotFound {
			jsonError(w, "claim not found", http.StatusNotFound)
			return
		}
		slog.Error("loading claim for review", "error", err)
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	v := verdict.ClaimReview{Approved: false, Confidence: 0, Reason: "Unable to verify claim"}

	if a.aiReady(providerGroq) {
		resp, err := a.llm.Complete(r.Context(), providerGroq, llm.Request{
			Model: a.ai.SearchModel,
			Messages: []llm.Message{
				{Role: "system", Content: claimReviewPrompt},
				{Role: "user", Content: fmt.Sprintf(
					"Item listing:\nTitle: %s\nCategory: %s\nDescription: %s\nLocation: %s\n\nClaim:\nClaimed location: %s\nClaimed description: %s\nAdditional proof: %s",
					item.Title, item.Category, item.Description, item.Location,
					claim.ClaimedLocation, claim.ClaimedDescription, claim.AdditionalProof)},
			},
			Temperature: 0.1,
			MaxTokens:   150,
		})
		if err != nil {
			slog.Error("claim review failed", "error", err)
			v.Reason = "AI review failed, claim requires admin review"
		} else {
			v = verdict.ParseClaimReview(resp.Content, v)
		}
	} else {
		v.Reason = "AI review unavailable, claim requires admin review"
	}

	needsAdminReview := v.Confidence < adminReviewThreshold
	status := store.StatusPending
	if !needsAdminReview {
		if v.Approved {
			status = store.StatusAIApproved
		} else {
			status = store.StatusAIRejected
		}
	}

	review := store.AIReview{
		Approved:   v.Approved,
		Reason:     v.Reason,
		Confidence: v.Confidence,
		ReviewedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := a.claims.SaveReview(r.Context(), req.ClaimID, review, status); err != nil {
		slog.Error("persisting claim review", "error", err)
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	jsonResp(w, http.StatusOK, claimReviewResponse{
		Approved:         v.Approved,
		Reason:           v.Reason,
		Confidence:       v.Confidence,
		NeedsAdminReview: needsAdminReview,
	})
}
