package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/marvinridge/lostfound/internal/llm"
)

// describeFallback is the manual-entry placeholder returned whenever the
// vision model cannot be used.
const (
	describeDisabled = "AI features are disabled. Please describe the item manually."
	describeFailed   = "Unable to analyze image. Please describe the item manually."
)

// handleDescribeImage drafts a listing description from an item photo.
func (a *API) handleDescribeImage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ImageURL string `json:"image_url"`
	}
	if !decodeBody(w, r, &req, maxBodySize) {
		return
	}
	if req.ImageURL == "" {
		jsonError(w, "image_url is required", http.StatusBadRequest)
		return
	}

	if !a.aiReady(providerGroq) {
		jsonResp(w, http.StatusOK, map[string]string{"description": describeDisabled})
		return
	}

	resp, err := a.llm.Complete(r.Context(), providerGroq, llm.Request{
		Model: a.ai.VisionModel,
		Messages: []llm.Message{
			{Role: "user", Parts: []llm.Part{
				llm.TextPart("Describe this item for a lost and found listing. Include: color, brand (if visible), condition, and identifying features. Keep it under 50 words."),
				llm.ImagePart(req.ImageURL),
			}},
		},
		Temperature: 0.7,
		MaxTokens:   150,
	})
	if err != nil {
		slog.Error("image description failed", "error", err)
		jsonResp(w, http.StatusOK, map[string]string{"description": describeFailed})
		return
	}

	jsonResp(w, http.StatusOK, map[string]string{"description": strings.TrimSpace(resp.Content)})
}
