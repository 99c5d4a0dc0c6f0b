package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/marvinridge/lostfound/internal/llm"
	"github.com/marvinridge/lostfound/internal/verdict"
)

const contentModerationPrompt = `You are a content moderator for a high school lost and found website.
You must check if submissions are appropriate. REJECT content that contains:
- Profanity, slurs, or offensive language
- Inappropriate or adult content
- Personal attacks or bullying
- Spam or irrelevant content (not a real lost/found item)
- Dangerous items (weapons, drugs, etc.)
- Personal information like phone numbers or addresses

Respond ONLY with:
APPROVED: true or false
REASON: brief explanation (one sentence)`

const imageModerationPrompt = `You are an image content moderator for a high school lost and found website.
You must check if uploaded images are appropriate for a school environment. REJECT images that contain:
- Nudity or sexually suggestive content
- Violence, gore, or graphic content
- Weapons, drugs, or drug paraphernalia
- Offensive gestures, hate symbols, or inappropriate text
- Personal information visible (IDs, credit cards, addresses)
- Memes, jokes, or non-item images (must be a real lost/found item)
- Scary, disturbing, or inappropriate content for minors

APPROVE images that show:
- Lost/found items like water bottles, bags, electronics, clothing, books
- Normal everyday objects appropriate for a school setting

Respond ONLY with:
APPROVED: true or false
REASON: brief explanation (one sentence)`

// handleModerateContent checks a text submission. Fails open: a disabled or
// broken AI path approves the submission rather than blocking it.
func (a *API) handleModerateContent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
	}
	if !decodeBody(w, r, &req, maxBodySize) {
		return
	}

	if !a.aiReady(providerGroq) {
		jsonResp(w, http.StatusOK, verdict.Moderation{Approved: true, Reason: "AI moderation disabled"})
		return
	}

	resp, err := a.llm.Complete(r.Context(), providerGroq, llm.Request{
		Model: a.ai.SearchModel,
		Messages: []llm.Message{
			{Role: "system", Content: contentModerationPrompt},
			{Role: "user", Content: fmt.Sprintf("Check this submission:\nTitle: %s\nCategory: %s\nDescription: %s",
				req.Title, req.Category, req.Description)},
		},
		Temperature: 0.1,
		MaxTokens:   100,
	})
	if err != nil {
		slog.Error("content moderation failed", "error", err)
		jsonResp(w, http.StatusOK, verdict.Moderation{Approved: true, Reason: "Moderation check skipped"})
		return
	}

	v := verdict.ParseModeration(resp.Content, verdict.Moderation{Approved: true, Reason: "Content approved"})
	jsonResp(w, http.StatusOK, v)
}

// handleModerateImage checks an uploaded image with the vision-capable
// moderation model. Same fail-open policy as text moderation.
func (a *API) handleModerateImage(w http.ResponseWriter, r *http.Request) {
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

	if !a.aiReady(providerOpenAI) {
		jsonResp(w, http.StatusOK, verdict.Moderation{Approved: true, Reason: "Image moderation disabled"})
		return
	}

	resp, err := a.llm.Complete(r.Context(), providerOpenAI, llm.Request{
		Model: a.ai.ModerationModel,
		Messages: []llm.Message{
			{Role: "system", Content: imageModerationPrompt},
			{Role: "user", Parts: []llm.Part{
				llm.TextPart("Check if this image is appropriate for a high school lost and found website:"),
				llm.ImagePart(req.ImageURL),
			}},
		},
		MaxTokens: 100,
	})
	if err != nil {
		slog.Error("image moderation failed", "error", err)
		jsonResp(w, http.StatusOK, verdict.Moderation{Approved: true, Reason: "Image moderation check skipped"})
		return
	}

	v := verdict.ParseModeration(resp.Content, verdict.Moderation{Approved: true, Reason: "Image approved"})
	jsonResp(w, http.StatusOK, v)
}
