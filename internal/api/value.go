package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/marvinridge/lostfound/internal/llm"
	"github.com/marvinridge/lostfound/internal/verdict"
)

// The classifier is the hosted model, steered with categorical few-shot
// examples; this side only builds the prompt and parses the reply.
const valuePrompt = `You are an appraiser for a high school lost and found.
Decide whether an item is HIGH VALUE. High-value items get extra verification before release.

HIGH VALUE examples:
- Electronics: phones, laptops, tablets, AirPods, smartwatches, calculators (TI-84 and up)
- Jewelry and watches
- Car keys or key fobs
- Wallets, purses, or anything containing money or cards
- Prescription glasses or medical devices

LOW VALUE examples:
- Water bottles, lunch boxes
- Clothing: hoodies, jackets, hats, shoes
- School supplies: notebooks, pencil cases, folders
- Umbrellas, hair accessories

Respond ONLY with:
HIGH_VALUE: true or false
REASON: brief explanation (one sentence)`

// handleEvaluateValue flags high-value items. Fails open to low value: an AI
// outage never adds verification friction on its own.
func (a *API) handleEvaluateValue(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
	}
	if !decodeBody(w, r, &req, maxBodySize) {
		return
	}

	if !a.aiReady(providerGroq) {
		jsonResp(w, http.StatusOK, verdict.Value{
			HighValue: false,
			Reason:    "AI disabled, defaulting to low value",
		})
		return
	}

	resp, err := a.llm.Complete(r.Context(), providerGroq, llm.Request{
		Model: a.ai.SearchModel,
		Messages: []llm.Message{
			{Role: "system", Content: valuePrompt},
			{Role: "user", Content: fmt.Sprintf("Evaluate this item:\nTitle: %s\nCategory: %s\nDescription: %s",
				req.Title, req.Category, req.Description)},
		},
		Temperature: 0.1,
		MaxTokens:   100,
	})
	if err != nil {
		slog.Error("value evaluation failed", "error", err)
		jsonResp(w, http.StatusOK, verdict.Value{
			HighValue: false,
			Reason:    "Value check skipped, defaulting to low value",
		})
		return
	}

	v := verdict.ParseValue(resp.Content, verdict.Value{HighValue: false, Reason: "Item evaluated"})
	jsonResp(w, http.StatusOK, v)
}
