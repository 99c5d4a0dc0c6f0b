package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/marvinridge/lostfound/internal/llm"
	"github.com/marvinridge/lostfound/internal/store"
	"github.com/marvinridge/lostfound/internal/verdict"
)

// maxSearchResults caps the result set for both the AI path and the
// substring fallback.
const maxSearchResults = 10

// maxPromptItems bounds how many items are listed in the model's context.
// Inherited scaling limit: items beyond the first 30 are invisible to the
// AI matcher (the substring fallback still sees them).
const maxPromptItems = 30

const searchPrompt = `You are a search assistant for a lost and found system.
1. Correct any spelling errors in the user's search query.
2. Match items from the list that are relevant.
3. Return ONLY in this exact format:
CORRECTED: [corrected search term]
MATCHES: [comma-separated list of matching IDs, or "none" if no matches]`

type searchResponse struct {
	Results        []store.Item `json:"results"`
	CorrectedQuery string       `json:"corrected_query"`
}

// handleSearch runs the AI-assisted search over approved items, falling back
// to a plain substring search when the AI path is disabled or fails. Results
// keep whatever order the store returned.
func (a *API) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
	}
	if !decodeBody(w, r, &req, maxBodySize) {
		return
	}
	if req.Query == "" {
		jsonError(w, "query is required", http.StatusBadRequest)
		return
	}

	if !a.aiReady(providerGroq) {
		jsonResp(w, http.StatusOK, a.fallbackSearch(r, req.Query))
		return
	}

	items, err := a.items.Approved(r.Context())
	if err != nil {
		slog.Error("loading items for search", "error", err)
		jsonResp(w, http.StatusOK, a.fallbackSearch(r, req.Query))
		return
	}
	if len(items) == 0 {
		jsonResp(w, http.StatusOK, searchResponse{Results: []store.Item{}, CorrectedQuery: req.Query})
		return
	}

	prompt := items
	if len(prompt) > maxPromptItems {
		prompt = prompt[:maxPromptItems]
	}
	var sb strings.Builder
	for _, item := range prompt {
		fmt.Fprintf(&sb, "ID:%s | %s | %s | %s\n", item.ID, item.Title, item.Category, item.Location)
	}

	resp, err := a.llm.Complete(r.Context(), providerGroq, llm.Request{
		Model: a.ai.SearchModel,
		Messages: []llm.Message{
			{Role: "system", Content: searchPrompt},
			{Role: "user", Content: fmt.Sprintf("Items list:\n%s\nUser search: %q", sb.String(), req.Query)},
		},
		Temperature: 0.3,
		MaxTokens:   200,
	})
	if err != nil {
		slog.Error("AI search failed", "error", err)
		jsonResp(w, http.StatusOK, a.fallbackSearch(r, req.Query))
		return
	}

	parsed := verdict.ParseSearch(resp.Content, req.Query)

	matched := make(map[string]bool, len(parsed.MatchIDs))
	for _, id := range parsed.MatchIDs {
		matched[id] = true
	}
	results := make([]store.Item, 0, len(parsed.MatchIDs))
	for _, item := range items {
		if matched[item.ID] {
			results = append(results, item)
		}
	}

	// The model found nothing usable: substring-filter with the corrected
	// query within the same call.
	if len(results) == 0 {
		results = filterItems(items, parsed.Corrected, true)
	}
	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}

	jsonResp(w, http.StatusOK, searchResponse{Results: results, CorrectedQuery: parsed.Corrected})
}

// fallbackSearch is the non-AI path: case-insensitive substring match over
// title and description of approved items, original query echoed back.
func (a *API) fallbackSearch(r *http.Request, query string) searchResponse {
	items, err := a.items.Approved(r.Context())
	if err != nil {
		slog.Error("fallback search failed", "error", err)
		return searchResponse{Results: []store.Item{}, CorrectedQuery: query}
	}

	results := filterItems(items, query, false)
	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	return searchResponse{Results: results, CorrectedQuery: query}
}

// filterItems returns the items whose title or description (and category,
// when includeCategory is set) contain the query, case-insensitively.
func filterItems(items []store.Item, query string, includeCategory bool) []store.Item {
	q := strings.ToLower(query)
	results := make([]store.Item, 0)
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), q) ||
			strings.Contains(strings.ToLower(item.Description), q) ||
			(includeCategory && strings.Contains(strings.ToLower(item.Category), q)) {
			results = append(results, item)
		}
	}
	return results
}
