package api

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"

	"github.com/marvinridge/lostfound/internal/imaging"
)

// maxUploadBody bounds the JSON body of the upload endpoint; base64 inflates
// the image by a third on top of imaging.MaxUploadBytes.
const maxUploadBody = 12 << 20

// handleUploadImage accepts a base64 image, normalizes it, and stores it on
// the CDN. Upload failure is the one AI-adjacent path that surfaces a 500.
func (a *API) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ImageBase64 string `json:"image_base64"`
	}
	if !decodeBody(w, r, &req, maxUploadBody) {
		return
	}
	if req.ImageBase64 == "" {
		jsonError(w, "image_base64 is required", http.StatusBadRequest)
		return
	}

	// Strip a data URI prefix if present ("data:image/png;base64,...").
	payload := req.ImageBase64
	if idx := strings.Index(payload, ","); idx >= 0 {
		payload = payload[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		jsonError(w, "invalid base64 image data", http.StatusBadRequest)
		return
	}

	normalized, err := imaging.Normalize(raw)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if a.uploader == nil {
		jsonError(w, "Failed to upload image", http.StatusInternalServerError)
		return
	}
	result, err := a.uploader.Upload(r.Context(), base64.StdEncoding.EncodeToString(normalized))
	if err != nil {
		slog.Error("image upload failed", "error", err)
		jsonError(w, "Failed to upload image", http.StatusInternalServerError)
		return
	}

	jsonResp(w, http.StatusOK, result)
}
