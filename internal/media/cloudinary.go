// Package media uploads listing images to the hosted CDN and returns their
// public URLs.
package media

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UploadResult is the stored image's public URL and CDN identifier.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// Uploader accepts a base64-encoded image and stores it on the CDN.
type Uploader interface {
	Upload(ctx context.Context, imageBase64 string) (*UploadResult, error)
}

// Cloudinary implements Uploader against the Cloudinary upload REST API using
// signed uploads.
type Cloudinary struct {
	cloudName string
	apiKey    string
	apiSecret string
	folder    string
	baseURL   string
	client    *http.Client
}

func NewCloudinary(cloudName, apiKey, apiSecret, folder string) *Cloudinary {
	return &Cloudinary{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		folder:    folder,
		baseURL:   "https://api.cloudinary.com",
		client:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Configured reports whether credentials are present.
func (c *Cloudinary) Configured() bool {
	return c.cloudName != "" && c.apiKey != "" && c.apiSecret != ""
}

// Upload sends the image as a JPEG data URI and returns its public URL.
func (c *Cloudinary) Upload(ctx context.Context, imageBase64 string) (*UploadResult, error) {
	publicID := "lostfound/" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]

	params := map[string]string{
		"public_id": publicID,
		"folder":    c.folder,
		"timestamp": strconv.FormatInt(time.Now().Unix(), 10),
	}

	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}
	form.Set("file", "data:image/jpeg;base64,"+imageBase64)
	form.Set("api_key", c.apiKey)
	form.Set("signature", c.sign(params))

	endpoint := fmt.Sprintf("%s/v1_1/%s/image/upload", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("cloudinary upload: HTTP %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var result struct {
		SecureURL string `json:"secure_url"`
		PublicID  string `json:"public_id"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("cloudinary upload: decoding response: %w", err)
	}
	return &UploadResult{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

// sign computes the Cloudinary request signature: the SHA-1 of the
// alphabetically-sorted parameter string with the API secret appended. The
// file, api_key and signature fields are excluded.
func (c *Cloudinary) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.apiSecret))
	return hex.EncodeToString(sum[:])
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
