package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Firebase talks to a Firebase Realtime Database over its REST interface.
// Every path maps to "{base}/{path}.json"; a GET on an absent path returns
// the JSON literal null.
type Firebase struct {
	baseURL string
	auth    string // legacy database secret or ID token, optional
	client  *http.Client
}

func NewFirebase(baseURL, auth string) *Firebase {
	return &Firebase{
		baseURL: strings.TrimRight(baseURL, "/"),
		auth:    auth,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (f *Firebase) Get(ctx context.Context, path string, dst any) error {
	body, err := f.do(ctx, "GET", path, nil)
	if err != nil {
		return err
	}
	if isNull(body) {
		return ErrNotFound
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

func (f *Firebase) Set(ctx context.Context, path string, value any) error {
	_, err := f.do(ctx, "PUT", path, value)
	return err
}

func (f *Firebase) Update(ctx context.Context, path string, patch map[string]any) error {
	_, err := f.do(ctx, "PATCH", path, patch)
	return err
}

func (f *Firebase) Push(ctx context.Context, path string, value any) (string, error) {
	body, err := f.do(ctx, "POST", path, value)
	if err != nil {
		return "", err
	}
	var resp struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decoding push response: %w", err)
	}
	return resp.Name, nil
}

func (f *Firebase) Delete(ctx context.Context, path string) error {
	_, err := f.do(ctx, "DELETE", path, nil)
	return err
}

func (f *Firebase) do(ctx context.Context, method, path string, value any) ([]byte, error) {
	url := f.baseURL + "/" + strings.Trim(path, "/") + ".json"
	if f.auth != "" {
		url += "?auth=" + f.auth
	}

	var reqBody io.Reader
	if value != nil {
		payload, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", path, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, err
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("firebase %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("firebase %s %s: %w", method, path, err)
	}
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("firebase %s %s: HTTP %d: %s", method, path, resp.StatusCode, trim(body, 200))
	}
	return body, nil
}

func isNull(body []byte) bool {
	return string(bytes.TrimSpace(body)) == "null"
}

func trim(b []byte, n int) string {
	s := string(b)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
