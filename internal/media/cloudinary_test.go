package media

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestCloudinary(srvURL string) *Cloudinary {
	c := NewCloudinary("demo-cloud", "key123", "secret456", "marvin_ridge_lf")
	c.baseURL = srvURL
	return c
}

func TestCloudinaryUpload(t *testing.T) {
	var gotPath string
	var gotForm map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		r.ParseForm()
		gotForm = r.PostForm
		io.WriteString(w, `{"secure_url":"https://res.cloudinary.com/demo-cloud/image/upload/v1/lostfound/abc.jpg","public_id":"lostfound/abc"}`)
	}))
	defer srv.Close()

	c := newTestCloudinary(srv.URL)
	result, err := c.Upload(context.Background(), "aGVsbG8=")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if result.PublicID != "lostfound/abc" || !strings.HasPrefix(result.URL, "https://res.cloudinary.com/") {
		t.Errorf("got %+v", result)
	}

	if gotPath != "/v1_1/demo-cloud/image/upload" {
		t.Errorf("path = %q", gotPath)
	}
	if got := gotForm["file"]; len(got) != 1 || got[0] != "data:image/jpeg;base64,aGVsbG8=" {
		t.Errorf("file field = %v", gotForm["file"])
	}
	if got := gotForm["api_key"]; len(got) != 1 || got[0] != "key123" {
		t.Errorf("api_key field = %v", gotForm["api_key"])
	}
	if got := gotForm["folder"]; len(got) != 1 || got[0] != "marvin_ridge_lf" {
		t.Errorf("folder field = %v", gotForm["folder"])
	}
	publicID := gotForm["public_id"]
	if len(publicID) != 1 || !strings.HasPrefix(publicID[0], "lostfound/") || len(publicID[0]) != len("lostfound/")+12 {
		t.Errorf("public_id field = %v", publicID)
	}

	// The signature covers the sorted params (without file/api_key/signature)
	// with the secret appended.
	raw := "folder=marvin_ridge_lf&public_id=" + publicID[0] + "&timestamp=" + gotForm["timestamp"][0] + "secret456"
	sum := sha1.Sum([]byte(raw))
	if got := gotForm["signature"]; len(got) != 1 || got[0] != hex.EncodeToString(sum[:]) {
		t.Errorf("signature = %v, want %s", gotForm["signature"], hex.EncodeToString(sum[:]))
	}
}

func TestCloudinaryUploadHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(401)
		io.WriteString(w, `{"error":{"message":"Invalid Signature"}}`)
	}))
	defer srv.Close()

	c := newTestCloudinary(srv.URL)
	if _, err := c.Upload(context.Background(), "aGVsbG8="); err == nil {
		t.Fatal("expected error for HTTP 401")
	}
}

func TestCloudinaryConfigured(t *testing.T) {
	if !NewCloudinary("c", "k", "s", "f").Configured() {
		t.Error("expected configured")
	}
	if NewCloudinary("c", "", "s", "f").Configured() {
		t.Error("missing api key should not be configured")
	}
}
