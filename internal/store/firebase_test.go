package store

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFirebaseGetNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/items/nope.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		io.WriteString(w, "null")
	}))
	defer srv.Close()

	fb := NewFirebase(srv.URL, "")
	var item Item
	if err := fb.Get(context.Background(), "items/nope", &item); err != ErrNotFound {
		t.Errorf("expected ErrNotFound for null body, got %v", err)
	}
}

func TestFirebaseRoundTrip(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		switch r.Method {
		case "POST":
			io.WriteString(w, `{"name":"-PushKey123"}`)
		default:
			io.WriteString(w, `{"title":"Bottle","status":"APPROVED"}`)
		}
	}))
	defer srv.Close()

	fb := NewFirebase(srv.URL, "")
	ctx := context.Background()

	var item Item
	if err := fb.Get(ctx, "items/a1", &item); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if item.Title != "Bottle" {
		t.Errorf("got %+v", item)
	}

	if err := fb.Set(ctx, "items/a1", Item{Title: "Bottle"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if gotMethod != "PUT" || gotPath != "/items/a1.json" {
		t.Errorf("Set sent %s %s", gotMethod, gotPath)
	}

	if err := fb.Update(ctx, "claims/c1", map[string]any{"status": StatusPending}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if gotMethod != "PATCH" {
		t.Errorf("Update sent %s, want PATCH", gotMethod)
	}
	var patch map[string]string
	if err := json.Unmarshal(gotBody, &patch); err != nil || patch["status"] != StatusPending {
		t.Errorf("Update body = %s", gotBody)
	}

	key, err := fb.Push(ctx, "items", Item{Title: "New"})
	if err != nil {
		t.Fatalf("Push: %v", err)
	}
	if key != "-PushKey123" {
		t.Errorf("Push key = %q", key)
	}

	if err := fb.Delete(ctx, "items/a1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if gotMethod != "DELETE" {
		t.Errorf("Delete sent %s", gotMethod)
	}
}

func TestFirebaseAuthToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("auth") != "secret" {
			t.Errorf("missing auth param: %s", r.URL.String())
		}
		io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	fb := NewFirebase(srv.URL, "secret")
	var out map[string]any
	_ = fb.Get(context.Background(), "items", &out)
}
