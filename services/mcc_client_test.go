package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLookupSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/mcc/5411" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code": 5411, "description": "Grocery Stores, Supermarkets"}`))
	}))
	defer server.Close()

	c := NewMCCClient(server.URL, 5*time.Second)
	if err := c.Lookup(context.Background(), "5411"); err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
}

func TestLookupNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "MCC '9999' not found."}`, http.StatusNotFound)
	}))
	defer server.Close()

	c := NewMCCClient(server.URL, 5*time.Second)
	if err := c.Lookup(context.Background(), "9999"); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestLookupMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": `))
	}))
	defer server.Close()

	c := NewMCCClient(server.URL, 5*time.Second)
	if err := c.Lookup(context.Background(), "5411"); err == nil {
		t.Fatal("expected error for malformed response body")
	}
}

func TestLookupConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed before the request is made

	c := NewMCCClient(server.URL, time.Second)
	if err := c.Lookup(context.Background(), "5411"); err == nil {
		t.Fatal("expected error when the server is unreachable")
	}
}

func TestLookupTimeout(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer func() {
		close(block)
		server.Close()
	}()

	c := NewMCCClient(server.URL, 50*time.Millisecond)
	if err := c.Lookup(context.Background(), "5411"); err == nil {
		t.Fatal("expected timeout error")
	}
}
