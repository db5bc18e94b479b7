package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "github.com/janiskrasemann/whisker/internal/errors"
)

func TestCatFactFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fact" {
			t.Errorf("expected path /fact, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"fact": "Cats sleep 70% of their lives", "length": 29}`))
	}))
	defer server.Close()

	cf := NewCatFact(server.Client(), server.URL+"/")

	resp, err := cf.GetCatFact(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.IsSuccessful() {
		t.Fatalf("expected successful response, got status %d", resp.StatusCode)
	}
	if resp.Body == nil {
		t.Fatal("expected a body")
	}
	if resp.Body.Fact != "Cats sleep 70% of their lives" {
		t.Errorf("unexpected fact %q", resp.Body.Fact)
	}
	if resp.Body.Length != 29 {
		t.Errorf("expected length 29, got %d", resp.Body.Length)
	}
}

func TestCatFactNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"fact": "ignored"}`))
	}))
	defer server.Close()

	resp, err := NewCatFact(server.Client(), server.URL).GetCatFact(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.IsSuccessful() {
		t.Error("expected unsuccessful response")
	}
	if resp.Body != nil {
		t.Errorf("expected nil body, got %+v", resp.Body)
	}
}

func TestCatFactNullBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	}))
	defer server.Close()

	resp, err := NewCatFact(server.Client(), server.URL).GetCatFact(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Body != nil {
		t.Errorf("expected nil body, got %+v", resp.Body)
	}
}

func TestCatFactTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := &http.Client{Timeout: 50 * time.Millisecond}
	_, err := NewCatFact(client, server.URL).GetCatFact(context.Background())
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if kind := apperrors.Classify(err); kind != apperrors.KindTimeout {
		t.Errorf("expected timeout kind, got %v (%v)", kind, err)
	}
}

func TestCatFactMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"fact": `))
	}))
	defer server.Close()

	_, err := NewCatFact(server.Client(), server.URL).GetCatFact(context.Background())
	if err == nil {
		t.Fatal("expected decode error")
	}
	if kind := apperrors.Classify(err); kind != apperrors.KindTransport {
		t.Errorf("expected transport kind, got %v", kind)
	}
}

func TestCatFactDefaultBaseURL(t *testing.T) {
	cf := NewCatFact(http.DefaultClient, "")
	if cf.baseURL != defaultCatFactURL {
		t.Errorf("expected %q, got %q", defaultCatFactURL, cf.baseURL)
	}
}
