package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func newTestClient(retries int) IClient {
	return NewClient(ClientConfig{
		Timeout:   time.Second,
		Retries:   retries,
		RetryWait: time.Millisecond,
	})
}

func TestRetry(t *testing.T) {
	t.Run("post body is re-sent intact on each attempt", func(t *testing.T) {
		var mu sync.Mutex
		var bodies []string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			payload, _ := io.ReadAll(r.Body)
			mu.Lock()
			bodies = append(bodies, string(payload))
			attempts := len(bodies)
			mu.Unlock()
			if attempts < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := newTestClient(2)
		_, status, err := client.Post(context.Background(), srv.URL, map[string]string{"q": "widget"}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != http.StatusOK {
			t.Errorf("status mismatch: got %d, want 200", status)
		}

		mu.Lock()
		defer mu.Unlock()
		if len(bodies) != 3 {
			t.Fatalf("attempt count mismatch: got %d, want 3", len(bodies))
		}
		want := `{"q":"widget"}`
		for i, body := range bodies {
			if body != want {
				t.Errorf("attempt %d body mismatch: got %q, want %q", i+1, body, want)
			}
		}
	})

	t.Run("form body survives retries", func(t *testing.T) {
		var mu sync.Mutex
		var attempts int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				t.Errorf("ParseForm: %v", err)
			}
			mu.Lock()
			attempts++
			n := attempts
			mu.Unlock()
			if n == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			if got := r.PostFormValue("name"); got != "widget" {
				t.Errorf("form value mismatch on attempt %d: got %q, want %q", n, got, "widget")
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := newTestClient(1)
		_, status, err := client.PostForm(context.Background(), srv.URL, map[string]string{"name": "widget"}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != http.StatusOK {
			t.Errorf("status mismatch: got %d, want 200", status)
		}
	})

	t.Run("exhausted retries return the last response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		client := newTestClient(1)
		_, status, err := client.Get(context.Background(), srv.URL, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != http.StatusServiceUnavailable {
			t.Errorf("status mismatch: got %d, want 503", status)
		}
	})
}
