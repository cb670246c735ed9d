package wordsvc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSolutionForDate(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":123,"solution":"crane","print_date":"2026-08-28"}`))
	}))
	defer ts.Close()

	c := New(ts.URL, 5, ts.Client())
	word, err := c.SolutionForDate(context.Background(), "2026-08-28")
	if err != nil {
		t.Fatalf("SolutionForDate: %v", err)
	}
	if word != "CRANE" {
		t.Fatalf("word = %q, want CRANE", word)
	}
	if gotPath != "/svc/wordle/v2/2026-08-28.json" {
		t.Fatalf("request path = %q", gotPath)
	}
}

func TestSolutionForDateFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantBad bool
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", http.StatusNotFound)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"solution":`))
			},
		},
		{
			name: "missing solution field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"id":1}`))
			},
			wantBad: true,
		},
		{
			name: "wrong length solution",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"solution":"hi"}`))
			},
			wantBad: true,
		},
		{
			name: "non-alphabetic solution",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"solution":"cr4ne"}`))
			},
			wantBad: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			c := New(ts.URL, 5, ts.Client())
			if _, err := c.SolutionForDate(context.Background(), "2026-08-28"); err == nil {
				t.Fatal("expected error")
			} else if tt.wantBad && !errors.Is(err, ErrBadSolution) {
				t.Fatalf("err = %v, want ErrBadSolution", err)
			}
		})
	}
}

func TestNetworkErrorSurfaces(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // refuse connections

	c := New(ts.URL, 5, nil)
	if _, err := c.SolutionForDate(context.Background(), "2026-08-28"); err == nil {
		t.Fatal("expected connection error")
	}
}
