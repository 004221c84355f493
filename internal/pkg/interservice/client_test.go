package interservice

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/victoriayuechen/tarecruit/internal/pkg/apperrors"
)

func newTestClient(server *httptest.Server) *Client {
	return NewClientWithHTTPClient(server.Client(), zerolog.Nop())
}

func TestDoDecodesEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"code":"CSE1305","name":"Algorithms"}}`))
	}))
	defer server.Close()

	var out struct {
		Data struct {
			Code string `json:"code"`
			Name string `json:"name"`
		} `json:"data"`
	}

	client := newTestClient(server)
	if err := client.Get(context.Background(), server.URL, "tok", &out); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if out.Data.Code != "CSE1305" || out.Data.Name != "Algorithms" {
		t.Errorf("decoded %+v, want code CSE1305 and name Algorithms", out.Data)
	}
}

func TestDoForwardsTokenVerbatim(t *testing.T) {
	var gotAuth, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := newTestClient(server)
	body := map[string]string{"username": "jdoe"}
	if err := client.Post(context.Background(), server.URL, body, "Bearer abc.def.ghi", nil); err != nil {
		t.Fatalf("Post() error: %v", err)
	}

	// The header goes out exactly as received, prefix included; this client
	// never rewrites or mints credentials.
	if gotAuth != "Bearer abc.def.ghi" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer abc.def.ghi")
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
}

func TestDoOmitsEmptyToken(t *testing.T) {
	var hadAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
	}))
	defer server.Close()

	client := newTestClient(server)
	if err := client.Get(context.Background(), server.URL, "", nil); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if hadAuth {
		t.Error("Authorization header sent for an empty token")
	}
}

func TestDoNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`course already has enough TAs`))
	}))
	defer server.Close()

	client := newTestClient(server)
	err := client.Get(context.Background(), server.URL, "tok", nil)
	if !errors.Is(err, apperrors.ErrRemoteCallFailed) {
		t.Fatalf("Get() error = %v, want ErrRemoteCallFailed", err)
	}

	// The peer's diagnostic body travels inside the error text.
	if !strings.Contains(err.Error(), "409") || !strings.Contains(err.Error(), "enough TAs") {
		t.Errorf("error %q should carry the status and the response body", err)
	}
}

func TestDoUndecodableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	var out map[string]interface{}
	client := newTestClient(server)
	err := client.Get(context.Background(), server.URL, "tok", &out)
	if !errors.Is(err, apperrors.ErrRemoteCallFailed) {
		t.Errorf("Get() error = %v, want ErrRemoteCallFailed", err)
	}
}

func TestDoConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(DefaultTimeout, zerolog.Nop())
	err := client.Get(context.Background(), url, "tok", nil)
	if !errors.Is(err, apperrors.ErrRemoteCallFailed) {
		t.Errorf("Get() error = %v, want ErrRemoteCallFailed", err)
	}
}

func TestDoIgnoresBodyWhenOutNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":"ignored"}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	if err := client.Get(context.Background(), server.URL, "tok", nil); err != nil {
		t.Errorf("Get() error: %v", err)
	}
}
