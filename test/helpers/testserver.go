package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tejaIG/sevak-ai-poc/internal/app"
	"github.com/tejaIG/sevak-ai-poc/internal/config"
	"github.com/tejaIG/sevak-ai-poc/internal/storage"
)

// TestServer runs the full HTTP stack against a fresh in-memory store, so
// every test starts from a clean state and can run in parallel.
type TestServer struct {
	Server *httptest.Server
	Store  *storage.MemoryStore
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	cfg := config.GetConfig()
	store := storage.NewMemoryStore()
	router := app.SetupRouter(cfg, store)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server: server,
		Store:  store,
	}
}

func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("failed to send request: %v", err)
	}

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}
