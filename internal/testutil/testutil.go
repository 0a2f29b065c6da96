// Package testutil provides testing utilities for the scoring server.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestServer wraps httptest.Server with convenience methods.
type TestServer struct {
	Server  *httptest.Server
	BaseURL string
	t       *testing.T
}

// NewTestServer creates a new test server around the given router.
func NewTestServer(t *testing.T, router http.Handler) *TestServer {
	t.Helper()

	server := httptest.NewServer(router)

	return &TestServer{
		Server:  server,
		BaseURL: server.URL,
		t:       t,
	}
}

// GET performs a GET request to the given path.
func (ts *TestServer) GET(path string) *http.Response {
	ts.t.Helper()

	resp, err := http.Get(ts.BaseURL + path)
	if err != nil {
		ts.t.Fatalf("GET %s failed: %v", path, err)
	}
	return resp
}

// POST performs a POST request with the given body.
func (ts *TestServer) POST(path string, contentType string, body io.Reader) *http.Response {
	ts.t.Helper()

	resp, err := http.Post(ts.BaseURL+path, contentType, body)
	if err != nil {
		ts.t.Fatalf("POST %s failed: %v", path, err)
	}
	return resp
}

// PATCHJSON performs a PATCH request with a JSON-encoded body.
func (ts *TestServer) PATCHJSON(path string, payload any) *http.Response {
	ts.t.Helper()

	data, err := json.Marshal(payload)
	if err != nil {
		ts.t.Fatalf("marshal PATCH payload: %v", err)
	}

	req, err := http.NewRequest(http.MethodPatch, ts.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		ts.t.Fatalf("build PATCH %s: %v", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		ts.t.Fatalf("PATCH %s failed: %v", path, err)
	}
	return resp
}

// Close shuts down the test server.
func (ts *TestServer) Close() {
	ts.Server.Close()
}

// DecodeJSON reads the response body into v.
func DecodeJSON(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
}
