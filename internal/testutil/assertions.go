package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
)

// ResponseAssertion provides fluent assertions for HTTP responses.
type ResponseAssertion struct {
	t        *testing.T
	resp     *http.Response
	body     string
	bodyRead bool
}

// AssertResponse creates a new ResponseAssertion for the given response.
func AssertResponse(t *testing.T, resp *http.Response) *ResponseAssertion {
	t.Helper()
	return &ResponseAssertion{
		t:    t,
		resp: resp,
	}
}

// readBody lazily reads the response body.
func (ra *ResponseAssertion) readBody() string {
	if !ra.bodyRead {
		defer ra.resp.Body.Close()
		body, err := io.ReadAll(ra.resp.Body)
		if err != nil {
			ra.t.Fatalf("Failed to read response body: %v", err)
		}
		ra.body = string(body)
		ra.bodyRead = true
	}
	return ra.body
}

// Status asserts the response has the expected status code.
func (ra *ResponseAssertion) Status(code int) *ResponseAssertion {
	ra.t.Helper()
	if ra.resp.StatusCode != code {
		ra.t.Errorf("Expected status %d, got %d", code, ra.resp.StatusCode)
	}
	return ra
}

// StatusOK asserts the response has status 200.
func (ra *ResponseAssertion) StatusOK() *ResponseAssertion {
	return ra.Status(http.StatusOK)
}

// ContentTypeJSON asserts the response is JSON.
func (ra *ResponseAssertion) ContentTypeJSON() *ResponseAssertion {
	ra.t.Helper()
	ct := ra.resp.Header.Get("Content-Type")
	if !strings.Contains(ct, "application/json") {
		ra.t.Errorf("Expected Content-Type containing %q, got %q", "application/json", ct)
	}
	return ra
}

// Contains asserts the response body contains the given string.
func (ra *ResponseAssertion) Contains(substr string) *ResponseAssertion {
	ra.t.Helper()
	body := ra.readBody()
	if !strings.Contains(body, substr) {
		ra.t.Errorf("Expected body to contain %q, but it didn't.\nBody (first 500 chars): %s",
			substr, truncate(body, 500))
	}
	return ra
}

// ContainsAll asserts the response body contains all the given strings.
func (ra *ResponseAssertion) ContainsAll(substrs ...string) *ResponseAssertion {
	ra.t.Helper()
	body := ra.readBody()
	for _, substr := range substrs {
		if !strings.Contains(body, substr) {
			ra.t.Errorf("Expected body to contain %q, but it didn't.\nBody (first 500 chars): %s",
				substr, truncate(body, 500))
		}
	}
	return ra
}

// NotContains asserts the response body does not contain the given string.
func (ra *ResponseAssertion) NotContains(substr string) *ResponseAssertion {
	ra.t.Helper()
	body := ra.readBody()
	if strings.Contains(body, substr) {
		ra.t.Errorf("Expected body NOT to contain %q, but it did", substr)
	}
	return ra
}

// JSONField decodes the body as a JSON object and asserts the named
// top-level field has the expected value. Values are compared through
// their string form, so numeric expectations may be given as int or
// float.
func (ra *ResponseAssertion) JSONField(key string, want any) *ResponseAssertion {
	ra.t.Helper()
	body := ra.readBody()

	var obj map[string]any
	if err := json.Unmarshal([]byte(body), &obj); err != nil {
		ra.t.Errorf("Expected a JSON object body, got decode error %v.\nBody (first 500 chars): %s",
			err, truncate(body, 500))
		return ra
	}

	got, ok := obj[key]
	if !ok {
		ra.t.Errorf("Expected JSON field %q, but it was absent.\nBody (first 500 chars): %s",
			key, truncate(body, 500))
		return ra
	}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		ra.t.Errorf("Expected JSON field %q = %v, got %v", key, want, got)
	}
	return ra
}

// HasHeader asserts the response carries a non-empty value for the
// given header.
func (ra *ResponseAssertion) HasHeader(name string) *ResponseAssertion {
	ra.t.Helper()
	if ra.resp.Header.Get(name) == "" {
		ra.t.Errorf("Expected a non-empty %q response header", name)
	}
	return ra
}

// Body returns the response body as a string.
func (ra *ResponseAssertion) Body() string {
	return ra.readBody()
}

// truncate truncates a string to the given length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
