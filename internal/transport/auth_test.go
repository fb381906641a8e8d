package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func newRequest(t *testing.T) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "http://example.com/api?existing=1", nil)
	if err != nil {
		t.Fatal(err)
	}
	return req
}

func TestNoAuth(t *testing.T) {
	req := newRequest(t)
	(&NoAuth{}).Apply(req)

	if req.Header.Get("Authorization") != "" {
		t.Error("NoAuth should not set Authorization header")
	}
}

func TestBasicAuth(t *testing.T) {
	req := newRequest(t)
	(&BasicAuth{Login: "user", Password: "pass"}).Apply(req)

	login, password, ok := req.BasicAuth()
	if !ok {
		t.Fatal("Expected basic auth to be set")
	}
	if login != "user" || password != "pass" {
		t.Errorf("Unexpected credentials: %s/%s", login, password)
	}
}

func TestHeaderAuthWithPrefix(t *testing.T) {
	req := newRequest(t)
	(&HeaderAuth{Prefix: "GoogleLogin auth=", Token: "tok123"}).Apply(req)

	got := req.Header.Get("Authorization")
	if got != "GoogleLogin auth=tok123" {
		t.Errorf("Expected GoogleLogin header, got %q", got)
	}
}

func TestHeaderAuthCustomHeader(t *testing.T) {
	req := newRequest(t)
	(&HeaderAuth{Header: "X-Api-Token", Token: "tok"}).Apply(req)

	if req.Header.Get("X-Api-Token") != "tok" {
		t.Error("Expected token in custom header")
	}
}

func TestQueryAuthPreservesExistingParams(t *testing.T) {
	req := newRequest(t)
	(&QueryAuth{Param: "key", Token: "secret"}).Apply(req)

	query := req.URL.Query()
	if query.Get("key") != "secret" {
		t.Error("Expected key parameter to be set")
	}
	if query.Get("existing") != "1" {
		t.Error("Existing query parameters should be preserved")
	}
}

func TestClientSetsUserAgentAndAuth(t *testing.T) {
	var gotUA, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	client := New(&HeaderAuth{Prefix: "GoogleLogin auth=", Token: "tok"})
	resp, err := client.Get(t.Context(), server.URL)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if gotUA == "" {
		t.Error("Expected User-Agent to be set")
	}
	if gotAuth != "GoogleLogin auth=tok" {
		t.Errorf("Expected auth header to be applied, got %q", gotAuth)
	}
}
