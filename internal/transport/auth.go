package transport

import "net/http"

// Authenticator applies authentication to HTTP requests.
type Authenticator interface {
	Apply(req *http.Request)
}

// NoAuth implements no authentication.
type NoAuth struct{}

// Apply implements the Authenticator interface for NoAuth.
func (a *NoAuth) Apply(_ *http.Request) {
	// No authentication applied
}

// BasicAuth implements HTTP basic authentication.
type BasicAuth struct {
	Login    string
	Password string
}

// Apply implements the Authenticator interface for BasicAuth.
func (a *BasicAuth) Apply(req *http.Request) {
	req.SetBasicAuth(a.Login, a.Password)
}

// HeaderAuth sets a token in a custom header with an optional scheme
// prefix, e.g. "Authorization: GoogleLogin auth=TOKEN".
type HeaderAuth struct {
	Header string
	Prefix string
	Token  string
}

// Apply implements the Authenticator interface for HeaderAuth.
func (a *HeaderAuth) Apply(req *http.Request) {
	header := a.Header
	if header == "" {
		header = "Authorization"
	}
	req.Header.Set(header, a.Prefix+a.Token)
}

// QueryAuth passes a token as a query parameter.
type QueryAuth struct {
	Param string
	Token string
}

// Apply implements the Authenticator interface for QueryAuth.
func (a *QueryAuth) Apply(req *http.Request) {
	if req.URL == nil {
		return
	}
	query := req.URL.Query()
	query.Set(a.Param, a.Token)
	req.URL.RawQuery = query.Encode()
}
