package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestConfigErrorIs(t *testing.T) {
	err := NewConfigError("provider", "foo", "unknown provider name")
	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigError should match ErrConfig")
	}
	if errors.Is(err, ErrAuth) {
		t.Error("ConfigError should not match ErrAuth")
	}
	if !IsConfig(err) {
		t.Error("IsConfig should return true for ConfigError")
	}
}

func TestAuthErrorWrapping(t *testing.T) {
	cause := errors.New("401 unauthorized")
	err := NewAuthError("theoldreader.com", "bad credentials", cause)

	if !errors.Is(err, ErrAuth) {
		t.Error("AuthError should match ErrAuth")
	}
	if !errors.Is(err, cause) {
		t.Error("AuthError should unwrap to its cause")
	}

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatal("errors.As should find AuthError")
	}
	if authErr.Host != "theoldreader.com" {
		t.Errorf("Expected host theoldreader.com, got %s", authErr.Host)
	}
}

func TestApplyErrorMessage(t *testing.T) {
	cause := errors.New("500 internal server error")
	err := NewApplyError("remove", "http://example.com/feed.xml", cause)

	want := "remove http://example.com/feed.xml: 500 internal server error"
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
	if !IsApply(err) {
		t.Error("IsApply should return true for ApplyError")
	}
}

func TestSourceErrorThroughWrapping(t *testing.T) {
	// A source error remains detectable after further fmt wrapping.
	err := NewSourceError("youtube", "listing page 3", errors.New("connection reset"))
	wrapped := fmt.Errorf("sync aborted: %w", err)

	if !IsSourceFetch(wrapped) {
		t.Error("IsSourceFetch should see through fmt.Errorf wrapping")
	}
}

func TestWrapHelpersNilPassthrough(t *testing.T) {
	if WrapIO("read", "/tmp/x", nil) != nil {
		t.Error("WrapIO(nil) should return nil")
	}
	if WrapParse("opml", "", nil) != nil {
		t.Error("WrapParse(nil) should return nil")
	}
	if WrapAPI("example.com", 0, nil) != nil {
		t.Error("WrapAPI(nil) should return nil")
	}
}

func TestAPIErrorFormatsStatusCode(t *testing.T) {
	err := NewAPIError("soundcloud.com", 429, "too many requests")
	want := "API error from soundcloud.com (status 429): too many requests"
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
}
