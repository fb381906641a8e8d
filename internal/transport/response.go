package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/feedtools/subsync/pkg/errors"
)

// DecodeResponse decodes a JSON response into the target structure. A
// non-200 status becomes an APIError carrying the response body.
func DecodeResponse(resp *http.Response, target any) error {
	defer drain(resp)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &errors.APIError{
			Host:       resp.Request.URL.Host,
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", "response", err)
	}

	return nil
}

// ReadBody reads and returns the full response body. A non-200 status
// becomes an APIError carrying the body.
func ReadBody(resp *http.Response) ([]byte, error) {
	defer drain(resp)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &errors.APIError{
			Host:       resp.Request.URL.Host,
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	return body, nil
}

// drain discards any remaining body to allow connection reuse.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
