package mybusiness

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/googleauth"
)

// defaultV4BaseURL is the legacy My Business API. Reviews, local posts and
// media never moved to the per-resource v1 APIs, so they are called over
// plain REST with the credential's authorized client.
const defaultV4BaseURL = "https://mybusiness.googleapis.com/v4"

// V4Client calls the My Business v4 endpoints for one credential.
type V4Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewV4Client builds a client whose requests are signed and auto-refreshed
// by the credential.
func NewV4Client(ctx context.Context, cred *googleauth.Credential) *V4Client {
	return &V4Client{
		baseURL:    defaultV4BaseURL,
		httpClient: cred.HTTPClient(ctx),
	}
}

// NewV4ClientWithBase is used by tests to point the client at a fake server.
func NewV4ClientWithBase(baseURL string, httpClient *http.Client) *V4Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &V4Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

func (c *V4Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Method: method, Path: path, Body: string(detail)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// APIError is a non-2xx response from the v4 API.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mybusiness v4 %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// NormalizeAccountName ensures the "accounts/" resource prefix.
func NormalizeAccountName(accountID string) string {
	if strings.HasPrefix(accountID, "accounts/") {
		return accountID
	}
	return "accounts/" + accountID
}

// NormalizeLocationName ensures the "locations/" resource prefix.
func NormalizeLocationName(locationID string) string {
	if strings.HasPrefix(locationID, "locations/") {
		return locationID
	}
	return "locations/" + locationID
}

// NormalizeReviewName ensures the "reviews/" resource prefix.
func NormalizeReviewName(reviewID string) string {
	if strings.HasPrefix(reviewID, "reviews/") {
		return reviewID
	}
	return "reviews/" + reviewID
}
