// Package inference provides the HTTP gateway to the remote image
// classification provider and the normalizer for its response shapes.
package inference

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"time"
)

// FileField is the multipart form field the provider expects the image under.
const FileField = "file"

const apiKeyParam = "api_key"

// Client issues classification requests to the configured provider endpoint.
// Each call is independent: one multipart POST, no caching, no retries.
type Client struct {
	endpoint  string
	apiKey    string
	userAgent string
	http      *http.Client
}

// NewClient creates a provider client. Endpoint or credential may be empty,
// in which case every Infer call fails with ErrUnconfigured.
func NewClient(endpoint, apiKey, userAgent string, timeout time.Duration) *Client {
	return &Client{
		endpoint:  endpoint,
		apiKey:    apiKey,
		userAgent: userAgent,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// Configured reports whether both endpoint and credential are present.
func (c *Client) Configured() bool {
	return c.endpoint != "" && c.apiKey != ""
}

// Infer uploads the image to the provider and returns the raw response body.
// The caller's context bounds the request alongside the client timeout, so a
// disconnected caller aborts the pending upstream call.
func (c *Client) Infer(ctx context.Context, data []byte, contentType string) ([]byte, error) {
	if !c.Configured() {
		return nil, ErrUnconfigured
	}

	endpoint, err := c.requestURL()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnconfigured, err)
	}

	body, formType, err := buildForm(data, contentType)
	if err != nil {
		return nil, fmt.Errorf("build multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create provider request: %w", err)
	}
	req.Header.Set("Content-Type", formType)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	return raw, nil
}

// requestURL appends the api key as a query parameter unless the configured
// endpoint already carries one.
func (c *Client) requestURL() (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint: %w", err)
	}

	query := u.Query()
	if query.Get(apiKeyParam) == "" {
		query.Set(apiKeyParam, c.apiKey)
		u.RawQuery = query.Encode()
	}

	return u.String(), nil
}

func buildForm(data []byte, contentType string) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename="upload.jpg"`, FileField))
	header.Set("Content-Type", contentType)

	part, err := form.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", err
	}
	if err := form.Close(); err != nil {
		return nil, "", err
	}

	return body, form.FormDataContentType(), nil
}
