package scan

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/cardscan/pkg/contact"
)

const (
	defaultClientTimeout = 10 * time.Second
	maxErrorBodyBytes    = 512
)

// ClientOption configures RecordsClient and OCRClient.
type ClientOption func(*clientConfig)

type clientConfig struct {
	httpClient *http.Client
	timeout    time.Duration
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cfg *clientConfig) {
		if c != nil {
			cfg.httpClient = c
		}
	}
}

// WithTimeout sets the request timeout of the default HTTP client.
func WithTimeout(d time.Duration) ClientOption {
	return func(cfg *clientConfig) {
		if d > 0 {
			cfg.timeout = d
		}
	}
}

func newHTTPClient(opts []ClientOption) *http.Client {
	cfg := clientConfig{timeout: defaultClientTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.httpClient != nil {
		return cfg.httpClient
	}
	return &http.Client{Timeout: cfg.timeout}
}

// RecordsClient creates records through the backend's JSON API.
type RecordsClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewRecordsClient returns a client for the API rooted at baseURL. A
// non-empty token is sent as a bearer token.
func NewRecordsClient(baseURL, token string, opts ...ClientOption) (*RecordsClient, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	return &RecordsClient{
		baseURL: baseURL,
		token:   token,
		client:  newHTTPClient(opts),
	}, nil
}

// CreateRecord posts rec to {base}/records.
func (c *RecordsClient) CreateRecord(ctx context.Context, rec contact.Record) (Created, error) {
	body, err := json.Marshal(rec)
	if err != nil {
		return Created{}, fmt.Errorf("failed to marshal record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/records", bytes.NewReader(body))
	if err != nil {
		return Created{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Created{}, fmt.Errorf("records request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return Created{}, statusError(resp)
	}

	var created Created
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return Created{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if created.ID == "" {
		return Created{}, fmt.Errorf("%w: response has no record id", ErrUnexpectedStatus)
	}
	return created, nil
}

// OCRClient sends card photos to an external recognition service, which
// answers with a record in the same JSON shape as contact.Record.
type OCRClient struct {
	endpoint string
	client   *http.Client
}

// NewOCRClient returns a client posting images to endpoint.
func NewOCRClient(endpoint string, opts ...ClientOption) (*OCRClient, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, ErrMissingBaseURL
	}
	return &OCRClient{endpoint: endpoint, client: newHTTPClient(opts)}, nil
}

// RecognizeImage returns nil without error when the service found no card
// (204 No Content).
func (c *OCRClient) RecognizeImage(ctx context.Context, image []byte, contentType string) (*contact.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ocr request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNoContent:
		return nil, nil
	default:
		return nil, statusError(resp)
	}

	var rec contact.Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &rec, nil
}

func statusError(resp *http.Response) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	return fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(msg)))
}
