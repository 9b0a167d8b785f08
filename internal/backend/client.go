// Package backend is the HTTP client of the cover letter service.
package backend

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/cover-letter/internal/letter"
)

const (
	GeneratePath = "/api/generate-cover-letter"
	HealthPath   = "/api/health"

	defaultURL     = "http://localhost:5000"
	defaultTimeout = 10 * time.Second
	userAgent      = "spigell/cover-letter"
)

type Client struct {
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	BaseURL    string
}

var _ letter.Remote = (*Client)(nil)

// New returns a client for the service at baseURL. Empty baseURL means
// the local development server.
func New(logger *zap.Logger, baseURL string, timeout time.Duration) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultURL
	}

	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		logger:     logger,
		HTTPClient: NewHTTPClient(timeout),
		UserAgent:  userAgent,
		BaseURL:    baseURL,
	}
}

// GenerateResponse is the success body of the generate endpoint.
type GenerateResponse struct {
	Success     bool   `json:"success"`
	CoverLetter string `json:"cover_letter"`
	CompanyName string `json:"company_name"`
	RoleName    string `json:"role_name"`
}

// HealthStatus is the body of the health endpoint.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Generate asks the service for a cover letter.
func (c *Client) Generate(ctx context.Context, in letter.FormInput) (string, error) {
	var resp GenerateResponse
	if err := c.postJSON(ctx, c.BaseURL+GeneratePath, in.Normalize(), &resp); err != nil {
		return "", err
	}

	if strings.TrimSpace(resp.CoverLetter) == "" {
		return "", ErrMissingLetter
	}

	return resp.CoverLetter, nil
}

// Health returns the service health. It is used for diagnostics only.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.getJSON(ctx, c.BaseURL+HealthPath, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
