package pinning

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	ErrNotConfigured = errors.New("pinning credentials not configured")
	ErrRejected      = errors.New("pinning service rejected the document")
	ErrUnavailable   = errors.New("pinning service unavailable")
)

const (
	pinJSONPath    = "/pinning/pinJSONToIPFS"
	defaultTimeout = 30 * time.Second
	maxErrorBody   = 512
)

type Config struct {
	URL       string
	APIKey    string
	SecretKey string
	// requests per second; zero disables limiting
	RateLimit float64
	Burst     int
}

type pinRequest struct {
	Content  any         `json:"pinataContent"`
	Metadata pinMetadata `json:"pinataMetadata"`
}

type pinMetadata struct {
	Name string `json:"name"`
}

type pinResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

// PinataClient pins JSON documents through the Pinata HTTP API.
type PinataClient struct {
	logs       *zap.SugaredLogger
	httpClient *http.Client
	baseURL    string
	apiKey     string
	secretKey  string
	limiter    *rate.Limiter
}

func NewPinataClient(logger *zap.SugaredLogger, cfg Config) *PinataClient {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &PinataClient{
		logs:       logger,
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		apiKey:     cfg.APIKey,
		secretKey:  cfg.SecretKey,
		limiter:    limiter,
	}
}

// PinJSON stores doc under name and returns its content identifier.
func (c *PinataClient) PinJSON(ctx context.Context, name string, doc any) (string, error) {
	if c.apiKey == "" || c.secretKey == "" {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(pinRequest{
		Content:  doc,
		Metadata: pinMetadata{Name: name},
	})
	if err != nil {
		return "", fmt.Errorf("marshal pin request: %w", err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("wait for pin slot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+pinJSONPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build pin request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("pinata_api_key", c.apiKey)
	req.Header.Set("pinata_secret_api_key", c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logs.Errorw("pinning request failed",
			"status", resp.StatusCode,
			"name", name,
			"detail", string(detail))

		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return "", fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
		}
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var out pinResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode pin response: %w", ErrUnavailable, err)
	}
	if out.IpfsHash == "" {
		return "", fmt.Errorf("%w: empty content identifier", ErrUnavailable)
	}

	c.logs.Infow("document pinned", "name", name, "cid", out.IpfsHash, "size", out.PinSize)
	return out.IpfsHash, nil
}
