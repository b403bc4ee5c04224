package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"content-admin-api/internal/metrics"
)

// RevalidateRequest represents a cache revalidation request sent to the
// public site frontend
type RevalidateRequest struct {
	Paths []string `json:"paths"`
}

// RevalidateClient defines the interface for asking the public site to
// regenerate cached pages after content changes
type RevalidateClient interface {
	// RevalidatePaths requests regeneration of the given site paths
	RevalidatePaths(ctx context.Context, paths []string) error
}

// revalidateClient implements RevalidateClient interface
type revalidateClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewRevalidateClient creates a new revalidation client for the public site
func NewRevalidateClient(baseURL string, token string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) RevalidateClient {
	return &revalidateClient{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

// RevalidatePaths requests regeneration of the given site paths
func (c *revalidateClient) RevalidatePaths(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	url := fmt.Sprintf("%s/api/revalidate", c.baseURL)

	jsonBody, err := json.Marshal(RevalidateRequest{Paths: paths})
	if err != nil {
		c.logger.Error("Failed to marshal revalidation request",
			zap.Error(err),
			zap.Strings("paths", paths),
		)
		return fmt.Errorf("failed to marshal revalidation request: %w", err)
	}

	startTime := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		c.logger.Error("Failed to create revalidation request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Revalidate-Token", c.token)

	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	// Record metrics
	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	if c.metrics != nil {
		c.metrics.RecordExternalAPICall(url, "POST", statusCode, duration, err)
	}

	if err != nil {
		c.logger.Error("Failed to request site revalidation",
			zap.Error(err),
			zap.Strings("paths", paths),
			zap.Duration("duration", duration),
		)
		// Graceful degradation: stale pages are better than a failed save
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.logger.Info("Site revalidation requested",
			zap.Strings("paths", paths),
			zap.Duration("duration", duration),
		)
		return nil
	}

	c.logger.Warn("Revalidation endpoint returned non-success status",
		zap.Int("status_code", resp.StatusCode),
		zap.Strings("paths", paths),
		zap.Duration("duration", duration),
	)

	// Graceful degradation
	return nil
}

// NoOpRevalidateClient is a no-op implementation for when the revalidation
// endpoint is not configured
type NoOpRevalidateClient struct{}

func NewNoOpRevalidateClient() RevalidateClient {
	return &NoOpRevalidateClient{}
}

func (c *NoOpRevalidateClient) RevalidatePaths(ctx context.Context, paths []string) error {
	return nil
}
