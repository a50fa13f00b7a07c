package resumeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/DULAJBHAGYA/AI-IT-Path-Finder/internal/scoring"
)

const (
	scorePath   = "/v1/score"
	contentType = "application/json"
)

// Client talks to a hosted resume scoring API.
type Client struct {
	token      string
	logger     *zap.Logger
	HTTPClient *http.Client
	APIURL     string
	UserAgent  string
}

// NewClient creates a scoring API client for the given base URL.
func NewClient(apiURL, token string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		token:  token,
		logger: logger,
		APIURL: strings.TrimRight(apiURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ScoreResume submits the resume text and returns the raw response fields.
func (c *Client) ScoreResume(ctx context.Context, text, jobDescription string) (map[string]any, error) {
	payload, err := json.Marshal(map[string]string{
		"text":            text,
		"job_description": jobDescription,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.APIURL+scorePath, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	c.logger.Debug("make request", zap.String("url", req.URL.String()))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.WithSecondaryError(
			scoring.ErrProviderUnavailable,
			errors.Wrap(err, "score resume"),
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.WithSecondaryError(
			scoring.ErrProviderUnavailable,
			errors.Newf("bad status: %s", resp.Status),
		)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.WithSecondaryError(
			scoring.ErrProviderResponseMalformed,
			errors.Wrap(err, "decode score response"),
		)
	}

	return body, nil
}

func (c *Client) setHeaders(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	req.Header.Set("Content-Type", contentType)
}
