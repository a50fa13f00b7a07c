package language

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
	defaultAPIURL = "https://language.googleapis.com"
	analyzePath   = "/v1/documents:analyzeEntities"

	contentType = "application/json"
)

// Client is a minimal JSON client for the entity analysis endpoint.
type Client struct {
	apiKey     string
	logger     *zap.Logger
	HTTPClient *http.Client
	APIURL     string
}

// Entity is a single salient entity extracted from the document.
type Entity struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Salience float64 `json:"salience"`
}

type analyzeRequest struct {
	Document     document `json:"document"`
	EncodingType string   `json:"encodingType"`
}

type document struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type analyzeResponse struct {
	Entities []Entity `json:"entities"`
}

// NewClient creates a client for the entity analysis API.
func NewClient(apiKey string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		apiKey: apiKey,
		logger: logger,
		APIURL: defaultAPIURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// AnalyzeEntities submits the text and returns the extracted entities.
func (c *Client) AnalyzeEntities(ctx context.Context, text string) ([]Entity, error) {
	payload, err := json.Marshal(analyzeRequest{
		Document:     document{Type: "PLAIN_TEXT", Content: text},
		EncodingType: "UTF8",
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s%s?key=%s", strings.TrimRight(c.APIURL, "/"), analyzePath, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	c.logger.Debug("make request", zap.String("path", analyzePath))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.WithSecondaryError(
			scoring.ErrProviderUnavailable,
			errors.Wrap(err, "analyze entities"),
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.WithSecondaryError(
			scoring.ErrProviderUnavailable,
			errors.Newf("bad status: %s", resp.Status),
		)
	}

	var response analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.WithSecondaryError(
			scoring.ErrProviderResponseMalformed,
			errors.Wrap(err, "decode entity response"),
		)
	}

	return response.Entities, nil
}
