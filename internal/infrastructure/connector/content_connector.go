package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/content"
	"github.com/hillcrest-schools/school-portal/internal/pkg/config"
	"github.com/hillcrest-schools/school-portal/internal/pkg/logger"
)

const contentRequestTimeout = 15 * time.Second

type mutationRequest struct {
	Mutations []map[string]interface{} `json:"mutations"`
}

type mutationResponse struct {
	TransactionID string `json:"transactionId"`
	Results       []struct {
		ID        string `json:"id"`
		Operation string `json:"operation"`
	} `json:"results"`
}

type contentConnector struct {
	mutateURL  string
	token      string
	httpClient *http.Client
	logger     logger.Logger
}

// NewContentConnector returns a connector writing to the content backend's mutation API,
// or a disabled connector when no project is configured.
func NewContentConnector(settings *config.ContentConnectorSettings, logger logger.Logger) (content.Connector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if !settings.Enabled() {
		logger.Info("Content backend not configured, documents will not be mirrored")
		return disabledContentConnector{}, nil
	}

	base := strings.TrimRight(settings.BaseURL, "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.api.sanity.io", settings.ProjectID)
	}
	version := strings.TrimPrefix(settings.APIVersion, "v")

	return &contentConnector{
		mutateURL:  fmt.Sprintf("%s/v%s/data/mutate/%s?returnIds=true", base, version, settings.Dataset),
		token:      settings.Token,
		httpClient: &http.Client{Timeout: contentRequestTimeout},
		logger:     logger,
	}, nil
}

func (c *contentConnector) Enabled() bool {
	return true
}

// CreateDocument creates a document of docType holding fields and returns the id assigned by the backend
func (c *contentConnector) CreateDocument(ctx context.Context, docType string, fields map[string]interface{}) (string, error) {
	if docType == "" {
		return "", fmt.Errorf("document type is required")
	}

	doc := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		doc[k] = v
	}
	doc["_type"] = docType

	payload, err := json.Marshal(mutationRequest{
		Mutations: []map[string]interface{}{{"create": doc}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s document: %w", docType, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.mutateURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create mutation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("mutation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("content backend returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result mutationResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode mutation response: %w", err)
	}
	if len(result.Results) == 0 || result.Results[0].ID == "" {
		return "", fmt.Errorf("content backend returned no document id")
	}

	c.logger.Info("Content document created", "type", docType, "id", result.Results[0].ID, "transaction_id", result.TransactionID)
	return result.Results[0].ID, nil
}

type disabledContentConnector struct{}

func (disabledContentConnector) Enabled() bool {
	return false
}

func (disabledContentConnector) CreateDocument(context.Context, string, map[string]interface{}) (string, error) {
	return "", content.ErrDisabled
}
