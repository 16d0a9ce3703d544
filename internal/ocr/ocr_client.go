package ocr

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ocr_client.go -destination=mock/ocr_client_mock.go -package=mock

// VisionClient talks to the document-extraction endpoint. The contract is a
// JSON POST with the base64 image and document type, answered with a flat
// field map; anything provider-specific stays behind this interface.
type VisionClient interface {
	Extract(ctx context.Context, imageBase64, documentType string) (map[string]string, error)
}

type extractRequest struct {
	Image        string `json:"image"`
	DocumentType string `json:"document_type"`
}

type extractResponse struct {
	Success   bool            `json:"success"`
	Extracted json.RawMessage `json:"extracted_data"`
	Error     string          `json:"error,omitempty"`
}

type visionClient struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

func NewVisionClient(logger ...*zap.Logger) VisionClient {
	l := zap.L().Named("ocr.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ocr.client")
	}

	client := resty.New().
		SetBaseURL(os.Getenv("OCR_API_URL")).
		SetTimeout(60 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(2 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("X-API-Key", os.Getenv("OCR_API_KEY"))

	return &visionClient{httpClient: client, logger: l}
}

func (c *visionClient) Extract(ctx context.Context, imageBase64, documentType string) (map[string]string, error) {
	var response extractResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(extractRequest{Image: imageBase64, DocumentType: documentType}).
		SetResult(&response).
		Post("/v1/extract")
	if err != nil {
		c.logger.Error("vision API call failed", zap.Error(err))
		return nil, fmt.Errorf("vision api: %w", err)
	}
	if resp.IsError() {
		c.logger.Error("vision API returned error status",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", resp.String()))
		return nil, fmt.Errorf("vision api: status %d", resp.StatusCode())
	}
	if !response.Success {
		return nil, fmt.Errorf("vision api: %s", response.Error)
	}

	fields := map[string]string{}
	if len(response.Extracted) > 0 {
		// The provider omits fields it cannot read, so partial maps are normal.
		var raw map[string]any
		if err := json.Unmarshal(response.Extracted, &raw); err != nil {
			return nil, fmt.Errorf("vision api: decode extracted data: %w", err)
		}
		for k, v := range raw {
			if s, ok := v.(string); ok && s != "" {
				fields[k] = s
			}
		}
	}

	return fields, nil
}
