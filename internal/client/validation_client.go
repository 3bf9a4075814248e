package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"validation-service/internal/brdoc"
	"validation-service/internal/config"
	"validation-service/internal/model"
)

type ValidationClient struct {
	baseURL    string
	token      string
	maxRetries int
	backoff    time.Duration
	httpClient *http.Client
}

func NewValidationClient(baseURL, token string, cfg config.ClientConfig) *ValidationClient {
	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	return &ValidationClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		maxRetries: maxRetries,
		backoff:    500 * time.Millisecond,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *ValidationClient) ValidateCPF(ctx context.Context, cpf string) (*model.Verdict, error) {
	var verdict model.Verdict
	if err := c.post(ctx, "/v1/cpf/validate", map[string]string{"cpf": cpf}, &verdict); err != nil {
		return nil, err
	}
	return &verdict, nil
}

func (c *ValidationClient) ValidatePlate(ctx context.Context, plate string) (*model.Verdict, error) {
	var verdict model.Verdict
	if err := c.post(ctx, "/v1/plates/validate", map[string]string{"plate": plate}, &verdict); err != nil {
		return nil, err
	}
	return &verdict, nil
}

// FormatCPF returns a *brdoc.ValidationError when the service rejects the
// input length.
func (c *ValidationClient) FormatCPF(ctx context.Context, cpf string) (string, error) {
	var out struct {
		Formatted string `json:"formatted"`
	}
	if err := c.post(ctx, "/v1/cpf/format", map[string]string{"cpf": cpf}, &out); err != nil {
		return "", err
	}
	return out.Formatted, nil
}

func (c *ValidationClient) ValidateBatch(ctx context.Context, req model.BatchRequest) (*model.BatchResult, error) {
	var result model.BatchResult
	if err := c.post(ctx, "/v1/batch/validate", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
	Code  string          `json:"code"`
}

func (c *ValidationClient) post(ctx context.Context, path string, payload any, out any) error {
	if c.baseURL == "" {
		return fmt.Errorf("validation service URL is not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.do(ctx, c.baseURL+path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if resp.StatusCode == http.StatusUnprocessableEntity {
		if err := json.Unmarshal(raw, &env); err == nil && brdoc.Code(env.Code).Valid() {
			return brdoc.NewValidationError(brdoc.Code(env.Code), env.Error)
		}
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("validation service returned status %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to parse response data: %w", err)
	}
	return nil
}

// do retries transport errors only; any HTTP response is returned as is.
func (c *ValidationClient) do(ctx context.Context, url string, body []byte) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if attempt == c.maxRetries-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt+1) * c.backoff):
		}
	}
	return nil, fmt.Errorf("failed to execute request after %d attempts: %w", c.maxRetries, lastErr)
}
