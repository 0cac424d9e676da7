package analyze

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"
)

// Config holds analyze client settings.
type Config struct {
	// Endpoint is the base URL of the analyze service.
	Endpoint string

	// Timeout bounds a whole submission. Zero means no artificial deadline;
	// the request then waits for completion or transport failure.
	Timeout time.Duration
}

// DefaultConfig returns client settings for a locally running service.
func DefaultConfig() *Config {
	return &Config{
		Endpoint: "http://localhost:8000",
		Timeout:  0,
	}
}

// Validate checks the client configuration.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint must not be empty")
	}
	if _, err := url.Parse(c.Endpoint); err != nil {
		return fmt.Errorf("invalid endpoint URL: %w", err)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}
	return nil
}

// Client submits rubric/assignment pairs to the analyze service.
type Client struct {
	config  *Config
	client  *http.Client
	baseURL *url.URL
}

// NewClient creates an analyze client.
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	baseURL, err := url.Parse(config.Endpoint)
	if err != nil {
		return nil, NewClientErrorWithCause(ErrTypeValidation, "invalid endpoint URL", err)
	}

	return &Client{
		config:  config,
		client:  &http.Client{Timeout: config.Timeout},
		baseURL: baseURL,
	}, nil
}

// Analyze sends the two documents as one multipart POST and returns the
// validated result. The form carries exactly two file parts, named "rubric"
// and "assignment".
func (c *Client) Analyze(ctx context.Context, rubric, assignment Document) (*Result, error) {
	endpoint := c.baseURL.JoinPath("/analyze")

	body, contentType, err := encodeMultipart(rubric, assignment)
	if err != nil {
		return nil, NewClientErrorWithCause(ErrTypeTransport, "failed to encode request body", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), body)
	if err != nil {
		return nil, NewClientErrorWithCause(ErrTypeTransport, "failed to create request", err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, NewClientErrorWithCause(ErrTypeTransport, err.Error(), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeFailure(resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewClientErrorWithCause(ErrTypeTransport, "failed to read response", err)
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, NewClientErrorWithCause(ErrTypeTransport, err.Error(), err)
	}

	if err := ValidateResult(raw, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// decodeFailure turns a non-2xx response into a request error. A JSON body
// with an "error" field supplies the message verbatim; anything else falls
// back to a generic message.
func decodeFailure(resp *http.Response) *ClientError {
	message := "Analysis failed"

	body, err := io.ReadAll(resp.Body)
	if err == nil {
		var errResp errorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			message = errResp.Error
		}
	}

	return &ClientError{
		Type:       ErrTypeRequest,
		Message:    message,
		StatusCode: resp.StatusCode,
	}
}

// encodeMultipart serializes the two documents into a multipart form body.
func encodeMultipart(rubric, assignment Document) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, part := range []struct {
		field string
		doc   Document
	}{
		{"rubric", rubric},
		{"assignment", assignment},
	} {
		fw, err := writer.CreateFormFile(part.field, part.doc.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := fw.Write(part.doc.Content); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return body, writer.FormDataContentType(), nil
}
