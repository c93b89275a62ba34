// Package shapegen is the client for the two collaborator boundaries of
// the outline editor: the extraction service that traces an initial
// outline from an uploaded photo, and the generation service that extrudes
// an edited outline into a solid object.
//
// Both calls are opaque to the editor core: they either resolve with data
// or fail with an error the application surfaces to the user. A failed
// call never mutates editor state.
package shapegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// Client talks to the extraction and generation endpoints of a backend
// service over JSON/HTTP.
type Client struct {
	// BaseURL is the service root, without a trailing slash.
	BaseURL string
	// HTTPClient overrides http.DefaultClient when set.
	HTTPClient *http.Client
}

// NewClient returns a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{BaseURL: baseURL}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// Extract uploads an image and returns the outline the service traced
// from it.
func (c *Client) Extract(ctx context.Context, image io.Reader, filename string) (*Extraction, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("shapegen: build upload: %w", err)
	}
	if _, err := io.Copy(fw, image); err != nil {
		return nil, fmt.Errorf("shapegen: build upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("shapegen: build upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/extract", &body)
	if err != nil {
		return nil, fmt.Errorf("shapegen: extract: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("shapegen: extract: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("shapegen: extract: unexpected status %s", resp.Status)
	}

	var ex Extraction
	if err := json.NewDecoder(resp.Body).Decode(&ex); err != nil {
		return nil, fmt.Errorf("shapegen: extract: decode response: %w", err)
	}
	if len(ex.Outline) < 3 {
		return nil, fmt.Errorf("shapegen: extract: outline has %d points, need at least 3", len(ex.Outline))
	}
	return &ex, nil
}

// Generate submits the edited outline with its generation parameters and
// returns a reference to the produced artifact. A failure reported by the
// service comes back as a *GenerateError.
func (c *Client) Generate(ctx context.Context, genReq *GenerateRequest) (*GenerateResult, error) {
	payload, err := json.Marshal(genReq)
	if err != nil {
		return nil, fmt.Errorf("shapegen: generate: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("shapegen: generate: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("shapegen: generate: %w", err)
	}
	defer resp.Body.Close()

	// Failure records arrive as JSON with any status, but a proxy or
	// gateway error carries a non-JSON body; report the status for those
	// rather than a decode error.
	var result GenerateResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("shapegen: generate: unexpected status %s", resp.Status)
		}
		return nil, fmt.Errorf("shapegen: generate: decode response: %w", err)
	}
	if result.Error != "" {
		return nil, &GenerateError{Message: result.Error}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("shapegen: generate: unexpected status %s", resp.Status)
	}
	if result.Artifact == "" {
		return nil, fmt.Errorf("shapegen: generate: response carries neither artifact nor error")
	}
	return &result, nil
}
