// Package jenkins provides a client for the Jenkins build JSON API.
package jenkins

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jobdetails/src/provider"
)

// APISuffix selects the JSON rendering of a Jenkins object.
const APISuffix = "/api/json"

// Client is a Jenkins API client.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new Jenkins API client whose requests time out after timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BuildURL returns the JSON API URL for one build of a job.
// Format: {serverURL}/job/{jobName}/{buildID}/api/json
func BuildURL(serverURL, jobName, buildID string) string {
	segments := strings.Split(jobName, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}

	return strings.TrimRight(serverURL, "/") + "/job/" + strings.Join(segments, "/") + "/" + url.PathEscape(buildID) + APISuffix
}

// GetBuild fetches a build record from the Jenkins API.
func (c *Client) GetBuild(ctx context.Context, serverURL, jobName, buildID string) (Record, error) {
	apiURL := BuildURL(serverURL, jobName, buildID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", provider.ErrNetwork, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", provider.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %w", provider.ErrNetwork, &provider.HTTPError{
			StatusCode: resp.StatusCode,
			URL:        apiURL,
			Body:       body,
		})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", provider.ErrNetwork, err)
	}

	return DecodeRecord(body)
}

// DecodeRecord parses a build record. The document must be a single JSON object.
func DecodeRecord(data []byte) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %w", provider.ErrParse, err)
	}

	if rec == nil {
		return nil, fmt.Errorf("%w: response is not a JSON object", provider.ErrParse)
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", provider.ErrParse)
	}

	return rec, nil
}
