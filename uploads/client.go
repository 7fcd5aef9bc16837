package uploads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
)

// Client performs the two-phase upload: ask the server for a write location,
// then PUT the raw bytes there. The second phase failing must surface as an
// error and never yield a storage id.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client

	mu         sync.Mutex
	inProgress bool
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   http.DefaultClient,
	}
}

// InProgress reports whether an upload is currently running. It is false
// after every outcome: success, server failure, or transport error.
func (c *Client) InProgress() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inProgress
}

func (c *Client) setInProgress(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inProgress = v
}

// UploadFile uploads data and returns the storage id assigned by the server.
func (c *Client) UploadFile(ctx context.Context, data []byte, contentType string) (string, error) {
	c.setInProgress(true)
	defer c.setInProgress(false)

	uploadURL, err := c.generateUploadURL(ctx)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("upload failed with status %d", resp.StatusCode)
	}

	var body struct {
		Data struct {
			StorageID string `json:"storage_id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("invalid upload response: %v", err)
	}
	if body.Data.StorageID == "" {
		return "", fmt.Errorf("upload response missing storage id")
	}
	return body.Data.StorageID, nil
}

func (c *Client) generateUploadURL(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/uploads/url", nil)
	if err != nil {
		return "", err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to request upload url: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upload url request failed with status %d", resp.StatusCode)
	}

	var body struct {
		Data struct {
			UploadURL string `json:"upload_url"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("invalid upload url response: %v", err)
	}
	if body.Data.UploadURL == "" {
		return "", fmt.Errorf("upload url response missing url")
	}

	url := body.Data.UploadURL
	if strings.HasPrefix(url, "/") {
		url = c.baseURL + url
	}
	return url, nil
}
