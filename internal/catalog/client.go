package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	. "github.com/half-nothing/simple-launch/internal/interfaces/catalog"
	"github.com/half-nothing/simple-launch/internal/interfaces/config"
	"io"
	"net/http"
)

// queryBody asks for every launch in one page with the rocket name and payload customers populated
var queryBody = []byte(`{"query":{},"options":{"pagination":false,"populate":[{"path":"rocket","select":{"name":1}},{"path":"payloads","select":{"customers":1}}]}}`)

type FetchResult struct {
	Docs []*Document
	Raw  []byte
}

type Client struct {
	httpClient *http.Client
	apiUrl     string
}

func NewClient(config *config.CatalogConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: config.RequestDuration},
		apiUrl:     config.ApiUrl,
	}
}

func (client *Client) Fetch(ctx context.Context) (*FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, client.apiUrl, bytes.NewReader(queryBody))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogFetchFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := client.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogFetchFailed, err)
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrCatalogFetchFailed, resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogFetchFailed, err)
	}

	response := &queryResponse{}
	if err := json.Unmarshal(raw, response); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrCatalogFetchFailed, err)
	}
	if response.Docs == nil {
		response.Docs = make([]*Document, 0)
	}
	return &FetchResult{Docs: response.Docs, Raw: raw}, nil
}
