package linkup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/crewsearch/crewsearch/config"
	"github.com/crewsearch/crewsearch/errors"
)

// Client talks to the Linkup search API. Credentials come from the config
// object handed in at construction, never from process-wide state.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(conf *config.LinkupConfig, logger *slog.Logger, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: conf.Timeout,
		}
	}
	return &Client{
		apiKey:     conf.APIKey,
		baseURL:    strings.TrimSuffix(conf.BaseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// SearchResponse keeps the raw payload next to the decoded shapes so callers
// can consume whichever the requested output type produced.
type SearchResponse struct {
	Raw json.RawMessage `json:"-"`

	Answer  string         `json:"answer,omitempty"`
	Sources []Source       `json:"sources,omitempty"`
	Results []SearchResult `json:"results,omitempty"`
}

// String renders the textual form the pipeline consumes.
func (r *SearchResponse) String() string {
	var sb strings.Builder
	switch {
	case r.Answer != "":
		sb.WriteString(r.Answer)
		for _, source := range r.Sources {
			sb.WriteString(fmt.Sprintf("\n- %s (%s): %s", source.Name, source.URL, source.Snippet))
		}
	case len(r.Results) > 0:
		for i, result := range r.Results {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(fmt.Sprintf("- %s (%s): %s", result.Name, result.URL, result.Content))
		}
	default:
		sb.Write(r.Raw)
	}
	return sb.String()
}

// Search issues one synchronous call against the Linkup /search endpoint.
func (c *Client) Search(ctx context.Context, req *SearchRequest) (*SearchResponse, error) {
	c.logger.Info("linkup search", "query", req.Query, "depth", req.Depth, "outputType", req.OutputType)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrSearch, "failed to marshal search request: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrSearch, "failed to create search request: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrSearch, "search request failed: %v", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrSearch, "failed to read search response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(errors.ErrSearch, "search returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	searchResp := &SearchResponse{Raw: payload}
	if err := json.Unmarshal(payload, searchResp); err != nil {
		return nil, errors.Wrapf(errors.ErrSearch, "failed to decode search response: %v", err)
	}

	return searchResp, nil
}
