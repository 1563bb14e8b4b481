package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/margdarshak/career-api/internal/logger"
	"github.com/margdarshak/career-api/internal/models"
)

const searchService = "searchapi"

// SearchFacade queries a searchapi.io compatible web search endpoint.
type SearchFacade struct {
	client   *http.Client
	endpoint string
	apiKey   string
	results  int
}

// NewSearchFacade creates a search facade. An empty apiKey leaves it unconfigured.
func NewSearchFacade(endpoint, apiKey string, results int, timeout time.Duration) *SearchFacade {
	return &SearchFacade{
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
		apiKey:   apiKey,
		results:  results,
	}
}

// Configured reports whether an API key was supplied.
func (f *SearchFacade) Configured() bool {
	return f.apiKey != ""
}

type searchResponse struct {
	OrganicResults []models.SearchResult `json:"organic_results"`
}

// Search returns the organic results for query. Failures are logged and
// produce an empty slice so the caller can continue without citations.
func (f *SearchFacade) Search(ctx context.Context, query string) []models.SearchResult {
	results, err := f.search(ctx, query)
	if err != nil {
		logger.FromContext(ctx).Warnw("web search failed, continuing without results", "query", query, "error", err)
		return []models.SearchResult{}
	}
	return results
}

func (f *SearchFacade) search(ctx context.Context, query string) ([]models.SearchResult, error) {
	if !f.Configured() {
		return nil, &models.ConfigError{Key: "SEARCH_API_KEY"}
	}

	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query)
	params.Set("api_key", f.apiKey)
	params.Set("num", strconv.Itoa(f.results))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &models.UpstreamError{Service: searchService, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &models.UpstreamError{Service: searchService, StatusCode: resp.StatusCode, Message: string(body)}
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	if decoded.OrganicResults == nil {
		return []models.SearchResult{}, nil
	}
	return decoded.OrganicResults, nil
}
