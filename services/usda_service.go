package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultUSDABaseURL = "https://api.nal.usda.gov/fdc/v1"

type USDAConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// USDAService talks to the USDA FoodData Central API, the name-search
// provider. It returns raw payloads; normalization happens separately.
type USDAService struct {
	client *resty.Client
	apiKey string
}

func NewUSDAService(cfg USDAConfig) *USDAService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultUSDABaseURL
	}
	if cfg.APIKey == "" {
		cfg.APIKey = "DEMO_KEY"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout)

	return &USDAService{client: cli, apiKey: cfg.APIKey}
}

type usdaSearchResponse struct {
	Foods []USDAFood `json:"foods"`
}

// SearchFoods queries the Foundation and SR Legacy catalogs for a food name.
func (s *USDAService) SearchFoods(ctx context.Context, query string) ([]USDAFood, error) {
	var out usdaSearchResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api_key":   s.apiKey,
			"query":     query,
			"pageSize":  "5",
			"sortBy":    "dataType.keyword",
			"sortOrder": "asc",
		}).
		SetQueryParamsFromValues(url.Values{"dataType": {"Foundation", "SR Legacy"}}).
		SetResult(&out).
		Get("/foods/search")
	if err != nil {
		return nil, fmt.Errorf("usda search: %w", classifyTransportError(err))
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode()}
	}
	return out.Foods, nil
}

// FoodDetails fetches the full record for one FDC id. The detailed shape
// varies by data type, so it is passed through as-is. A nil result means the
// provider has no record with that id.
func (s *USDAService) FoodDetails(ctx context.Context, fdcID int64) (json.RawMessage, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("api_key", s.apiKey).
		Get("/food/" + strconv.FormatInt(fdcID, 10))
	if err != nil {
		return nil, fmt.Errorf("usda food details: %w", classifyTransportError(err))
	}
	switch resp.StatusCode() {
	case http.StatusOK:
		return json.RawMessage(resp.Body()), nil
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, &APIError{Status: resp.StatusCode()}
	}
}
