package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultOFFBaseURL = "https://world.openfoodfacts.org"

type OFFConfig struct {
	BaseURL string
	Timeout time.Duration
}

// OpenFoodFactsService resolves barcodes against the OpenFoodFacts catalog,
// the single-product provider.
type OpenFoodFactsService struct {
	client *resty.Client
}

func NewOpenFoodFactsService(cfg OFFConfig) *OpenFoodFactsService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultOFFBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout)

	return &OpenFoodFactsService{client: cli}
}

type offProductResponse struct {
	Status  int         `json:"status"`
	Product *OFFProduct `json:"product"`
}

// ProductByBarcode looks one cleaned barcode up. A barcode missing from the
// catalog is a normal empty result, not an error.
func (s *OpenFoodFactsService) ProductByBarcode(ctx context.Context, code string) (*OFFProduct, error) {
	var out offProductResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get(fmt.Sprintf("/api/v0/product/%s.json", code))
	if err != nil {
		return nil, fmt.Errorf("openfoodfacts lookup: %w", classifyTransportError(err))
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode()}
	}
	if out.Status != 1 || out.Product == nil {
		return nil, nil
	}
	return out.Product, nil
}
