package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductByBarcodeFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v0/product/5449000000996.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": 1,
			"product": {
				"code": "5449000000996",
				"product_name": "Coca-Cola",
				"brands": "Coca-Cola",
				"nutriments": {"sugars_100g": 10.6, "sodium_100g": 0.4}
			}
		}`))
	}))
	defer srv.Close()

	svc := NewOpenFoodFactsService(OFFConfig{BaseURL: srv.URL})
	product, err := svc.ProductByBarcode(context.Background(), "5449000000996")
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Coca-Cola", product.ProductName)
	require.NotNil(t, product.Nutriments)
	require.NotNil(t, product.Nutriments.SugarsG)
	assert.InDelta(t, 10.6, *product.Nutriments.SugarsG, 1e-9)
}

func TestProductByBarcodeNotInCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": 0, "status_verbose": "product not found"}`))
	}))
	defer srv.Close()

	svc := NewOpenFoodFactsService(OFFConfig{BaseURL: srv.URL})
	product, err := svc.ProductByBarcode(context.Background(), "00000000")
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestProductByBarcodeAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewOpenFoodFactsService(OFFConfig{BaseURL: srv.URL})
	_, err := svc.ProductByBarcode(context.Background(), "5449000000996")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}
