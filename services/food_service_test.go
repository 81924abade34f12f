package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	foods []USDAFood
	err   error
}

func (f fakeSearcher) SearchFoods(context.Context, string) ([]USDAFood, error) {
	return f.foods, f.err
}

type fakeFinder struct {
	product *OFFProduct
	err     error
}

func (f fakeFinder) ProductByBarcode(context.Context, string) (*OFFProduct, error) {
	return f.product, f.err
}

func TestSearchByNameCapsResults(t *testing.T) {
	searcher := fakeSearcher{foods: []USDAFood{
		{FdcID: 1, Description: "A"},
		{FdcID: 2, Description: "B"},
		{FdcID: 3, Description: "C"},
		{FdcID: 4, Description: "D"},
		{FdcID: 5, Description: "E"},
	}}
	svc := NewFoodService(nil, searcher, fakeFinder{})

	foods, reason := svc.SearchByName(context.Background(), "anything")
	assert.Empty(t, reason)
	require.Len(t, foods, 3)
	assert.Equal(t, "A", foods[0].Name)
	assert.Equal(t, "C", foods[2].Name)
}

func TestSearchByNameSkipsUnusableHits(t *testing.T) {
	searcher := fakeSearcher{foods: []USDAFood{
		{FdcID: 1, Description: "Good one"},
		{}, // malformed hit must not abort its siblings
		{FdcID: 3, Description: "Another good one"},
	}}
	svc := NewFoodService(nil, searcher, fakeFinder{})

	foods, reason := svc.SearchByName(context.Background(), "anything")
	assert.Empty(t, reason)
	require.Len(t, foods, 2)
	assert.Equal(t, "Good one", foods[0].Name)
	assert.Equal(t, "Another good one", foods[1].Name)
}

func TestSearchByNameFailureReasons(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		reason string
	}{
		{"timeout", ErrTimeout, "Request timed out. Please try again."},
		{"connection", ErrConnection, "Unable to connect to the nutrition database. Please check your internet connection."},
		{"forbidden", &APIError{Status: 403}, "API access denied. Please check your API key configuration."},
		{"server error", &APIError{Status: 500}, "API request failed with status code: 500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewFoodService(nil, fakeSearcher{err: tt.err}, fakeFinder{})
			foods, reason := svc.SearchByName(context.Background(), "apple")
			assert.Empty(t, foods)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestSearchByBarcodeNormalizes(t *testing.T) {
	finder := fakeFinder{product: &OFFProduct{
		Code:        "5449000000996",
		ProductName: "Coca-Cola",
		Nutriments:  &OFFNutriments{SugarsG: floatPtr(10.6), SodiumG: floatPtr(0.4)},
	}}
	svc := NewFoodService(nil, fakeSearcher{}, finder)

	foods, reason := svc.SearchByBarcode(context.Background(), "5449-0000-0099-6")
	assert.Empty(t, reason)
	require.Len(t, foods, 1)
	assert.Equal(t, "Coca-Cola", foods[0].Name)
	assert.InDelta(t, 400.0, foods[0].SodiumMg, 1e-9)
}

func TestSearchByBarcodeNotFoundIsEmptyNotError(t *testing.T) {
	svc := NewFoodService(nil, fakeSearcher{}, fakeFinder{})
	foods, reason := svc.SearchByBarcode(context.Background(), "00000000")
	assert.Empty(t, foods)
	assert.Empty(t, reason)
}

func TestSearchByBarcodeFailureReason(t *testing.T) {
	svc := NewFoodService(nil, fakeSearcher{}, fakeFinder{err: ErrTimeout})
	foods, reason := svc.SearchByBarcode(context.Background(), "5449000000996")
	assert.Empty(t, foods)
	assert.Equal(t, "Request timed out while searching barcode. Please try again.", reason)
}
