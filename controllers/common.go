package controllers

import (
	"github.com/ajit0013/SugarHealthTracker/config"
	"github.com/ajit0013/SugarHealthTracker/services"
)

// Service constructors used by the handlers. The provider clients are cheap
// to build per request; they share the process-wide config.
func newFoodService() *services.FoodService {
	usda := services.NewUSDAService(services.USDAConfig{
		BaseURL: config.App.USDABaseURL,
		APIKey:  config.App.USDAAPIKey,
		Timeout: config.App.ProviderTimeout,
	})
	off := services.NewOpenFoodFactsService(services.OFFConfig{
		BaseURL: config.App.OFFBaseURL,
		Timeout: config.App.ProviderTimeout,
	})
	return services.NewFoodService(config.DB, usda, off)
}

func newUSDAService() *services.USDAService {
	return services.NewUSDAService(services.USDAConfig{
		BaseURL: config.App.USDABaseURL,
		APIKey:  config.App.USDAAPIKey,
		Timeout: config.App.ProviderTimeout,
	})
}

func newInsightService() *services.InsightService {
	return services.NewInsightService(config.DB)
}

func newTrackerService() *services.TrackerService {
	return services.NewTrackerService(config.DB, newFoodService(), newInsightService())
}

func newFavoriteService() *services.FavoriteService {
	return services.NewFavoriteService(config.DB, newFoodService())
}
