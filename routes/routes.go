package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ajit0013/SugarHealthTracker/controllers"
	"github.com/ajit0013/SugarHealthTracker/middlewares"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger())

	food := r.Group("/food")
	{
		food.GET("/search", controllers.SearchFoods)
		food.GET("/barcode/:code", controllers.SearchByBarcode)
		food.GET("/history", controllers.SearchFoodHistory)
		food.GET("/details/:fdcId", controllers.FoodDetails)
	}

	tracker := r.Group("/tracker")
	{
		tracker.POST("", controllers.AddTrackerEntry)
		tracker.GET("", controllers.ListTrackerEntries)
		tracker.GET("/summary", controllers.TrackerSummary)
		tracker.DELETE("/:id", controllers.DeleteTrackerEntry)
		tracker.DELETE("", controllers.ClearTrackerEntries)
	}

	favorites := r.Group("/favorites")
	{
		favorites.POST("", controllers.AddFavorite)
		favorites.GET("", controllers.ListFavorites)
		favorites.DELETE("/:id", controllers.RemoveFavorite)
		favorites.DELETE("", controllers.ClearFavorites)
	}

	insights := r.Group("/insights")
	{
		insights.POST("/recompute", controllers.RecomputeInsight)
		insights.GET("", controllers.ListInsights)
	}

	return r
}
