package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ajit0013/SugarHealthTracker/models"
	"github.com/ajit0013/SugarHealthTracker/utils"
)

// FoodResult is one search hit enriched with the sugar analysis shown next
// to it.
type FoodResult struct {
	Food           models.FoodItem      `json:"food"`
	Classification utils.Classification `json:"classification"`
	Impact         utils.ImpactScore    `json:"impact"`
}

// GET /food/search?q=apple
func SearchFoods(c *gin.Context) {
	query := c.Query("q")
	if ok, msg := utils.ValidateSearchInput(query); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	foods, reason := newFoodService().SearchByName(c.Request.Context(), query)

	results := make([]FoodResult, 0, len(foods))
	for _, f := range foods {
		results = append(results, FoodResult{
			Food:           f,
			Classification: utils.ClassifySugar(f.SugarG),
			Impact:         utils.SugarImpact(f.SugarG, 100),
		})
	}
	c.JSON(http.StatusOK, gin.H{"results": results, "reason": reason})
}

// GET /food/barcode/:code
func SearchByBarcode(c *gin.Context) {
	code := c.Param("code")
	if ok, msg := utils.ValidateBarcode(code); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	foods, reason := newFoodService().SearchByBarcode(c.Request.Context(), code)

	results := make([]FoodResult, 0, len(foods))
	for _, f := range foods {
		results = append(results, FoodResult{
			Food:           f,
			Classification: utils.ClassifySugar(f.SugarG),
			Impact:         utils.SugarImpact(f.SugarG, 100),
		})
	}
	c.JSON(http.StatusOK, gin.H{"results": results, "reason": reason})
}

// GET /food/history?q=co&limit=10
func SearchFoodHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	foods, err := newFoodService().History(c.Query("q"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": foods})
}

// GET /food/details/:fdcId
func FoodDetails(c *gin.Context) {
	fdcID, err := strconv.ParseInt(c.Param("fdcId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid fdc id"})
		return
	}

	raw, err := newUSDAService().FoodDetails(c.Request.Context(), fdcID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if raw == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}
