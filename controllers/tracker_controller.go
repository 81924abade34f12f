package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ajit0013/SugarHealthTracker/models"
	"github.com/ajit0013/SugarHealthTracker/services"
)

// POST /tracker  { "food": {...}, "portion_g": 250 }
func AddTrackerEntry(c *gin.Context) {
	var req struct {
		Food     models.FoodItem `json:"food" binding:"required"`
		PortionG float64         `json:"portion_g" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	ok, err := newTrackerService().Add(req.Food, req.PortionG, models.DefaultUserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": ok})
}

// GET /tracker?date=2024-06-01  (defaults to today)
func ListTrackerEntries(c *gin.Context) {
	date := c.DefaultQuery("date", services.Today())
	entries, err := newTrackerService().List(date, models.DefaultUserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "entries": entries})
}

// DELETE /tracker/:id
func DeleteTrackerEntry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	ok, err := newTrackerService().Delete(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": ok})
}

// DELETE /tracker?date=2024-06-01
func ClearTrackerEntries(c *gin.Context) {
	date := c.DefaultQuery("date", services.Today())
	ok, err := newTrackerService().Clear(date, models.DefaultUserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": ok})
}

// GET /tracker/summary?date=2024-06-01
func TrackerSummary(c *gin.Context) {
	date := c.DefaultQuery("date", services.Today())
	summary, err := newInsightService().Summarize(models.DefaultUserID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
