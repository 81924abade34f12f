package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ajit0013/SugarHealthTracker/models"
	"github.com/ajit0013/SugarHealthTracker/services"
)

// POST /insights/recompute  { "date": "2024-06-01" }
func RecomputeInsight(c *gin.Context) {
	var req struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if req.Date == "" {
		req.Date = services.Today()
	}

	updated, err := newInsightService().RecomputeDaily(models.DefaultUserID, req.Date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated, "date": req.Date})
}

// GET /insights?days=7
func ListInsights(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	insights, err := newInsightService().Recent(models.DefaultUserID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"insights":        insights,
		"compliance_rate": services.ComplianceRate(insights),
	})
}
