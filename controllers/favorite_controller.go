package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ajit0013/SugarHealthTracker/models"
)

// POST /favorites  { "food": {...} }
func AddFavorite(c *gin.Context) {
	var req struct {
		Food models.FoodItem `json:"food" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	added, err := newFavoriteService().Add(req.Food, models.DefaultUserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !added {
		c.JSON(http.StatusOK, gin.H{"added": false, "message": "Already in favorites"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"added": true})
}

// GET /favorites
func ListFavorites(c *gin.Context) {
	favorites, err := newFavoriteService().List(models.DefaultUserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

// DELETE /favorites/:id
func RemoveFavorite(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid favorite id"})
		return
	}

	ok, err := newFavoriteService().Remove(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": ok})
}

// DELETE /favorites
func ClearFavorites(c *gin.Context) {
	ok, err := newFavoriteService().Clear(models.DefaultUserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": ok})
}
