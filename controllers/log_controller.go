package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/CJR1981/Macro-Tracker/models"
	"github.com/CJR1981/Macro-Tracker/services"

	"github.com/gin-gonic/gin"
)

type LogController struct {
	logs *services.LogService
	hub  *services.RealtimeHub
}

func NewLogController(logs *services.LogService, hub *services.RealtimeHub) *LogController {
	return &LogController{logs: logs, hub: hub}
}

func parseDateKey(s string) (string, bool) {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", false
	}
	return s, true
}

// AddFood appends one entry to the given date and meal.
func (lc *LogController) AddFood(c *gin.Context) {
	user := c.GetString("user")

	var req struct {
		Date  string           `json:"date"`
		Meal  string           `json:"meal"`
		Entry models.FoodEntry `json:"entry"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, ok := parseDateKey(req.Date)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	if err := lc.logs.AppendFood(user, date, req.Meal, req.Entry); err != nil {
		respondError(c, err)
		return
	}
	lc.hub.NotifyChanged(user, date)
	c.JSON(http.StatusCreated, gin.H{"date": date, "meal": req.Meal, "entry": req.Entry})
}

// DeleteFood removes the entry at the given position. The position refers to
// the meal's sequence as last rendered.
func (lc *LogController) DeleteFood(c *gin.Context) {
	user := c.GetString("user")

	date, ok := parseDateKey(c.Param("date"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}
	meal := c.Param("meal")
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return
	}

	if err := lc.logs.RemoveFood(user, date, meal, index); err != nil {
		respondError(c, err)
		return
	}
	lc.hub.NotifyChanged(user, date)
	c.Status(http.StatusNoContent)
}

// ClearLogs wipes every logged day for the user. Destructive, so the caller
// must send confirm=true.
func (lc *LogController) ClearLogs(c *gin.Context) {
	user := c.GetString("user")

	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirmation required: pass confirm=true"})
		return
	}
	if err := lc.logs.ClearLogs(user); err != nil {
		respondError(c, err)
		return
	}
	lc.hub.NotifyChanged(user, "")
	c.Status(http.StatusNoContent)
}
