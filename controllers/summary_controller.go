package controllers

import (
	"net/http"

	"github.com/CJR1981/Macro-Tracker/services"

	"github.com/gin-gonic/gin"
)

type SummaryController struct {
	summary *services.SummaryService
}

func NewSummaryController(summary *services.SummaryService) *SummaryController {
	return &SummaryController{summary: summary}
}

// GetDaySummary renders one day: the four meals in fixed order, totals
// across them, and clamped progress per goal macro.
func (sc *SummaryController) GetDaySummary(c *gin.Context) {
	user := c.GetString("user")

	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'date' query param"})
		return
	}
	date, ok := parseDateKey(dateStr)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	summary, err := sc.summary.DaySummary(user, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
