package controllers

import (
	"net/http"

	"github.com/CJR1981/Macro-Tracker/services"

	"github.com/gin-gonic/gin"
)

type SearchController struct {
	estimator *services.EstimatorService
}

func NewSearchController(estimator *services.EstimatorService) *SearchController {
	return &SearchController{estimator: estimator}
}

// Estimate asks the completion API for macro values of a free-text food
// description (e.g. "Grilled salmon 150g"). The result prefills the entry
// form; nothing is logged until the client posts the entry explicitly.
func (sc *SearchController) Estimate(c *gin.Context) {
	user := c.GetString("user")

	var req struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	est, err := sc.estimator.Estimate(c.Request.Context(), user, req.Query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, est)
}
