// controllers/goal_controller.go
package controllers

import (
	"net/http"

	"github.com/CJR1981/Macro-Tracker/models"
	"github.com/CJR1981/Macro-Tracker/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	profiles *services.ProfileService
	hub      *services.RealtimeHub
}

func NewGoalController(profiles *services.ProfileService, hub *services.RealtimeHub) *GoalController {
	return &GoalController{profiles: profiles, hub: hub}
}

func (gc *GoalController) GetGoals(c *gin.Context) {
	user := c.GetString("user")
	p, err := gc.profiles.Get(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": p.Goals})
}

// UpdateGoals replaces the whole goals object. Missing fields default to 0,
// same as an empty input box in the form.
func (gc *GoalController) UpdateGoals(c *gin.Context) {
	user := c.GetString("user")

	var req struct {
		Calories *float64 `json:"calories"`
		Protein  *float64 `json:"protein"`
		Carbs    *float64 `json:"carbs"`
		Fat      *float64 `json:"fat"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goals := models.Goals{}
	if req.Calories != nil {
		goals.Calories = *req.Calories
	}
	if req.Protein != nil {
		goals.Protein = *req.Protein
	}
	if req.Carbs != nil {
		goals.Carbs = *req.Carbs
	}
	if req.Fat != nil {
		goals.Fat = *req.Fat
	}

	if err := gc.profiles.Patch(user, services.ProfilePatch{Goals: &goals}); err != nil {
		respondError(c, err)
		return
	}
	gc.hub.NotifyChanged(user, "")
	c.JSON(http.StatusOK, gin.H{"goals": goals})
}
