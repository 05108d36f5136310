package controllers

import (
	"net/http"

	"github.com/CJR1981/Macro-Tracker/services"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	sessions *services.SessionService
}

func NewSessionController(sessions *services.SessionService) *SessionController {
	return &SessionController{sessions: sessions}
}

func (sc *SessionController) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"active_user": sc.sessions.Active()})
}

func (sc *SessionController) SwitchUser(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := sc.sessions.Switch(req.Name); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"active_user": req.Name})
}
