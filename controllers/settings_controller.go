package controllers

import (
	"net/http"
	"strings"

	"github.com/CJR1981/Macro-Tracker/services"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	profiles *services.ProfileService
	theme    *services.ThemeService
	hub      *services.RealtimeHub
}

func NewSettingsController(profiles *services.ProfileService, theme *services.ThemeService, hub *services.RealtimeHub) *SettingsController {
	return &SettingsController{profiles: profiles, theme: theme, hub: hub}
}

// SaveAPIKey stores the completion-API credential on the profile. The key is
// opaque here; it is only ever forwarded as a bearer header.
func (sc *SettingsController) SaveAPIKey(c *gin.Context) {
	user := c.GetString("user")

	var req struct {
		APIKey string `json:"api_key"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key := strings.TrimSpace(req.APIKey)
	if err := sc.profiles.Patch(user, services.ProfilePatch{APIKey: &key}); err != nil {
		respondError(c, err)
		return
	}
	sc.hub.NotifyChanged(user, "")
	c.JSON(http.StatusOK, gin.H{"message": "API key saved"})
}

func (sc *SettingsController) GetTheme(c *gin.Context) {
	theme, err := sc.theme.Get()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

func (sc *SettingsController) SetTheme(c *gin.Context) {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := sc.theme.Set(req.Theme); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}

func (sc *SettingsController) ToggleTheme(c *gin.Context) {
	theme, err := sc.theme.Toggle()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}
