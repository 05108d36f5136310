package controllers

import (
	"net/http"

	"github.com/CJR1981/Macro-Tracker/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	registry *services.RegistryService
}

func NewUserController(registry *services.RegistryService) *UserController {
	return &UserController{registry: registry}
}

func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.registry.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// AddUser registers a new username with a default profile. Re-adding an
// existing name is a no-op and does not reset its profile.
func (uc *UserController) AddUser(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := uc.registry.AddUser(req.Name); err != nil {
		respondError(c, err)
		return
	}
	users, err := uc.registry.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"users": users})
}
