package routes

import (
	"github.com/CJR1981/Macro-Tracker/controllers"
	"github.com/CJR1981/Macro-Tracker/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter(set *controllers.Set) *gin.Engine {
	r := gin.Default()

	r.GET("/users", set.Users.ListUsers)
	r.POST("/users", set.Users.AddUser)

	r.GET("/session", set.Session.GetSession)
	r.PUT("/session", set.Session.SwitchUser)

	r.GET("/theme", set.Settings.GetTheme)
	r.PUT("/theme", set.Settings.SetTheme)
	r.POST("/theme/toggle", set.Settings.ToggleTheme)

	// Per-user routes resolve :name against the registry first.
	user := r.Group("/users/:name")
	user.Use(middlewares.ProfileResolver(set.Registry))
	{
		user.GET("/goals", set.Goals.GetGoals)
		user.PUT("/goals", set.Goals.UpdateGoals)
		user.PUT("/apikey", set.Settings.SaveAPIKey)
		user.GET("/summary", set.Summary.GetDaySummary)
		user.POST("/logs", set.Logs.AddFood)
		user.DELETE("/logs", set.Logs.ClearLogs)
		user.DELETE("/logs/:date/:meal/:index", set.Logs.DeleteFood)
		user.POST("/estimate", set.Search.Estimate)
	}

	ws := r.Group("/ws/:name")
	ws.Use(middlewares.ProfileResolver(set.Registry))
	{
		ws.GET("", set.Realtime.Subscribe)
	}

	return r
}
