package controllers

import (
	"github.com/CJR1981/Macro-Tracker/config"
	"github.com/CJR1981/Macro-Tracker/services"
	"github.com/CJR1981/Macro-Tracker/storage"
)

// Set bundles every controller plus the registry the router needs for the
// profile-resolution middleware.
type Set struct {
	Users    *UserController
	Session  *SessionController
	Goals    *GoalController
	Settings *SettingsController
	Logs     *LogController
	Summary  *SummaryController
	Search   *SearchController
	Realtime *RealtimeController

	Registry *services.RegistryService
}

// NewSet wires the service graph on top of the injected store. The store is
// the only stateful collaborator; everything else recomputes from it per
// request.
func NewSet(store storage.Store, cfg *config.Config) *Set {
	profiles := services.NewProfileService(store)
	registry := services.NewRegistryService(store, profiles)
	sessions := services.NewSessionService(registry)
	theme := services.NewThemeService(store)
	logs := services.NewLogService(profiles)
	summary := services.NewSummaryService(profiles)
	hub := services.NewRealtimeHub()
	chat := services.NewOpenAIClient(cfg.LLMBaseURL, cfg.LLMModel)
	estimator := services.NewEstimatorService(profiles, chat)

	return &Set{
		Users:    NewUserController(registry),
		Session:  NewSessionController(sessions),
		Goals:    NewGoalController(profiles, hub),
		Settings: NewSettingsController(profiles, theme, hub),
		Logs:     NewLogController(logs, hub),
		Summary:  NewSummaryController(summary),
		Search:   NewSearchController(estimator),
		Realtime: NewRealtimeController(hub),
		Registry: registry,
	}
}
