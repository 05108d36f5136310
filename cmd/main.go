package main

import (
	"log"

	"github.com/CJR1981/Macro-Tracker/config"
	"github.com/CJR1981/Macro-Tracker/controllers"
	"github.com/CJR1981/Macro-Tracker/routes"
	"github.com/CJR1981/Macro-Tracker/storage"
)

func main() {
	cfg := config.Load()

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	r := routes.SetupRouter(controllers.NewSet(store, cfg))
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
