package main

import (
	"backend/config"
	"backend/routes"
	"backend/services"
	"backend/utils"
)

func main() {
	cfg := config.Load()
	config.InitDB(cfg)
	utils.InitMailer(cfg)

	hub := services.NewRealtimeHub()
	services.InitProgressHub(hub)

	r := routes.SetupRouter(hub)
	r.Run(":" + cfg.Port)
}
