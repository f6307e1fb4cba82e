package main

import (
	"FileNest/config"
	"FileNest/internal/handler"
	"FileNest/internal/repo"
	"FileNest/internal/storage"
	"FileNest/router"

	log "github.com/sirupsen/logrus"
)

// main initializes services and starts the HTTP server.
func main() {
	config.InitConfig()
	repo.InitSqlite()
	storage.InitStorage()
	handler.InitLoginLimiter()

	r := router.InitRouter()

	addr := ":" + config.AppConfig.Port
	log.Infof("server running on http://127.0.0.1%s", addr)
	if err := r.Run(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
