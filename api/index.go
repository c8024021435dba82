package api

import (
	"boutique-admin/app"
	"boutique-admin/config"
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	application *app.App
	initErr     error
	once        sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg, err := config.LoadConfig()
		if err != nil {
			initErr = err
			return
		}
		config.SetupLogger(cfg)

		application, initErr = app.New(context.Background(), cfg)
	})
}

// Handler is the serverless entry point; the app is built on the first request.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		log.Error().Err(initErr).Msg("application failed to initialize")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"Service unavailable"}`))
		return
	}
	application.Router.ServeHTTP(w, r)
}
