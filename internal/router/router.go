package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/dinolingo-lambda/internal/config"
	"github.com/saulo-duarte/dinolingo-lambda/internal/dino"
	"github.com/saulo-duarte/dinolingo-lambda/internal/middlewares"
	"github.com/saulo-duarte/dinolingo-lambda/internal/mole"
	"github.com/saulo-duarte/dinolingo-lambda/internal/teach"
)

type RouterConfig struct {
	DinoHandler  *dino.Handler
	MoleHandler  *mole.Handler
	TeachHandler *teach.Handler
	CORS         config.CORSSettings
	// Provider and Configured are reported by /health.
	Provider   string
	Configured bool
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware(cfg.CORS))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"message": "French Vocabulary Exercise Generator API"})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]any{
			"status":     "ok",
			"provider":   cfg.Provider,
			"configured": cfg.Configured,
		})
	})

	r.Mount("/dino", dino.Routes(cfg.DinoHandler))
	r.Mount("/mole", mole.Routes(cfg.MoleHandler))
	r.Mount("/teach", teach.Routes(cfg.TeachHandler))
	return r
}
