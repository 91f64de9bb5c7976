package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/saulo-duarte/dinolingo-lambda/internal/config"
	"github.com/saulo-duarte/dinolingo-lambda/internal/container"
)

func main() {
	c := container.New()
	s := c.Settings.Server

	server := &http.Server{
		Addr:         s.Addr,
		Handler:      c.Router(),
		ReadTimeout:  s.ReadTimeout,
		WriteTimeout: s.WriteTimeout,
		IdleTimeout:  s.IdleTimeout,
	}

	go func() {
		config.Logger.Infof("Listening on %s", s.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.WithError(err).Fatal("Server failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	config.Logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		config.Logger.WithError(err).Error("Server shutdown failed")
		return
	}
	config.Logger.Info("Server stopped")
}
