package container

import (
	"context"
	"errors"
	"log"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/dinolingo-lambda/internal/config"
	"github.com/saulo-duarte/dinolingo-lambda/internal/dino"
	"github.com/saulo-duarte/dinolingo-lambda/internal/llm"
	"github.com/saulo-duarte/dinolingo-lambda/internal/mole"
	"github.com/saulo-duarte/dinolingo-lambda/internal/prompt"
	"github.com/saulo-duarte/dinolingo-lambda/internal/reply"
	"github.com/saulo-duarte/dinolingo-lambda/internal/router"
	"github.com/saulo-duarte/dinolingo-lambda/internal/teach"
)

type Container struct {
	Settings       *config.Settings
	DinoContainer  *dino.DinoContainer
	MoleContainer  *mole.MoleContainer
	TeachContainer *teach.TeachContainer
	Provider       string
	Configured     bool
}

func New() *Container {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}
	config.InitLogger(settings.Log)

	gateway, err := llm.New(context.Background(), llm.Config{
		Provider: settings.LLM.Provider,
		APIKey:   settings.LLM.APIKey(),
		Model:    settings.LLM.Model,
		BaseURL:  settings.LLM.BaseURL(),
	})
	switch {
	case errors.Is(err, llm.ErrMissingCredential):
		config.Logger.Warnf("No API key for provider %q, generation endpoints will fail", settings.LLM.Provider)
		return Build(settings, nil)
	case err != nil:
		log.Fatalf("failed to create %s gateway: %v", settings.LLM.Provider, err)
	}

	return Build(settings, gateway)
}

// Build wires the exercise families around an already created gateway. A
// nil gateway leaves every generation endpoint reporting the missing key.
func Build(settings *config.Settings, gateway llm.Gateway) *Container {
	model := settings.LLM.Model
	if model == "" {
		model = llm.DefaultModel(settings.LLM.Provider)
	}

	policy := reply.Policy{
		Timeout:     settings.LLM.Timeout,
		StrictCount: settings.Exercise.StrictCount,
	}
	exercises := prompt.NewBuilder(model, prompt.ChatStructured)
	chat := prompt.NewBuilder(model, prompt.ChatMode(settings.Teach.ChatMode))

	return &Container{
		Settings:       settings,
		DinoContainer:  dino.NewDinoContainer(gateway, exercises, policy),
		MoleContainer:  mole.NewMoleContainer(gateway, exercises, policy),
		TeachContainer: teach.NewTeachContainer(gateway, chat, policy),
		Provider:       settings.LLM.Provider,
		Configured:     gateway != nil,
	}
}

// Router mounts every family behind the shared middleware stack.
func (c *Container) Router() *chi.Mux {
	return router.New(router.RouterConfig{
		DinoHandler:  c.DinoContainer.Handler,
		MoleHandler:  c.MoleContainer.Handler,
		TeachHandler: c.TeachContainer.Handler,
		CORS:         c.Settings.CORS,
		Provider:     c.Provider,
		Configured:   c.Configured,
	})
}
