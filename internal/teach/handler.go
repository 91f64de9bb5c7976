package teach

import (
	"errors"
	"net/http"

	"github.com/saulo-duarte/dinolingo-lambda/internal/config"
	"github.com/saulo-duarte/dinolingo-lambda/internal/prompt"
	"github.com/saulo-duarte/dinolingo-lambda/internal/reply"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req ChatRequest
	if err := config.DecodeJSON(r, &req); err != nil {
		log.WithError(err).Warn("Invalid request body for chat")
		config.Detail(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := config.Validate(req); err != nil {
		config.Detail(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Chat(r.Context(), req)
	if err != nil {
		if errors.Is(err, prompt.ErrEmptyMessage) {
			config.Detail(w, http.StatusBadRequest, err.Error())
			return
		}
		config.Detail(w, http.StatusInternalServerError, reply.Describe(err, "Error: "))
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) ChatDummy(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.Dummy(r.Context()))
}
