package mole

import (
	"net/http"

	"github.com/saulo-duarte/dinolingo-lambda/internal/config"
	"github.com/saulo-duarte/dinolingo-lambda/internal/reply"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	set, err := h.service.Generate(r.Context())
	if err != nil {
		config.Detail(w, http.StatusInternalServerError, reply.Describe(err, "Error generating exercises: "))
		return
	}

	config.JSON(w, http.StatusOK, set)
}

func (h *Handler) GenerateDummy(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.Dummy(r.Context()))
}
