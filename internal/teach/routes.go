package teach

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/chat", h.Chat)
	r.Post("/chat_dummy", h.ChatDummy)
	return r
}
