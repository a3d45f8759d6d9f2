package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter 把 Handler 挂到 /api 下
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/initial", h.handleInitial)
		r.Post("/translate", h.handleTranslate)
		r.Post("/translate_sequence", h.handleTranslateSequence)
		r.Post("/validate", h.handleValidate)
		r.Post("/legal_moves", h.handleLegalMoves)
		r.Post("/describe", h.handleDescribe)
		r.Post("/new_game", h.handleNewGame)
		r.Post("/play", h.handlePlay)
		r.Post("/state", h.handleState)
	})
	return r
}
