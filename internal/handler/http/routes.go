package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version", h.getServerVersion)
	router.Handle("/metrics", promhttp.Handler())

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/password/reset", h.requestPasswordReset)
		r.Post("/api/auth/password/reset/confirm", h.confirmPasswordReset)
		r.Post("/api/auth/verify", h.verifyEmail)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/auth/session", h.session)
		r.Post("/api/auth/password", h.updatePassword)

		r.Route("/api/notes", func(r chi.Router) {
			r.Get("/", h.listNotes)
			r.Post("/", h.createNote)
			r.Get("/revision", h.notesRevision)
			r.With(h.bodyHash).Post("/batch", h.insertNotes)
			r.Get("/{id}", h.getNote)
			r.Patch("/{id}", h.updateNote)
			r.Delete("/{id}", h.deleteNote)
		})

		r.Route("/api/backups", func(r chi.Router) {
			r.Get("/", h.listBackups)
			r.With(h.bodyHash).Post("/", h.createBackup)
			r.Get("/{id}", h.getBackup)
			r.Delete("/{id}", h.deleteBackup)
		})

		r.Get("/api/preferences", h.getPreferences)
		r.Put("/api/preferences", h.updatePreferences)

		r.Route("/api/storage/{bucket}/{name}", func(r chi.Router) {
			r.Put("/", h.uploadAttachment)
			r.Head("/", h.attachmentInfo)
			r.Get("/", h.downloadAttachment)
			r.Delete("/", h.deleteAttachment)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
