package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/newshub/newshub/internal/api/middleware"
	"github.com/newshub/newshub/internal/api/shared"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Trace)

	// A routing miss is answered before the error pipeline is ever
	// involved; this is a missing handler, not a failed one.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Page not found")
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/", app.catalogHandler.GetCatalog)
		r.Get("/topics", app.topicHandler.ListTopics)

		r.Get("/articles", app.articleHandler.ListArticles)
		r.Post("/articles", app.articleHandler.CreateArticle)
		r.Get("/articles/{article_id}", app.articleHandler.GetArticle)
		r.Patch("/articles/{article_id}", app.articleHandler.UpdateArticleVotes)
		r.Get("/articles/{article_id}/comments", app.commentHandler.ListArticleComments)
		r.Post("/articles/{article_id}/comments", app.commentHandler.CreateComment)

		r.Patch("/comments/{comment_id}", app.commentHandler.UpdateCommentVotes)
		r.Delete("/comments/{comment_id}", app.commentHandler.DeleteComment)

		r.Get("/users", app.userHandler.ListUsers)
		r.Get("/users/{username}", app.userHandler.GetUser)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
