package main

import (
	"database/sql"
	"log/slog"

	"github.com/newshub/newshub/internal/api"
	"github.com/newshub/newshub/internal/config"
	"github.com/newshub/newshub/internal/platform/postgres"
	"github.com/newshub/newshub/internal/service"
	"github.com/newshub/newshub/internal/store"
)

// application holds the wired dependency graph: configuration, the
// connection pool, the stores, the resolvers, and the HTTP handlers.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	topicStore   store.TopicStore
	articleStore store.ArticleStore
	commentStore store.CommentStore
	userStore    store.UserStore

	articleService service.ArticleService
	commentService service.CommentService
	userService    service.UserService

	topicHandler   *api.TopicHandler
	articleHandler *api.ArticleHandler
	commentHandler *api.CommentHandler
	userHandler    *api.UserHandler
	catalogHandler *api.CatalogHandler
}

// newApplication wires stores, resolvers and handlers over the given
// connection pool.
func newApplication(cfg *config.Config, log *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: log,
		db:     db,
	}

	app.topicStore = postgres.NewTopicStore(db, log)
	app.articleStore = postgres.NewArticleStore(db, log)
	app.commentStore = postgres.NewCommentStore(db, log)
	app.userStore = postgres.NewUserStore(db, log)

	app.articleService = service.NewArticleService(app.articleStore, app.topicStore, log)
	app.commentService = service.NewCommentService(app.commentStore, app.articleStore, log)
	app.userService = service.NewUserService(app.userStore, log)

	app.topicHandler = api.NewTopicHandler(app.topicStore, log)
	app.articleHandler = api.NewArticleHandler(app.articleService, log)
	app.commentHandler = api.NewCommentHandler(app.commentService, log)
	app.userHandler = api.NewUserHandler(app.userService, log)

	catalogHandler, err := api.NewCatalogHandler(log)
	if err != nil {
		return nil, err
	}
	app.catalogHandler = catalogHandler

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
		app.db = nil
	}
}
