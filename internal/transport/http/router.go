package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-recipe-catalog/internal/transport/http/handlers"
	"github.com/pribylovaa/go-recipe-catalog/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
// Закладки доступны только с валидным Bearer-токеном.
func NewRouter(svc handlers.RecipeService, verifier middleware.TokenVerifier, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Recover(),            // паника превращается в 500 и попадает в лог запроса
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(svc)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, verifier)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h, verifier)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, verifier middleware.TokenVerifier) {
	// recipes
	r.Get("/recipes", h.ListRecipes)
	r.Get("/recipes/{id}", h.GetRecipe)
	r.Get("/filters", h.ListFilters)

	// bookmarks
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(verifier))

		r.Get("/bookmarks", h.ListBookmarks)
		r.Put("/bookmarks/{recipe_id}", h.AddBookmark)
		r.Delete("/bookmarks/{recipe_id}", h.RemoveBookmark)
	})
}
