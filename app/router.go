package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mytheresa/catalogue-browser/app/catalog"
	"github.com/mytheresa/catalogue-browser/app/categories"
	"github.com/mytheresa/catalogue-browser/app/users"
	"github.com/mytheresa/catalogue-browser/internal/logging"
)

type Handlers struct {
	Catalog    *catalog.CatalogHandler
	State      *catalog.StateHandler
	Categories *categories.CategoryHandler
	Users      *users.UserHandler
}

func NewRouter(l *slog.Logger, h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(logging.Middleware(l))
	r.Use(middleware.Recoverer)

	r.Get("/products", h.Catalog.HandleGet)
	r.Get("/categories", h.Categories.HandleGetAll)
	r.Get("/users", h.Users.HandleGetAll)

	r.Route("/state", func(st chi.Router) {
		st.Post("/sort/{field}", h.State.HandleSort)
		st.Post("/categories/{title}", h.State.HandleToggleCategory)
		st.Delete("/categories", h.State.HandleClearCategories)
		st.Delete("/query", h.State.HandleClearQuery)
		st.Post("/reset", h.State.HandleReset)
	})

	return r
}
