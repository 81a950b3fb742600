package categories

import (
	"net/http"

	"github.com/mytheresa/catalogue-browser/app/respond"
	"github.com/mytheresa/catalogue-browser/internal/logging"
	"github.com/mytheresa/catalogue-browser/models"
)

type CategoryResponse struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Icon    string `json:"icon"`
	OwnerID uint   `json:"ownerId"`
	Label   string `json:"label"`
}

type CategoryProvider interface {
	GetAllCategories() ([]models.Category, error)
}

type CategoryHandler struct {
	repo CategoryProvider
}

func NewCategoryHandler(r CategoryProvider) *CategoryHandler {
	return &CategoryHandler{repo: r}
}

// HandleGetAll lists the categories in source order; the filter chips are built from it.
func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	l := logging.FromContext(r.Context()).With("handler", "categories.get_all")

	categories, err := h.repo.GetAllCategories()
	if err != nil {
		l.Error("get_categories_failed", "status", 500, "error", err)
		respond.Error(w, r, http.StatusInternalServerError, "failed to fetch categories")
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = CategoryResponse{
			ID:      c.ID,
			Title:   c.Title,
			Icon:    c.Icon,
			OwnerID: c.OwnerID,
			Label:   c.Label(),
		}
	}

	respond.JSON(w, r, http.StatusOK, response)
}
