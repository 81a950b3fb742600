package catalog

import (
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/text/language"

	"github.com/mytheresa/catalogue-browser/app/respond"
	"github.com/mytheresa/catalogue-browser/catalogue"
	"github.com/mytheresa/catalogue-browser/internal/logging"
	"github.com/mytheresa/catalogue-browser/models"
)

// NoMatchesMessage accompanies an empty listing.
const NoMatchesMessage = "No products matching selected criteria"

type Response struct {
	Total    int                   `json:"total"`
	Products []Product             `json:"products"`
	State    catalogue.FilterState `json:"state"`
	Columns  []Column              `json:"columns"`
	Message  string                `json:"message,omitempty"`
}

type Category struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

type User struct {
	ID   uint       `json:"id"`
	Name string     `json:"name"`
	Sex  models.Sex `json:"sex"`
}

type Product struct {
	ID       uint     `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	User     User     `json:"user"`
}

// Column carries the sort indicator of one sortable table column.
type Column struct {
	Name      catalogue.SortField `json:"name"`
	Direction catalogue.Direction `json:"direction"`
}

type CatalogHandler struct {
	items  []catalogue.EnrichedProduct
	locale language.Tag
}

// NewCatalogHandler serves views over items, which must not change afterwards.
func NewCatalogHandler(items []catalogue.EnrichedProduct, locale language.Tag) *CatalogHandler {
	return &CatalogHandler{
		items:  items,
		locale: locale,
	}
}

func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	l := logging.FromContext(r.Context()).With("handler", "catalog.list_products")

	state, err := StateFromQuery(r.URL.Query())
	if err != nil {
		l.Warn("list_products_failed", "status", 400, "reason", "invalid filter state", "error", err)
		respond.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	visible := catalogue.VisibleProducts(h.items, state, catalogue.WithLocale(h.locale))

	products := make([]Product, len(visible))
	for i, p := range visible {
		products[i] = Product{
			ID:   p.ID,
			Name: p.Name,
			Category: Category{
				ID:    p.Category.ID,
				Title: p.Category.Title,
				Icon:  p.Category.Icon,
				Label: p.Category.Label(),
			},
			User: User{
				ID:   p.User.ID,
				Name: p.User.Name,
				Sex:  p.User.Sex,
			},
		}
	}

	columns := make([]Column, len(catalogue.SortFields))
	for i, field := range catalogue.SortFields {
		columns[i] = Column{Name: field, Direction: catalogue.SortDirection(state, field)}
	}

	response := Response{
		Total:    len(products),
		Products: products,
		State:    state,
		Columns:  columns,
	}
	if len(products) == 0 {
		response.Message = NoMatchesMessage
	}

	respond.JSON(w, r, http.StatusOK, response)
}

// StateFromQuery decodes a filter state from user, query, category (repeatable),
// sort and reverse parameters. Absent parameters keep their zero values.
func StateFromQuery(values url.Values) (catalogue.FilterState, error) {
	sortField, err := catalogue.ParseSortField(values.Get("sort"))
	if err != nil {
		return catalogue.FilterState{}, err
	}

	var reverse bool
	if v := values.Get("reverse"); v != "" {
		reverse, err = strconv.ParseBool(v)
		if err != nil {
			return catalogue.FilterState{}, err
		}
	}

	state := catalogue.FilterState{SortField: sortField, SortReverse: reverse}
	state = catalogue.SelectUser(state, values.Get("user"))
	state = catalogue.SetQuery(state, values.Get("query"))
	state.SelectedCategories = values["category"]

	return catalogue.UniqueCategories(state), nil
}
