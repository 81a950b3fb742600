package catalog

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/mytheresa/catalogue-browser/app/respond"
	"github.com/mytheresa/catalogue-browser/catalogue"
	"github.com/mytheresa/catalogue-browser/internal/logging"
)

// StateHandler exposes the filter state transitions. The client sends its
// current state as the JSON body and receives the next one.
type StateHandler struct{}

func NewStateHandler() *StateHandler {
	return &StateHandler{}
}

func (h *StateHandler) HandleSort(w http.ResponseWriter, r *http.Request) {
	l := logging.FromContext(r.Context()).With("handler", "state.sort")

	field, err := catalogue.ParseSortField(respond.PathParam(r, "field"))
	if err != nil || field == catalogue.SortNone {
		l.Warn("sort_failed", "status", 400, "reason", "unknown sort field", "error", err)
		respond.Error(w, r, http.StatusBadRequest, "unknown sort field")
		return
	}

	state, ok := decodeState(w, r, l)
	if !ok {
		return
	}

	respond.JSON(w, r, http.StatusOK, catalogue.OnActivate(state, field))
}

func (h *StateHandler) HandleToggleCategory(w http.ResponseWriter, r *http.Request) {
	l := logging.FromContext(r.Context()).With("handler", "state.toggle_category")

	title := respond.PathParam(r, "title")
	if title == "" {
		l.Warn("toggle_category_failed", "status", 400, "reason", "missing category title")
		respond.Error(w, r, http.StatusBadRequest, "missing category title")
		return
	}

	state, ok := decodeState(w, r, l)
	if !ok {
		return
	}

	respond.JSON(w, r, http.StatusOK, catalogue.ToggleCategory(state, title))
}

func (h *StateHandler) HandleClearCategories(w http.ResponseWriter, r *http.Request) {
	l := logging.FromContext(r.Context()).With("handler", "state.clear_categories")

	state, ok := decodeState(w, r, l)
	if !ok {
		return
	}

	respond.JSON(w, r, http.StatusOK, catalogue.ClearCategories(state))
}

func (h *StateHandler) HandleClearQuery(w http.ResponseWriter, r *http.Request) {
	l := logging.FromContext(r.Context()).With("handler", "state.clear_query")

	state, ok := decodeState(w, r, l)
	if !ok {
		return
	}

	respond.JSON(w, r, http.StatusOK, catalogue.ClearQuery(state))
}

func (h *StateHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	l := logging.FromContext(r.Context()).With("handler", "state.reset")

	state, ok := decodeState(w, r, l)
	if !ok {
		return
	}

	respond.JSON(w, r, http.StatusOK, catalogue.ResetAll(state))
}

// decodeState reads the body as a FilterState; an empty body is the initial state.
// Repeated category titles collapse to one.
func decodeState(w http.ResponseWriter, r *http.Request, l *slog.Logger) (catalogue.FilterState, bool) {
	var state catalogue.FilterState
	if err := json.NewDecoder(r.Body).Decode(&state); err != nil && !errors.Is(err, io.EOF) {
		l.Warn("decode_state_failed", "status", 400, "reason", "invalid JSON body", "error", err)
		respond.Error(w, r, http.StatusBadRequest, "invalid JSON body")
		return catalogue.FilterState{}, false
	}

	if _, err := catalogue.ParseSortField(string(state.SortField)); err != nil {
		l.Warn("decode_state_failed", "status", 400, "reason", "unknown sort field", "error", err)
		respond.Error(w, r, http.StatusBadRequest, "unknown sort field")
		return catalogue.FilterState{}, false
	}

	return catalogue.UniqueCategories(state), true
}
