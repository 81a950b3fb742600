package catalogue

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownSortField is returned by ParseSortField for names outside the sortable columns.
var ErrUnknownSortField = errors.New("unknown sort field")

type SortField string

const (
	SortNone     SortField = ""
	SortID       SortField = "ID"
	SortProduct  SortField = "Product"
	SortCategory SortField = "Category"
	SortUser     SortField = "User"
)

// SortFields lists the sortable columns in table order.
var SortFields = []SortField{SortID, SortProduct, SortCategory, SortUser}

func ParseSortField(s string) (SortField, error) {
	if s == "" {
		return SortNone, nil
	}
	field := SortField(s)
	if !slices.Contains(SortFields, field) {
		return SortNone, fmt.Errorf("%w: %q", ErrUnknownSortField, s)
	}
	return field, nil
}

// Direction is the sort indicator shown on a column.
type Direction string

const (
	DirectionNone Direction = "none"
	DirectionAsc  Direction = "asc"
	DirectionDesc Direction = "desc"
)

// FilterState is everything a browsing session has selected.
// The zero value shows the whole catalogue in its original order.
// Transitions return a new value and never touch the slice of the old one.
type FilterState struct {
	SelectedUserName   string    `json:"user"`
	Query              string    `json:"query"`
	SelectedCategories []string  `json:"categories,omitempty"`
	SortField          SortField `json:"sort"`
	SortReverse        bool      `json:"reverse"`
}

// Equal compares two states, treating the selected categories as a set.
func (s FilterState) Equal(o FilterState) bool {
	if s.SelectedUserName != o.SelectedUserName ||
		s.Query != o.Query ||
		s.SortField != o.SortField ||
		s.SortReverse != o.SortReverse {
		return false
	}

	mine := UniqueCategories(s).SelectedCategories
	theirs := UniqueCategories(o).SelectedCategories
	if len(mine) != len(theirs) {
		return false
	}
	for _, title := range mine {
		if !slices.Contains(theirs, title) {
			return false
		}
	}
	return true
}

// UniqueCategories drops empty and repeated titles from the selection,
// keeping the first occurrence of each.
func UniqueCategories(state FilterState) FilterState {
	unique := state
	unique.SelectedCategories = nil
	for _, title := range state.SelectedCategories {
		if title != "" && !IsCategorySelected(unique, title) {
			unique.SelectedCategories = append(unique.SelectedCategories, title)
		}
	}
	return unique
}

// OnActivate advances the sort cycle unsorted -> ascending -> descending -> unsorted.
// Any activation while descending clears sorting, even on another column.
func OnActivate(state FilterState, field SortField) FilterState {
	switch {
	case state.SortReverse:
		state.SortReverse = false
		state.SortField = SortNone
	case field == state.SortField:
		state.SortReverse = true
	default:
		state.SortField = field
	}
	return state
}

// SortDirection reports the indicator for field under state.
func SortDirection(state FilterState, field SortField) Direction {
	switch {
	case state.SortField != field || field == SortNone:
		return DirectionNone
	case state.SortReverse:
		return DirectionDesc
	default:
		return DirectionAsc
	}
}

// ToggleCategory removes title from the selection if present, otherwise appends it.
func ToggleCategory(state FilterState, title string) FilterState {
	if i := slices.Index(state.SelectedCategories, title); i >= 0 {
		selected := slices.Delete(slices.Clone(state.SelectedCategories), i, i+1)
		if len(selected) == 0 {
			selected = nil
		}
		state.SelectedCategories = selected
		return state
	}

	state.SelectedCategories = append(slices.Clone(state.SelectedCategories), title)
	return state
}

func IsCategorySelected(state FilterState, title string) bool {
	return slices.Contains(state.SelectedCategories, title)
}

func ClearCategories(state FilterState) FilterState {
	state.SelectedCategories = nil
	return state
}

// SelectUser narrows the view to one owner; an empty name shows all users.
func SelectUser(state FilterState, name string) FilterState {
	state.SelectedUserName = name
	return state
}

func SetQuery(state FilterState, query string) FilterState {
	state.Query = query
	return state
}

func ClearQuery(state FilterState) FilterState {
	state.Query = ""
	return state
}

// ResetAll returns the initial state.
func ResetAll(FilterState) FilterState {
	return FilterState{}
}
