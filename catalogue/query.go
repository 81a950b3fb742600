package catalogue

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is the collation used for text columns unless WithLocale says otherwise.
var DefaultLocale = language.English

type queryOptions struct {
	locale language.Tag
}

type Option func(*queryOptions)

// WithLocale sorts text columns with the collation rules of tag.
func WithLocale(tag language.Tag) Option {
	return func(o *queryOptions) {
		o.locale = tag
	}
}

// VisibleProducts applies the user, text and category filters of state, then
// its sort and reverse flags. items is left untouched.
func VisibleProducts(items []EnrichedProduct, state FilterState, opts ...Option) []EnrichedProduct {
	o := queryOptions{locale: DefaultLocale}
	for _, opt := range opts {
		opt(&o)
	}

	visible := slices.Clone(items)

	if state.SelectedUserName != "" {
		visible = slices.DeleteFunc(visible, func(p EnrichedProduct) bool {
			return p.User.Name != state.SelectedUserName
		})
	}

	if query := strings.ToLower(strings.TrimSpace(state.Query)); query != "" {
		visible = slices.DeleteFunc(visible, func(p EnrichedProduct) bool {
			return !strings.Contains(strings.ToLower(p.Name), query)
		})
	}

	if len(state.SelectedCategories) > 0 {
		visible = slices.DeleteFunc(visible, func(p EnrichedProduct) bool {
			return !slices.Contains(state.SelectedCategories, p.Category.Title)
		})
	}

	if compare := comparator(state.SortField, o.locale); compare != nil {
		slices.SortStableFunc(visible, compare)
	}

	if state.SortReverse {
		slices.Reverse(visible)
	}

	return visible
}

// comparator returns nil for SortNone and for fields it does not know.
// A collator keeps internal buffers, so each query gets its own.
func comparator(field SortField, locale language.Tag) func(a, b EnrichedProduct) int {
	switch field {
	case SortID:
		return func(a, b EnrichedProduct) int {
			return cmp.Compare(a.ID, b.ID)
		}
	case SortProduct:
		c := collate.New(locale)
		return func(a, b EnrichedProduct) int {
			return c.CompareString(a.Name, b.Name)
		}
	case SortCategory:
		c := collate.New(locale)
		return func(a, b EnrichedProduct) int {
			return c.CompareString(a.Category.Title, b.Category.Title)
		}
	case SortUser:
		c := collate.New(locale)
		return func(a, b EnrichedProduct) int {
			return c.CompareString(a.User.Name, b.User.Name)
		}
	default:
		return nil
	}
}
