package catalogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func scenarioCatalogue(t *testing.T) []EnrichedProduct {
	t.Helper()
	items, err := BuildCatalogue(testProducts, testCategories, testUsers)
	require.NoError(t, err)
	return items
}

func TestVisibleProductsScenario(t *testing.T) {
	items := scenarioCatalogue(t)

	byQuery := VisibleProducts(items, FilterState{Query: "an"})
	require.Len(t, byQuery, 1)
	assert.Equal(t, uint(2), byQuery[0].ID)
	assert.Equal(t, "Banana", byQuery[0].Name)

	byCategory := VisibleProducts(items, FilterState{SelectedCategories: []string{"Fruits"}})
	require.Len(t, byCategory, 1)
	assert.Equal(t, uint(1), byCategory[0].ID)
}

func TestVisibleProductsNoFiltersIsIdentity(t *testing.T) {
	items := mixedCatalogue()

	assert.Equal(t, items, VisibleProducts(items, FilterState{}))
	assert.Equal(t, items, VisibleProducts(items, FilterState{Query: "   "}))
	assert.Equal(t, items, VisibleProducts(items, FilterState{SelectedCategories: []string{}}))
}

func TestVisibleProductsFilters(t *testing.T) {
	testCases := []struct {
		name        string
		state       FilterState
		expectedIDs []uint
	}{
		{
			name:        "User filter exact match",
			state:       FilterState{SelectedUserName: "Anna"},
			expectedIDs: []uint{2, 3, 5},
		},
		{
			name:        "User filter is case-sensitive",
			state:       FilterState{SelectedUserName: "anna"},
			expectedIDs: []uint{},
		},
		{
			name:        "Query is case-insensitive",
			state:       FilterState{Query: "MILK"},
			expectedIDs: []uint{4, 1},
		},
		{
			name:        "Query is trimmed",
			state:       FilterState{Query: "  an  "},
			expectedIDs: []uint{5},
		},
		{
			name:        "Query inner whitespace is kept",
			state:       FilterState{Query: "ch erry"},
			expectedIDs: []uint{},
		},
		{
			name:        "Category filter with several titles",
			state:       FilterState{SelectedCategories: []string{"Fruits", "Unknown"}},
			expectedIDs: []uint{2, 3, 5},
		},
		{
			name:        "Category filter matches title exactly",
			state:       FilterState{SelectedCategories: []string{"fruits"}},
			expectedIDs: []uint{},
		},
		{
			name: "Filters combine",
			state: FilterState{
				SelectedUserName:   "Anna",
				Query:              "a",
				SelectedCategories: []string{"Fruits"},
			},
			expectedIDs: []uint{2, 5},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			items := mixedCatalogue()

			// Act
			visible := VisibleProducts(items, tc.state)

			// Assert
			assert.Equal(t, tc.expectedIDs, ids(visible))
		})
	}
}

func TestVisibleProductsSorting(t *testing.T) {
	testCases := []struct {
		name        string
		state       FilterState
		expectedIDs []uint
	}{
		{
			name:        "By ID",
			state:       FilterState{SortField: SortID},
			expectedIDs: []uint{1, 2, 3, 4, 5},
		},
		{
			name:        "By ID reversed",
			state:       FilterState{SortField: SortID, SortReverse: true},
			expectedIDs: []uint{5, 4, 3, 2, 1},
		},
		{
			// collation ignores case at the primary level; duplicates keep input order
			name:        "By product name",
			state:       FilterState{SortField: SortProduct},
			expectedIDs: []uint{2, 5, 3, 4, 1},
		},
		{
			name:        "By product name reversed",
			state:       FilterState{SortField: SortProduct, SortReverse: true},
			expectedIDs: []uint{1, 4, 3, 5, 2},
		},
		{
			name:        "By category title",
			state:       FilterState{SortField: SortCategory},
			expectedIDs: []uint{4, 1, 2, 3, 5},
		},
		{
			name:        "By user name",
			state:       FilterState{SortField: SortUser},
			expectedIDs: []uint{2, 3, 5, 4, 1},
		},
		{
			name:        "Unknown field keeps filter order",
			state:       FilterState{SortField: SortField("Price")},
			expectedIDs: []uint{4, 2, 3, 1, 5},
		},
		{
			name:        "Reverse without sort field",
			state:       FilterState{SortReverse: true},
			expectedIDs: []uint{5, 1, 3, 2, 4},
		},
		{
			name:        "Sort applies after filtering",
			state:       FilterState{SelectedUserName: "Anna", SortField: SortProduct, SortReverse: true},
			expectedIDs: []uint{3, 5, 2},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			visible := VisibleProducts(mixedCatalogue(), tc.state)
			assert.Equal(t, tc.expectedIDs, ids(visible))
		})
	}
}

func TestVisibleProductsSortIsStable(t *testing.T) {
	items := mixedCatalogue()

	visible := VisibleProducts(items, FilterState{SortField: SortProduct})

	var milks []uint
	for _, p := range visible {
		if p.Name == "Milk" {
			milks = append(milks, p.ID)
		}
	}
	assert.Equal(t, []uint{4, 1}, milks)
}

func TestVisibleProductsDoesNotMutateCatalogue(t *testing.T) {
	items := mixedCatalogue()
	before := mixedCatalogue()

	_ = VisibleProducts(items, FilterState{SelectedUserName: "max", SortField: SortID, SortReverse: true})
	_ = VisibleProducts(items, FilterState{SortField: SortProduct})

	assert.Equal(t, before, items)
}

func TestVisibleProductsWithLocale(t *testing.T) {
	items := mixedCatalogue()
	items[0].Name = "Äpfel"

	english := VisibleProducts(items, FilterState{SortField: SortProduct})
	swedish := VisibleProducts(items, FilterState{SortField: SortProduct}, WithLocale(language.Swedish))

	assert.Equal(t, []uint{4, 2, 5, 3, 1}, ids(english))
	// Swedish orders Ä after Z
	assert.Equal(t, []uint{2, 5, 3, 1, 4}, ids(swedish))
}

func TestVisibleProductsEmptyCatalogue(t *testing.T) {
	visible := VisibleProducts(nil, FilterState{Query: "milk", SortField: SortID, SortReverse: true})
	assert.Empty(t, visible)
}
