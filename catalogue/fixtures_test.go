package catalogue

import "github.com/mytheresa/catalogue-browser/models"

// --- Fixtures ---

var (
	testUsers = []models.User{
		{ID: 10, Name: "Max", Sex: models.SexMale},
		{ID: 11, Name: "Anna", Sex: models.SexFemale},
	}

	testCategories = []models.Category{
		{ID: 1, Title: "Fruits", Icon: "🍎", OwnerID: 10},
		{ID: 2, Title: "Fruits2", Icon: "🍌", OwnerID: 11},
	}

	testProducts = []models.Product{
		{ID: 1, Name: "Apple", CategoryID: 1},
		{ID: 2, Name: "Banana", CategoryID: 2},
	}
)

func ids(items []EnrichedProduct) []uint {
	out := make([]uint, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}

// mixedCatalogue has duplicate names, mixed case and several owners.
func mixedCatalogue() []EnrichedProduct {
	maxUser := models.User{ID: 1, Name: "max", Sex: models.SexMale}
	anna := models.User{ID: 2, Name: "Anna", Sex: models.SexFemale}
	drinks := models.Category{ID: 1, Title: "drinks", Icon: "🍺", OwnerID: 1}
	fruits := models.Category{ID: 2, Title: "Fruits", Icon: "🍏", OwnerID: 2}

	return []EnrichedProduct{
		{Product: models.Product{ID: 4, Name: "Milk", CategoryID: 1}, Category: drinks, User: maxUser},
		{Product: models.Product{ID: 2, Name: "apple", CategoryID: 2}, Category: fruits, User: anna},
		{Product: models.Product{ID: 3, Name: "Cherry", CategoryID: 2}, Category: fruits, User: anna},
		{Product: models.Product{ID: 1, Name: "Milk", CategoryID: 1}, Category: drinks, User: maxUser},
		{Product: models.Product{ID: 5, Name: "Banana", CategoryID: 2}, Category: fruits, User: anna},
	}
}
