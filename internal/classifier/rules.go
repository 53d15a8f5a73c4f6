package classifier

import "rsharma/upi-tracker/internal/models"

// DefaultCategories is the built-in rule set, in priority order. A
// description matching keywords from two categories resolves to the one
// listed first. The Other fallback is appended by the classifier itself and
// must not appear here.
func DefaultCategories() []models.CategoryConfig {
	return []models.CategoryConfig{
		{
			Name: "Food",
			Keywords: []string{
				"starbucks", "cafe", "restaurant", "swiggy", "zomato",
				"pizza", "maggie", "coffee", "burger",
			},
		},
		{
			Name: "Transport",
			Keywords: []string{
				"uber", "ola", "metro", "bus", "train", "cab", "taxi",
				"auto", "fuel", "petrol", "diesel",
			},
		},
		{
			Name: "Shopping",
			Keywords: []string{
				"amazon", "flipkart", "myntra", "nykaa", "zara", "h&m",
				"mall", "store", "earphones", "clothes",
			},
		},
		{
			Name: "Housing",
			Keywords: []string{
				"rent", "pg", "maintenance", "electricity", "water bill",
				"gas bill", "wifi", "broadband",
			},
		},
		{
			Name: "Health",
			Keywords: []string{
				"pharmacy", "chemist", "doctor", "hospital", "clinic",
				"medicine", "gym",
			},
		},
		{
			Name: "Pleasure",
			Keywords: []string{
				"movie", "cinema", "netflix", "spotify", "prime",
				"gaming", "ps", "steam",
			},
		},
	}
}
