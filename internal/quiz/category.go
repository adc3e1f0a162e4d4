package quiz

// Category groups questions into one of the four scored pillars.
type Category string

const (
	CategoryLeadership Category = "leadership" // A
	CategoryCulture    Category = "culture"    // B
	CategoryFinance    Category = "finance"    // C
	CategoryOperations Category = "operations" // D
)

// CategoryInfo holds the display data shown on chips, badges and report cards.
type CategoryInfo struct {
	Key      Category
	Letter   string
	Label    string
	Subtitle string
	Icon     string
}

var categoryInfo = map[Category]CategoryInfo{
	CategoryLeadership: {
		Key:      CategoryLeadership,
		Letter:   "A",
		Label:    "Leadership",
		Subtitle: "Direction, goals and expansion",
		Icon:     "◆",
	},
	CategoryCulture: {
		Key:      CategoryCulture,
		Letter:   "B",
		Label:    "People & Culture",
		Subtitle: "Culture, team and performance",
		Icon:     "♥",
	},
	CategoryFinance: {
		Key:      CategoryFinance,
		Letter:   "C",
		Label:    "Margin & Profit",
		Subtitle: "Sales, margin and profit",
		Icon:     "$",
	},
	CategoryOperations: {
		Key:      CategoryOperations,
		Letter:   "D",
		Label:    "Process & Experience",
		Subtitle: "Processes, standards and customer experience",
		Icon:     "●",
	},
}

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryLeadership,
		CategoryCulture,
		CategoryFinance,
		CategoryOperations,
	}
}

// Info returns the display data for a category. Unknown categories get
// their key as label.
func (c Category) Info() CategoryInfo {
	if info, ok := categoryInfo[c]; ok {
		return info
	}
	return CategoryInfo{Key: c, Label: string(c)}
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	_, ok := categoryInfo[c]
	return ok
}

// ParseCategory accepts either a category key or its letter (A-D).
func ParseCategory(s string) (Category, bool) {
	for _, c := range AllCategories() {
		info := categoryInfo[c]
		if s == string(c) || s == info.Letter {
			return c, true
		}
	}
	return "", false
}
