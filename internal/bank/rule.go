package bank

// Category represents a grammar content category.
type Category string

const (
	CategoryBasics       Category = "Basics"
	CategoryTenses       Category = "Tenses"
	CategoryModals       Category = "Modals"
	CategoryQuestions    Category = "Questions"
	CategoryArticles     Category = "Articles"
	CategoryPrepositions Category = "Prepositions"
	CategoryNouns        Category = "Nouns"
	CategoryAdjectives   Category = "Adjectives"
	CategoryExpressions  Category = "Expressions"
)

// AllCategories returns all categories in display order, which follows the
// order rules first introduce them.
func AllCategories() []Category {
	return []Category{
		CategoryBasics,
		CategoryTenses,
		CategoryModals,
		CategoryQuestions,
		CategoryArticles,
		CategoryPrepositions,
		CategoryNouns,
		CategoryAdjectives,
		CategoryExpressions,
	}
}

// Rule represents a single grammar rule the learner can study and practice.
type Rule struct {
	ID          string
	Title       string
	Category    Category
	Description string
	Examples    []string
	Color       string // oklch() color used by the UI for rule accents
}
