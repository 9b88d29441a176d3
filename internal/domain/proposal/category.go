package proposal

// Category classifies a proposal. The set is fixed: analytics zero-fills
// a histogram bar for every category, so additions are a deliberate change.
type Category string

const (
	CategoryProcess Category = "Process Improvement"
	CategorySafety  Category = "Safety"
	CategoryQuality Category = "Service Quality"
	CategoryTools   Category = "Tools/IT"
	CategoryCost    Category = "Cost Reduction"
	CategoryCulture Category = "Culture/HR"
)

// AllCategories returns every category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryProcess,
		CategorySafety,
		CategoryQuality,
		CategoryTools,
		CategoryCost,
		CategoryCulture,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
