package entity

// Category is one of the fixed set of article categories the pipeline runs over.
type Category string

// The fixed category set. Articles outside this set are never created.
const (
	CategoryBusiness      Category = "business"
	CategoryTech          Category = "tech"
	CategorySports        Category = "sports"
	CategoryPolitics      Category = "politics"
	CategoryEntertainment Category = "entertainment"
)

// Categories returns the fixed category set in pipeline processing order.
func Categories() []Category {
	return []Category{
		CategoryBusiness,
		CategoryTech,
		CategorySports,
		CategoryPolitics,
		CategoryEntertainment,
	}
}

// ParseCategory validates a raw string against the fixed category set.
// Returns ErrInvalidCategory for anything outside the set, including the empty string.
func ParseCategory(raw string) (Category, error) {
	c := Category(raw)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate reports whether the category belongs to the fixed set.
func (c Category) Validate() error {
	switch c {
	case CategoryBusiness, CategoryTech, CategorySports, CategoryPolitics, CategoryEntertainment:
		return nil
	}
	return ErrInvalidCategory
}

// String implements fmt.Stringer.
func (c Category) String() string { return string(c) }
