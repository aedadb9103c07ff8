package model

import "fmt"

// Category represents a spending category. Like Currency, the set is
// closed; CategoryOther is the fallback when classification finds no
// better match.
type Category string

const (
	CategoryFood           Category = "FOOD"
	CategoryTransportation Category = "TRANSPORTATION"
	CategoryHousing        Category = "HOUSING"
	CategoryEntertainment  Category = "ENTERTAINMENT"
	CategoryUtilities      Category = "UTILITIES"
	CategoryHealth         Category = "HEALTH"
	CategoryEducation      Category = "EDUCATION"
	CategoryShopping       Category = "SHOPPING"
	CategoryInvestment     Category = "INVESTMENT"
	CategoryTravel         Category = "TRAVEL"
	CategoryOther          Category = "OTHER"
)

// Categories returns all spending categories in a fixed, stable order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransportation,
		CategoryHousing,
		CategoryEntertainment,
		CategoryUtilities,
		CategoryHealth,
		CategoryEducation,
		CategoryShopping,
		CategoryInvestment,
		CategoryTravel,
		CategoryOther,
	}
}

// Label returns the human-readable name for the category.
func (c Category) Label() string {
	switch c {
	case CategoryFood:
		return "Food"
	case CategoryTransportation:
		return "Transportation"
	case CategoryHousing:
		return "Housing"
	case CategoryEntertainment:
		return "Entertainment"
	case CategoryUtilities:
		return "Utilities"
	case CategoryHealth:
		return "Health"
	case CategoryEducation:
		return "Education"
	case CategoryShopping:
		return "Shopping"
	case CategoryInvestment:
		return "Investment"
	case CategoryTravel:
		return "Travel"
	case CategoryOther:
		return "Other"
	}
	return string(c)
}

// Valid reports whether the category is one of the supported set.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryTransportation, CategoryHousing,
		CategoryEntertainment, CategoryUtilities, CategoryHealth,
		CategoryEducation, CategoryShopping, CategoryInvestment,
		CategoryTravel, CategoryOther:
		return true
	}
	return false
}

// ParseCategory converts a stored code into a Category.
func ParseCategory(code string) (Category, error) {
	c := Category(code)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category code %q", code)
	}
	return c, nil
}
