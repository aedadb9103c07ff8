package model

// Tag associates a keyword with a spending category. Tags drive
// classification: an expense tagged "rent" resolves to the category the
// "rent" tag is registered under.
type Tag struct {
	Name     string
	Category Category
}

// TagRegistry holds tag definitions in registration order. Iteration
// order is a documented property: the description-scanning fallback in
// classification walks entries first-registered-first, so the same
// description always resolves to the same category.
type TagRegistry struct {
	index   map[string]int
	entries []Tag
}

// NewTagRegistry creates an empty registry.
func NewTagRegistry() *TagRegistry {
	return &TagRegistry{index: make(map[string]int)}
}

// DefaultTagRegistry creates a registry pre-loaded with the stock tag
// set every new user starts with.
func DefaultTagRegistry() *TagRegistry {
	r := NewTagRegistry()
	for _, t := range []Tag{
		{Name: "groceries", Category: CategoryFood},
		{Name: "dining", Category: CategoryFood},
		{Name: "fuel", Category: CategoryTransportation},
		{Name: "rent", Category: CategoryHousing},
		{Name: "movie", Category: CategoryEntertainment},
		{Name: "electricity", Category: CategoryUtilities},
		{Name: "doctor", Category: CategoryHealth},
		{Name: "books", Category: CategoryEducation},
		{Name: "shopping", Category: CategoryShopping},
		{Name: "mutual fund", Category: CategoryInvestment},
		{Name: "flight", Category: CategoryTravel},
	} {
		r.Add(t.Name, t.Category)
	}
	return r
}

// Add registers a tag. Re-adding an existing name updates its category
// but keeps its original position in the scan order.
func (r *TagRegistry) Add(name string, category Category) {
	if i, ok := r.index[name]; ok {
		r.entries[i].Category = category
		return
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, Tag{Name: name, Category: category})
}

// Remove deletes a tag by name, reporting whether it existed.
func (r *TagRegistry) Remove(name string) bool {
	i, ok := r.index[name]
	if !ok {
		return false
	}
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	delete(r.index, name)
	for j := i; j < len(r.entries); j++ {
		r.index[r.entries[j].Name] = j
	}
	return true
}

// Lookup returns the tag registered under name, if any.
func (r *TagRegistry) Lookup(name string) (Tag, bool) {
	i, ok := r.index[name]
	if !ok {
		return Tag{}, false
	}
	return r.entries[i], true
}

// Entries returns all tags in registration order. The returned slice is
// a copy; mutating it does not affect the registry.
func (r *TagRegistry) Entries() []Tag {
	out := make([]Tag, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of registered tags.
func (r *TagRegistry) Len() int {
	return len(r.entries)
}
