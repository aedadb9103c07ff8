// Package ledger holds the in-memory expense ledger and the tag-based
// category classifier.
package ledger

import (
	"strings"

	"github.com/nileshk/paisa/internal/model"
)

// Classify resolves the category for an expense. Resolution order,
// first match wins:
//
//  1. an explicit category, used verbatim;
//  2. the first supplied tag that is registered, in tag order;
//  3. the first registry entry whose name appears as a case-insensitive
//     substring of the description, in registration order;
//  4. CategoryOther.
//
// Registration order is what makes step 3 deterministic when several
// tag names match the same description.
func Classify(explicit model.Category, tags []string, description string, registry *model.TagRegistry) model.Category {
	if explicit != "" {
		return explicit
	}

	for _, name := range tags {
		if tag, ok := registry.Lookup(name); ok {
			return tag.Category
		}
	}

	lowered := strings.ToLower(description)
	for _, tag := range registry.Entries() {
		if strings.Contains(lowered, strings.ToLower(tag.Name)) {
			return tag.Category
		}
	}

	return model.CategoryOther
}
