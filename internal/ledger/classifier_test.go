package ledger

import (
	"testing"

	"github.com/nileshk/paisa/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	registry := model.NewTagRegistry()
	registry.Add("rent", model.CategoryHousing)
	registry.Add("groceries", model.CategoryFood)
	registry.Add("fuel", model.CategoryTransportation)

	tests := []struct {
		name        string
		explicit    model.Category
		description string
		tags        []string
		want        model.Category
	}{
		{
			name:     "explicit category wins over everything",
			explicit: model.CategoryTravel,
			tags:     []string{"rent"},
			want:     model.CategoryTravel,
		},
		{
			name:        "tag match beats description keywords",
			tags:        []string{"rent"},
			description: "monthly groceries run",
			want:        model.CategoryHousing,
		},
		{
			name: "first registered tag in tag order wins",
			tags: []string{"unknown", "fuel", "groceries"},
			want: model.CategoryTransportation,
		},
		{
			name:        "description substring match is case-insensitive",
			description: "Paid RENT for August",
			want:        model.CategoryHousing,
		},
		{
			name:        "description scan follows registration order",
			description: "rent and groceries in one payment",
			want:        model.CategoryHousing,
		},
		{
			name:        "no match falls back to other",
			tags:        []string{"unregistered"},
			description: "miscellaneous payment",
			want:        model.CategoryOther,
		},
		{
			name: "empty everything falls back to other",
			want: model.CategoryOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.explicit, tt.tags, tt.description, registry)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_RegistrationOrderDecidesOverlap(t *testing.T) {
	// Two registries with the same entries in opposite order resolve
	// the same description differently; order is the documented
	// tiebreak.
	first := model.NewTagRegistry()
	first.Add("fund", model.CategoryInvestment)
	first.Add("mutual fund", model.CategoryOther)

	second := model.NewTagRegistry()
	second.Add("mutual fund", model.CategoryOther)
	second.Add("fund", model.CategoryInvestment)

	desc := "mutual fund SIP installment"
	assert.Equal(t, model.CategoryInvestment, Classify("", nil, desc, first))
	assert.Equal(t, model.CategoryOther, Classify("", nil, desc, second))
}
