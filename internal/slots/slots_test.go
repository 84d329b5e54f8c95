package slots

import (
	"bitbucket.org/sotavant/alexa-skill/internal/models"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func resolutions(authorities ...[]models.ResolvedEntity) *models.Resolutions {
	r := &models.Resolutions{}
	for i, candidates := range authorities {
		a := models.AuthorityResolution{
			Authority: "amzn1.er-authority.echo-sdk." + string(rune('a'+i)),
			Status:    models.ResolutionStatus{Code: "ER_SUCCESS_MATCH"},
		}
		for _, c := range candidates {
			a.Values = append(a.Values, models.ResolutionValue{Value: c})
		}
		r.PerAuthority = append(r.PerAuthority, a)
	}
	return r
}

func TestExtract(t *testing.T) {
	testCases := []struct {
		name  string
		slots map[string]models.Slot
		want  []Descriptor
	}{
		{
			name: "flat",
			slots: map[string]models.Slot{
				"city": {Name: "City", Value: "Seattle"},
			},
			want: []Descriptor{{ID: "city", Name: "City", Value: "Seattle", Type: "City"}},
		},
		{
			name: "flat_without_value",
			slots: map[string]models.Slot{
				"city": {Name: "City"},
			},
			want: []Descriptor{{ID: "city", Name: "City", Value: "", Type: "City"}},
		},
		{
			name: "nested_without_second_level",
			slots: map[string]models.Slot{
				"city": {Name: "City", SlotValue: &models.Slot{Name: "CityList", Value: "Seattle"}},
			},
			want: []Descriptor{},
		},
		{
			name: "nested_without_resolutions",
			slots: map[string]models.Slot{
				"city": {Name: "City", SlotValue: &models.Slot{
					Name:      "CityList",
					SlotValue: &models.Slot{Value: "Seattle, WA"},
				}},
			},
			want: []Descriptor{},
		},
		{
			name: "nested_first_authority_empty",
			slots: map[string]models.Slot{
				"city": {Name: "City", SlotValue: &models.Slot{
					Name: "CityList",
					SlotValue: &models.Slot{
						Value: "Seattle, WA",
						Resolutions: resolutions(
							nil,
							[]models.ResolvedEntity{{ID: "CITY_2", Name: "Tacoma"}},
						),
					},
				}},
			},
			want: []Descriptor{},
		},
		{
			name: "nested_two_authorities",
			slots: map[string]models.Slot{
				"city": {Name: "City", SlotValue: &models.Slot{
					Name: "CityList",
					SlotValue: &models.Slot{
						Value: "Seattle, WA",
						Resolutions: resolutions(
							[]models.ResolvedEntity{{ID: "CITY_1", Name: "Seattle"}},
							[]models.ResolvedEntity{{ID: "CITY_2", Name: "Tacoma"}},
						),
					},
				}},
			},
			want: []Descriptor{
				{ID: NestedSlotID, EntityID: "CITY_1", Name: "Seattle", Value: "Seattle, WA", Type: "CityList"},
			},
		},
		{
			name: "nested_first_candidate_wins",
			slots: map[string]models.Slot{
				"city": {Name: "City", SlotValue: &models.Slot{
					Name: "CityList",
					SlotValue: &models.Slot{
						Resolutions: resolutions(
							[]models.ResolvedEntity{{ID: "CITY_1", Name: "Portland"}, {ID: "CITY_3", Name: "Portland"}},
						),
					},
				}},
			},
			want: []Descriptor{
				{ID: NestedSlotID, EntityID: "CITY_1", Name: "Portland", Value: "", Type: "CityList"},
			},
		},
		{
			name: "mixed_sorted_by_key",
			slots: map[string]models.Slot{
				"when":  {Name: "Date", Value: "2026-10-17"},
				"city":  {Name: "City", Value: "Seattle"},
				"skip":  {Name: "Skip", SlotValue: &models.Slot{Name: "Outer"}},
				"alpha": {Name: "Alpha"},
			},
			want: []Descriptor{
				{ID: "alpha", Name: "Alpha", Type: "Alpha"},
				{ID: "city", Name: "City", Value: "Seattle", Type: "City"},
				{ID: "when", Name: "Date", Value: "2026-10-17", Type: "Date"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Extract(&models.Intent{Name: "TestIntent", Slots: tc.slots})
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractNoSlots(t *testing.T) {
	assert.Nil(t, Extract(nil))
	assert.Nil(t, Extract(&models.Intent{Name: "AMAZON.HelpIntent"}))
}

func TestExtractFromJSON(t *testing.T) {
	body := `{
		"name": "WeatherIntent",
		"slots": {
			"city": {
				"name": "city",
				"slotValue": {
					"type": "Simple",
					"name": "CityList",
					"slotValue": {
						"value": "Seattle, WA",
						"resolutions": {
							"resolutionsPerAuthority": [
								{
									"authority": "amzn1.er-authority.echo-sdk.custom",
									"status": {"code": "ER_SUCCESS_MATCH"},
									"values": [{"value": {"name": "Seattle", "id": "CITY_1"}}]
								},
								{
									"authority": "amzn1.er-authority.echo-sdk.dynamic",
									"status": {"code": "ER_SUCCESS_MATCH"},
									"values": [{"value": {"name": "Tacoma", "id": "CITY_2"}}]
								}
							]
						}
					}
				}
			}
		}
	}`

	var intent models.Intent
	require.NoError(t, json.Unmarshal([]byte(body), &intent))

	assert.Equal(t, []Descriptor{
		{ID: NestedSlotID, EntityID: "CITY_1", Name: "Seattle", Value: "Seattle, WA", Type: "CityList"},
	}, Extract(&intent))
}
