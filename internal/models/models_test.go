package models

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeGarment(t *testing.T) {
	testCases := []struct {
		TestName string
		Garment  string
		Expected string
	}{
		{"Known type #1", "Kurta", GarmentKurta},
		{"Known type with spaces #2", "  Dress ", GarmentDress},
		{"Unknown type #3", "Saree", GarmentOther},
		{"Empty type #4", "", GarmentOther},
		{"Case sensitive #5", "blouse", GarmentOther},
	}
	for _, test := range testCases {
		t.Run(test.TestName, func(t *testing.T) {
			assert.Equal(t, test.Expected, NormalizeGarment(test.Garment))
		})
	}
}

func TestGarmentTypes(t *testing.T) {
	types := GarmentTypes()
	require.Len(t, types, 6)
	assert.Equal(t, GarmentBlouse, types[0])
	assert.Equal(t, GarmentOther, types[len(types)-1])

	// копия не должна влиять на реестр
	types[0] = "broken"
	assert.Equal(t, GarmentBlouse, GarmentTypes()[0])
}

func TestCollectSizes(t *testing.T) {
	sizes := CollectSizes("Blouse", map[string]string{
		"Bust (cm)":  " 86 ",
		"Inseam":     "70",
		"Waist (cm)": "",
	})
	expected := map[string]string{
		"Bust (cm)":          "86",
		"Waist (cm)":         "",
		"Shoulder (cm)":      "",
		"Blouse length (cm)": "",
	}
	if diff := cmp.Diff(expected, sizes); diff != "" {
		t.Errorf("sizes mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatSizes(t *testing.T) {
	sizes := map[string]string{
		"Waist (cm)": "72",
		"Bust (cm)":  "86",
		"Zeta":       "1",
		"Alpha":      "",
	}
	expected := "Bust (cm): 86\nWaist (cm): 72\nAlpha: -\nZeta: 1"
	assert.Equal(t, expected, FormatSizes(GarmentBlouse, sizes))
	assert.Equal(t, "", FormatSizes(GarmentBlouse, nil))
}

func TestProfileApplyTo(t *testing.T) {
	t.Run("Profile without sizes is ignored #1", func(t *testing.T) {
		draft := OrderDraft{Name: "Meena", Phone: "1"}
		assert.False(t, Profile{Phone: "2"}.ApplyTo(&draft))
		assert.Equal(t, "1", draft.Phone)
	})
	t.Run("Empty fields keep typed values #2", func(t *testing.T) {
		draft := OrderDraft{Name: "Meena", Phone: "1", Address: "Adyar", Type: GarmentShirt}
		profile := Profile{
			Type:       GarmentBlouse,
			Sizes:      map[string]string{"Bust (cm)": "86", "Chest (cm)": "90"},
			Additional: Additional{Has: true, Count: 2},
		}
		require.True(t, profile.ApplyTo(&draft))
		assert.Equal(t, GarmentBlouse, draft.Type)
		assert.Equal(t, "1", draft.Phone)
		assert.Equal(t, "Adyar", draft.Address)
		assert.Equal(t, "86", draft.Sizes["Bust (cm)"])
		assert.NotContains(t, draft.Sizes, "Chest (cm)")
		assert.Equal(t, Additional{Has: true, Count: 2}, draft.Additional)
	})
	t.Run("Nil draft #3", func(t *testing.T) {
		assert.False(t, Profile{Sizes: map[string]string{}}.ApplyTo(nil))
	})
}

func TestInputUnmarshal(t *testing.T) {
	testCases := []struct {
		TestName      string
		Body          string
		Expected      Input
		ExpectedError bool
	}{
		{"String #1", `{"total":"450.50"}`, "450.50", false},
		{"Number #2", `{"total":450.5}`, "450.5", false},
		{"Null #3", `{"total":null}`, "", false},
		{"Free text #4", `{"total":"abc"}`, "abc", false},
		{"Error. Object #1", `{"total":{}}`, "", true},
	}
	for _, test := range testCases {
		t.Run(test.TestName, func(t *testing.T) {
			var draft OrderDraft
			err := json.Unmarshal([]byte(test.Body), &draft)
			if test.ExpectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.Expected, draft.Total)
		})
	}
}
