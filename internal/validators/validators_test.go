package validators

import (
	"errors"
	"testing"

	"github.com/denmor86/ya-stitchmate/internal/models"
)

func TestValidateDraft(t *testing.T) {
	testCases := []struct {
		TestName      string
		Draft         models.OrderDraft
		ExpectedField string
	}{
		{
			TestName:      "Success. Name present #1",
			Draft:         models.OrderDraft{Name: "Asha"},
			ExpectedField: "",
		},
		{
			TestName:      "Error. Empty name #2",
			Draft:         models.OrderDraft{Name: "", Phone: "9140000000"},
			ExpectedField: "name",
		},
		{
			TestName:      "Error. Whitespace name #3",
			Draft:         models.OrderDraft{Name: "   \t"},
			ExpectedField: "name",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			err := ValidateDraft(tc.Draft)
			if tc.ExpectedField == "" {
				if err != nil {
					t.Errorf("Expected no error, got '%v'", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected ValidationError, got '%v'", err)
			}
			if verr.Field != tc.ExpectedField {
				t.Errorf("Expected field '%s', got '%s'", tc.ExpectedField, verr.Field)
			}
		})
	}
}

func TestParseQuantity(t *testing.T) {
	testCases := []struct {
		Input    string
		Expected int
	}{
		{"3", 3},
		{" 2 ", 2},
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-4", 1},
		{"3 pcs", 3},
		{"2.7", 2},
		{"x3", 1},
		{"99999999999999999999", 1},
	}
	for _, tc := range testCases {
		if got := ParseQuantity(tc.Input); got != tc.Expected {
			t.Errorf("ParseQuantity(%q): expected %d, got %d", tc.Input, tc.Expected, got)
		}
	}
}
