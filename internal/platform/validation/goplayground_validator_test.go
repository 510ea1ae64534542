package validation_test

import (
	"testing"

	"github.com/ferdiebergado/userhub/internal/platform/validation"
)

func TestGoplaygroundValidator_ValidateStruct(t *testing.T) {
	t.Parallel()

	type member struct {
		ID   int64  `json:"id,omitempty" validate:"gte=0"`
		Name string `json:"name"`
	}

	tests := []struct {
		name     string
		given    any
		field    string
		hasError bool
		errMsg   string
	}{
		{"Required pointer is present", struct {
			User *member `json:"user" validate:"required"`
		}{User: &member{Name: "Antonio"}}, "user", false, ""},
		{"Required pointer is missing", struct {
			User *member `json:"user" validate:"required"`
		}{}, "user", true, "user is required"},
		{"Required slice is empty but present", struct {
			Users []member `json:"users" validate:"required"`
		}{Users: []member{}}, "users", false, ""},
		{"Required slice is missing", struct {
			Users []member `json:"users" validate:"required"`
		}{}, "users", true, "users is required"},
		{"Nested rule is checked", struct {
			User *member `json:"user" validate:"required"`
		}{User: &member{ID: -1}}, "id", true, "id must be greater than or equal to 0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			v := validation.NewGoPlaygroundValidator()

			errs := v.ValidateStruct(tc.given)
			if (errs != nil) != tc.hasError {
				t.Errorf("v.ValidateStruct(%v) = %+v, hasError: %t", tc.given, errs, tc.hasError)
			}

			gotMsg, wantMsg := errs[tc.field], tc.errMsg
			if gotMsg != wantMsg {
				t.Errorf("errs[%q] = %q, want: %q", tc.field, gotMsg, wantMsg)
			}
		})
	}
}
