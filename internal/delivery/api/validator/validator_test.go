package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name         string   `json:"name" validate:"required"`
	MatchStrings []string `json:"match_strings" validate:"min=1,max=5,dive,required,max=100"`
	MaxPrice     *int     `json:"max_price" validate:"required,gte=0"`
}

func TestValidate(t *testing.T) {
	v := New()
	price := 10

	require.NoError(t, v.Validate(&sample{Name: "x", MatchStrings: []string{"a"}, MaxPrice: &price}))

	err := v.Validate(&sample{MatchStrings: []string{}})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, "required", fields["name"])
	assert.Equal(t, "min=1", fields["match_strings"])
	assert.Equal(t, "required", fields["max_price"])
}

func TestFieldErrors_NotValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
