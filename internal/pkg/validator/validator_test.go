package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	type input struct {
		Name  string `validate:"required"`
		Count int    `validate:"gte=1"`
	}

	t.Run("passes a valid struct", func(t *testing.T) {
		assert.NoError(t, Validate(input{Name: "blocks", Count: 4}))
	})

	t.Run("fails with missing required field", func(t *testing.T) {
		err := Validate(input{Count: 4})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), "'Name'")
	})

	t.Run("collects every failing field", func(t *testing.T) {
		err := Validate(input{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'Name'")
		assert.Contains(t, err.Error(), "'Count'")
	})
}
