package apperr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidation(t *testing.T) {
	err := Validation("content", "must not exceed 255 characters")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content")

	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "content", ve.Field)
}

func TestAsValidation_Wrapped(t *testing.T) {
	err := fmt.Errorf("creating post: %w", Validation("content", "required"))
	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "content", ve.Field)
}

func TestAsValidation_OtherError(t *testing.T) {
	_, ok := AsValidation(ErrConflict)
	assert.False(t, ok)
}
