package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_CollectsAllFields(t *testing.T) {
	verr := ValidationError{}
	assert.True(t, verr.IsEmpty())

	verr = verr.Add("name", "слишком короткое").
		Add("phone", "неверный формат")

	require.False(t, verr.IsEmpty())
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "name", verr.Fields[0].Field)
	assert.Equal(t, "phone", verr.Fields[1].Field)
}

func TestValidationError_ErrorsIs(t *testing.T) {
	verr := ValidationError{}.Add("date", "обязательна")

	var err error = verr
	assert.True(t, errors.Is(err, ErrValidation))

	var target ValidationError
	require.True(t, errors.As(err, &target))
	assert.Len(t, target.Fields, 1)
}
