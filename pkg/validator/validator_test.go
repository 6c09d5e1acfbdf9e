package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Score int      `validate:"required,min=1,max=5"`
	Refs  []string `validate:"max=2,dive,notblank"`
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(sample{Score: 3, Refs: []string{"a.jpg"}}))
}

func TestStruct_MessagesAreReadable(t *testing.T) {
	err := Struct(sample{Score: 9, Refs: []string{"  "}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "поле Score должно быть не больше 5")
	assert.Contains(t, err.Error(), "не может быть пустым")
}

func TestStruct_Required(t *testing.T) {
	err := Struct(sample{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "поле Score обязательно")
}

func TestStruct_TooManyRefs(t *testing.T) {
	err := Struct(sample{Score: 1, Refs: []string{"a", "b", "c"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "поле Refs должно быть не больше 2")
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(" \t\n"))
	assert.False(t, IsBlank(" ok "))
}
