package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHexColor(t *testing.T) {
	assert.True(t, IsHexColor("#D7FF00"))
	assert.True(t, IsHexColor("#080b12"))
	assert.False(t, IsHexColor("D7FF00"))
	assert.False(t, IsHexColor("#FFF"))
	assert.False(t, IsHexColor("#GGGGGG"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("maria@gmail.com"))
	assert.False(t, IsValidEmail("maria@gmail"))
	assert.False(t, IsValidEmail("maria gmail.com"))
	assert.False(t, IsValidEmail(""))
}

func TestIsLastDigits(t *testing.T) {
	assert.True(t, IsLastDigits("5897"))
	assert.False(t, IsLastDigits("589"))
	assert.False(t, IsLastDigits("58a7"))
}

func TestTextLength(t *testing.T) {
	assert.Equal(t, 11, TextLength("Alimentação"))
	assert.True(t, IsBlank("   "))
	assert.False(t, IsBlank(" a "))
}
