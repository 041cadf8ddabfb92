package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidNetID(t *testing.T) {
	valid := []string{"jdoe", "cab12345", "a1"}
	for _, v := range valid {
		assert.True(t, IsValidNetID(v), v)
	}

	invalid := []string{"", "1abc", "j doe", "jdoe!", "j"}
	for _, v := range invalid {
		assert.False(t, IsValidNetID(v), v)
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("jdoe@creighton.edu"))
	assert.False(t, IsValidEmail("jdoe@"))
	assert.False(t, IsValidEmail("not-an-email"))
}
