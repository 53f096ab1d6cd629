package uploader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidContentType(t *testing.T) {
	assert.True(t, IsValidContentType("image/jpeg"))
	assert.True(t, IsValidContentType("image/jpg"))
	assert.True(t, IsValidContentType("image/png"))
	assert.True(t, IsValidContentType("image/webp"))

	assert.False(t, IsValidContentType("image/gif"))
	assert.False(t, IsValidContentType("application/pdf"))
	assert.False(t, IsValidContentType(""))
}
