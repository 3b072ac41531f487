package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageDTONormalize(t *testing.T) {
	page := &PageDTO{}
	limit, offset := page.Normalize()
	assert.Equal(t, 10, limit)
	assert.Equal(t, 0, offset)

	page = &PageDTO{Page: 3, Size: 20}
	limit, offset = page.Normalize()
	assert.Equal(t, 20, limit)
	assert.Equal(t, 40, offset)

	page = &PageDTO{Page: -1, Size: -5}
	limit, offset = page.Normalize()
	assert.Equal(t, 10, limit)
	assert.Equal(t, 0, offset)
}
