package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPagination(t *testing.T) {
	p := GetPagination(3, 20)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 20, p.PageSize)
	assert.Equal(t, 40, p.Offset())
}

func TestGetPaginationDefaults(t *testing.T) {
	p := GetPagination(0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 0, p.Offset())

	p = GetPagination(-1, -5)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PageSize)
}

func TestGetPaginationCapsPageSize(t *testing.T) {
	p := GetPagination(1, 500)
	assert.Equal(t, 100, p.PageSize)
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 1, calculateTotalPages(0, 10))
	assert.Equal(t, 1, calculateTotalPages(10, 10))
	assert.Equal(t, 2, calculateTotalPages(11, 10))
	assert.Equal(t, 0, calculateTotalPages(10, 0))
}
