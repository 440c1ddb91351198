package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/bookshelf-api/internal/storage"
)

func TestBuildListQuery_Defaults(t *testing.T) {
	query, args := buildListQuery(storage.BookFilter{})

	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY book_id DESC LIMIT $1 OFFSET $2")
	assert.Equal(t, []interface{}{10, 0}, args)
}

func TestBuildListQuery_AllFilters(t *testing.T) {
	query, args := buildListQuery(storage.BookFilter{
		Author:     "doe",
		CategoryID: 3,
		Title:      "go",
		Page:       2,
		Limit:      5,
	})

	assert.Contains(t, query, "author ILIKE $1")
	assert.Contains(t, query, "category_id = $2")
	assert.Contains(t, query, "title ILIKE $3")
	assert.Contains(t, query, "ORDER BY book_id DESC LIMIT $4 OFFSET $5")
	assert.Equal(t, []interface{}{"%doe%", 3, "%go%", 5, 5}, args)
}

func TestBuildListQuery_SingleFilter(t *testing.T) {
	query, args := buildListQuery(storage.BookFilter{Title: "sql"})

	assert.Contains(t, query, "WHERE title ILIKE $1")
	assert.NotContains(t, query, "author ILIKE")
	assert.Equal(t, []interface{}{"%sql%", 10, 0}, args)
}

func TestBuildListQuery_PageClamping(t *testing.T) {
	// Page and limit below 1 fall back to the defaults.
	_, args := buildListQuery(storage.BookFilter{Page: -3, Limit: 0})
	assert.Equal(t, []interface{}{10, 0}, args)

	_, args = buildListQuery(storage.BookFilter{Page: 3, Limit: 4})
	require.Len(t, args, 2)
	assert.Equal(t, 4, args[0])
	assert.Equal(t, 8, args[1])
}
