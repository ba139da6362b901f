package repos

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRows(n int) []Repo {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]Repo, n)
	for i := range rows {
		rows[i] = Repo{
			ID:        fmt.Sprintf("repo-%d", i),
			Name:      fmt.Sprintf("repo %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
	}
	return rows
}

func TestPageSizeClamping(t *testing.T) {
	assert.Equal(t, defaultPageSize, pageSize(0))
	assert.Equal(t, defaultPageSize, pageSize(-3))
	assert.Equal(t, 1, pageSize(1))
	assert.Equal(t, 15, pageSize(15))
	assert.Equal(t, maxPageSize, pageSize(16))
	assert.Equal(t, maxPageSize, pageSize(1000))
}

func TestAssemblePageWithLookahead(t *testing.T) {
	rows := makeRows(11) // page of 10 plus the lookahead row

	page := assemblePage(rows, 10, "", false)

	require.Len(t, page.Data, 10)
	assert.Equal(t, 10, page.Results)
	assert.Equal(t, 10, page.PerPage)

	// The lookahead row seeds the next cursor and is dropped.
	decoded, ok, err := decodeCursor(page.NextCursor)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, decoded.Equal(rows[10].CreatedAt))
	assert.Equal(t, "repo-9", page.Data[9].ID)
}

func TestAssemblePageTerminal(t *testing.T) {
	// Fewer rows than limit+1 means no next page for every such count.
	for n := 0; n <= 10; n++ {
		page := assemblePage(makeRows(n), 10, "", false)
		assert.Equal(t, "", page.NextCursor, "rows=%d", n)
		assert.Equal(t, n, page.Results, "rows=%d", n)
	}
}

func TestAssemblePageEchoesInputCursor(t *testing.T) {
	in := encodeCursor(time.Now())

	page := assemblePage(makeRows(3), 10, in, false)

	assert.Equal(t, in, page.PreviousCursor)
}

func TestAssemblePageBackwardFlipsToAscending(t *testing.T) {
	asc := makeRows(5)

	// A backward fetch returns rows newest-first with the lookahead at
	// the end (the oldest row beyond the page).
	fetched := []Repo{asc[4], asc[3], asc[2], asc[1], asc[0]}

	page := assemblePage(fetched, 4, "", true)

	require.Len(t, page.Data, 4)
	for i := 1; i < len(page.Data); i++ {
		assert.True(t, page.Data[i-1].CreatedAt.Before(page.Data[i].CreatedAt))
	}

	decoded, ok, err := decodeCursor(page.NextCursor)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, decoded.Equal(asc[0].CreatedAt))
}

func TestAssemblePageIdempotent(t *testing.T) {
	rows := makeRows(8)

	first := assemblePage(append([]Repo(nil), rows...), 10, "", false)
	second := assemblePage(append([]Repo(nil), rows...), 10, "", false)

	assert.Equal(t, first, second)
}
