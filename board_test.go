package tottohot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toriato/tottohot"
)

func TestBoardPosts(t *testing.T) {
	api := newFakeAPI(t)
	session := tottohot.NewSession(api.URL)

	page, err := session.NewBoard(testdata.Board.Key).Posts(1, 10)
	require.NoError(t, err)

	query := api.last().URL.Query()
	assert.Equal(t, testdata.Board.Key, query.Get("boardKey"))
	assert.Equal(t, "1", query.Get("page"))
	assert.Equal(t, "10", query.Get("limit"))

	require.Len(t, page.Posts, 10)
	assert.Equal(t, tottohot.ID("notice-1"), page.Posts[0].ID)
	assert.Equal(t, tottohot.ID("110"), page.Posts[1].ID)
	assert.Equal(t, testdata.Board.Key, page.Posts[1].BoardKey)
	assert.Equal(t, 50, page.Pagination.Total)
	assert.True(t, page.HasNext())

	for _, post := range page.Posts {
		t.Logf("%s %s", post.ID, post.Title)
	}
}

func TestBoardPostsDefaults(t *testing.T) {
	api := newFakeAPI(t)
	session := tottohot.NewSession(api.URL)

	page, err := session.NewBoard(tottohot.FreeBoard).Posts(0, 0)
	require.NoError(t, err)

	query := api.last().URL.Query()
	assert.Equal(t, "1", query.Get("page"))
	assert.Equal(t, "20", query.Get("limit"))
	assert.Empty(t, page.Posts)
	assert.Empty(t, page.Rows())
	assert.False(t, page.HasNext())
}

func TestPostPageRows(t *testing.T) {
	api := newFakeAPI(t)
	session := tottohot.NewSession(api.URL)

	page, err := session.NewBoard(testdata.Board.Key).Posts(1, 10)
	require.NoError(t, err)

	rows := page.Rows()
	require.Len(t, rows, 10)

	labels := []string{}
	for _, row := range rows {
		labels = append(labels, row.Number.String())
	}
	assert.Equal(t, []string{"공지", "45", "44", "43", "42", "41", "40", "39", "38", "37"}, labels)

	assert.Equal(t, "2024.03.01", rows[0].Date)
	assert.Equal(t, "2024.03.02", rows[1].Date)

	assert.Equal(t, "★★★⯨☆", rows[1].Stars.String())
	assert.Equal(t, "★★★★★", rows[2].Stars.String())
	assert.Equal(t, "-", rows[3].Stars.String())
	assert.Equal(t, "☆☆☆☆☆", rows[4].Stars.String())

	// 행은 페이지의 게시글을 그대로 가리켜야함
	assert.Same(t, &page.Posts[5], rows[5].Post)
}
