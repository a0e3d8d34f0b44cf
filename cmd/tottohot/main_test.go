package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/toriato/tottohot/internal/config"
)

const postsBody = `{
  "posts": [
    {"id": 1, "title": "공지사항", "isNotice": true, "createdAt": "2024-03-01T09:00:00+09:00"},
    {"id": 31, "title": "첫 글", "overallRating": 7.4, "createdAt": "2024-03-02T09:00:00+09:00"},
    {"id": 30, "title": "둘째 글", "createdAt": "2024-03-01T09:00:00+09:00"}
  ],
  "pagination": {"count": 3, "total": 25, "totalPages": 2}
}`

const commentsBody = `[
  {"id": 1, "ratings": {"sports": 10, "realtime": 10, "customerService": 10, "odds": 10, "events": 10}},
  {"id": 2, "ratings": {"sports": 0, "realtime": 5, "customerService": 10, "odds": 5, "events": 0}}
]`

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/posts":
			w.Write([]byte(postsBody))
		case "/post-comments/post/31":
			w.Write([]byte(commentsBody))
		case "/auth/login":
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"code":"INVALID_CREDENTIALS"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"없음"}`))
		}
	}))
	t.Cleanup(server.Close)

	return server
}

func testConfig(baseURL string) *config.Config {
	cfg := &config.Config{BaseURL: baseURL, Board: "free-board"}
	cfg.Validate()
	cfg.Limit = 10
	return cfg
}

func TestRunList(t *testing.T) {
	server := newServer(t)
	out := &bytes.Buffer{}

	require.NoError(t, run(testConfig(server.URL), []string{"list"}, out, zap.NewNop()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)

	// ceil(25/10*1) = 3 → 비공지 22
	assert.Contains(t, lines[0], "공지")
	assert.Contains(t, lines[1], "22")
	assert.Contains(t, lines[1], "★★★⯨☆")
	assert.Contains(t, lines[2], "21")
	assert.Contains(t, lines[3], "1 / 2 페이지 (전체 25개)")
}

func TestRunReview(t *testing.T) {
	server := newServer(t)
	out := &bytes.Buffer{}

	require.NoError(t, run(testConfig(server.URL), []string{"review", "31"}, out, zap.NewNop()))

	text := out.String()
	assert.Contains(t, text, "평점 댓글 2개 / 전체 2개")
	assert.Contains(t, text, "고객센터   10.0")
	assert.Contains(t, text, "shape: 100.00,50.00")
	assert.Equal(t, 5, strings.Count(text, "grid:"))
}

func TestRunErrors(t *testing.T) {
	server := newServer(t)
	cfg := testConfig(server.URL)

	assert.Error(t, run(cfg, []string{"review"}, &bytes.Buffer{}, zap.NewNop()))
	assert.Error(t, run(cfg, []string{"review", "404"}, &bytes.Buffer{}, zap.NewNop()))
	assert.Error(t, run(cfg, []string{"unknown"}, &bytes.Buffer{}, zap.NewNop()))

	cfg.Username = "tester"
	assert.Error(t, run(cfg, nil, &bytes.Buffer{}, zap.NewNop()))
}
