package tottohot

import (
	"strconv"

	"github.com/pkg/errors"
)

const (
	FreeBoard   = "free-board"
	TipBoard    = "mttip"
	ScamReports = "scam-report"
	ScamSites   = "scam-site"
	Reviews     = "review"
)

// DefaultPageSize 는 limit 을 지정하지 않았을 때 사용하는 페이지 크기입니다
const DefaultPageSize = 20

type Board struct {
	session *Session

	Key string
}

type Pagination struct {
	Count      int `json:"count"`      // 현재 페이지 게시글 수
	Total      int `json:"total"`      // 전체 게시글 수
	TotalPages int `json:"totalPages"` // 전체 페이지 수
}

// PostPage 는 게시글 목록 한 페이지입니다
type PostPage struct {
	Board      *Board
	Page       int
	Limit      int
	Posts      []Post     `json:"posts"`
	Pagination Pagination `json:"pagination"`
}

// Row 는 목록 한 줄을 그리는 데 필요한 값들입니다
type Row struct {
	Number DisplayNumber
	Post   *Post
	Date   string
	Stars  Stars
}

func (session *Session) NewBoard(key string) *Board {
	return &Board{
		session: session,
		Key:     key,
	}
}

// Posts 메소드는 page 번째 페이지의 게시글을 limit 개씩 불러옵니다
func (board *Board) Posts(page, limit int) (*PostPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}

	result := &PostPage{}

	_, err := board.session.Client.R().
		SetQueryParams(H{
			"boardKey": board.Key,
			"page":     strconv.Itoa(page),
			"limit":    strconv.Itoa(limit),
		}).
		SetResult(result).
		Get("/posts")
	if err != nil {
		return nil, errors.WithMessagef(err, "%s 게시판 목록 요청 중 오류가 발생했습니다", board.Key)
	}

	result.Board = board
	result.Page = page
	result.Limit = limit

	for i := range result.Posts {
		result.Posts[i].board = board

		if result.Posts[i].BoardKey == "" {
			result.Posts[i].BoardKey = board.Key
		}
	}

	return result, nil
}

// Numbering 메소드는 이 페이지의 번호 계산 정보를 반환합니다
func (page PostPage) Numbering() Numbering {
	return Numbering{
		TotalCount:  page.Pagination.Total,
		PageSize:    page.Limit,
		CurrentPage: page.Page,
	}
}

// Rows 메소드는 번호와 작성일, 별점을 계산한 목록을 반환합니다
func (page *PostPage) Rows() []Row {
	numbers := page.Numbering().Number(page.Posts)
	rows := make([]Row, len(page.Posts))

	for i := range page.Posts {
		post := &page.Posts[i]

		rows[i] = Row{
			Number: numbers[i],
			Post:   post,
			Date:   post.Date(),
			Stars:  RenderStars(post.OverallRating, MaxRating, 5),
		}
	}

	return rows
}

// HasNext 메소드는 다음 페이지가 있는지 확인합니다
func (page PostPage) HasNext() bool {
	return page.Page < page.Pagination.TotalPages
}
