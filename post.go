package tottohot

import (
	"html"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

type Post struct {
	board *Board

	ID            ID        `json:"id"`
	BoardKey      string    `json:"boardKey"`
	Author        *User     `json:"author"`
	Title         string    `json:"title"`         // 제목
	Content       string    `json:"content"`       // 내용 (HTML)
	Views         int       `json:"views"`         // 조회 수
	Likes         int       `json:"likes"`         // 추천 수
	CommentCount  int       `json:"commentCount"`  // 댓글 수
	IsNotice      bool      `json:"isNotice"`      // 공지 여부
	OverallRating *float64  `json:"overallRating"` // 서버에서 계산한 종합 평점 (0~10)
	CreatedAt     time.Time `json:"createdAt"`
}

var (
	contentPolicy = newContentPolicy()
	textPolicy    = bluemonday.StrictPolicy()
)

func newContentPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoReferrerOnLinks(true)
	return p
}

// Date 메소드는 목록에 표시할 작성일을 반환합니다
func (post Post) Date() string {
	return formatDate(post.CreatedAt)
}

// SafeContent 메소드는 스크립트와 이벤트 속성을 제거한 본문 HTML 을 반환합니다
func (post Post) SafeContent() string {
	return contentPolicy.Sanitize(post.Content)
}

// Excerpt 메소드는 태그를 제거한 본문을 최대 n 글자까지 잘라 반환합니다
func (post Post) Excerpt(n int) string {
	text := strings.Join(strings.Fields(html.UnescapeString(textPolicy.Sanitize(post.Content))), " ")

	runes := []rune(text)
	if n < 0 || len(runes) <= n {
		return text
	}

	return string(runes[:n]) + "…"
}

// Images 메소드는 본문에 포함된 이미지 주소를 순서대로 반환합니다
func (post Post) Images() []string {
	images := []string{}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(post.SafeContent()))
	if err != nil {
		return images
	}

	doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		if src := strings.TrimSpace(s.AttrOr("src", "")); src != "" {
			images = append(images, src)
		}
	})

	return images
}

// Comments 메소드는 게시글에 달린 댓글을 불러옵니다
func (post Post) Comments() (Comments, error) {
	if post.board == nil || post.board.session == nil {
		return nil, ErrUnexpected
	}

	return post.board.session.Comments(post.ID)
}
