package tottohot

import (
	"time"

	"github.com/pkg/errors"
)

type Comment struct {
	ID            ID        `json:"id"`
	PostID        ID        `json:"postId"`
	Author        *User     `json:"author"`
	Content       string    `json:"content"`
	Ratings       *Ratings  `json:"ratings"`       // 평점을 남기지 않은 댓글은 nil
	OverallRating *float64  `json:"overallRating"` // 없으면 항목 평균으로 계산
	CreatedAt     time.Time `json:"createdAt"`
}

// Overall 메소드는 댓글의 종합 평점을 반환합니다. 평점이 없다면 nil 입니다
func (comment Comment) Overall() *float64 {
	if comment.OverallRating != nil {
		return Float(clampRating(*comment.OverallRating, MaxRating))
	}

	if comment.Ratings == nil {
		return nil
	}

	return comment.Ratings.Mean()
}

// Date 메소드는 댓글 작성일을 반환합니다
func (comment Comment) Date() string {
	return formatDate(comment.CreatedAt)
}

type Comments []Comment

// Rated 메소드는 평점이 있는 댓글만 반환합니다
func (comments Comments) Rated() Comments {
	rated := Comments{}
	for _, comment := range comments {
		if comment.Ratings != nil {
			rated = append(rated, comment)
		}
	}
	return rated
}

func (comments Comments) Aggregate() AggregateRatings {
	return Aggregate(comments)
}

// Comments 메소드는 게시글에 달린 댓글을 불러옵니다
func (session *Session) Comments(postID ID) (Comments, error) {
	if postID == "" {
		return nil, ErrNotFound
	}

	comments := Comments{}

	_, err := session.Client.R().
		SetPathParam("id", postID.String()).
		SetResult(&comments).
		Get("/post-comments/post/{id}")
	if err != nil {
		return nil, errors.WithMessagef(err, "%s 게시글 댓글 요청 중 오류가 발생했습니다", postID)
	}

	return comments, nil
}
