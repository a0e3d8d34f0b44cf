package tottohot

// Review 는 검증/리뷰 페이지에 표시할 평점 요약입니다
type Review struct {
	PostID   ID
	Comments Comments
	Rated    int
	Ratings  AggregateRatings
	Shape    Polygon   // 평균 평점 도형
	Grid     []Polygon // 배경 눈금
	Axes     Polygon   // 축 끝점
	Stars    map[Category]Stars
	Overall  Stars
}

// NewReview 함수는 이미 불러온 댓글로 평점 요약을 만듭니다
func NewReview(postID ID, comments Comments, maxRadius float64) *Review {
	ratings := comments.Aggregate()

	review := &Review{
		PostID:   postID,
		Comments: comments,
		Rated:    len(comments.Rated()),
		Ratings:  ratings,
		Shape:    ProjectRatings(ratings, maxRadius),
		Grid:     Grid(len(Categories), maxRadius),
		Axes:     Axes(len(Categories), maxRadius),
		Stars:    make(map[Category]Stars, len(Categories)),
	}

	for _, c := range Categories {
		review.Stars[c] = RenderStars(Float(ratings.Get(c)), MaxRating, 5)
	}

	// 평점을 남긴 댓글이 없다면 종합 별점은 자리 표시로 두기
	if review.Rated > 0 {
		review.Overall = RenderStars(Float(ratings.Overall()), MaxRating, 5)
	} else {
		review.Overall = RenderStars(nil, MaxRating, 5)
	}

	return review
}

// Review 메소드는 게시글 댓글을 불러와 평점 요약을 만듭니다
func (session *Session) Review(postID ID, maxRadius float64) (*Review, error) {
	comments, err := session.Comments(postID)
	if err != nil {
		return nil, err
	}

	return NewReview(postID, comments, maxRadius), nil
}
