package tottohot

import (
	"math"
	"strconv"
)

// NoticeLabel 은 공지글 번호 자리에 표시되는 문구입니다
const NoticeLabel = "공지"

// Numbering 은 게시글 목록의 표시 번호를 계산하기 위한 페이지 정보입니다
type Numbering struct {
	TotalCount  int // 서버가 알려준 전체 게시글 수
	PageSize    int
	CurrentPage int // 1 부터 시작
}

// DisplayNumber 는 목록 한 줄에 표시되는 번호입니다
type DisplayNumber struct {
	Notice bool
	Known  bool
	Value  int
}

func (n DisplayNumber) String() string {
	switch {
	case n.Notice:
		return NoticeLabel
	case !n.Known:
		return "-"
	}
	return strconv.Itoa(n.Value)
}

// Number 메소드는 서버가 최신순으로 정렬한 게시글 목록에 표시 번호를 매깁니다.
// 공지는 번호를 차지하지 않으며 전체 공지 수는 현재 페이지의 공지 비율로 추정합니다.
// 추정치 때문에 마지막 페이지 번호가 0 이하가 되더라도 보정하지 않습니다
func (n Numbering) Number(posts []Post) []DisplayNumber {
	numbers := make([]DisplayNumber, len(posts))

	notices := 0
	for i, post := range posts {
		if post.IsNotice {
			numbers[i].Notice = true
			notices++
		}
	}

	if n.TotalCount <= 0 || n.PageSize <= 0 {
		return numbers
	}

	page := n.CurrentPage
	if page < 1 {
		page = 1
	}

	total := n.TotalCount - n.estimatedNotices(notices)
	if total < 0 {
		total = 0
	}

	k := 0
	for i := range numbers {
		if numbers[i].Notice {
			continue
		}

		numbers[i].Known = true
		numbers[i].Value = total - (page-1)*n.PageSize - k
		k++
	}

	return numbers
}

func (n Numbering) estimatedNotices(inPage int) int {
	if inPage <= 0 {
		return 0
	}
	return int(math.Ceil(float64(n.TotalCount) / float64(n.PageSize) * float64(inPage)))
}

// Labels 메소드는 Number 의 결과를 문자열로 반환합니다
func (n Numbering) Labels(posts []Post) []string {
	numbers := n.Number(posts)
	labels := make([]string, len(numbers))
	for i, number := range numbers {
		labels[i] = number.String()
	}
	return labels
}
