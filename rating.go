package tottohot

import (
	"math"
	"strconv"
)

// MaxRating 은 평점 척도의 최댓값입니다
const MaxRating = 10.0

type Category int

const (
	Sports Category = iota
	Realtime
	CustomerService
	Odds
	Events
)

// Categories 는 레이더 차트 축 순서와 같은 고정된 평가 항목 순서입니다
var Categories = [...]Category{Sports, Realtime, CustomerService, Odds, Events}

var (
	categoryKeys   = [...]string{"sports", "realtime", "customerService", "odds", "events"}
	categoryLabels = [...]string{"스포츠", "실시간", "고객센터", "배당", "이벤트"}
)

func (c Category) valid() bool { return c >= Sports && c <= Events }

// Key 메소드는 API 에서 사용하는 항목 이름을 반환합니다
func (c Category) Key() string {
	if !c.valid() {
		return ""
	}
	return categoryKeys[c]
}

func (c Category) String() string {
	if !c.valid() {
		return "Category(" + strconv.Itoa(int(c)) + ")"
	}
	return categoryLabels[c]
}

// Ratings 는 댓글 하나에 매겨진 항목별 평점입니다. 비어있는 항목은 nil 입니다
type Ratings struct {
	Sports          *float64 `json:"sports"`
	Realtime        *float64 `json:"realtime"`
	CustomerService *float64 `json:"customerService"`
	Odds            *float64 `json:"odds"`
	Events          *float64 `json:"events"`
}

func (r Ratings) Get(c Category) *float64 {
	switch c {
	case Sports:
		return r.Sports
	case Realtime:
		return r.Realtime
	case CustomerService:
		return r.CustomerService
	case Odds:
		return r.Odds
	case Events:
		return r.Events
	}
	return nil
}

// Mean 메소드는 값이 있는 항목들의 평균을 반환합니다. 값이 하나도 없다면 nil 입니다
func (r Ratings) Mean() *float64 {
	sum, count := 0.0, 0
	for _, c := range Categories {
		if v := r.Get(c); v != nil {
			sum += clampRating(*v, MaxRating)
			count++
		}
	}

	if count == 0 {
		return nil
	}
	return Float(sum / float64(count))
}

// AggregateRatings 는 여러 댓글의 항목별 평균 평점입니다
type AggregateRatings struct {
	Sports          float64
	Realtime        float64
	CustomerService float64
	Odds            float64
	Events          float64
}

// Aggregate 함수는 평점이 있는 댓글들의 항목별 평균을 계산합니다.
// 분모는 평점이 있는 댓글 수로 모든 항목이 공유하며, 댓글에 없는 항목은 0 으로 더합니다
func Aggregate(comments []Comment) AggregateRatings {
	var sums [len(Categories)]float64
	rated := 0

	for _, comment := range comments {
		if comment.Ratings == nil {
			continue
		}
		rated++

		for i, c := range Categories {
			if v := comment.Ratings.Get(c); v != nil {
				sums[i] += clampRating(*v, MaxRating)
			}
		}
	}

	if rated == 0 {
		return AggregateRatings{}
	}

	var agg AggregateRatings
	for i, c := range Categories {
		agg.set(c, sums[i]/float64(rated))
	}
	return agg
}

func (a *AggregateRatings) set(c Category, v float64) {
	switch c {
	case Sports:
		a.Sports = v
	case Realtime:
		a.Realtime = v
	case CustomerService:
		a.CustomerService = v
	case Odds:
		a.Odds = v
	case Events:
		a.Events = v
	}
}

func (a AggregateRatings) Get(c Category) float64 {
	switch c {
	case Sports:
		return a.Sports
	case Realtime:
		return a.Realtime
	case CustomerService:
		return a.CustomerService
	case Odds:
		return a.Odds
	case Events:
		return a.Events
	}
	return 0
}

// Values 메소드는 Categories 순서대로 평균값을 반환합니다
func (a AggregateRatings) Values() []float64 {
	values := make([]float64, len(Categories))
	for i, c := range Categories {
		values[i] = a.Get(c)
	}
	return values
}

// Overall 메소드는 다섯 항목의 평균을 반환합니다
func (a AggregateRatings) Overall() float64 {
	sum := 0.0
	for _, v := range a.Values() {
		sum += v
	}
	return sum / float64(len(Categories))
}

// Format 메소드는 항목 평균을 소수점 한 자리로 표시합니다
func (a AggregateRatings) Format(c Category) string {
	return formatRating(a.Get(c))
}

func formatRating(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0.0"
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
