package tottohot

import (
	"math"
	"strings"
)

type Star int

const (
	StarNone Star = iota // 평점 없음
	StarFull
	StarHalf
	StarEmpty
)

var starGlyphs = map[Star]string{
	StarNone:  "-",
	StarFull:  "★",
	StarHalf:  "⯨",
	StarEmpty: "☆",
}

func (s Star) String() string { return starGlyphs[s] }

// Stars 는 별점 표시 결과입니다. Rated 가 false 라면 평점이 없어 자리 표시만 합니다
type Stars struct {
	Rated bool
	Full  int
	Half  bool
	Empty int
	Count int
}

// RenderStars 함수는 0~scaleMax 척도의 평점을 starCount 개의 별로 변환합니다.
// nil, NaN, 음수 평점이나 잘못된 척도는 자리 표시 결과를 반환합니다
func RenderStars(rating *float64, scaleMax float64, starCount int) Stars {
	if starCount < 0 {
		starCount = 0
	}

	stars := Stars{Count: starCount}

	if rating == nil || math.IsNaN(*rating) || *rating < 0 ||
		math.IsNaN(scaleMax) || scaleMax <= 0 || starCount == 0 {
		return stars
	}

	v := math.Min(*rating, scaleMax) / (scaleMax / float64(starCount))

	stars.Rated = true
	stars.Full = int(math.Floor(v))
	stars.Half = v-float64(stars.Full) >= 0.5

	stars.Empty = starCount - stars.Full
	if stars.Half {
		stars.Empty--
	}
	if stars.Empty < 0 {
		stars.Empty = 0
	}

	return stars
}

// Glyphs 메소드는 별 모양을 순서대로 반환합니다
func (s Stars) Glyphs() []Star {
	if !s.Rated {
		return make([]Star, s.Count)
	}

	glyphs := make([]Star, 0, s.Count)
	for i := 0; i < s.Full; i++ {
		glyphs = append(glyphs, StarFull)
	}
	if s.Half {
		glyphs = append(glyphs, StarHalf)
	}
	for i := 0; i < s.Empty; i++ {
		glyphs = append(glyphs, StarEmpty)
	}
	return glyphs
}

func (s Stars) String() string {
	if !s.Rated {
		return StarNone.String()
	}

	b := strings.Builder{}
	for _, g := range s.Glyphs() {
		b.WriteString(g.String())
	}
	return b.String()
}
