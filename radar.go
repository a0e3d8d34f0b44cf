package tottohot

import (
	"math"
	"strconv"
	"strings"
)

// GridLevels 는 레이더 차트 배경 눈금의 기본 단계입니다
var GridLevels = []float64{2, 4, 6, 8, 10}

type Point struct {
	X float64
	Y float64
}

// Polygon 은 첫 점과 마지막 점이 이어지는 닫힌 도형입니다
type Polygon []Point

// Translate 메소드는 모든 점을 (cx, cy) 만큼 옮긴 새 도형을 반환합니다
func (p Polygon) Translate(cx, cy float64) Polygon {
	moved := make(Polygon, len(p))
	for i, pt := range p {
		moved[i] = Point{X: pt.X + cx, Y: pt.Y + cy}
	}
	return moved
}

// SVGPoints 메소드는 SVG polygon 요소의 points 속성 값을 만듭니다
func (p Polygon) SVGPoints() string {
	parts := make([]string, len(p))
	for i, pt := range p {
		parts[i] = formatCoord(pt.X) + "," + formatCoord(pt.Y)
	}
	return strings.Join(parts, " ")
}

// formatCoord 함수는 좌표를 소수점 두 자리로 표시합니다. -0.00 은 0.00 으로 씁니다
func formatCoord(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// axisAngle 함수는 i 번째 축의 각도를 라디안으로 반환합니다. 첫 축은 위쪽을 향합니다
func axisAngle(i, axisCount int) float64 {
	degrees := float64(i)*360/float64(axisCount) - 90
	return degrees * math.Pi / 180
}

func polar(value float64, i, axisCount int, maxRadius float64) Point {
	r := clampRating(value, MaxRating) / MaxRating * maxRadius
	angle := axisAngle(i, axisCount)
	return Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
}

// Project 함수는 0~10 척도의 값들을 축 개수가 len(values) 인 레이더 차트 좌표로 변환합니다.
// 원점이 중심이며 반지름이 0 이하라면 모든 점이 원점에 놓입니다
func Project(values []float64, maxRadius float64) Polygon {
	if math.IsNaN(maxRadius) || maxRadius < 0 {
		maxRadius = 0
	}

	polygon := make(Polygon, len(values))
	for i, v := range values {
		polygon[i] = polar(v, i, len(values), maxRadius)
	}
	return polygon
}

// ProjectRatings 함수는 항목별 평균을 다섯 축 레이더 차트 좌표로 변환합니다
func ProjectRatings(ratings AggregateRatings, maxRadius float64) Polygon {
	return Project(ratings.Values(), maxRadius)
}

// Grid 함수는 데이터와 무관한 동심 눈금 도형들을 만듭니다. levels 가 없으면 GridLevels 를 사용합니다
func Grid(axisCount int, maxRadius float64, levels ...float64) []Polygon {
	if axisCount <= 0 {
		return nil
	}

	if len(levels) == 0 {
		levels = GridLevels
	}

	grid := make([]Polygon, len(levels))
	for i, level := range levels {
		values := make([]float64, axisCount)
		for j := range values {
			values[j] = level
		}
		grid[i] = Project(values, maxRadius)
	}
	return grid
}

// Axes 함수는 중심에서 각 축 끝까지의 끝점을 반환합니다
func Axes(axisCount int, maxRadius float64) Polygon {
	if axisCount <= 0 {
		return nil
	}

	values := make([]float64, axisCount)
	for i := range values {
		values[i] = MaxRating
	}
	return Project(values, maxRadius)
}
