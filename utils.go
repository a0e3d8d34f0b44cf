package tottohot

import (
	"bytes"
	"encoding/json"
	"math"
	"time"
)

// ID 는 서버가 숫자 또는 문자열로 내려주는 식별자를 문자열로 보관합니다
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*id = ID(n.String())
	}

	return nil
}

func (id ID) String() string { return string(id) }

// Float 는 포인터 인자가 필요한 곳에 값을 넘길 때 사용합니다
func Float(v float64) *float64 { return &v }

// clampRating 함수는 평점을 [0, max] 범위로 맞추고 NaN 은 0 으로 취급합니다
func clampRating(v, max float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > max:
		return max
	}
	return v
}

var (
	now = time.Now

	// 작성일은 서버 시간대와 관계없이 한국 시간으로 표시합니다
	displayZone = time.FixedZone("KST", 9*60*60)
)

// formatDate 함수는 목록에 표시할 작성 시각을 만듭니다. 오늘 작성된 글은 시각만 표시합니다
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	local := t.In(displayZone)
	y1, m1, d1 := local.Date()
	y2, m2, d2 := now().In(displayZone).Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return local.Format("15:04")
	}

	return local.Format("2006.01.02")
}
