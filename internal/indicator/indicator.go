package indicator

import (
	"fmt"

	"github.com/assist-by/stockwise/internal/domain"
)

// Point는 단일 값 지표의 계산 결과입니다
type Point struct {
	Time  int64   `json:"time"`  // 원본 캔들 시간 (unix 초)
	Value float64 `json:"value"` // 지표값
}

// Pair는 두 지표 시리즈의 같은 시점 값입니다
type Pair struct {
	Time int64
	A    float64
	B    float64
}

// AlignByTime은 두 지표 시리즈를 공통 시간으로 교차 정렬합니다.
// 웜업 길이가 다른 시리즈를 인덱스로 맞추면 시점이 어긋나므로 항상 시간으로 맞춥니다.
// 결과는 a의 순서를 따릅니다.
func AlignByTime(a, b []Point) []Pair {
	lookup := make(map[int64]float64, len(b))
	for _, p := range b {
		lookup[p.Time] = p.Value
	}

	pairs := make([]Pair, 0, min(len(a), len(b)))
	for _, p := range a {
		if v, ok := lookup[p.Time]; ok {
			pairs = append(pairs, Pair{Time: p.Time, A: p.Value, B: v})
		}
	}
	return pairs
}

// validatePeriod는 기간 옵션 공통 검증입니다
func validatePeriod(field string, period int) error {
	if period < 1 {
		return &domain.ValidationError{
			Field: field,
			Err:   fmt.Errorf("기간은 1 이상이어야 합니다: %d", period),
		}
	}
	return nil
}
