package domain

import (
	"fmt"
	"sort"
)

// Candle은 하나의 OHLCV 봉 데이터를 표현합니다
type Candle struct {
	Time   int64   `json:"time"`   // 봉 시작 시간 (unix 초)
	Open   float64 `json:"open"`   // 시가
	High   float64 `json:"high"`   // 고가
	Low    float64 `json:"low"`    // 저가
	Close  float64 `json:"close"`  // 종가
	Volume float64 `json:"volume"` // 거래량
}

// CandleSeries는 시간 오름차순으로 정렬된 캔들 목록입니다
type CandleSeries []Candle

// Last는 가장 최근 캔들을 반환합니다
func (cs CandleSeries) Last() (Candle, bool) {
	if len(cs) == 0 {
		return Candle{}, false
	}
	return cs[len(cs)-1], true
}

// CloseAt은 특정 인덱스의 종가를 반환합니다
func (cs CandleSeries) CloseAt(index int) (float64, bool) {
	if index < 0 || index >= len(cs) {
		return 0, false
	}
	return cs[index].Close, true
}

// Sub는 지정된 범위의 부분 시리즈를 반환합니다
func (cs CandleSeries) Sub(start, end int) (CandleSeries, bool) {
	if start < 0 || end > len(cs) || start >= end {
		return nil, false
	}
	return cs[start:end], true
}

// Closes는 종가 배열을 새로 만들어 반환합니다
func (cs CandleSeries) Closes() []float64 {
	closes := make([]float64, len(cs))
	for i, c := range cs {
		closes[i] = c.Close
	}
	return closes
}

// Times는 타임스탬프 배열을 새로 만들어 반환합니다
func (cs CandleSeries) Times() []int64 {
	times := make([]int64, len(cs))
	for i, c := range cs {
		times[i] = c.Time
	}
	return times
}

// TimeIndex는 타임스탬프로 캔들 인덱스를 찾는 조회 테이블입니다
type TimeIndex map[int64]int

// TimeIndex는 시리즈의 시간→인덱스 테이블을 생성합니다.
// 지표 결과를 원본 캔들에 매핑할 때는 항상 이 테이블을 사용합니다.
func (cs CandleSeries) TimeIndex() TimeIndex {
	idx := make(TimeIndex, len(cs))
	for i, c := range cs {
		// 중복 시간이 있으면 첫 번째 캔들을 유지
		if _, exists := idx[c.Time]; !exists {
			idx[c.Time] = i
		}
	}
	return idx
}

// Lookup은 주어진 시간에 해당하는 캔들 인덱스를 반환합니다
func (ti TimeIndex) Lookup(t int64) (int, bool) {
	i, ok := ti[t]
	return i, ok
}

// Validate는 시리즈가 데이터 계약을 지키는지 확인합니다.
// 엔진 자체는 이 검증을 호출하지 않으며, 데이터 소스가 사용합니다.
func (cs CandleSeries) Validate() error {
	for i, c := range cs {
		if i > 0 && c.Time <= cs[i-1].Time {
			return &ValidationError{
				Field: "time",
				Err:   fmt.Errorf("캔들 시간이 오름차순이 아닙니다 (인덱스: %d, %d <= %d)", i, c.Time, cs[i-1].Time),
			}
		}
		if c.Open <= 0 || c.High <= 0 || c.Low <= 0 || c.Close <= 0 {
			return &ValidationError{
				Field: "price",
				Err:   fmt.Errorf("가격은 0보다 커야 합니다 (인덱스: %d)", i),
			}
		}
		if c.Volume < 0 {
			return &ValidationError{
				Field: "volume",
				Err:   fmt.Errorf("거래량은 음수일 수 없습니다 (인덱스: %d)", i),
			}
		}
	}
	return nil
}

// SortedCopy는 시간순으로 정렬하고 중복 시간을 제거한 복사본을 반환합니다
func (cs CandleSeries) SortedCopy() CandleSeries {
	out := make(CandleSeries, len(cs))
	copy(out, cs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})

	// 같은 시간의 캔들은 마지막 값만 남김
	deduped := out[:0]
	for i, c := range out {
		if i+1 < len(out) && out[i+1].Time == c.Time {
			continue
		}
		deduped = append(deduped, c)
	}
	return deduped
}
