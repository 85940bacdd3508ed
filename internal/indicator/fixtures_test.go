package indicator

import (
	"math"

	"github.com/assist-by/stockwise/internal/domain"
)

const (
	baseTime = int64(1704067200) // 2024-01-01 00:00:00 UTC
	day      = int64(86400)
)

// 종가 목록으로 일봉 시리즈 생성
func candlesFromCloses(closes ...float64) domain.CandleSeries {
	series := make(domain.CandleSeries, len(closes))
	for i, c := range closes {
		open := c
		if i > 0 {
			open = closes[i-1]
		}
		series[i] = domain.Candle{
			Time:   baseTime + int64(i)*day,
			Open:   open,
			High:   max(open, c) + 1,
			Low:    min(open, c) - 1,
			Close:  c,
			Volume: 1000 + float64(i)*10,
		}
	}
	return series
}

// 테스트용 가격 데이터 생성 (상승 → 급락 → 횡보 → 하락 → 반등)
func generateTestCandles() domain.CandleSeries {
	return candlesFromCloses(
		// 상승 구간
		103, 106, 108, 110, 113, 114, 116, 117, 119, 120,
		// 하락 구간 (급격한 하락)
		116, 113, 109, 106, 103,
		// 횡보 구간
		105, 104, 106, 105, 104,
		// 추가 하락 구간
		101, 99, 97, 95, 93, 91,
		// 반등 구간
		95, 97, 99, 101, 103, 105, 107, 109, 111,
	)
}

// 사인파 형태의 긴 시리즈 생성 (MACD 등 긴 웜업 지표용)
func generateWaveCandles(n int) domain.CandleSeries {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100 + 10*math.Sin(float64(i)/5) + float64(i)*0.1
	}
	return candlesFromCloses(closes...)
}
