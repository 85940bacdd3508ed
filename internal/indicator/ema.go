package indicator

import "github.com/assist-by/stockwise/internal/domain"

// EMAOption은 EMA 계산에 필요한 옵션을 정의합니다
type EMAOption struct {
	Period int // 기간
}

// ValidateEMAOption은 EMA 옵션을 검증합니다
func ValidateEMAOption(opt EMAOption) error {
	return validatePeriod("Period", opt.Period)
}

// EMA는 지수이동평균을 계산합니다
func EMA(series domain.CandleSeries, opt EMAOption) ([]Point, error) {
	if err := ValidateEMAOption(opt); err != nil {
		return nil, err
	}
	return emaOf(series.Times(), series.Closes(), opt.Period), nil
}

// emaOf는 임의의 값 시리즈에 대한 EMA입니다 (MACD 시그널 라인에도 사용)
func emaOf(times []int64, values []float64, period int) []Point {
	if len(values) < period {
		return []Point{}
	}

	// EMA 계산을 위한 승수 계산
	multiplier := 2.0 / float64(period+1)

	// 초기 SMA 계산
	var sma float64
	for i := 0; i < period; i++ {
		sma += values[i]
	}
	sma /= float64(period)

	results := make([]Point, 0, len(values)-period+1)

	// 첫 번째 EMA는 SMA 값으로 설정
	results = append(results, Point{Time: times[period-1], Value: sma})

	// EMA = 이전 EMA + (현재가 - 이전 EMA) × 승수
	prev := sma
	for i := period; i < len(values); i++ {
		ema := (values[i]-prev)*multiplier + prev
		results = append(results, Point{Time: times[i], Value: ema})
		prev = ema
	}

	return results
}
