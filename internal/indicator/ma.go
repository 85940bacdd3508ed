package indicator

import "github.com/assist-by/stockwise/internal/domain"

// MAOption은 단순이동평균 계산에 필요한 옵션을 정의합니다
type MAOption struct {
	Period int // 기간
}

// ValidateMAOption은 MA 옵션을 검증합니다
func ValidateMAOption(opt MAOption) error {
	return validatePeriod("Period", opt.Period)
}

// MA는 종가의 단순이동평균을 계산합니다.
// 결과 길이는 len(series)-Period+1 이며, 데이터가 부족하면 빈 결과를 반환합니다.
func MA(series domain.CandleSeries, opt MAOption) ([]Point, error) {
	if err := ValidateMAOption(opt); err != nil {
		return nil, err
	}
	return smaOf(series.Times(), series.Closes(), opt.Period), nil
}

// smaOf는 임의의 값 시리즈에 대한 단순이동평균입니다
func smaOf(times []int64, values []float64, period int) []Point {
	if len(values) < period {
		return []Point{}
	}

	results := make([]Point, 0, len(values)-period+1)
	var sum float64
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i >= period-1 {
			results = append(results, Point{
				Time:  times[i],
				Value: sum / float64(period),
			})
		}
	}
	return results
}
