package indicator

import (
	"fmt"
	"math"

	"github.com/assist-by/stockwise/internal/domain"
)

// BollingerOption은 볼린저 밴드 계산에 필요한 옵션을 정의합니다
type BollingerOption struct {
	Period     int     // 이동평균 기간
	Multiplier float64 // 표준편차 배수 (k)
}

// DefaultBollingerOption은 기본 볼린저 밴드(20, 2) 옵션을 반환합니다
func DefaultBollingerOption() BollingerOption {
	return BollingerOption{Period: 20, Multiplier: 2}
}

// BollingerPoint는 볼린저 밴드 계산 결과를 정의합니다
type BollingerPoint struct {
	Time   int64   `json:"time"`   // 계산 시점
	Upper  float64 `json:"upper"`  // 상단 밴드
	Middle float64 `json:"middle"` // 중심선 (MA)
	Lower  float64 `json:"lower"`  // 하단 밴드
}

// ValidateBollingerOption은 볼린저 밴드 옵션을 검증합니다
func ValidateBollingerOption(opt BollingerOption) error {
	if err := validatePeriod("Period", opt.Period); err != nil {
		return err
	}
	if opt.Multiplier < 0 || math.IsNaN(opt.Multiplier) || math.IsInf(opt.Multiplier, 0) {
		return &domain.ValidationError{
			Field: "Multiplier",
			Err:   fmt.Errorf("표준편차 배수는 0 이상의 유한한 값이어야 합니다: %v", opt.Multiplier),
		}
	}
	return nil
}

// Bollinger는 볼린저 밴드를 계산합니다. 표준편차는 모표준편차를 사용합니다.
func Bollinger(series domain.CandleSeries, opt BollingerOption) ([]BollingerPoint, error) {
	if err := ValidateBollingerOption(opt); err != nil {
		return nil, err
	}

	p := opt.Period
	if len(series) < p {
		return []BollingerPoint{}, nil
	}

	closes := series.Closes()
	results := make([]BollingerPoint, 0, len(series)-p+1)
	for i := p - 1; i < len(series); i++ {
		window := closes[i-p+1 : i+1]
		middle, stddev := meanStd(window)
		results = append(results, BollingerPoint{
			Time:   series[i].Time,
			Upper:  middle + opt.Multiplier*stddev,
			Middle: middle,
			Lower:  middle - opt.Multiplier*stddev,
		})
	}

	return results, nil
}

// meanStd는 평균과 모표준편차를 계산합니다 (두 번 순회로 음수 분산 방지)
func meanStd(values []float64) (mean, stddev float64) {
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	var variance float64
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))

	return mean, math.Sqrt(variance)
}
