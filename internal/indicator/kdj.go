package indicator

import "github.com/assist-by/stockwise/internal/domain"

// KDJOption은 KDJ 계산에 필요한 옵션을 정의합니다
type KDJOption struct {
	Period int // RSV 계산 기간
}

// DefaultKDJOption은 기본 KDJ(9) 옵션을 반환합니다
func DefaultKDJOption() KDJOption {
	return KDJOption{Period: 9}
}

// KDJPoint는 KDJ 계산 결과를 정의합니다
type KDJPoint struct {
	Time int64   `json:"time"` // 계산 시점
	K    float64 `json:"k"`    // K 값 (0~100)
	D    float64 `json:"d"`    // D 값 (0~100)
	J    float64 `json:"j"`    // J 값 (범위 제한 없음)
}

// kdjSeed는 K, D 평활의 시작값입니다
const kdjSeed = 50.0

// ValidateKDJOption은 KDJ 옵션을 검증합니다
func ValidateKDJOption(opt KDJOption) error {
	return validatePeriod("Period", opt.Period)
}

// KDJ는 스토캐스틱 기반 KDJ 지표를 계산합니다
func KDJ(series domain.CandleSeries, opt KDJOption) ([]KDJPoint, error) {
	if err := ValidateKDJOption(opt); err != nil {
		return nil, err
	}

	p := opt.Period
	if len(series) < p {
		return []KDJPoint{}, nil
	}

	results := make([]KDJPoint, 0, len(series)-p+1)
	k, d := kdjSeed, kdjSeed
	for i := p - 1; i < len(series); i++ {
		lowest, highest := series[i-p+1].Low, series[i-p+1].High
		for _, c := range series[i-p+2 : i+1] {
			lowest = min(lowest, c.Low)
			highest = max(highest, c.High)
		}

		// 가격 범위가 0이면 RSV는 0
		rsv := 0.0
		if highest-lowest != 0 {
			rsv = (series[i].Close - lowest) / (highest - lowest) * 100
		}

		k = k*2/3 + rsv/3
		d = d*2/3 + k/3
		results = append(results, KDJPoint{
			Time: series[i].Time,
			K:    k,
			D:    d,
			J:    3*k - 2*d,
		})
	}

	return results, nil
}
