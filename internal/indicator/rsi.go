package indicator

import "github.com/assist-by/stockwise/internal/domain"

// RSIOption은 RSI 계산에 필요한 옵션을 정의합니다
type RSIOption struct {
	Period int // RSI 계산 기간
}

// DefaultRSIOption은 기본 RSI(14) 옵션을 반환합니다
func DefaultRSIOption() RSIOption {
	return RSIOption{Period: 14}
}

// ValidateRSIOption은 RSI 옵션을 검증합니다
func ValidateRSIOption(opt RSIOption) error {
	return validatePeriod("Period", opt.Period)
}

// RSI는 Wilder 평활 방식의 Relative Strength Index를 계산합니다.
// 변동(Δ)이 Period개 필요하므로 Period+1개 미만의 캔들에서는 빈 결과를 반환합니다.
func RSI(series domain.CandleSeries, opt RSIOption) ([]Point, error) {
	if err := ValidateRSIOption(opt); err != nil {
		return nil, err
	}

	p := opt.Period
	if len(series) <= p {
		return []Point{}, nil
	}

	results := make([]Point, 0, len(series)-p)

	// ---------- 1. 첫 p 개의 변동 Δ 합산 (SMA) ----------------------------
	sumGain, sumLoss := 0.0, 0.0
	for i := 1; i <= p; i++ {
		gain, loss := splitDelta(series[i].Close - series[i-1].Close)
		sumGain += gain
		sumLoss += loss
	}
	avgGain, avgLoss := sumGain/float64(p), sumLoss/float64(p)
	results = append(results, Point{Time: series[p].Time, Value: toRSI(avgGain, avgLoss)})

	// ---------- 2. 이후 구간 Wilder 평활 ----------------------------------
	for i := p + 1; i < len(series); i++ {
		gain, loss := splitDelta(series[i].Close - series[i-1].Close)
		avgGain = (avgGain*float64(p-1) + gain) / float64(p)
		avgLoss = (avgLoss*float64(p-1) + loss) / float64(p)
		results = append(results, Point{Time: series[i].Time, Value: toRSI(avgGain, avgLoss)})
	}

	return results, nil
}

// --- 유틸 ---------------------------------------------------------------

func splitDelta(delta float64) (gain, loss float64) {
	if delta > 0 {
		return delta, 0
	}
	return 0, -delta
}

// toRSI는 평균 손실이 0이면 100을 반환합니다 (완전 횡보 포함)
func toRSI(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}
