package indicator

import (
	"fmt"

	"github.com/assist-by/stockwise/internal/domain"
)

// MACDOption은 MACD 계산에 필요한 옵션을 정의합니다
type MACDOption struct {
	ShortPeriod  int // 단기 EMA 기간
	LongPeriod   int // 장기 EMA 기간
	SignalPeriod int // 시그널 라인 기간
}

// DefaultMACDOption은 기본 MACD(12,26,9) 옵션을 반환합니다
func DefaultMACDOption() MACDOption {
	return MACDOption{
		ShortPeriod:  12,
		LongPeriod:   26,
		SignalPeriod: 9,
	}
}

// MACDPoint는 MACD 계산 결과를 정의합니다
type MACDPoint struct {
	Time      int64   `json:"time"`      // 계산 시점
	MACD      float64 `json:"macd"`      // MACD 라인
	Signal    float64 `json:"signal"`    // 시그널 라인
	Histogram float64 `json:"histogram"` // 히스토그램
}

// ValidateMACDOption은 MACD 옵션을 검증합니다
func ValidateMACDOption(opt MACDOption) error {
	if err := validatePeriod("ShortPeriod", opt.ShortPeriod); err != nil {
		return err
	}
	if err := validatePeriod("LongPeriod", opt.LongPeriod); err != nil {
		return err
	}
	if err := validatePeriod("SignalPeriod", opt.SignalPeriod); err != nil {
		return err
	}
	return nil
}

// MACD는 MACD(Moving Average Convergence Divergence) 지표를 계산합니다
func MACD(series domain.CandleSeries, opt MACDOption) ([]MACDPoint, error) {
	if err := ValidateMACDOption(opt); err != nil {
		return nil, fmt.Errorf("MACD 옵션 검증 실패: %w", err)
	}

	times := series.Times()
	closes := series.Closes()

	// 단기/장기 EMA 계산
	shortEMA := emaOf(times, closes, opt.ShortPeriod)
	longEMA := emaOf(times, closes, opt.LongPeriod)

	// MACD 라인 계산 (단기 EMA - 장기 EMA), 공통 시간 기준
	emaPairs := AlignByTime(shortEMA, longEMA)
	lineTimes := make([]int64, len(emaPairs))
	lineValues := make([]float64, len(emaPairs))
	macdLine := make([]Point, len(emaPairs))
	for i, p := range emaPairs {
		lineTimes[i] = p.Time
		lineValues[i] = p.A - p.B
		macdLine[i] = Point{Time: p.Time, Value: lineValues[i]}
	}

	// 시그널 라인 계산 (MACD의 EMA)
	signalLine := emaOf(lineTimes, lineValues, opt.SignalPeriod)

	// 최종 결과 생성
	pairs := AlignByTime(macdLine, signalLine)
	results := make([]MACDPoint, len(pairs))
	for i, p := range pairs {
		results[i] = MACDPoint{
			Time:      p.Time,
			MACD:      p.A,
			Signal:    p.B,
			Histogram: p.A - p.B,
		}
	}

	return results, nil
}
