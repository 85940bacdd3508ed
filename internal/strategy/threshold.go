package strategy

import (
	"fmt"

	"github.com/assist-by/stockwise/internal/domain"
	"github.com/assist-by/stockwise/internal/indicator"
)

// RSIOversoldParams는 RSI 과매도/과매수 전략 파라미터입니다
type RSIOversoldParams struct {
	Period     int     // RSI 기간
	Oversold   float64 // 과매도 기준선
	Overbought float64 // 과매수 기준선
}

// DefaultRSIOversoldParams는 기본 파라미터(14, 30, 70)를 반환합니다
func DefaultRSIOversoldParams() RSIOversoldParams {
	return RSIOversoldParams{Period: 14, Oversold: 30, Overbought: 70}
}

func parseRSIOversoldParams(params domain.Params) (RSIOversoldParams, error) {
	if err := params.Only("period", "oversold", "overbought"); err != nil {
		return RSIOversoldParams{}, err
	}
	p := DefaultRSIOversoldParams()
	if err := readPeriods(params, []string{"period"}, &p.Period); err != nil {
		return RSIOversoldParams{}, err
	}
	if err := readFloats(params, []string{"oversold", "overbought"}, &p.Oversold, &p.Overbought); err != nil {
		return RSIOversoldParams{}, err
	}
	return p, nil
}

// RSIOversold는 포지션이 없을 때 RSI가 과매도선을 하향 이탈하면 매수,
// 포지션 보유 중 과매수선을 상향 돌파하면 매도 시그널을 생성합니다.
// 전략 자체적으로 한 번에 하나의 포지션만 유지합니다.
func RSIOversold(series domain.CandleSeries, p RSIOversoldParams) ([]domain.Signal, error) {
	points, err := indicator.RSI(series, indicator.RSIOption{Period: p.Period})
	if err != nil {
		return nil, fmt.Errorf("RSI 계산 실패: %w", err)
	}

	e := newEmitter(series)
	inPosition := false
	for i := 1; i < len(points); i++ {
		prev, curr := points[i-1].Value, points[i].Value
		if !inPosition && prev >= p.Oversold && curr < p.Oversold {
			e.emit(points[i].Time, domain.Buy, fmt.Sprintf("RSI %g 하향 이탈 (과매도)", p.Oversold))
			inPosition = true
		} else if inPosition && prev <= p.Overbought && curr > p.Overbought {
			e.emit(points[i].Time, domain.Sell, fmt.Sprintf("RSI %g 상향 돌파 (과매수)", p.Overbought))
			inPosition = false
		}
	}
	return e.signals, nil
}

// BollBreakoutParams는 볼린저 밴드 돌파 전략 파라미터입니다
type BollBreakoutParams struct {
	Period int     // 이동평균 기간
	StdDev float64 // 표준편차 배수
}

// DefaultBollBreakoutParams는 기본 파라미터(20, 2)를 반환합니다
func DefaultBollBreakoutParams() BollBreakoutParams {
	return BollBreakoutParams{Period: 20, StdDev: 2}
}

func parseBollBreakoutParams(params domain.Params) (BollBreakoutParams, error) {
	if err := params.Only("period", "stdDev"); err != nil {
		return BollBreakoutParams{}, err
	}
	p := DefaultBollBreakoutParams()
	if err := readPeriods(params, []string{"period"}, &p.Period); err != nil {
		return BollBreakoutParams{}, err
	}
	if err := readFloats(params, []string{"stdDev"}, &p.StdDev); err != nil {
		return BollBreakoutParams{}, err
	}
	return p, nil
}

// BollBreakout은 포지션이 없을 때 종가가 하단 밴드 아래면 매수,
// 포지션 보유 중 종가가 상단 밴드 위면 매도 시그널을 생성합니다.
// 첫 밴드 시점부터 모든 시점을 평가합니다.
func BollBreakout(series domain.CandleSeries, p BollBreakoutParams) ([]domain.Signal, error) {
	bands, err := indicator.Bollinger(series, indicator.BollingerOption{
		Period:     p.Period,
		Multiplier: p.StdDev,
	})
	if err != nil {
		return nil, fmt.Errorf("볼린저 밴드 계산 실패: %w", err)
	}

	e := newEmitter(series)
	inPosition := false
	for _, b := range bands {
		price, ok := e.closeAt(b.Time)
		if !ok {
			continue
		}
		if !inPosition && price < b.Lower {
			e.emit(b.Time, domain.Buy, "종가 볼린저 하단 이탈")
			inPosition = true
		} else if inPosition && price > b.Upper {
			e.emit(b.Time, domain.Sell, "종가 볼린저 상단 돌파")
			inPosition = false
		}
	}
	return e.signals, nil
}
