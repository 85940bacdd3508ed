package strategy

import (
	"fmt"

	"github.com/assist-by/stockwise/internal/domain"
	"github.com/assist-by/stockwise/internal/indicator"
)

// MACDCrossParams는 MACD 골든/데드크로스 전략 파라미터입니다
type MACDCrossParams struct {
	Fast   int // 단기 EMA 기간
	Slow   int // 장기 EMA 기간
	Signal int // 시그널 라인 기간
}

// DefaultMACDCrossParams는 기본 파라미터(12, 26, 9)를 반환합니다
func DefaultMACDCrossParams() MACDCrossParams {
	return MACDCrossParams{Fast: 12, Slow: 26, Signal: 9}
}

func parseMACDCrossParams(params domain.Params) (MACDCrossParams, error) {
	if err := params.Only("fast", "slow", "signal"); err != nil {
		return MACDCrossParams{}, err
	}
	p := DefaultMACDCrossParams()
	if err := readPeriods(params, []string{"fast", "slow", "signal"}, &p.Fast, &p.Slow, &p.Signal); err != nil {
		return MACDCrossParams{}, err
	}
	return p, nil
}

// MACDCross는 MACD 라인이 시그널 라인을 돌파할 때마다 시그널을 생성합니다.
// 포지션 상태와 무관하게 모든 교차를 내보냅니다.
func MACDCross(series domain.CandleSeries, p MACDCrossParams) ([]domain.Signal, error) {
	points, err := indicator.MACD(series, indicator.MACDOption{
		ShortPeriod:  p.Fast,
		LongPeriod:   p.Slow,
		SignalPeriod: p.Signal,
	})
	if err != nil {
		return nil, fmt.Errorf("MACD 계산 실패: %w", err)
	}

	e := newEmitter(series)
	for i := 1; i < len(points); i++ {
		prev, curr := points[i-1], points[i]
		if CrossedAbove(prev.MACD, prev.Signal, curr.MACD, curr.Signal) {
			e.emit(curr.Time, domain.Buy, "MACD 골든크로스")
		} else if CrossedBelow(prev.MACD, prev.Signal, curr.MACD, curr.Signal) {
			e.emit(curr.Time, domain.Sell, "MACD 데드크로스")
		}
	}
	return e.signals, nil
}

// MACrossParams는 이동평균 골든/데드크로스 전략 파라미터입니다
type MACrossParams struct {
	ShortPeriod int // 단기 이동평균 기간
	LongPeriod  int // 장기 이동평균 기간
}

// DefaultMACrossParams는 기본 파라미터(5, 20)를 반환합니다
func DefaultMACrossParams() MACrossParams {
	return MACrossParams{ShortPeriod: 5, LongPeriod: 20}
}

func parseMACrossParams(params domain.Params) (MACrossParams, error) {
	if err := params.Only("shortPeriod", "longPeriod"); err != nil {
		return MACrossParams{}, err
	}
	p := DefaultMACrossParams()
	if err := readPeriods(params, []string{"shortPeriod", "longPeriod"}, &p.ShortPeriod, &p.LongPeriod); err != nil {
		return MACrossParams{}, err
	}
	return p, nil
}

// MACross는 단기 이동평균이 장기 이동평균을 돌파할 때 시그널을 생성합니다
func MACross(series domain.CandleSeries, p MACrossParams) ([]domain.Signal, error) {
	short, err := indicator.MA(series, indicator.MAOption{Period: p.ShortPeriod})
	if err != nil {
		return nil, fmt.Errorf("단기 이동평균 계산 실패: %w", err)
	}
	long, err := indicator.MA(series, indicator.MAOption{Period: p.LongPeriod})
	if err != nil {
		return nil, fmt.Errorf("장기 이동평균 계산 실패: %w", err)
	}

	pairs := indicator.AlignByTime(short, long)
	e := newEmitter(series)
	for i := 1; i < len(pairs); i++ {
		prev, curr := pairs[i-1], pairs[i]
		if CrossedAbove(prev.A, prev.B, curr.A, curr.B) {
			e.emit(curr.Time, domain.Buy, fmt.Sprintf("MA%d 상향 돌파 MA%d", p.ShortPeriod, p.LongPeriod))
		} else if CrossedBelow(prev.A, prev.B, curr.A, curr.B) {
			e.emit(curr.Time, domain.Sell, fmt.Sprintf("MA%d 하향 돌파 MA%d", p.ShortPeriod, p.LongPeriod))
		}
	}
	return e.signals, nil
}

// KDJCrossParams는 KDJ 골든/데드크로스 전략 파라미터입니다
type KDJCrossParams struct {
	Period      int     // RSV 계산 기간
	JOversold   float64 // J 과매도 기준
	JOverbought float64 // J 과매수 기준
}

// DefaultKDJCrossParams는 기본 파라미터(9, 20, 80)를 반환합니다
func DefaultKDJCrossParams() KDJCrossParams {
	return KDJCrossParams{Period: 9, JOversold: 20, JOverbought: 80}
}

// kdjFilterMargin은 J 필터를 기준선보다 완화하는 폭입니다
const kdjFilterMargin = 30.0

func parseKDJCrossParams(params domain.Params) (KDJCrossParams, error) {
	if err := params.Only("period", "jOversold", "jOverbought"); err != nil {
		return KDJCrossParams{}, err
	}
	p := DefaultKDJCrossParams()
	if err := readPeriods(params, []string{"period"}, &p.Period); err != nil {
		return KDJCrossParams{}, err
	}
	if err := readFloats(params, []string{"jOversold", "jOverbought"}, &p.JOversold, &p.JOverbought); err != nil {
		return KDJCrossParams{}, err
	}
	return p, nil
}

// KDJCross는 K가 D를 돌파할 때 J 값으로 걸러 시그널을 생성합니다.
// 매수는 J < JOversold+30, 매도는 J > JOverbought-30 일 때만 발생합니다.
func KDJCross(series domain.CandleSeries, p KDJCrossParams) ([]domain.Signal, error) {
	points, err := indicator.KDJ(series, indicator.KDJOption{Period: p.Period})
	if err != nil {
		return nil, fmt.Errorf("KDJ 계산 실패: %w", err)
	}

	e := newEmitter(series)
	for i := 1; i < len(points); i++ {
		prev, curr := points[i-1], points[i]
		if CrossedAbove(prev.K, prev.D, curr.K, curr.D) && curr.J < p.JOversold+kdjFilterMargin {
			e.emit(curr.Time, domain.Buy, fmt.Sprintf("KDJ 골든크로스 (J=%.1f)", curr.J))
		} else if CrossedBelow(prev.K, prev.D, curr.K, curr.D) && curr.J > p.JOverbought-kdjFilterMargin {
			e.emit(curr.Time, domain.Sell, fmt.Sprintf("KDJ 데드크로스 (J=%.1f)", curr.J))
		}
	}
	return e.signals, nil
}

// EMATrendParams는 EMA 추세 추종 전략 파라미터입니다
type EMATrendParams struct {
	ShortEMA int // 단기 EMA 기간
	LongEMA  int // 장기 EMA 기간
}

// DefaultEMATrendParams는 기본 파라미터(8, 21)를 반환합니다
func DefaultEMATrendParams() EMATrendParams {
	return EMATrendParams{ShortEMA: 8, LongEMA: 21}
}

func parseEMATrendParams(params domain.Params) (EMATrendParams, error) {
	if err := params.Only("shortEMA", "longEMA"); err != nil {
		return EMATrendParams{}, err
	}
	p := DefaultEMATrendParams()
	if err := readPeriods(params, []string{"shortEMA", "longEMA"}, &p.ShortEMA, &p.LongEMA); err != nil {
		return EMATrendParams{}, err
	}
	return p, nil
}

// EMATrend는 단기 EMA가 상승 중에 장기 EMA를 상향 돌파하면 매수,
// 하향 돌파하면 매도 시그널을 생성합니다.
// 상승 여부는 단기 EMA 자신의 두 봉 전 값과 비교합니다.
func EMATrend(series domain.CandleSeries, p EMATrendParams) ([]domain.Signal, error) {
	short, err := indicator.EMA(series, indicator.EMAOption{Period: p.ShortEMA})
	if err != nil {
		return nil, fmt.Errorf("단기 EMA 계산 실패: %w", err)
	}
	long, err := indicator.EMA(series, indicator.EMAOption{Period: p.LongEMA})
	if err != nil {
		return nil, fmt.Errorf("장기 EMA 계산 실패: %w", err)
	}

	shortIdx := make(map[int64]int, len(short))
	for i, pt := range short {
		shortIdx[pt.Time] = i
	}

	pairs := indicator.AlignByTime(short, long)
	e := newEmitter(series)
	for i := 1; i < len(pairs); i++ {
		prev, curr := pairs[i-1], pairs[i]
		if CrossedAbove(prev.A, prev.B, curr.A, curr.B) {
			j := shortIdx[curr.Time]
			if j >= 2 && curr.A > short[j-2].Value {
				e.emit(curr.Time, domain.Buy,
					fmt.Sprintf("EMA%d 상향 돌파 EMA%d (상승 추세)", p.ShortEMA, p.LongEMA))
			}
		} else if CrossedBelow(prev.A, prev.B, curr.A, curr.B) {
			e.emit(curr.Time, domain.Sell,
				fmt.Sprintf("EMA%d 하향 돌파 EMA%d (추세 약화)", p.ShortEMA, p.LongEMA))
		}
	}
	return e.signals, nil
}
