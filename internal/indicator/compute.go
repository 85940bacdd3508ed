package indicator

import (
	"fmt"
	"strings"

	"github.com/assist-by/stockwise/internal/domain"
)

// Kind는 지원하는 지표 유형입니다
type Kind string

const (
	KindMA        Kind = "MA"
	KindEMA       Kind = "EMA"
	KindMACD      Kind = "MACD"
	KindRSI       Kind = "RSI"
	KindBollinger Kind = "BOLL"
	KindKDJ       Kind = "KDJ"
)

// Kinds는 지원하는 모든 지표 유형을 반환합니다
func Kinds() []Kind {
	return []Kind{KindMA, KindEMA, KindMACD, KindRSI, KindBollinger, KindKDJ}
}

// ParseKind는 문자열을 지표 유형으로 변환합니다
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", &domain.ValidationError{
		Field: "kind",
		Err:   fmt.Errorf("지원하지 않는 지표 유형: %q", s),
	}
}

// 지표 유형별 기본 기간
const (
	DefaultMAPeriod  = 20
	DefaultEMAPeriod = 12
)

// Sequence는 지표 유형에 관계없이 계산 결과를 담는 컨테이너입니다.
// Kind에 해당하는 필드 하나만 채워집니다.
type Sequence struct {
	Kind      Kind             `json:"kind"`
	Name      string           `json:"name"`
	Values    []Point          `json:"values,omitempty"`    // MA, EMA, RSI
	MACD      []MACDPoint      `json:"macd,omitempty"`      // MACD
	Bollinger []BollingerPoint `json:"bollinger,omitempty"` // BOLL
	KDJ       []KDJPoint       `json:"kdj,omitempty"`       // KDJ
}

// Len은 결과 포인트 개수를 반환합니다
func (s Sequence) Len() int {
	switch s.Kind {
	case KindMACD:
		return len(s.MACD)
	case KindBollinger:
		return len(s.Bollinger)
	case KindKDJ:
		return len(s.KDJ)
	default:
		return len(s.Values)
	}
}

// Times는 결과 포인트의 시간 목록을 반환합니다
func (s Sequence) Times() []int64 {
	times := make([]int64, 0, s.Len())
	switch s.Kind {
	case KindMACD:
		for _, p := range s.MACD {
			times = append(times, p.Time)
		}
	case KindBollinger:
		for _, p := range s.Bollinger {
			times = append(times, p.Time)
		}
	case KindKDJ:
		for _, p := range s.KDJ {
			times = append(times, p.Time)
		}
	default:
		for _, p := range s.Values {
			times = append(times, p.Time)
		}
	}
	return times
}

// Compute는 지표 유형과 파라미터 맵으로 지표를 계산합니다.
// 파라미터 키: MA/EMA/RSI/KDJ "period", MACD "fast"/"slow"/"signal", BOLL "period"/"k".
// 지정하지 않은 파라미터는 기본값을 사용합니다.
func Compute(kind Kind, series domain.CandleSeries, params domain.Params) (Sequence, error) {
	switch kind {
	case KindMA, KindEMA, KindRSI, KindKDJ:
		return computeSingle(kind, series, params)

	case KindMACD:
		if err := params.Only("fast", "slow", "signal"); err != nil {
			return Sequence{}, err
		}
		def := DefaultMACDOption()
		opt := MACDOption{}
		var err error
		if opt.ShortPeriod, err = params.Period("fast", def.ShortPeriod); err != nil {
			return Sequence{}, err
		}
		if opt.LongPeriod, err = params.Period("slow", def.LongPeriod); err != nil {
			return Sequence{}, err
		}
		if opt.SignalPeriod, err = params.Period("signal", def.SignalPeriod); err != nil {
			return Sequence{}, err
		}
		points, err := MACD(series, opt)
		if err != nil {
			return Sequence{}, err
		}
		return Sequence{
			Kind: kind,
			Name: fmt.Sprintf("MACD(%d,%d,%d)", opt.ShortPeriod, opt.LongPeriod, opt.SignalPeriod),
			MACD: points,
		}, nil

	case KindBollinger:
		if err := params.Only("period", "k"); err != nil {
			return Sequence{}, err
		}
		def := DefaultBollingerOption()
		opt := BollingerOption{}
		var err error
		if opt.Period, err = params.Period("period", def.Period); err != nil {
			return Sequence{}, err
		}
		if opt.Multiplier, err = params.Float("k", def.Multiplier); err != nil {
			return Sequence{}, err
		}
		points, err := Bollinger(series, opt)
		if err != nil {
			return Sequence{}, err
		}
		return Sequence{
			Kind:      kind,
			Name:      fmt.Sprintf("BOLL(%d,%g)", opt.Period, opt.Multiplier),
			Bollinger: points,
		}, nil

	default:
		return Sequence{}, &domain.ValidationError{
			Field: "kind",
			Err:   fmt.Errorf("지원하지 않는 지표 유형: %q", kind),
		}
	}
}

// computeSingle은 "period" 하나만 받는 지표를 계산합니다
func computeSingle(kind Kind, series domain.CandleSeries, params domain.Params) (Sequence, error) {
	if err := params.Only("period"); err != nil {
		return Sequence{}, err
	}

	var def int
	switch kind {
	case KindMA:
		def = DefaultMAPeriod
	case KindEMA:
		def = DefaultEMAPeriod
	case KindRSI:
		def = DefaultRSIOption().Period
	case KindKDJ:
		def = DefaultKDJOption().Period
	}

	period, err := params.Period("period", def)
	if err != nil {
		return Sequence{}, err
	}

	seq := Sequence{Kind: kind, Name: fmt.Sprintf("%s(%d)", kind, period)}
	switch kind {
	case KindMA:
		seq.Values, err = MA(series, MAOption{Period: period})
	case KindEMA:
		seq.Values, err = EMA(series, EMAOption{Period: period})
	case KindRSI:
		seq.Values, err = RSI(series, RSIOption{Period: period})
	case KindKDJ:
		seq.KDJ, err = KDJ(series, KDJOption{Period: period})
	}
	if err != nil {
		return Sequence{}, err
	}
	return seq, nil
}
