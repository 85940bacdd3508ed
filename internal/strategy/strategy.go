package strategy

import (
	"fmt"
	"strings"

	"github.com/assist-by/stockwise/internal/domain"
)

// ID는 카탈로그에 등록된 전략 식별자입니다
type ID string

const (
	IDMACDCross    ID = "macd_cross"
	IDMACross      ID = "ma_cross"
	IDRSIOversold  ID = "rsi_oversold"
	IDBollBreakout ID = "boll_breakout"
	IDKDJCross     ID = "kdj_cross"
	IDEMATrend     ID = "ema_trend"
)

// IDs는 지원하는 모든 전략 ID를 카탈로그 순서대로 반환합니다
func IDs() []ID {
	return []ID{IDMACDCross, IDMACross, IDRSIOversold, IDBollBreakout, IDKDJCross, IDEMATrend}
}

// ParseID는 문자열을 전략 ID로 변환합니다
func ParseID(s string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range IDs() {
		if id == known {
			return id, nil
		}
	}
	return "", &domain.ValidationError{
		Field: "strategy",
		Err:   fmt.Errorf("존재하지 않는 전략: %q", s),
	}
}

// Run은 전략 ID와 파라미터 맵으로 전략을 실행합니다.
// 지정하지 않은 파라미터는 전략별 기본값을 사용합니다.
func Run(id ID, series domain.CandleSeries, params domain.Params) ([]domain.Signal, error) {
	switch id {
	case IDMACDCross:
		p, err := parseMACDCrossParams(params)
		if err != nil {
			return nil, err
		}
		return MACDCross(series, p)
	case IDMACross:
		p, err := parseMACrossParams(params)
		if err != nil {
			return nil, err
		}
		return MACross(series, p)
	case IDRSIOversold:
		p, err := parseRSIOversoldParams(params)
		if err != nil {
			return nil, err
		}
		return RSIOversold(series, p)
	case IDBollBreakout:
		p, err := parseBollBreakoutParams(params)
		if err != nil {
			return nil, err
		}
		return BollBreakout(series, p)
	case IDKDJCross:
		p, err := parseKDJCrossParams(params)
		if err != nil {
			return nil, err
		}
		return KDJCross(series, p)
	case IDEMATrend:
		p, err := parseEMATrendParams(params)
		if err != nil {
			return nil, err
		}
		return EMATrend(series, p)
	default:
		return nil, &domain.ValidationError{
			Field: "strategy",
			Err:   fmt.Errorf("존재하지 않는 전략: %q", id),
		}
	}
}

// CrossedAbove는 A가 B를 상향 돌파했는지 확인합니다.
// 이전 시점의 동일값(접촉) 후 위로 벌어지는 경우도 돌파로 봅니다.
func CrossedAbove(prevA, prevB, currA, currB float64) bool {
	return prevA <= prevB && currA > currB
}

// CrossedBelow는 A가 B를 하향 돌파했는지 확인합니다
func CrossedBelow(prevA, prevB, currA, currB float64) bool {
	return prevA >= prevB && currA < currB
}

// emitter는 지표 시점을 원본 캔들에 매핑해 시그널을 쌓습니다
type emitter struct {
	series  domain.CandleSeries
	index   domain.TimeIndex
	signals []domain.Signal
}

func newEmitter(series domain.CandleSeries) *emitter {
	return &emitter{
		series:  series,
		index:   series.TimeIndex(),
		signals: []domain.Signal{},
	}
}

// emit은 t 시점 캔들의 종가로 시그널을 추가합니다. 해당 캔들이 없으면 무시합니다.
func (e *emitter) emit(t int64, typ domain.SignalType, reason string) {
	i, ok := e.index.Lookup(t)
	if !ok {
		return
	}
	e.signals = append(e.signals, domain.Signal{
		Time:        t,
		Type:        typ,
		Price:       e.series[i].Close,
		Reason:      reason,
		SourceIndex: i,
	})
}

// closeAt은 t 시점 캔들의 종가를 반환합니다
func (e *emitter) closeAt(t int64) (float64, bool) {
	i, ok := e.index.Lookup(t)
	if !ok {
		return 0, false
	}
	return e.series.CloseAt(i)
}

// readPeriods는 기간 파라미터를 순서대로 읽습니다
func readPeriods(params domain.Params, keys []string, dst ...*int) error {
	for i, key := range keys {
		v, err := params.Period(key, *dst[i])
		if err != nil {
			return err
		}
		*dst[i] = v
	}
	return nil
}

// readFloats는 실수 파라미터를 순서대로 읽습니다
func readFloats(params domain.Params, keys []string, dst ...*float64) error {
	for i, key := range keys {
		v, err := params.Float(key, *dst[i])
		if err != nil {
			return err
		}
		*dst[i] = v
	}
	return nil
}
