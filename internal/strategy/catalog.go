package strategy

import (
	"fmt"

	"github.com/assist-by/stockwise/internal/domain"
)

// ParamSpec은 전략 파라미터 하나의 설명입니다.
// Min/Max/Step은 입력 화면용 권장 범위이며 실행 시 검증하지 않습니다.
type ParamSpec struct {
	Key     string  `json:"key" yaml:"key"`
	Label   string  `json:"label" yaml:"label"`
	Min     float64 `json:"min" yaml:"min"`
	Max     float64 `json:"max" yaml:"max"`
	Step    float64 `json:"step" yaml:"step"`
	Default float64 `json:"default" yaml:"default"`
}

// Descriptor는 카탈로그에 노출되는 전략 정보입니다
type Descriptor struct {
	ID          ID          `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Theory      string      `json:"theory" yaml:"theory"`
	Params      []ParamSpec `json:"params" yaml:"params"`
}

// Defaults는 기본 파라미터 맵을 반환합니다
func (d Descriptor) Defaults() domain.Params {
	params := make(domain.Params, len(d.Params))
	for _, p := range d.Params {
		params[p.Key] = p.Default
	}
	return params
}

// Keys는 파라미터 키 목록을 선언 순서대로 반환합니다
func (d Descriptor) Keys() []string {
	keys := make([]string, len(d.Params))
	for i, p := range d.Params {
		keys[i] = p.Key
	}
	return keys
}

// Catalog는 모든 전략의 설명을 반환합니다. 호출마다 새 슬라이스를 만듭니다.
func Catalog() []Descriptor {
	return []Descriptor{
		{
			ID:          IDMACDCross,
			Name:        "MACD 골든/데드크로스",
			Description: "MACD 라인이 시그널 라인을 상향 돌파(골든크로스)하면 매수, 하향 돌파(데드크로스)하면 매도합니다.",
			Theory:      "다우 이론 · 추세 추종",
			Params: []ParamSpec{
				{Key: "fast", Label: "단기 EMA 기간", Min: 5, Max: 20, Step: 1, Default: 12},
				{Key: "slow", Label: "장기 EMA 기간", Min: 15, Max: 40, Step: 1, Default: 26},
				{Key: "signal", Label: "시그널 기간", Min: 5, Max: 15, Step: 1, Default: 9},
			},
		},
		{
			ID:          IDMACross,
			Name:        "이동평균 골든/데드크로스",
			Description: "단기 이동평균이 장기 이동평균을 상향 돌파하면 매수, 하향 돌파하면 매도합니다.",
			Theory:      "그레이엄 · 평균 회귀",
			Params: []ParamSpec{
				{Key: "shortPeriod", Label: "단기 이동평균", Min: 5, Max: 20, Step: 1, Default: 5},
				{Key: "longPeriod", Label: "장기 이동평균", Min: 20, Max: 60, Step: 5, Default: 20},
			},
		},
		{
			ID:          IDRSIOversold,
			Name:        "RSI 과매수/과매도",
			Description: "RSI가 과매도선(기본 30) 아래로 내려가면 매수, 과매수선(기본 70) 위로 올라가면 매도합니다.",
			Theory:      "케인스 · 시장 심리",
			Params: []ParamSpec{
				{Key: "period", Label: "RSI 기간", Min: 7, Max: 21, Step: 1, Default: 14},
				{Key: "oversold", Label: "과매도선", Min: 20, Max: 35, Step: 1, Default: 30},
				{Key: "overbought", Label: "과매수선", Min: 65, Max: 80, Step: 1, Default: 70},
			},
		},
		{
			ID:          IDBollBreakout,
			Name:        "볼린저 밴드 돌파",
			Description: "종가가 볼린저 하단 밴드 아래로 내려가면 매수, 상단 밴드 위로 올라가면 매도합니다.",
			Theory:      "소로스 · 재귀성 이론",
			Params: []ParamSpec{
				{Key: "period", Label: "이동평균 기간", Min: 10, Max: 30, Step: 1, Default: 20},
				{Key: "stdDev", Label: "표준편차 배수", Min: 1, Max: 3, Step: 0.5, Default: 2},
			},
		},
		{
			ID:          IDKDJCross,
			Name:        "KDJ 골든/데드크로스",
			Description: "K가 D를 상향 돌파하면 매수, 하향 돌파하면 매도하며 J 값으로 과매수/과매도를 거릅니다.",
			Theory:      "스토캐스틱 · 모멘텀",
			Params: []ParamSpec{
				{Key: "period", Label: "KDJ 기간", Min: 5, Max: 14, Step: 1, Default: 9},
				{Key: "jOversold", Label: "J 과매도선", Min: 10, Max: 30, Step: 5, Default: 20},
				{Key: "jOverbought", Label: "J 과매수선", Min: 70, Max: 90, Step: 5, Default: 80},
			},
		},
		{
			ID:          IDEMATrend,
			Name:        "EMA 추세 추종",
			Description: "상승 중인 단기 EMA가 장기 EMA를 상향 돌파하면 매수, 하향 돌파하면 매도합니다.",
			Theory:      "피터 린치 · 성장 투자",
			Params: []ParamSpec{
				{Key: "shortEMA", Label: "단기 EMA", Min: 5, Max: 15, Step: 1, Default: 8},
				{Key: "longEMA", Label: "장기 EMA", Min: 20, Max: 50, Step: 5, Default: 21},
			},
		},
	}
}

// Describe는 전략 ID에 해당하는 설명을 반환합니다
func Describe(id ID) (Descriptor, error) {
	for _, d := range Catalog() {
		if d.ID == id {
			return d, nil
		}
	}
	return Descriptor{}, &domain.ValidationError{
		Field: "strategy",
		Err:   fmt.Errorf("존재하지 않는 전략: %q", id),
	}
}
