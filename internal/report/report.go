package report

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/assist-by/stockwise/internal/backtest"
	"github.com/assist-by/stockwise/internal/domain"
	"github.com/assist-by/stockwise/internal/indicator"
	"github.com/assist-by/stockwise/internal/strategy"
)

// Decimals는 리포트 수치의 소수점 자릿수입니다
const Decimals = 2

const dateLayout = "2006-01-02"

// NewRunID는 실행 식별자를 생성합니다
func NewRunID() string {
	return uuid.NewString()
}

// Meta는 모든 리포트에 공통으로 들어가는 실행 정보입니다
type Meta struct {
	RunID   string `json:"runId" yaml:"runId"`
	Symbol  string `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Candles int    `json:"candles" yaml:"candles"`
	From    string `json:"from,omitempty" yaml:"from,omitempty"`
	To      string `json:"to,omitempty" yaml:"to,omitempty"`
}

// NewMeta는 캔들 시리즈에서 실행 정보를 만듭니다
func NewMeta(runID, symbol string, series domain.CandleSeries) Meta {
	meta := Meta{RunID: runID, Symbol: symbol, Candles: len(series)}
	if len(series) > 0 {
		meta.From = formatDate(series[0].Time)
		meta.To = formatDate(series[len(series)-1].Time)
	}
	return meta
}

// Summary는 반올림된 백테스트 성과 지표입니다
type Summary struct {
	TotalTrades          int     `json:"totalTrades" yaml:"totalTrades"`
	ProfitableTrades     int     `json:"profitableTrades" yaml:"profitableTrades"`
	LosingTrades         int     `json:"losingTrades" yaml:"losingTrades"`
	WinRatePct           float64 `json:"winRatePct" yaml:"winRatePct"`
	TotalReturnPct       float64 `json:"totalReturnPct" yaml:"totalReturnPct"`
	MaxDrawdownPct       float64 `json:"maxDrawdownPct" yaml:"maxDrawdownPct"`
	AvgDrawdownPct       float64 `json:"avgDrawdownPct" yaml:"avgDrawdownPct"`
	LongestDrawdownDays  float64 `json:"longestDrawdownDays" yaml:"longestDrawdownDays"`
	AvgHoldDays          float64 `json:"avgHoldDays" yaml:"avgHoldDays"`
	SharpeRatio          float64 `json:"sharpeRatio" yaml:"sharpeRatio"`
	AvgWinPct            float64 `json:"avgWinPct" yaml:"avgWinPct"`
	AvgLossPct           float64 `json:"avgLossPct" yaml:"avgLossPct"`
	AvgReturnPct         float64 `json:"avgReturnPct" yaml:"avgReturnPct"`
	ProfitFactor         float64 `json:"profitFactor" yaml:"profitFactor"`
	MaxConsecutiveWins   int     `json:"maxConsecutiveWins" yaml:"maxConsecutiveWins"`
	MaxConsecutiveLosses int     `json:"maxConsecutiveLosses" yaml:"maxConsecutiveLosses"`
}

// Summarize는 백테스트 결과를 반올림된 요약으로 변환합니다
func Summarize(r backtest.Result) Summary {
	dd := backtest.DrawdownStats(r.EquityCurve)
	return Summary{
		TotalTrades:          r.TotalTrades,
		ProfitableTrades:     r.ProfitableTrades,
		LosingTrades:         r.LosingTrades,
		WinRatePct:           round(r.WinRatePct),
		TotalReturnPct:       round(r.TotalReturnPct),
		MaxDrawdownPct:       round(r.MaxDrawdownPct),
		AvgDrawdownPct:       round(dd.AvgPct),
		LongestDrawdownDays:  round(float64(dd.LongestSeconds) / 86400),
		AvgHoldDays:          round(r.AvgHoldDays),
		SharpeRatio:          round(r.SharpeRatio),
		AvgWinPct:            round(r.AvgWinPct),
		AvgLossPct:           round(r.AvgLossPct),
		AvgReturnPct:         round(r.AvgReturnPct),
		ProfitFactor:         round(r.ProfitFactor),
		MaxConsecutiveWins:   r.MaxConsecutiveWins,
		MaxConsecutiveLosses: r.MaxConsecutiveLosses,
	}
}

// SignalRow는 리포트용 시그널 한 줄입니다
type SignalRow struct {
	Date   string  `json:"date" yaml:"date"`
	Time   int64   `json:"time" yaml:"time"`
	Type   string  `json:"type" yaml:"type"`
	Price  float64 `json:"price" yaml:"price"`
	Reason string  `json:"reason" yaml:"reason"`
}

// TradeRow는 리포트용 거래 한 줄입니다
type TradeRow struct {
	BuyDate    string  `json:"buyDate" yaml:"buyDate"`
	BuyPrice   float64 `json:"buyPrice" yaml:"buyPrice"`
	SellDate   string  `json:"sellDate" yaml:"sellDate"`
	SellPrice  float64 `json:"sellPrice" yaml:"sellPrice"`
	ReturnPct  float64 `json:"returnPct" yaml:"returnPct"`
	HoldDays   int     `json:"holdDays" yaml:"holdDays"`
	Profitable bool    `json:"profitable" yaml:"profitable"`
}

// EquityRow는 리포트용 자산 곡선 한 점입니다
type EquityRow struct {
	Date  string  `json:"date" yaml:"date"`
	Value float64 `json:"value" yaml:"value"`
}

// BacktestReport는 전략 하나의 백테스트 리포트입니다
type BacktestReport struct {
	Meta         `yaml:",inline"`
	Strategy     strategy.ID   `json:"strategy" yaml:"strategy"`
	StrategyName string        `json:"strategyName" yaml:"strategyName"`
	Params       domain.Params `json:"params" yaml:"params"`
	Summary      Summary       `json:"summary" yaml:"summary"`
	Signals      []SignalRow   `json:"signals" yaml:"signals"`
	Trades       []TradeRow    `json:"trades" yaml:"trades"`
	EquityCurve  []EquityRow   `json:"equityCurve" yaml:"equityCurve"`
}

// NewBacktestReport는 백테스트 결과로 리포트를 만듭니다
func NewBacktestReport(meta Meta, desc strategy.Descriptor, params domain.Params, r backtest.Result) BacktestReport {
	rep := BacktestReport{
		Meta:         meta,
		Strategy:     desc.ID,
		StrategyName: desc.Name,
		Params:       mergeParams(desc.Defaults(), params),
		Summary:      Summarize(r),
		Signals:      make([]SignalRow, len(r.Signals)),
		Trades:       make([]TradeRow, len(r.Trades)),
		EquityCurve:  make([]EquityRow, len(r.EquityCurve)),
	}

	for i, s := range r.Signals {
		rep.Signals[i] = SignalRow{
			Date:   formatDate(s.Time),
			Time:   s.Time,
			Type:   s.Type.String(),
			Price:  round(s.Price),
			Reason: s.Reason,
		}
	}
	for i, t := range r.Trades {
		rep.Trades[i] = TradeRow{
			BuyDate:    formatDate(t.BuyTime),
			BuyPrice:   round(t.BuyPrice),
			SellDate:   formatDate(t.SellTime),
			SellPrice:  round(t.SellPrice),
			ReturnPct:  round(t.ReturnPct),
			HoldDays:   t.HoldDays,
			Profitable: t.Profitable,
		}
	}
	for i, p := range r.EquityCurve {
		rep.EquityCurve[i] = EquityRow{Date: formatDate(p.Time), Value: round(p.Value)}
	}

	return rep
}

// ScanRow는 전체 전략 비교 리포트의 한 줄입니다
type ScanRow struct {
	Strategy strategy.ID `json:"strategy" yaml:"strategy"`
	Name     string      `json:"name" yaml:"name"`
	Theory   string      `json:"theory" yaml:"theory"`
	Signals  int         `json:"signals" yaml:"signals"`
	Summary  Summary     `json:"summary" yaml:"summary"`
}

// ScanReport는 모든 전략을 기본 파라미터로 실행한 비교 리포트입니다
type ScanReport struct {
	Meta    `yaml:",inline"`
	Results []ScanRow `json:"results" yaml:"results"`
}

// NewScanRow는 전략 하나의 결과를 비교 행으로 만듭니다
func NewScanRow(desc strategy.Descriptor, r backtest.Result) ScanRow {
	return ScanRow{
		Strategy: desc.ID,
		Name:     desc.Name,
		Theory:   desc.Theory,
		Signals:  len(r.Signals),
		Summary:  Summarize(r),
	}
}

// NewScanReport는 누적 수익률 내림차순으로 정렬된 비교 리포트를 만듭니다
func NewScanReport(meta Meta, rows []ScanRow) ScanReport {
	sorted := make([]ScanRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Summary.TotalReturnPct > sorted[j].Summary.TotalReturnPct
	})
	return ScanReport{Meta: meta, Results: sorted}
}

// IndicatorRow는 지표 결과 한 시점입니다
type IndicatorRow struct {
	Date   string             `json:"date" yaml:"date"`
	Time   int64              `json:"time" yaml:"time"`
	Values map[string]float64 `json:"values" yaml:"values"`
}

// IndicatorReport는 지표 계산 리포트입니다
type IndicatorReport struct {
	Meta   `yaml:",inline"`
	Kind   indicator.Kind `json:"kind" yaml:"kind"`
	Name   string         `json:"name" yaml:"name"`
	Points []IndicatorRow `json:"points" yaml:"points"`
}

// NewIndicatorReport는 지표 계산 결과로 리포트를 만듭니다
func NewIndicatorReport(meta Meta, seq indicator.Sequence) IndicatorReport {
	rep := IndicatorReport{
		Meta:   meta,
		Kind:   seq.Kind,
		Name:   seq.Name,
		Points: make([]IndicatorRow, 0, seq.Len()),
	}

	add := func(t int64, values map[string]float64) {
		for k, v := range values {
			values[k] = round(v)
		}
		rep.Points = append(rep.Points, IndicatorRow{Date: formatDate(t), Time: t, Values: values})
	}

	switch seq.Kind {
	case indicator.KindMACD:
		for _, p := range seq.MACD {
			add(p.Time, map[string]float64{"macd": p.MACD, "signal": p.Signal, "histogram": p.Histogram})
		}
	case indicator.KindBollinger:
		for _, p := range seq.Bollinger {
			add(p.Time, map[string]float64{"upper": p.Upper, "middle": p.Middle, "lower": p.Lower})
		}
	case indicator.KindKDJ:
		for _, p := range seq.KDJ {
			add(p.Time, map[string]float64{"k": p.K, "d": p.D, "j": p.J})
		}
	default:
		for _, p := range seq.Values {
			add(p.Time, map[string]float64{"value": p.Value})
		}
	}

	return rep
}

// mergeParams는 기본값 위에 지정된 파라미터를 덮어씁니다
func mergeParams(defaults, params domain.Params) domain.Params {
	merged := make(domain.Params, len(defaults)+len(params))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range params {
		merged[k] = v
	}
	return merged
}

// round는 Decimals 자리에서 반올림합니다 (0.5는 0에서 먼 쪽으로)
func round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(Decimals).InexactFloat64()
}

func formatDate(t int64) string {
	return time.Unix(t, 0).UTC().Format(dateLayout)
}
