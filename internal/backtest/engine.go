package backtest

import (
	"math"
	"sort"

	"github.com/assist-by/stockwise/internal/domain"
)

const (
	// InitialEquity는 자산 곡선의 시작 값입니다
	InitialEquity = 100.0

	secondsPerDay = 86400
)

// Run은 시그널을 거래로 짝짓고 성과 지표를 계산합니다.
// 입력을 변경하지 않으며 같은 입력에는 항상 같은 결과를 반환합니다.
func Run(series domain.CandleSeries, signals []domain.Signal) Result {
	ordered := sortSignals(signals)
	trades := pairTrades(ordered)

	// 거래가 없는 경우 빈 결과 반환
	if len(trades) == 0 {
		return Result{
			Signals:     ordered,
			Trades:      []Trade{},
			EquityCurve: []EquityPoint{},
		}
	}

	curve := buildEquityCurve(series, trades)
	result := calculateStats(trades, curve)
	result.Signals = ordered
	return result
}

// sortSignals는 시그널 복사본을 시간순으로 안정 정렬합니다
func sortSignals(signals []domain.Signal) []domain.Signal {
	ordered := make([]domain.Signal, len(signals))
	copy(ordered, signals)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Time < ordered[j].Time
	})
	return ordered
}

// pairTrades는 열린 매수를 최대 하나만 유지하며 시그널을 거래로 짝짓습니다.
// 중복 매수와 짝 없는 매도는 버리고, 끝까지 청산되지 않은 매수는 거래에서 제외합니다.
// 가격이 양의 유한수가 아닌 시그널은 건너뜁니다.
func pairTrades(signals []domain.Signal) []Trade {
	trades := make([]Trade, 0, len(signals)/2)

	var open *domain.Signal
	for i := range signals {
		sig := &signals[i]
		if !validPrice(sig.Price) {
			continue
		}
		switch sig.Type {
		case domain.Buy:
			// 이미 열린 포지션이 있으면 무시
			if open == nil {
				open = sig
			}
		case domain.Sell:
			// 청산할 포지션이 없으면 무시
			if open == nil {
				continue
			}
			trades = append(trades, newTrade(*open, *sig))
			open = nil
		}
	}
	return trades
}

func validPrice(p float64) bool {
	return p > 0 && !math.IsInf(p, 0)
}

func newTrade(buy, sell domain.Signal) Trade {
	returnPct := (sell.Price - buy.Price) / buy.Price * 100
	return Trade{
		BuyTime:    buy.Time,
		BuyPrice:   buy.Price,
		SellTime:   sell.Time,
		SellPrice:  sell.Price,
		ReturnPct:  returnPct,
		HoldDays:   holdDays(buy.Time, sell.Time),
		Profitable: returnPct > 0,
		BuyReason:  buy.Reason,
		SellReason: sell.Reason,
	}
}

// holdDays는 보유 기간을 일 단위로 반올림합니다 (0.5는 올림)
func holdDays(buyTime, sellTime int64) int {
	return int(math.Floor(float64(sellTime-buyTime)/secondsPerDay + 0.5))
}

// buildEquityCurve는 100에서 시작해 거래 종료마다 복리로 자산을 갱신합니다
func buildEquityCurve(series domain.CandleSeries, trades []Trade) []EquityPoint {
	// 캔들이 없으면 첫 매수 시점에서 시작
	seedTime := trades[0].BuyTime
	if len(series) > 0 {
		seedTime = series[0].Time
	}

	curve := make([]EquityPoint, 0, len(trades)+1)
	curve = append(curve, EquityPoint{Time: seedTime, Value: InitialEquity})

	equity := InitialEquity
	for _, t := range trades {
		equity *= 1 + t.ReturnPct/100
		curve = append(curve, EquityPoint{Time: t.SellTime, Value: equity})
	}
	return curve
}
