package backtest

import "github.com/assist-by/stockwise/internal/domain"

// Trade는 매수 시그널 하나와 다음 매도 시그널 하나를 짝지은 거래입니다
type Trade struct {
	BuyTime    int64   `json:"buyTime" yaml:"buyTime"`       // 매수 시간 (unix 초)
	BuyPrice   float64 `json:"buyPrice" yaml:"buyPrice"`     // 매수 가격
	SellTime   int64   `json:"sellTime" yaml:"sellTime"`     // 매도 시간 (unix 초)
	SellPrice  float64 `json:"sellPrice" yaml:"sellPrice"`   // 매도 가격
	ReturnPct  float64 `json:"returnPct" yaml:"returnPct"`   // 수익률 (%)
	HoldDays   int     `json:"holdDays" yaml:"holdDays"`     // 보유 일수 (반올림)
	Profitable bool    `json:"profitable" yaml:"profitable"` // 수익 여부 (ReturnPct > 0)
	BuyReason  string  `json:"buyReason" yaml:"buyReason"`   // 매수 시그널 이유
	SellReason string  `json:"sellReason" yaml:"sellReason"` // 매도 시그널 이유
}

// EquityPoint는 자산 곡선의 한 지점입니다
type EquityPoint struct {
	Time  int64   `json:"time" yaml:"time"`   // 시점 (unix 초)
	Value float64 `json:"value" yaml:"value"` // 자산 가치 (시작 100)
}

// Result는 백테스트 결과를 저장하는 구조체입니다
type Result struct {
	Signals     []domain.Signal `json:"signals"`     // 입력 시그널 (시간순)
	Trades      []Trade         `json:"trades"`      // 개별 거래 기록
	EquityCurve []EquityPoint   `json:"equityCurve"` // 자산 곡선 (시작점 + 거래 종료마다 1개)

	TotalTrades      int     `json:"totalTrades"`      // 총 거래 횟수
	ProfitableTrades int     `json:"profitableTrades"` // 수익 거래 횟수
	LosingTrades     int     `json:"losingTrades"`     // 손실 거래 횟수 (수익 0 포함)
	WinRatePct       float64 `json:"winRatePct"`       // 승률 (%)
	TotalReturnPct   float64 `json:"totalReturnPct"`   // 누적 수익률 (%)
	MaxDrawdownPct   float64 `json:"maxDrawdownPct"`   // 최대 낙폭 (%)
	AvgHoldDays      float64 `json:"avgHoldDays"`      // 평균 보유 일수
	SharpeRatio      float64 `json:"sharpeRatio"`      // 샤프 비율
	AvgWinPct        float64 `json:"avgWinPct"`        // 수익 거래 평균 수익률 (%)
	AvgLossPct       float64 `json:"avgLossPct"`       // 손실 거래 평균 수익률 (%)

	AvgReturnPct         float64 `json:"avgReturnPct"`         // 거래당 평균 수익률 (%)
	ProfitFactor         float64 `json:"profitFactor"`         // 총 수익 / 총 손실
	MaxConsecutiveWins   int     `json:"maxConsecutiveWins"`   // 최대 연속 수익
	MaxConsecutiveLosses int     `json:"maxConsecutiveLosses"` // 최대 연속 손실
	StartTime            int64   `json:"startTime"`            // 자산 곡선 시작 시간
	EndTime              int64   `json:"endTime"`              // 자산 곡선 종료 시간
}

// DrawdownSummary는 자산 곡선의 낙폭 통계입니다
type DrawdownSummary struct {
	MaxPct         float64 `json:"maxPct"`         // 최대 낙폭 (%)
	AvgPct         float64 `json:"avgPct"`         // 낙폭 구간 평균 낙폭 (%)
	LongestSeconds int64   `json:"longestSeconds"` // 가장 긴 낙폭 지속 시간 (초)
}
