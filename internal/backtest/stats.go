package backtest

import "math"

const (
	tradingDaysPerYear = 252.0

	// sharpeEpsilon 이하의 표준편차는 0으로 취급
	sharpeEpsilon = 1e-12
)

// calculateStats는 거래 목록과 자산 곡선으로 성과 지표를 계산합니다
func calculateStats(trades []Trade, curve []EquityPoint) Result {
	result := Result{
		Trades:      trades,
		EquityCurve: curve,
		TotalTrades: len(trades),
		StartTime:   curve[0].Time,
		EndTime:     curve[len(curve)-1].Time,
	}

	// 통계 계산에 필요한 변수들
	totalWin := 0.0
	totalLoss := 0.0
	totalReturn := 0.0
	totalHoldDays := 0

	// 연속 승/패 계산 변수
	currentWins := 0
	currentLosses := 0

	for _, trade := range trades {
		totalReturn += trade.ReturnPct
		totalHoldDays += trade.HoldDays

		if trade.Profitable {
			result.ProfitableTrades++
			totalWin += trade.ReturnPct

			currentWins++
			currentLosses = 0
			result.MaxConsecutiveWins = max(result.MaxConsecutiveWins, currentWins)
		} else {
			totalLoss += trade.ReturnPct

			currentLosses++
			currentWins = 0
			result.MaxConsecutiveLosses = max(result.MaxConsecutiveLosses, currentLosses)
		}
	}
	result.LosingTrades = result.TotalTrades - result.ProfitableTrades

	n := float64(len(trades))
	result.WinRatePct = float64(result.ProfitableTrades) / n * 100
	result.AvgReturnPct = totalReturn / n
	result.AvgHoldDays = float64(totalHoldDays) / n

	if result.ProfitableTrades > 0 {
		result.AvgWinPct = totalWin / float64(result.ProfitableTrades)
	}
	if result.LosingTrades > 0 {
		result.AvgLossPct = totalLoss / float64(result.LosingTrades)
	}

	// 프로핏 팩터 계산
	if totalLoss < 0 {
		result.ProfitFactor = totalWin / math.Abs(totalLoss)
	} else {
		result.ProfitFactor = totalWin // 손실이 없는 경우
	}

	result.TotalReturnPct = curve[len(curve)-1].Value - InitialEquity
	result.MaxDrawdownPct = DrawdownStats(curve).MaxPct
	result.SharpeRatio = sharpeRatio(trades, result.AvgHoldDays)

	return result
}

// sharpeRatio는 거래별 수익률의 평균/모표준편차를 sqrt(252/평균 보유 일수)로 연율화합니다.
// 모든 거래에 하나의 평균 보유 기간을 적용하며, 평균 보유 일수가 1 미만이면 1일로 계산합니다.
func sharpeRatio(trades []Trade, avgHoldDays float64) float64 {
	if len(trades) == 0 {
		return 0
	}

	n := float64(len(trades))
	mean := 0.0
	for _, t := range trades {
		mean += t.ReturnPct / 100
	}
	mean /= n

	variance := 0.0
	for _, t := range trades {
		d := t.ReturnPct/100 - mean
		variance += d * d
	}
	stddev := math.Sqrt(variance / n)
	if stddev <= sharpeEpsilon {
		return 0
	}

	return mean / stddev * math.Sqrt(tradingDaysPerYear/max(avgHoldDays, 1))
}

// DrawdownStats는 자산 곡선에서 낙폭 통계를 계산합니다
func DrawdownStats(curve []EquityPoint) DrawdownSummary {
	var summary DrawdownSummary
	if len(curve) == 0 {
		return summary
	}

	highWaterMark := curve[0].Value
	totalDrawdown := 0.0
	drawdownCount := 0

	var drawdownStart int64
	inDrawdown := false

	for _, point := range curve {
		// 신규 최고점 갱신
		if point.Value > highWaterMark {
			highWaterMark = point.Value

			// 낙폭 종료
			if inDrawdown {
				inDrawdown = false
				summary.LongestSeconds = max(summary.LongestSeconds, point.Time-drawdownStart)
			}
		}

		if highWaterMark <= 0 {
			continue
		}

		current := (highWaterMark - point.Value) / highWaterMark * 100
		if current > 0 {
			// 낙폭 시작
			if !inDrawdown {
				inDrawdown = true
				drawdownStart = point.Time
			}
			totalDrawdown += current
			drawdownCount++
		}
		summary.MaxPct = max(summary.MaxPct, current)
	}

	// 곡선 끝까지 회복하지 못한 낙폭
	if inDrawdown {
		summary.LongestSeconds = max(summary.LongestSeconds, curve[len(curve)-1].Time-drawdownStart)
	}

	if drawdownCount > 0 {
		summary.AvgPct = totalDrawdown / float64(drawdownCount)
	}

	return summary
}
