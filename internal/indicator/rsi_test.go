package indicator

import (
	"fmt"
	"testing"

	"github.com/markcheno/go-talib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSI(t *testing.T) {
	series := generateTestCandles()

	testCases := []struct {
		period int
		name   string
	}{
		{14, "RSI(14)"},
		{9, "RSI(9)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			results, err := RSI(series, RSIOption{Period: tc.period})
			require.NoError(t, err)
			require.Len(t, results, len(series)-tc.period)
			assert.Equal(t, series[tc.period].Time, results[0].Time)

			for _, r := range results {
				assert.GreaterOrEqual(t, r.Value, 0.0, "RSI 범위 초과")
				assert.LessOrEqual(t, r.Value, 100.0, "RSI 범위 초과")
			}
		})
	}
}

func TestRSIAllGains(t *testing.T) {
	series := candlesFromCloses(1, 2, 3, 4, 5, 6, 7, 8)

	results, err := RSI(series, RSIOption{Period: 3})
	require.NoError(t, err)
	require.Len(t, results, 5)
	for _, r := range results {
		assert.Equal(t, 100.0, r.Value)
	}
}

func TestRSIFlat(t *testing.T) {
	series := candlesFromCloses(5, 5, 5, 5, 5)

	results, err := RSI(series, RSIOption{Period: 2})
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, 100.0, r.Value, "손실이 없으면 RSI는 100")
	}
}

func TestRSIWithLoss(t *testing.T) {
	// 첫 구간: +1, +1, -1 → avgGain 2/3, avgLoss 1/3 → RSI 66.67
	series := candlesFromCloses(10, 11, 12, 11)

	results, err := RSI(series, RSIOption{Period: 3})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.InDelta(t, 66.6667, results[0].Value, 0.001)
}

func TestRSIInsufficientData(t *testing.T) {
	series := candlesFromCloses(1, 2, 3)

	results, err := RSI(series, RSIOption{Period: 3})
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestRSIMatchesTalib(t *testing.T) {
	series := generateWaveCandles(150)
	closes := series.Closes()

	for _, period := range []int{6, 14, 21} {
		t.Run(fmt.Sprintf("RSI(%d)", period), func(t *testing.T) {
			results, err := RSI(series, RSIOption{Period: period})
			require.NoError(t, err)
			assertTailMatches(t, talib.Rsi(closes, period), results, 1e-9)
		})
	}
}
