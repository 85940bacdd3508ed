package indicator

import (
	"fmt"
	"testing"

	"github.com/markcheno/go-talib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEMA(t *testing.T) {
	series := generateTestCandles()

	testCases := []struct {
		period int
		name   string
	}{
		{9, "EMA(9)"},
		{12, "EMA(12)"},
		{26, "EMA(26)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			results, err := EMA(series, EMAOption{Period: tc.period})
			require.NoError(t, err)
			require.Len(t, results, len(series)-tc.period+1)

			// EMA 첫 값은 같은 기간의 MA와 같아야 함
			ma, err := MA(series, MAOption{Period: tc.period})
			require.NoError(t, err)
			assert.Equal(t, ma[0].Time, results[0].Time)
			assert.InDelta(t, ma[0].Value, results[0].Value, 1e-12)

			for _, r := range results {
				assert.Greater(t, r.Value, 0.0, "잘못된 EMA 값")
			}
		})
	}
}

func TestEMARecurrence(t *testing.T) {
	series := candlesFromCloses(1, 2, 3, 4, 5, 6)
	results, err := EMA(series, EMAOption{Period: 3})
	require.NoError(t, err)
	require.Len(t, results, 4)

	// k = 2/(3+1) = 0.5, seed = (1+2+3)/3 = 2
	want := []float64{2, 3, 4, 5}
	for i, r := range results {
		assert.InDelta(t, want[i], r.Value, 1e-12)
	}
}

func TestEMAInsufficientData(t *testing.T) {
	results, err := EMA(candlesFromCloses(1, 2), EMAOption{Period: 3})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestEMAMatchesTalib(t *testing.T) {
	series := generateWaveCandles(150)
	closes := series.Closes()

	for _, period := range []int{8, 12, 21, 26} {
		t.Run(fmt.Sprintf("EMA(%d)", period), func(t *testing.T) {
			results, err := EMA(series, EMAOption{Period: period})
			require.NoError(t, err)
			assertTailMatches(t, talib.Ema(closes, period), results, 1e-9)
		})
	}
}
