package indicator

import (
	"testing"

	"github.com/markcheno/go-talib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assist-by/stockwise/internal/domain"
)

func TestBollinger(t *testing.T) {
	series := generateTestCandles()

	for _, k := range []float64{0, 1, 2, 2.5} {
		results, err := Bollinger(series, BollingerOption{Period: 20, Multiplier: k})
		require.NoError(t, err)
		require.Len(t, results, len(series)-20+1)

		ma, err := MA(series, MAOption{Period: 20})
		require.NoError(t, err)

		for i, r := range results {
			assert.LessOrEqual(t, r.Lower, r.Middle, "하단 밴드 <= 중심선")
			assert.LessOrEqual(t, r.Middle, r.Upper, "중심선 <= 상단 밴드")
			assert.Equal(t, ma[i].Time, r.Time)
			assert.InDelta(t, ma[i].Value, r.Middle, 1e-9, "중심선은 MA와 같아야 함")
			if k == 0 {
				assert.Equal(t, r.Middle, r.Upper)
				assert.Equal(t, r.Middle, r.Lower)
			}
		}
	}
}

func TestBollingerConstantSeries(t *testing.T) {
	series := candlesFromCloses(50, 50, 50, 50, 50)

	results, err := Bollinger(series, BollingerOption{Period: 3, Multiplier: 2})
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, 50.0, r.Upper)
		assert.Equal(t, 50.0, r.Middle)
		assert.Equal(t, 50.0, r.Lower)
	}
}

func TestBollingerInvalidOption(t *testing.T) {
	series := generateTestCandles()

	_, err := Bollinger(series, BollingerOption{Period: 20, Multiplier: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = Bollinger(series, BollingerOption{Period: 0, Multiplier: 2})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestBollingerInsufficientData(t *testing.T) {
	results, err := Bollinger(candlesFromCloses(1, 2), DefaultBollingerOption())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestBollingerMatchesTalib(t *testing.T) {
	series := generateWaveCandles(120)

	results, err := Bollinger(series, DefaultBollingerOption())
	require.NoError(t, err)

	upper, middle, lower := talib.BBands(series.Closes(), 20, 2, 2, talib.SMA)

	n := len(upper)
	for j := 0; j < len(results); j++ {
		r := results[len(results)-1-j]
		assert.InDelta(t, upper[n-1-j], r.Upper, 1e-6)
		assert.InDelta(t, middle[n-1-j], r.Middle, 1e-6)
		assert.InDelta(t, lower[n-1-j], r.Lower, 1e-6)
	}
}
