package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assist-by/stockwise/internal/domain"
)

func TestMACD(t *testing.T) {
	series := generateWaveCandles(120)

	results, err := MACD(series, DefaultMACDOption())
	require.NoError(t, err)

	// 장기 EMA 웜업(26) + 시그널 웜업(9)
	require.Len(t, results, 120-26-9+2)
	assert.Equal(t, series[26+9-2].Time, results[0].Time)

	for i, r := range results {
		assert.InDelta(t, r.MACD-r.Signal, r.Histogram, 1e-12, "히스토그램 = MACD - 시그널")
		if i > 0 {
			assert.Greater(t, r.Time, results[i-1].Time, "시간은 오름차순이어야 함")
		}
	}
}

func TestMACDLineMatchesEMADifference(t *testing.T) {
	series := generateWaveCandles(80)

	results, err := MACD(series, DefaultMACDOption())
	require.NoError(t, err)

	short, err := EMA(series, EMAOption{Period: 12})
	require.NoError(t, err)
	long, err := EMA(series, EMAOption{Period: 26})
	require.NoError(t, err)

	diff := make(map[int64]float64)
	for _, p := range AlignByTime(short, long) {
		diff[p.Time] = p.A - p.B
	}

	for _, r := range results {
		want, ok := diff[r.Time]
		require.True(t, ok, "MACD 시점에 두 EMA가 모두 있어야 함: %d", r.Time)
		assert.InDelta(t, want, r.MACD, 1e-12)
	}
}

func TestMACDSwappedPeriods(t *testing.T) {
	series := generateWaveCandles(100)

	normal, err := MACD(series, MACDOption{ShortPeriod: 12, LongPeriod: 26, SignalPeriod: 9})
	require.NoError(t, err)
	swapped, err := MACD(series, MACDOption{ShortPeriod: 26, LongPeriod: 12, SignalPeriod: 9})
	require.NoError(t, err)

	require.Len(t, swapped, len(normal))
	for i := range normal {
		assert.Equal(t, normal[i].Time, swapped[i].Time)
		assert.InDelta(t, -normal[i].MACD, swapped[i].MACD, 1e-9)
	}
}

func TestMACDInsufficientData(t *testing.T) {
	results, err := MACD(generateTestCandles(), DefaultMACDOption())
	require.NoError(t, err)
	assert.Len(t, results, 35-26-9+2)

	results, err = MACD(generateTestCandles()[:20], DefaultMACDOption())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestValidateMACDOption(t *testing.T) {
	tests := []struct {
		name    string
		opt     MACDOption
		wantErr bool
	}{
		{"기본값", DefaultMACDOption(), false},
		{"단기 0", MACDOption{ShortPeriod: 0, LongPeriod: 26, SignalPeriod: 9}, true},
		{"장기 음수", MACDOption{ShortPeriod: 12, LongPeriod: -1, SignalPeriod: 9}, true},
		{"시그널 0", MACDOption{ShortPeriod: 12, LongPeriod: 26, SignalPeriod: 0}, true},
		{"단기 >= 장기 허용", MACDOption{ShortPeriod: 26, LongPeriod: 12, SignalPeriod: 9}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMACDOption(tt.opt)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidArgument)
				return
			}
			assert.NoError(t, err)
		})
	}
}
