package market

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assist-by/stockwise/internal/domain"
)

const (
	baseTime = int64(1704067200) // 2024-01-01
	day      = int64(86400)
)

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "candles.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileSourceObjectFormat(t *testing.T) {
	path := writeTestFile(t, `{
		"symbol": "005930",
		"candles": [
			{"time": 1704067200, "open": 100, "high": 105, "low": 99, "close": 104, "volume": 1200},
			{"time": 1704153600, "open": 104, "high": 106, "low": 101, "close": 102, "volume": 900},
			{"time": 1704240000, "open": 102, "high": 103, "low": 98, "close": 99, "volume": 1500}
		]
	}`)

	series, err := NewFileSource(path).FetchCandles(context.Background(), "005930", 0, 0)
	require.NoError(t, err)
	require.Len(t, series, 3)
	assert.Equal(t, domain.Candle{Time: baseTime, Open: 100, High: 105, Low: 99, Close: 104, Volume: 1200}, series[0])
	assert.Equal(t, 99.0, series[2].Close)
}

func TestFileSourceRangeFilter(t *testing.T) {
	path := writeTestFile(t, `[
		{"time": 1704067200, "open": 1, "high": 1, "low": 1, "close": 1, "volume": 0},
		{"time": 1704153600, "open": 2, "high": 2, "low": 2, "close": 2, "volume": 0},
		{"time": 1704240000, "open": 3, "high": 3, "low": 3, "close": 3, "volume": 0},
		{"time": 1704326400, "open": 4, "high": 4, "low": 4, "close": 4, "volume": 0}
	]`)
	src := NewFileSource(path)

	tests := []struct {
		name     string
		from, to int64
		want     []float64
	}{
		{"제한 없음", 0, 0, []float64{1, 2, 3, 4}},
		{"시작만", baseTime + day, 0, []float64{2, 3, 4}},
		{"끝만", 0, baseTime + day, []float64{1, 2}},
		{"양쪽 포함", baseTime + day, baseTime + 2*day, []float64{2, 3}},
		{"범위 밖", baseTime + 10*day, 0, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series, err := src.FetchCandles(context.Background(), "", tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, series.Closes())
		})
	}
}

func TestParseCandlesKlineFormat(t *testing.T) {
	// 밀리초 타임스탬프와 숫자 문자열
	data := []byte(`[
		[1704153600000, "42000.5", "42500", "41800", "42300.25", "123.4", 1704239999999],
		[1704067200000, "41000", "42100", "40900", "42000.5", "98.7", 1704153599999]
	]`)

	series, err := ParseCandles(data, "BTCUSDT")
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, baseTime, series[0].Time, "시간순으로 정렬되어야 함")
	assert.Equal(t, baseTime+day, series[1].Time)
	assert.Equal(t, 42300.25, series[1].Close)
	assert.Equal(t, 98.7, series[0].Volume)
}

func TestParseCandlesDateStrings(t *testing.T) {
	data := []byte(`[
		{"date": "2024-01-01", "open": 10, "high": 11, "low": 9, "close": 10.5, "volume": 5},
		{"time": "2024-01-02T00:00:00Z", "open": 10.5, "high": 12, "low": 10, "close": 11, "volume": 7}
	]`)

	series, err := ParseCandles(data, "")
	require.NoError(t, err)
	assert.Equal(t, []int64{baseTime, baseTime + day}, series.Times())
}

func TestParseCandlesDeduplicates(t *testing.T) {
	data := []byte(`[
		{"time": 1704153600, "open": 2, "high": 2, "low": 2, "close": 2, "volume": 0},
		{"time": 1704067200, "open": 1, "high": 1, "low": 1, "close": 1, "volume": 0},
		{"time": 1704153600, "open": 3, "high": 3, "low": 3, "close": 3, "volume": 0}
	]`)

	series, err := ParseCandles(data, "")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, series.Closes(), "같은 시간은 마지막 값 유지")
}

func TestParseCandlesErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		symbol string
	}{
		{"잘못된 JSON", `{"candles": [`, ""},
		{"캔들 배열 없음", `{"symbol": "AAPL"}`, ""},
		{"심볼 불일치", `{"symbol": "AAPL", "candles": []}`, "MSFT"},
		{"시간 없음", `[{"open": 1, "high": 1, "low": 1, "close": 1}]`, ""},
		{"날짜 형식 오류", `[{"date": "01/02/2024", "open": 1, "high": 1, "low": 1, "close": 1}]`, ""},
		{"kline 필드 부족", `[[1704067200000, "1", "1"]]`, ""},
		{"0 이하 가격", `[{"time": 1704067200, "open": 1, "high": 1, "low": 0, "close": 1}]`, ""},
		{"음수 거래량", `[{"time": 1704067200, "open": 1, "high": 1, "low": 1, "close": 1, "volume": -5}]`, ""},
		{"지원하지 않는 형식", `[42]`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCandles([]byte(tt.data), tt.symbol)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDataUnavailable)
		})
	}
}

func TestParseCandlesSymbolCaseInsensitive(t *testing.T) {
	series, err := ParseCandles([]byte(`{"symbol": "btcusdt", "candles": []}`), "BTCUSDT")
	require.NoError(t, err)
	assert.Empty(t, series)
}

func TestFileSourceMissingFile(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "missing.json"))

	_, err := src.FetchCandles(context.Background(), "", 0, 0)
	assert.ErrorIs(t, err, ErrDataUnavailable)
}

func TestFileSourceCanceledContext(t *testing.T) {
	path := writeTestFile(t, `[]`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSource(path).FetchCandles(ctx, "", 0, 0)
	assert.ErrorIs(t, err, ErrDataUnavailable)
}
