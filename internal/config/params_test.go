package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assist-by/stockwise/internal/domain"
	"github.com/assist-by/stockwise/internal/strategy"
)

func writeParamsFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadStrategyParamsFlat(t *testing.T) {
	path := writeParamsFile(t, "params.yaml", "shortPeriod: 10\nlongPeriod: 30\n")

	params, err := LoadStrategyParams(path, strategy.IDMACross)
	require.NoError(t, err)
	assert.Equal(t, domain.Params{"shortPeriod": 10, "longPeriod": 30}, params)
}

func TestLoadStrategyParamsSectioned(t *testing.T) {
	path := writeParamsFile(t, "params.yaml", `
macd_cross:
  fast: 8
  slow: 21
kdj_cross:
  period: 14
  jOverbought: 85.5
`)

	params, err := LoadStrategyParams(path, strategy.IDKDJCross)
	require.NoError(t, err)
	assert.Equal(t, domain.Params{"period": 14, "jOverbought": 85.5}, params)

	params, err = LoadStrategyParams(path, strategy.IDMACDCross)
	require.NoError(t, err)
	assert.Equal(t, domain.Params{"fast": 8, "slow": 21}, params)

	// 섹션이 없는 전략은 기본값
	params, err = LoadStrategyParams(path, strategy.IDEMATrend)
	require.NoError(t, err)
	assert.Empty(t, params)
}

func TestLoadStrategyParamsJSON(t *testing.T) {
	path := writeParamsFile(t, "params.json", `{"rsi_oversold": {"period": 7, "oversold": "25"}}`)

	params, err := LoadStrategyParams(path, strategy.IDRSIOversold)
	require.NoError(t, err)
	assert.Equal(t, domain.Params{"period": 7, "oversold": 25}, params)

	// 읽은 파라미터로 전략 실행 가능
	_, err = strategy.Run(strategy.IDRSIOversold, nil, params)
	assert.NoError(t, err)
}

func TestLoadStrategyParamsErrors(t *testing.T) {
	t.Run("알 수 없는 키", func(t *testing.T) {
		path := writeParamsFile(t, "params.yaml", "fastPeriod: 5\n")
		_, err := LoadStrategyParams(path, strategy.IDMACDCross)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("숫자가 아닌 값", func(t *testing.T) {
		path := writeParamsFile(t, "params.yaml", "fast: quick\n")
		_, err := LoadStrategyParams(path, strategy.IDMACDCross)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("알 수 없는 전략", func(t *testing.T) {
		path := writeParamsFile(t, "params.yaml", "fast: 5\n")
		_, err := LoadStrategyParams(path, strategy.ID("nope"))
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("파일 없음", func(t *testing.T) {
		_, err := LoadStrategyParams(filepath.Join(t.TempDir(), "none.yaml"), strategy.IDMACDCross)
		assert.Error(t, err)
	})
}
