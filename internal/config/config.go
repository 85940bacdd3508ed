package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/assist-by/stockwise/internal/report"
)

type Config struct {
	// 캔들 데이터 설정
	Data struct {
		File       string    `envconfig:"STOCKWISE_DATA_FILE" required:"true"`
		Symbol     string    `envconfig:"STOCKWISE_SYMBOL"`
		From       Timestamp `envconfig:"STOCKWISE_FROM"`
		To         Timestamp `envconfig:"STOCKWISE_TO"`
		MinCandles int       `envconfig:"STOCKWISE_MIN_CANDLES" default:"60"`
	}

	// 백테스트 설정
	Backtest struct {
		Strategy   string `envconfig:"STOCKWISE_STRATEGY" default:"macd_cross"`
		ParamsFile string `envconfig:"STOCKWISE_PARAMS_FILE"`
	}

	// 애플리케이션 설정
	App struct {
		Output         string `envconfig:"STOCKWISE_OUTPUT" default:"json"`
		LogLevel       string `envconfig:"STOCKWISE_LOG_LEVEL" default:"info"`
		LogDevelopment bool   `envconfig:"STOCKWISE_LOG_DEVELOPMENT" default:"false"`
	}
}

// Timestamp는 unix 초 단위 시간입니다.
// 환경변수에서는 unix 초, YYYY-MM-DD, RFC3339 형식을 받습니다.
type Timestamp int64

// Decode는 envconfig.Decoder 구현입니다
func (t *Timestamp) Decode(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		*t = 0
		return nil
	}
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		*t = Timestamp(n)
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if parsed, err := time.Parse(layout, value); err == nil {
			*t = Timestamp(parsed.Unix())
			return nil
		}
	}
	return fmt.Errorf("시간 형식을 해석할 수 없습니다: %q", value)
}

// Unix는 unix 초 값을 반환합니다 (0은 제한 없음)
func (t Timestamp) Unix() int64 {
	return int64(t)
}

// ValidateConfig는 설정이 유효한지 확인합니다.
// 전략 ID는 명령줄 옵션으로 덮어쓸 수 있으므로 실행 시점에 확인합니다.
func ValidateConfig(cfg *Config) error {
	if strings.TrimSpace(cfg.Data.File) == "" {
		return fmt.Errorf("STOCKWISE_DATA_FILE은 비어 있을 수 없습니다")
	}

	if cfg.Data.MinCandles < 0 {
		return fmt.Errorf("STOCKWISE_MIN_CANDLES는 0 이상이어야 합니다")
	}

	if cfg.Data.From != 0 && cfg.Data.To != 0 && cfg.Data.From > cfg.Data.To {
		return fmt.Errorf("STOCKWISE_FROM은 STOCKWISE_TO보다 늦을 수 없습니다")
	}

	switch cfg.App.Output {
	case report.FormatJSON, report.FormatYAML:
	default:
		return fmt.Errorf("STOCKWISE_OUTPUT은 %s 또는 %s 이어야 합니다: %q", report.FormatJSON, report.FormatYAML, cfg.App.Output)
	}

	if _, err := zapcore.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("STOCKWISE_LOG_LEVEL 오류: %w", err)
	}

	return nil
}

// LoadConfig는 환경변수에서 설정을 로드합니다.
// envFiles를 지정하지 않으면 현재 디렉토리의 .env 파일을 읽으며, 파일이 없으면 무시합니다.
func LoadConfig(envFiles ...string) (*Config, error) {
	// .env 파일 로드
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf(".env 파일 로드 실패: %w", err)
	}

	var cfg Config
	// 환경변수를 구조체로 파싱
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("환경변수 처리 실패: %w", err)
	}

	cfg.Backtest.Strategy = strings.ToLower(strings.TrimSpace(cfg.Backtest.Strategy))
	cfg.App.Output = strings.ToLower(strings.TrimSpace(cfg.App.Output))

	// 설정값 검증
	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("설정값 검증 실패: %w", err)
	}

	return &cfg, nil
}
