package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	osSignal "os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/assist-by/stockwise/internal/backtest"
	"github.com/assist-by/stockwise/internal/config"
	"github.com/assist-by/stockwise/internal/domain"
	"github.com/assist-by/stockwise/internal/indicator"
	"github.com/assist-by/stockwise/internal/logger"
	"github.com/assist-by/stockwise/internal/market"
	"github.com/assist-by/stockwise/internal/report"
	"github.com/assist-by/stockwise/internal/strategy"
)

func main() {
	// 명령줄 플래그 정의
	strategyFlag := flag.String("strategy", "", "실행할 전략 ID (기본값: STOCKWISE_STRATEGY)")
	paramsFlag := flag.String("params", "", "전략 파라미터 파일 (YAML/JSON/TOML)")
	indicatorFlag := flag.String("indicator", "", "지표만 계산 (MA, EMA, MACD, RSI, BOLL, KDJ)")
	indicatorParamsFlag := flag.String("iparams", "", "지표 파라미터 (예: period=20,k=2)")
	scanFlag := flag.Bool("scan", false, "모든 전략을 기본 파라미터로 실행해 비교")
	outputFlag := flag.String("output", "", "출력 형식 (json, yaml)")

	// 플래그 파싱
	flag.Parse()

	// 설정 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.App.LogLevel, cfg.App.LogDevelopment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "로거 생성 실패: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log, cfg, options{
		strategy:        *strategyFlag,
		paramsFile:      *paramsFlag,
		indicator:       *indicatorFlag,
		indicatorParams: *indicatorParamsFlag,
		scan:            *scanFlag,
		output:          *outputFlag,
	}); err != nil {
		log.Error("실행 실패", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

// options는 설정 위에 덮어쓰는 명령줄 옵션입니다
type options struct {
	strategy        string
	paramsFile      string
	indicator       string
	indicatorParams string
	scan            bool
	output          string
}

func run(log *zap.Logger, cfg *config.Config, opts options) error {
	// 시그널 처리로 취소 가능한 컨텍스트 생성
	ctx, stop := osSignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	output := cfg.App.Output
	if opts.output != "" {
		output = strings.ToLower(strings.TrimSpace(opts.output))
		if output != report.FormatJSON && output != report.FormatYAML {
			return fmt.Errorf("지원하지 않는 출력 형식: %q", opts.output)
		}
	}

	// 명령줄 옵션 적용 후 전략 ID 확인
	id := cfg.Backtest.Strategy
	if opts.strategy != "" {
		id = opts.strategy
	}
	if opts.indicator == "" && !opts.scan {
		if _, err := strategy.ParseID(id); err != nil {
			return err
		}
	}

	// 캔들 데이터 로드
	source := market.NewFileSource(cfg.Data.File)
	series, err := source.FetchCandles(ctx, cfg.Data.Symbol, cfg.Data.From.Unix(), cfg.Data.To.Unix())
	if err != nil {
		return err
	}
	if len(series) < cfg.Data.MinCandles {
		return fmt.Errorf("%w: 캔들 데이터가 부족합니다 (필요: %d, 현재: %d)",
			market.ErrDataUnavailable, cfg.Data.MinCandles, len(series))
	}
	log.Info("캔들 데이터 로드 완료",
		zap.String("file", cfg.Data.File),
		zap.String("symbol", cfg.Data.Symbol),
		zap.Int("candles", len(series)),
	)

	meta := report.NewMeta(report.NewRunID(), cfg.Data.Symbol, series)

	var out any
	switch {
	case opts.indicator != "":
		out, err = runIndicator(log, meta, series, opts)
	case opts.scan:
		out, err = runScan(log, meta, series)
	default:
		paramsFile := cfg.Backtest.ParamsFile
		if opts.paramsFile != "" {
			paramsFile = opts.paramsFile
		}
		out, err = runStrategy(log, meta, series, id, paramsFile)
	}
	if err != nil {
		return err
	}

	return report.Encode(os.Stdout, output, out)
}

// runStrategy는 전략 하나를 실행하고 백테스트 리포트를 만듭니다
func runStrategy(log *zap.Logger, meta report.Meta, series domain.CandleSeries, rawID, paramsFile string) (report.BacktestReport, error) {
	id, err := strategy.ParseID(rawID)
	if err != nil {
		return report.BacktestReport{}, err
	}
	desc, err := strategy.Describe(id)
	if err != nil {
		return report.BacktestReport{}, err
	}

	var params domain.Params
	if paramsFile != "" {
		if params, err = config.LoadStrategyParams(paramsFile, id); err != nil {
			return report.BacktestReport{}, err
		}
	}

	signals, err := strategy.Run(id, series, params)
	if err != nil {
		return report.BacktestReport{}, fmt.Errorf("전략 실행 실패 (%s): %w", id, err)
	}
	result := backtest.Run(series, signals)

	for _, t := range result.Trades {
		log.Debug("거래",
			zap.Int64("buyTime", t.BuyTime),
			zap.Float64("buyPrice", t.BuyPrice),
			zap.Int64("sellTime", t.SellTime),
			zap.Float64("sellPrice", t.SellPrice),
			zap.Float64("returnPct", t.ReturnPct),
			zap.Int("holdDays", t.HoldDays),
		)
	}

	log.Info("백테스트 완료",
		zap.String("strategy", string(id)),
		zap.Int("signals", len(result.Signals)),
		zap.Int("trades", result.TotalTrades),
		zap.Float64("totalReturnPct", result.TotalReturnPct),
	)

	return report.NewBacktestReport(meta, desc, params, result), nil
}

// runScan은 모든 전략을 기본 파라미터로 실행합니다
func runScan(log *zap.Logger, meta report.Meta, series domain.CandleSeries) (report.ScanReport, error) {
	catalog := strategy.Catalog()
	rows := make([]report.ScanRow, 0, len(catalog))
	for _, desc := range catalog {
		signals, err := strategy.Run(desc.ID, series, nil)
		if err != nil {
			return report.ScanReport{}, fmt.Errorf("전략 실행 실패 (%s): %w", desc.ID, err)
		}
		result := backtest.Run(series, signals)
		log.Debug("전략 스캔",
			zap.String("strategy", string(desc.ID)),
			zap.Int("trades", result.TotalTrades),
			zap.Float64("totalReturnPct", result.TotalReturnPct),
		)
		rows = append(rows, report.NewScanRow(desc, result))
	}

	log.Info("전략 스캔 완료", zap.Int("strategies", len(rows)))
	return report.NewScanReport(meta, rows), nil
}

// runIndicator는 지표 하나를 계산합니다
func runIndicator(log *zap.Logger, meta report.Meta, series domain.CandleSeries, opts options) (report.IndicatorReport, error) {
	kind, err := indicator.ParseKind(opts.indicator)
	if err != nil {
		return report.IndicatorReport{}, err
	}
	params, err := parseIndicatorParams(opts.indicatorParams)
	if err != nil {
		return report.IndicatorReport{}, err
	}

	seq, err := indicator.Compute(kind, series, params)
	if err != nil {
		return report.IndicatorReport{}, fmt.Errorf("지표 계산 실패 (%s): %w", kind, err)
	}

	log.Info("지표 계산 완료", zap.String("indicator", seq.Name), zap.Int("points", seq.Len()))
	return report.NewIndicatorReport(meta, seq), nil
}

// parseIndicatorParams는 "key=value,key=value" 형식을 파라미터 맵으로 변환합니다
func parseIndicatorParams(s string) (domain.Params, error) {
	params := domain.Params{}
	if strings.TrimSpace(s) == "" {
		return params, nil
	}
	for _, pair := range strings.Split(s, ",") {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, &domain.ValidationError{
				Field: "iparams",
				Err:   fmt.Errorf("key=value 형식이 아닙니다: %q", pair),
			}
		}
		v, err := cast.ToFloat64E(strings.TrimSpace(value))
		if err != nil {
			return nil, &domain.ValidationError{Field: key, Err: err}
		}
		params[key] = v
	}
	return params, nil
}
