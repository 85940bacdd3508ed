package market

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/assist-by/stockwise/internal/domain"
)

// millisecondThreshold보다 큰 타임스탬프는 밀리초로 간주
const millisecondThreshold = int64(1e12)

// FileSource는 JSON 파일에서 캔들을 읽는 CandleSource 구현체입니다.
//
// 지원 형식:
//   - {"symbol": "005930", "candles": [{"time": ..., "open": ..., ...}]}
//   - [{"time": ..., "open": ..., ...}] (심볼 정보 없음)
//   - [[openTime, "open", "high", "low", "close", "volume", ...]] (거래소 kline 배열)
type FileSource struct {
	Path string
}

// NewFileSource는 새로운 파일 소스를 생성합니다
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// FetchCandles는 파일을 읽어 구간 내 캔들을 반환합니다
func (s *FileSource) FetchCandles(ctx context.Context, symbol string, from, to int64) (domain.CandleSeries, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: 파일 읽기 실패 (%s): %v", ErrDataUnavailable, s.Path, err)
	}

	series, err := ParseCandles(data, symbol)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	return filterRange(series, from, to), nil
}

// ParseCandles는 JSON 문서를 캔들 시리즈로 변환합니다.
// 결과는 시간순으로 정렬되고 중복 시간은 마지막 값만 남으며, 데이터 계약을 검증합니다.
func ParseCandles(data []byte, symbol string) (domain.CandleSeries, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: 올바른 JSON이 아닙니다", ErrDataUnavailable)
	}

	root := gjson.ParseBytes(data)
	rows := root
	if root.IsObject() {
		if docSymbol := root.Get("symbol").String(); symbol != "" && docSymbol != "" &&
			!strings.EqualFold(docSymbol, symbol) {
			return nil, fmt.Errorf("%w: 심볼 불일치 (요청: %s, 파일: %s)", ErrDataUnavailable, symbol, docSymbol)
		}
		rows = root.Get("candles")
	}
	if !rows.IsArray() {
		return nil, fmt.Errorf("%w: 캔들 배열을 찾을 수 없습니다", ErrDataUnavailable)
	}

	items := rows.Array()
	series := make(domain.CandleSeries, 0, len(items))
	for i, item := range items {
		candle, err := parseCandle(item)
		if err != nil {
			return nil, fmt.Errorf("%w: 캔들 파싱 실패 (인덱스: %d): %v", ErrDataUnavailable, i, err)
		}
		series = append(series, candle)
	}

	series = series.SortedCopy()
	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	return series, nil
}

// parseCandle은 객체 또는 kline 배열 한 행을 캔들로 변환합니다
func parseCandle(item gjson.Result) (domain.Candle, error) {
	if item.IsArray() {
		fields := item.Array()
		if len(fields) < 6 {
			return domain.Candle{}, fmt.Errorf("kline 필드 부족: %d", len(fields))
		}
		// 숫자 문자열도 Float()로 변환됨
		return domain.Candle{
			Time:   normalizeTime(fields[0].Int()),
			Open:   fields[1].Float(),
			High:   fields[2].Float(),
			Low:    fields[3].Float(),
			Close:  fields[4].Float(),
			Volume: fields[5].Float(),
		}, nil
	}

	if !item.IsObject() {
		return domain.Candle{}, fmt.Errorf("지원하지 않는 캔들 형식: %s", item.Type)
	}

	t, err := parseTime(item)
	if err != nil {
		return domain.Candle{}, err
	}

	return domain.Candle{
		Time:   t,
		Open:   item.Get("open").Float(),
		High:   item.Get("high").Float(),
		Low:    item.Get("low").Float(),
		Close:  item.Get("close").Float(),
		Volume: item.Get("volume").Float(),
	}, nil
}

// parseTime은 time(숫자) 또는 date(문자열) 필드를 unix 초로 변환합니다
func parseTime(item gjson.Result) (int64, error) {
	if v := item.Get("time"); v.Exists() {
		if v.Type == gjson.Number {
			return normalizeTime(v.Int()), nil
		}
		return parseDate(v.String())
	}
	if v := item.Get("date"); v.Exists() {
		return parseDate(v.String())
	}
	return 0, fmt.Errorf("time/date 필드가 없습니다")
}

func parseDate(s string) (int64, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Unix(), nil
		}
	}
	return 0, fmt.Errorf("날짜 형식을 해석할 수 없습니다: %q", s)
}

// normalizeTime은 밀리초 타임스탬프를 초로 변환합니다
func normalizeTime(t int64) int64 {
	if t > millisecondThreshold {
		return t / 1000
	}
	return t
}
