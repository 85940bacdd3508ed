package market

import (
	"context"
	"errors"

	"github.com/assist-by/stockwise/internal/domain"
)

// ErrDataUnavailable은 요청한 캔들 데이터를 가져올 수 없음을 나타냅니다
var ErrDataUnavailable = errors.New("캔들 데이터를 사용할 수 없습니다")

// CandleSource는 캔들 데이터 공급자 인터페이스입니다
type CandleSource interface {
	// FetchCandles는 [from, to] 구간의 캔들을 시간 오름차순으로 반환합니다.
	// from, to가 0이면 해당 방향으로 제한하지 않습니다.
	FetchCandles(ctx context.Context, symbol string, from, to int64) (domain.CandleSeries, error)
}

// filterRange는 [from, to] 구간의 캔들만 남긴 새 시리즈를 반환합니다
func filterRange(series domain.CandleSeries, from, to int64) domain.CandleSeries {
	out := make(domain.CandleSeries, 0, len(series))
	for _, c := range series {
		if from != 0 && c.Time < from {
			continue
		}
		if to != 0 && c.Time > to {
			continue
		}
		out = append(out, c)
	}
	return out
}
