package domain

import "fmt"

// SignalType은 매매 시그널 방향을 정의합니다
type SignalType int

const (
	Buy SignalType = iota + 1
	Sell
)

// String은 SignalType의 문자열 표현을 반환합니다
func (s SignalType) String() string {
	switch s {
	case Buy:
		return "Buy"
	case Sell:
		return "Sell"
	default:
		return "Unknown"
	}
}

// MarshalText는 JSON/YAML 출력에서 시그널 방향을 문자열로 표현합니다
func (s SignalType) MarshalText() ([]byte, error) {
	switch s {
	case Buy, Sell:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("알 수 없는 시그널 타입: %d", int(s))
	}
}

// Signal은 전략이 생성한 매매 시그널입니다
type Signal struct {
	Time        int64      `json:"time"`        // 시그널 발생 캔들 시간 (unix 초)
	Type        SignalType `json:"type"`        // 매수/매도
	Price       float64    `json:"price"`       // 시그널 캔들의 종가
	Reason      string     `json:"reason"`      // 시그널 발생 이유
	SourceIndex int        `json:"sourceIndex"` // 원본 캔들 인덱스
}

// IsBuy는 매수 시그널인지 확인합니다
func (s Signal) IsBuy() bool {
	return s.Type == Buy
}

// IsSell은 매도 시그널인지 확인합니다
func (s Signal) IsSell() bool {
	return s.Type == Sell
}
