package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Params는 지표/전략의 숫자 파라미터 맵입니다
type Params map[string]float64

// Float는 key의 값을 반환하며, 없으면 기본값을 사용합니다
func (p Params) Float(key string, def float64) (float64, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{
			Field: key,
			Err:   fmt.Errorf("유한한 숫자여야 합니다: %v", v),
		}
	}
	return v, nil
}

// Period는 key의 값을 양의 정수 기간으로 반환하며, 없으면 기본값을 사용합니다
func (p Params) Period(key string, def int) (int, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, &ValidationError{
			Field: key,
			Err:   fmt.Errorf("기간은 정수여야 합니다: %v", v),
		}
	}
	if v < 1 {
		return 0, &ValidationError{
			Field: key,
			Err:   fmt.Errorf("기간은 1 이상이어야 합니다: %v", v),
		}
	}
	return int(v), nil
}

// Only는 허용되지 않은 키가 있으면 에러를 반환합니다
func (p Params) Only(keys ...string) error {
	allowed := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		allowed[k] = struct{}{}
	}

	var unknown []string
	for k := range p {
		if _, ok := allowed[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return nil
	}

	sort.Strings(unknown)
	return &ValidationError{
		Field: "params",
		Err: fmt.Errorf("알 수 없는 파라미터: %s (허용: %s)",
			strings.Join(unknown, ", "), strings.Join(keys, ", ")),
	}
}
