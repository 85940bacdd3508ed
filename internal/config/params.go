package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/assist-by/stockwise/internal/domain"
	"github.com/assist-by/stockwise/internal/strategy"
)

// LoadStrategyParams는 파라미터 파일(YAML/JSON/TOML)에서 전략 파라미터를 읽습니다.
//
// 파일 최상위에 전략 ID 섹션이 있으면 해당 섹션만 사용하고,
// 없으면 최상위 키 전체를 파라미터로 봅니다:
//
//	macd_cross:
//	  fast: 10
//	  slow: 30
//
// viper는 키를 소문자로 바꾸므로 카탈로그의 키 이름으로 되돌립니다.
func LoadStrategyParams(path string, id strategy.ID) (domain.Params, error) {
	desc, err := strategy.Describe(id)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("파라미터 파일 읽기 실패 (%s): %w", path, err)
	}

	section := v
	if isSectioned(v) {
		section = v.Sub(string(id))
		if section == nil {
			// 다른 전략 섹션만 있으면 기본값 사용
			return domain.Params{}, nil
		}
	}

	canonical := make(map[string]string, len(desc.Params))
	for _, key := range desc.Keys() {
		canonical[strings.ToLower(key)] = key
	}

	keys := section.AllKeys()
	sort.Strings(keys)

	params := make(domain.Params, len(keys))
	for _, k := range keys {
		key, ok := canonical[k]
		if !ok {
			return nil, &domain.ValidationError{
				Field: "params",
				Err:   fmt.Errorf("%s 전략에 없는 파라미터: %s (허용: %s)", id, k, strings.Join(desc.Keys(), ", ")),
			}
		}
		value, err := cast.ToFloat64E(section.Get(k))
		if err != nil {
			return nil, &domain.ValidationError{
				Field: key,
				Err:   fmt.Errorf("숫자로 변환할 수 없습니다: %w", err),
			}
		}
		params[key] = value
	}

	return params, nil
}

// isSectioned는 최상위 키 중 전략 ID가 있는지 확인합니다
func isSectioned(v *viper.Viper) bool {
	for key := range v.AllSettings() {
		if _, err := strategy.ParseID(key); err == nil {
			return true
		}
	}
	return false
}
