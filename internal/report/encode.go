package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// 출력 형식
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Encode는 리포트를 지정된 형식으로 w에 씁니다
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("JSON 인코딩 실패: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("YAML 인코딩 실패: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("지원하지 않는 출력 형식: %q", format)
	}
}
