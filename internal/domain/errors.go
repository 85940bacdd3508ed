package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument는 호출자의 잘못된 인자(알 수 없는 식별자, 잘못된 기간 등)를 나타냅니다
var ErrInvalidArgument = errors.New("잘못된 인자")

// ValidationError는 입력값 검증 에러를 정의합니다
type ValidationError struct {
	Field string
	Err   error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("유효하지 않은 %s: %v", e.Field, e.Err)
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// Is는 모든 검증 에러를 ErrInvalidArgument로 취급합니다
func (e ValidationError) Is(target error) bool {
	return target == ErrInvalidArgument
}
