package tottohot

import "github.com/pkg/errors"

type H = map[string]string

var (
	ErrUnexpected  = errors.New("예측하지 못한 결과가 발생했습니다")
	ErrNotFound    = errors.New("찾을 수 없거나 존재하지 않습니다")
	ErrForbidden   = errors.New("접근 권한이 없습니다")
	ErrRateLimited = errors.New("요청이 너무 많습니다. 잠시 후 다시 시도해주세요")
)
