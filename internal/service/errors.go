package service

import (
	"errors"
	"fmt"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid     = errors.New("参数错误")
	ErrUserNotFound     = errors.New("用户不存在或已停用")
	ErrHashtagNotFound  = errors.New("标签不存在")
	ErrStoreUnavailable = errors.New("存储服务不可用")
	UnExpectedError     = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:     BadRequest,
	ErrUserNotFound:     NotFound,
	ErrHashtagNotFound:  NotFound,
	ErrStoreUnavailable: InternalServerError,
	UnExpectedError:     InternalServerError,
}

// storeErr 将存储层错误包装为 ErrStoreUnavailable，保留原因。
// 空结果是正常返回，只有查询本身失败才会走到这里
func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
}
