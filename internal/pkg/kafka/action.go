package kafka

import (
	"Lumen/internal/pkg/redis"
	"context"
	"fmt"
	log "log/slog"
	"strconv"
)

// ActionParams 单条互动事件对计数缓存的影响
type ActionParams struct {
	TargetID       uint64
	CountKeyPrefix string
	DirtyKey       string
	IsIncrement    bool
}

// ExecAction 调整 Redis 计数并把目标标脏，等待定时任务回写
func ExecAction(ctx context.Context, p ActionParams) {
	if p.TargetID == 0 {
		return
	}

	delta := int64(1)
	if !p.IsIncrement {
		delta = -1
	}

	countKey := p.CountKeyPrefix + strconv.FormatUint(p.TargetID, 10)
	if err := redis.IncrBy(ctx, countKey, delta); err != nil {
		log.ErrorContext(ctx, "adjust count key error", "key", countKey, "err", err)
	}

	if err := redis.SAdd(ctx, p.DirtyKey, p.TargetID); err != nil {
		log.ErrorContext(ctx, "mark dirty error", "key", p.DirtyKey, "target", p.TargetID, "err", err)
	}
}

// StrToUint64 Canal 行数据里主键字段统一按字符串下发
func StrToUint64(v interface{}) uint64 {
	switch val := v.(type) {
	case string:
		n, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return 0
		}
		return n
	case float64:
		if val < 0 {
			return 0
		}
		return uint64(val)
	case nil:
		return 0
	default:
		n, err := strconv.ParseUint(fmt.Sprintf("%v", val), 10, 64)
		if err != nil {
			return 0
		}
		return n
	}
}
