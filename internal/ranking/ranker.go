package ranking

import (
	"sort"
	"time"
)

// Scored 已打分的候选条目
type Scored struct {
	ID        uint64
	CreatedAt time.Time
	Score     float64
}

// Rank 按分数降序排序并做快照式分页。
// 排序完全确定：分数相同按 created_at 降序，再按 id 降序。
// limit 超过 maxLimit 时截断到 maxLimit，limit <= 0 或 offset 越界返回空切片。
// 注意这是 offset 快照分页：候选集在两次调用之间变化时不保证无重复/遗漏。
func Rank(items []Scored, limit, offset, maxLimit int) []Scored {
	sorted := make([]Scored, len(items))
	copy(sorted, items)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		}
		return sorted[i].ID > sorted[j].ID
	})

	if limit <= 0 {
		return []Scored{}
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(sorted) {
		return []Scored{}
	}

	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end]
}
