package util

import (
	"strconv"
	"strings"
)

// StrSliceToUInt64Slice 字符串切片转 uint64 切片，非法项直接报错
func StrSliceToUInt64Slice(strs []string) ([]uint64, error) {
	result := make([]uint64, 0, len(strs))
	for _, s := range strs {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, nil
}

// NormalizeTag 标签统一小写去首尾空白，去掉前导 #
func NormalizeTag(raw string) string {
	tag := strings.TrimSpace(strings.ToLower(raw))
	return strings.TrimPrefix(tag, "#")
}

// DedupUint64 去重并保持原有顺序
func DedupUint64(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	result := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
