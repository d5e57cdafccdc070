package kafka

import "testing"

func TestStrToUint64(t *testing.T) {
	cases := []struct {
		in   interface{}
		want uint64
	}{
		{"123", 123},
		{"0", 0},
		{"not-a-number", 0},
		{"", 0},
		{nil, 0},
		{float64(42), 42},
		{float64(-1), 0},
		{int(7), 7},
	}

	for _, c := range cases {
		if got := StrToUint64(c.in); got != c.want {
			t.Errorf("StrToUint64(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFlagFlippedOn(t *testing.T) {
	msg := &CanalMessage{
		Data: []map[string]interface{}{{"is_deleted": "1"}},
		Old:  []map[string]interface{}{{"is_deleted": "0"}},
	}
	if !flagFlippedOn(msg, "is_deleted") {
		t.Fatal("0 -> 1 should count as flipped on")
	}

	// 本次 UPDATE 未改动该列
	msg.Old = []map[string]interface{}{{"comment_text": "old"}}
	if flagFlippedOn(msg, "is_deleted") {
		t.Fatal("unchanged column must not count as flipped")
	}

	// 当前值为假
	msg.Data = []map[string]interface{}{{"is_deleted": "0"}}
	msg.Old = []map[string]interface{}{{"is_deleted": "1"}}
	if flagFlippedOn(msg, "is_deleted") {
		t.Fatal("1 -> 0 must not count as flipped on")
	}
}

func TestIsTruthy(t *testing.T) {
	truthy := []interface{}{"1", "true", true, float64(1)}
	for _, v := range truthy {
		if !isTruthy(v) {
			t.Errorf("isTruthy(%v) = false, want true", v)
		}
	}
	falsy := []interface{}{"0", "false", false, float64(0), nil, "yes"}
	for _, v := range falsy {
		if isTruthy(v) {
			t.Errorf("isTruthy(%v) = true, want false", v)
		}
	}
}
