package ranking

import (
	"testing"
	"time"
)

var rankBase = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func scoredItem(id uint64, minutesAgo int, score float64) Scored {
	return Scored{
		ID:        id,
		CreatedAt: rankBase.Add(-time.Duration(minutesAgo) * time.Minute),
		Score:     score,
	}
}

func assertOrder(t *testing.T, got []Scored, want []uint64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d items, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: got id %d, want %d", i, got[i].ID, id)
		}
	}
}

func TestRankOrdersByScoreDesc(t *testing.T) {
	items := []Scored{
		scoredItem(1, 10, 0.2),
		scoredItem(2, 10, 0.9),
		scoredItem(3, 10, 0.5),
	}

	got := Rank(items, 10, 0, 50)
	assertOrder(t, got, []uint64{2, 3, 1})
}

func TestRankTieBreaks(t *testing.T) {
	// 同分按 created_at 降序，仍同则按 id 降序
	items := []Scored{
		scoredItem(1, 30, 0.5),
		scoredItem(2, 10, 0.5),
		scoredItem(3, 10, 0.5),
	}

	got := Rank(items, 10, 0, 50)
	assertOrder(t, got, []uint64{3, 2, 1})
}

func TestRankDeterministic(t *testing.T) {
	items := []Scored{
		scoredItem(5, 1, 0.4),
		scoredItem(3, 1, 0.4),
		scoredItem(9, 2, 0.4),
		scoredItem(1, 3, 0.7),
	}

	first := Rank(items, 10, 0, 50)
	for i := 0; i < 10; i++ {
		again := Rank(items, 10, 0, 50)
		assertOrder(t, again, []uint64{first[0].ID, first[1].ID, first[2].ID, first[3].ID})
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	items := []Scored{
		scoredItem(1, 10, 0.1),
		scoredItem(2, 10, 0.9),
	}

	_ = Rank(items, 10, 0, 50)
	if items[0].ID != 1 || items[1].ID != 2 {
		t.Fatal("input slice was reordered")
	}
}

func TestRankPagination(t *testing.T) {
	// 15 个候选，limit=10 offset=10 应返回完整序列的第 11~15 位
	items := make([]Scored, 0, 15)
	for i := 1; i <= 15; i++ {
		items = append(items, scoredItem(uint64(i), i, float64(i)/100))
	}

	full := Rank(items, 15, 0, 50)
	page := Rank(items, 10, 10, 50)

	if len(page) != 5 {
		t.Fatalf("got %d items, want 5", len(page))
	}
	for i, item := range page {
		if item.ID != full[10+i].ID {
			t.Fatalf("position %d: got id %d, want %d", i, item.ID, full[10+i].ID)
		}
	}
}

func TestRankLimitEdgeCases(t *testing.T) {
	items := []Scored{
		scoredItem(1, 10, 0.5),
		scoredItem(2, 20, 0.4),
	}

	if got := Rank(items, 0, 0, 50); len(got) != 0 {
		t.Errorf("limit=0: got %d items, want 0", len(got))
	}
	if got := Rank(items, -3, 0, 50); len(got) != 0 {
		t.Errorf("limit<0: got %d items, want 0", len(got))
	}
	if got := Rank(items, 10, 2, 50); len(got) != 0 {
		t.Errorf("offset at len: got %d items, want 0", len(got))
	}
	if got := Rank(items, 10, 99, 50); len(got) != 0 {
		t.Errorf("offset beyond len: got %d items, want 0", len(got))
	}
	if got := Rank(items, 10, -5, 50); len(got) != 2 {
		t.Errorf("offset<0 clamped: got %d items, want 2", len(got))
	}
}

func TestRankClampsLimitToMax(t *testing.T) {
	items := make([]Scored, 0, 100)
	for i := 1; i <= 100; i++ {
		items = append(items, scoredItem(uint64(i), i, float64(i)))
	}

	got := Rank(items, 1000, 0, 50)
	if len(got) != 50 {
		t.Fatalf("got %d items, want 50", len(got))
	}
}

func TestRankEmptyInput(t *testing.T) {
	if got := Rank(nil, 10, 0, 50); len(got) != 0 {
		t.Fatalf("got %d items, want 0", len(got))
	}
}
