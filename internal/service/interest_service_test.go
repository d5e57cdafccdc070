package service

import (
	"Lumen/internal/repository"
	"context"
	"errors"
	"testing"
	"time"
)

func newTestInterestService(engagementRepo *fakeEngagementRepo, interestRepo *fakeInterestRepo) *interestServiceImpl {
	svc := NewInterestService(engagementRepo, interestRepo, testFeedConfig())
	impl := svc.(*interestServiceImpl)
	impl.now = func() time.Time { return feedNow }
	return impl
}

func TestRefreshUserInterestsScores(t *testing.T) {
	engagementRepo := &fakeEngagementRepo{hashtagLikes: []repository.HashtagLikeCount{
		{Name: "travel", Count: 15}, // 15*10 超过上限，应钳到 100
		{Name: "food", Count: 4},
		{Name: "coffee", Count: 1},
	}}
	interestRepo := &fakeInterestRepo{}

	svc := newTestInterestService(engagementRepo, interestRepo)
	if err := svc.RefreshUserInterests(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(interestRepo.upserted) != 3 {
		t.Fatalf("upserted %d interests, want 3", len(interestRepo.upserted))
	}

	want := map[string]int{"travel": 100, "food": 40, "coffee": 10}
	for _, it := range interestRepo.upserted {
		if it.Score != want[it.InterestValue] {
			t.Errorf("%s score = %d, want %d", it.InterestValue, it.Score, want[it.InterestValue])
		}
		if it.InterestType != "hashtag" {
			t.Errorf("%s interest_type = %q, want hashtag", it.InterestValue, it.InterestType)
		}
		if it.UserID != 1 {
			t.Errorf("%s user_id = %d, want 1", it.InterestValue, it.UserID)
		}
	}
}

func TestRefreshUserInterestsIdempotent(t *testing.T) {
	engagementRepo := &fakeEngagementRepo{hashtagLikes: []repository.HashtagLikeCount{
		{Name: "travel", Count: 5},
		{Name: "food", Count: 2},
	}}
	interestRepo := &fakeInterestRepo{}

	svc := newTestInterestService(engagementRepo, interestRepo)
	if err := svc.RefreshUserInterests(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := make(map[string]int, len(interestRepo.upserted))
	for _, it := range interestRepo.upserted {
		first[it.InterestValue] = it.Score
	}

	if err := svc.RefreshUserInterests(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(interestRepo.upserted) != len(first) {
		t.Fatalf("repeat refresh changed row count: %d vs %d", len(interestRepo.upserted), len(first))
	}
	for _, it := range interestRepo.upserted {
		if it.Score != first[it.InterestValue] {
			t.Errorf("%s score changed on repeat refresh: %d vs %d", it.InterestValue, it.Score, first[it.InterestValue])
		}
	}
}

func TestRefreshUserInterestsIsolatesFailures(t *testing.T) {
	engagementRepo := &fakeEngagementRepo{hashtagLikes: []repository.HashtagLikeCount{
		{Name: "travel", Count: 5},
		{Name: "broken", Count: 4},
		{Name: "food", Count: 3},
	}}
	interestRepo := &fakeInterestRepo{
		failFor: map[string]error{"broken": errors.New("deadlock")},
	}

	svc := newTestInterestService(engagementRepo, interestRepo)
	if err := svc.RefreshUserInterests(context.Background(), 1); err != nil {
		t.Fatalf("single item failure must not fail the refresh: %v", err)
	}

	if len(interestRepo.upserted) != 2 {
		t.Fatalf("upserted %d interests, want 2", len(interestRepo.upserted))
	}
	for _, it := range interestRepo.upserted {
		if it.InterestValue == "broken" {
			t.Fatal("failed item should not be recorded")
		}
	}
}

func TestRefreshUserInterestsEmptyHistory(t *testing.T) {
	interestRepo := &fakeInterestRepo{}

	svc := newTestInterestService(&fakeEngagementRepo{}, interestRepo)
	if err := svc.RefreshUserInterests(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(interestRepo.upserted) != 0 {
		t.Fatalf("expected no writes for empty history, got %d", len(interestRepo.upserted))
	}
}

func TestRefreshUserInterestsTopN(t *testing.T) {
	likes := make([]repository.HashtagLikeCount, 0, 30)
	for i := 0; i < 30; i++ {
		likes = append(likes, repository.HashtagLikeCount{
			Name:  string(rune('a' + i)),
			Count: 30 - i,
		})
	}
	engagementRepo := &fakeEngagementRepo{hashtagLikes: likes}
	interestRepo := &fakeInterestRepo{}

	svc := newTestInterestService(engagementRepo, interestRepo)
	if err := svc.RefreshUserInterests(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(interestRepo.upserted) != testFeedConfig().InterestTopN {
		t.Fatalf("upserted %d interests, want %d", len(interestRepo.upserted), testFeedConfig().InterestTopN)
	}
}
