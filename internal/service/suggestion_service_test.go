package service

import (
	"Lumen/internal/model"
	"context"
	"errors"
	"testing"
)

func newTestSuggestionService(userRepo *fakeUserRepo, socialRepo *fakeSocialRepo,
	interestRepo *fakeInterestRepo, hashtagRepo *fakeHashtagRepo) SuggestionService {
	return NewSuggestionService(userRepo, socialRepo, interestRepo, hashtagRepo, testFeedConfig())
}

func TestGetSuggestedUsersViewerNotFound(t *testing.T) {
	svc := newTestSuggestionService(
		&fakeUserRepo{users: map[uint64]*model.User{}},
		&fakeSocialRepo{}, &fakeInterestRepo{}, &fakeHashtagRepo{},
	)

	_, err := svc.GetSuggestedUsers(context.Background(), 1)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestGetSuggestedUsersOrdering(t *testing.T) {
	users := map[uint64]*model.User{
		1: activeUser(1),
		2: activeUser(2),
		3: activeUser(3),
		4: activeUser(4),
	}

	svc := newTestSuggestionService(
		&fakeUserRepo{users: users},
		&fakeSocialRepo{
			mutual:       map[uint64]int{2: 3, 3: 5, 4: 3},
			followerCnts: map[uint64]int{2: 10, 3: 1, 4: 200},
		},
		&fakeInterestRepo{}, &fakeHashtagRepo{},
	)

	list, err := svc.GetSuggestedUsers(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 共同关注数优先，再按粉丝数
	want := []uint64{3, 4, 2}
	if len(list) != len(want) {
		t.Fatalf("got %d suggestions, want %d", len(list), len(want))
	}
	for i, id := range want {
		if list[i].UserID != id {
			t.Fatalf("position %d: got user %d, want %d", i, list[i].UserID, id)
		}
	}
}

func TestGetSuggestedUsersExcludesSelfFollowingBlocked(t *testing.T) {
	users := map[uint64]*model.User{
		1: activeUser(1),
		2: activeUser(2),
		3: activeUser(3),
		4: activeUser(4),
		5: activeUser(5),
	}

	svc := newTestSuggestionService(
		&fakeUserRepo{users: users},
		&fakeSocialRepo{
			following: map[uint64][]uint64{1: {2}},
			blocked:   map[uint64][]uint64{1: {3}},
			mutual:    map[uint64]int{1: 9, 2: 9, 3: 9, 4: 2, 5: 1},
		},
		&fakeInterestRepo{}, &fakeHashtagRepo{},
	)

	list, err := svc.GetSuggestedUsers(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, s := range list {
		if s.UserID == 1 || s.UserID == 2 || s.UserID == 3 {
			t.Fatalf("user %d must be excluded", s.UserID)
		}
	}
	if len(list) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(list))
	}
}

func TestGetSuggestedUsersIncludesInterestPosters(t *testing.T) {
	users := map[uint64]*model.User{
		1: activeUser(1),
		7: activeUser(7),
	}

	svc := newTestSuggestionService(
		&fakeUserRepo{users: users},
		&fakeSocialRepo{},
		&fakeInterestRepo{interests: []*model.UserInterest{
			{UserID: 1, InterestType: "hashtag", InterestValue: "travel", Score: 90},
		}},
		&fakeHashtagRepo{
			idsByName: map[string]uint64{"travel": 9},
			posterIDs: []uint64{7},
		},
	)

	list, err := svc.GetSuggestedUsers(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].UserID != 7 {
		t.Fatalf("expected poster 7 in suggestions, got %+v", list)
	}
}

func TestGetSuggestedUsersSkipsInactive(t *testing.T) {
	inactive := activeUser(2)
	inactive.IsActive = false
	users := map[uint64]*model.User{
		1: activeUser(1),
		2: inactive,
	}

	svc := newTestSuggestionService(
		&fakeUserRepo{users: users},
		&fakeSocialRepo{mutual: map[uint64]int{2: 5}},
		&fakeInterestRepo{}, &fakeHashtagRepo{},
	)

	list, err := svc.GetSuggestedUsers(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("inactive users must not be suggested, got %+v", list)
	}
}

func TestGetSuggestedUsersLimit(t *testing.T) {
	users := map[uint64]*model.User{1: activeUser(1)}
	mutual := make(map[uint64]int)
	for i := uint64(2); i <= 30; i++ {
		users[i] = activeUser(i)
		mutual[i] = int(i)
	}

	svc := newTestSuggestionService(
		&fakeUserRepo{users: users},
		&fakeSocialRepo{mutual: mutual},
		&fakeInterestRepo{}, &fakeHashtagRepo{},
	)

	list, err := svc.GetSuggestedUsers(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != testFeedConfig().SuggestedUserLimit {
		t.Fatalf("got %d suggestions, want %d", len(list), testFeedConfig().SuggestedUserLimit)
	}
	// 截断应保留共同关注数最高的一批
	if list[0].UserID != 30 {
		t.Fatalf("top suggestion = %d, want 30", list[0].UserID)
	}
}
