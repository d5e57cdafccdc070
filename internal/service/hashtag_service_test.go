package service

import (
	"Lumen/internal/model"
	"Lumen/internal/repository"
	"context"
	"errors"
	"testing"
	"time"
)

func newTestHashtagService(postRepo *fakePostRepo, socialRepo *fakeSocialRepo, hashtagRepo *fakeHashtagRepo) *hashtagServiceImpl {
	svc := NewHashtagService(postRepo, socialRepo, hashtagRepo, testFeedConfig())
	impl := svc.(*hashtagServiceImpl)
	impl.now = func() time.Time { return feedNow }
	return impl
}

func TestGetTrendingHashtags(t *testing.T) {
	svc := newTestHashtagService(
		&fakePostRepo{}, &fakeSocialRepo{},
		&fakeHashtagRepo{trending: []*repository.TrendingHashtag{
			{ID: 1, Name: "travel", PostCount: 500, RecentPosts: 80},
			{ID: 2, Name: "food", PostCount: 300, RecentPosts: 40},
		}},
	)

	list, err := svc.GetTrendingHashtags(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d tags, want 2", len(list))
	}
	if list[0].Name != "travel" || list[0].RecentPosts != 80 {
		t.Fatalf("unexpected first tag: %+v", list[0])
	}
}

func TestGetPostsByHashtagNameNormalized(t *testing.T) {
	owner := activeUser(2)
	svc := newTestHashtagService(
		&fakePostRepo{posts: []*model.Post{feedPost(10, 2, 1, owner)}},
		&fakeSocialRepo{},
		&fakeHashtagRepo{byName: map[string]*model.Hashtag{
			"travel": {ID: 9, Name: "travel"},
		}},
	)

	// 大小写、首尾空白与前导 # 都应被归一化
	page, err := svc.GetPostsByHashtag(context.Background(), 0, "  #Travel ", 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.List) != 1 {
		t.Fatalf("got %d posts, want 1", len(page.List))
	}
}

func TestGetPostsByHashtagUnknownTag(t *testing.T) {
	svc := newTestHashtagService(&fakePostRepo{}, &fakeSocialRepo{}, &fakeHashtagRepo{})

	_, err := svc.GetPostsByHashtag(context.Background(), 0, "missing", 10, 0)
	if !errors.Is(err, ErrHashtagNotFound) {
		t.Fatalf("err = %v, want ErrHashtagNotFound", err)
	}
}

func TestGetPostsByHashtagEmptyName(t *testing.T) {
	svc := newTestHashtagService(&fakePostRepo{}, &fakeSocialRepo{}, &fakeHashtagRepo{})

	_, err := svc.GetPostsByHashtag(context.Background(), 0, "   ", 10, 0)
	if !errors.Is(err, ErrParamInvalid) {
		t.Fatalf("err = %v, want ErrParamInvalid", err)
	}
}

func TestGetPostsByHashtagBlockFilterForViewer(t *testing.T) {
	blockedOwner := activeUser(3)
	goodOwner := activeUser(2)

	postRepo := &fakePostRepo{posts: []*model.Post{
		feedPost(10, 3, 1, blockedOwner),
		feedPost(11, 2, 1, goodOwner),
	}}
	svc := newTestHashtagService(
		postRepo,
		&fakeSocialRepo{blocked: map[uint64][]uint64{1: {3}}},
		&fakeHashtagRepo{byName: map[string]*model.Hashtag{
			"travel": {ID: 9, Name: "travel"},
		}},
	)

	// 登录 viewer 套用拉黑过滤
	page, err := svc.GetPostsByHashtag(context.Background(), 1, "travel", 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.List) != 1 || page.List[0].ID != 11 {
		t.Fatalf("expected only post 11, got %+v", page.List)
	}

	// 匿名访问不过滤
	page, err = svc.GetPostsByHashtag(context.Background(), 0, "travel", 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.List) != 2 {
		t.Fatalf("anonymous view should see 2 posts, got %d", len(page.List))
	}
}

func TestGetPostsByHashtagLimitClamped(t *testing.T) {
	owner := activeUser(2)
	posts := make([]*model.Post, 0, 60)
	for i := 1; i <= 60; i++ {
		posts = append(posts, feedPost(uint64(i), 2, i, owner))
	}

	svc := newTestHashtagService(
		&fakePostRepo{posts: posts},
		&fakeSocialRepo{},
		&fakeHashtagRepo{byName: map[string]*model.Hashtag{
			"travel": {ID: 9, Name: "travel"},
		}},
	)

	page, err := svc.GetPostsByHashtag(context.Background(), 0, "travel", 1000, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Limit != testFeedConfig().MaxPageSize {
		t.Fatalf("limit = %d, want clamped to %d", page.Limit, testFeedConfig().MaxPageSize)
	}
	if len(page.List) != testFeedConfig().MaxPageSize {
		t.Fatalf("got %d posts, want %d", len(page.List), testFeedConfig().MaxPageSize)
	}
}
