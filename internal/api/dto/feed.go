package dto

// FeedMediaDTO 媒体项，按 media_order 升序
type FeedMediaDTO struct {
	MediaType  string  `json:"media_type"`
	MediaURL   string  `json:"media_url"`
	MediaOrder int8    `json:"media_order"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Duration   int     `json:"duration"`
	CoverURL   *string `json:"cover_url,omitempty"`
}

// FeedPostDTO 信息流条目，viewer 相关的三个布尔位始终存在
type FeedPostDTO struct {
	ID            uint64  `json:"id"`
	Caption       string  `json:"caption"`
	Location      *string `json:"location,omitempty"`
	LikesCount    int     `json:"likes_count"`
	CommentsCount int     `json:"comments_count"`
	SavesCount    int     `json:"saves_count"`
	Score         float64 `json:"score"`
	CreatedAt     string  `json:"created_at"`

	// PostMedia
	Media []*FeedMediaDTO `json:"media"`

	// User
	UserID     uint64  `json:"user_id"`
	Username   string  `json:"username"`
	FullName   *string `json:"full_name,omitempty"`
	AvatarURL  *string `json:"avatar_url,omitempty"`
	IsVerified bool    `json:"is_verified"`

	// Viewer 相关
	Liked       bool `json:"liked"`
	Saved       bool `json:"saved"`
	IsFollowing bool `json:"is_following"`
}

// FeedPageDTO 一页排序结果
type FeedPageDTO struct {
	List   []*FeedPostDTO `json:"list"`
	Count  int            `json:"count"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// TrendingHashtagDTO 热门标签
type TrendingHashtagDTO struct {
	Name        string `json:"name"`
	PostCount   int    `json:"post_count"`
	RecentPosts int    `json:"recent_posts"`
}

// SuggestedUserDTO 关注推荐
type SuggestedUserDTO struct {
	UserID         uint64  `json:"user_id"`
	Username       string  `json:"username"`
	FullName       *string `json:"full_name,omitempty"`
	AvatarURL      *string `json:"avatar_url,omitempty"`
	IsVerified     bool    `json:"is_verified"`
	FollowersCount int     `json:"followers_count"`
	MutualFollows  int     `json:"mutual_follows"`
}

// FeedQueryDTO 信息流查询参数
type FeedQueryDTO struct {
	Limit  int `form:"limit" binding:"omitempty,min=0,max=500"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}
