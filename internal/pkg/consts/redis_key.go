package consts

const (
	PostLikeKey    = "post:like:"
	PostSaveKey    = "post:save:"
	PostCommentKey = "post:comment:"
	PostViewKey    = "post:view:"

	PostDirtyKey         = "post:dirty"
	UserInterestDirtyKey = "user:interest:dirty"
)
