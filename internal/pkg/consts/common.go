package consts

const (
	InterestTypeHashtag = "hashtag"
)

// post_media.media_type 存完整 MIME 类型
const (
	MimePrefixVideo = "video"
)
