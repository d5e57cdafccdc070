package handler

import (
	"Lumen/internal/api/dto"
	"Lumen/internal/pkg/response"
	"Lumen/internal/service"

	"github.com/gin-gonic/gin"
)

type HashtagHandler struct {
	hashtagSvc service.HashtagService
}

func NewHashtagHandler(hashtagSvc service.HashtagService) *HashtagHandler {
	return &HashtagHandler{
		hashtagSvc: hashtagSvc,
	}
}

// GetTrending 热门标签榜
func (s *HashtagHandler) GetTrending(c *gin.Context) {
	list, err := s.hashtagSvc.GetTrendingHashtags(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// GetPostsByHashtag 标签页内容，匿名可访问
func (s *HashtagHandler) GetPostsByHashtag(c *gin.Context) {
	userID := c.GetUint64("user_id")
	name := c.Param("name")

	var query dto.FeedQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	page, err := s.hashtagSvc.GetPostsByHashtag(c.Request.Context(), userID, name, query.Limit, query.Offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}
